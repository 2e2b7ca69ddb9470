package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/sasya-arogya/bima/internal/interfaces"
	"github.com/sasya-arogya/bima/internal/models"
)

// InsuranceHandler maps inbound HTTP requests onto the policy engine and
// forwards its output. It holds no state of its own.
type InsuranceHandler struct {
	policyService      interfaces.PolicyService
	certificateService interfaces.CertificateService
	logger             arbor.ILogger
}

// NewInsuranceHandler creates a new insurance handler
func NewInsuranceHandler(
	policyService interfaces.PolicyService,
	certificateService interfaces.CertificateService,
	logger arbor.ILogger,
) *InsuranceHandler {
	return &InsuranceHandler{
		policyService:      policyService,
		certificateService: certificateService,
		logger:             logger,
	}
}

// CertificateHandler handles GET /api/insurance - computes a policy and
// returns the rendered certificate inline as application/pdf.
func (h *InsuranceHandler) CertificateHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	req, err := quoteRequestFromQuery(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.policyService.Build(r.Context(), req, time.Now())
	if err != nil {
		h.logger.Warn().Err(err).Str("crop", req.CropName).Msg("Policy build failed")
		WriteError(w, StatusForError(err), err.Error())
		return
	}

	doc, err := h.certificateService.Render(record)
	if err != nil {
		h.logger.Error().Err(err).Str("policy_id", record.PolicyID).Msg("Certificate render failed")
		WriteError(w, StatusForError(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%s", doc.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Data); err != nil {
		h.logger.Warn().Err(err).Msg("Failed to write certificate response")
	}
}

// PremiumHandler handles GET /api/premium - returns the premium breakdown
// as JSON without generating a certificate.
func (h *InsuranceHandler) PremiumHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	req, err := quoteRequestFromQuery(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.policyService.Summarize(r.Context(), req)
	if err != nil {
		h.logger.Warn().Err(err).Str("crop", req.CropName).Msg("Premium summary failed")
		WriteError(w, StatusForError(err), err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, summary)
}

// quoteRequestFromQuery maps request query parameters onto a QuoteRequest.
// The disease parameter is accepted for transport compatibility but the
// engine does not consume it.
func quoteRequestFromQuery(r *http.Request) (models.QuoteRequest, error) {
	q := r.URL.Query()

	farmerName := q.Get("farmer_name")
	if farmerName == "" {
		farmerName = q.Get("name")
	}

	areaRaw := q.Get("area_hectare")
	if areaRaw == "" {
		return models.QuoteRequest{}, fmt.Errorf("area_hectare parameter is required")
	}
	area, err := strconv.ParseFloat(areaRaw, 64)
	if err != nil {
		return models.QuoteRequest{}, fmt.Errorf("area_hectare must be numeric: %v", err)
	}

	req := models.QuoteRequest{
		FarmerName:  farmerName,
		State:       q.Get("state"),
		CropName:    q.Get("crop"),
		AreaHectare: area,
	}

	if split := q.Get("split"); split != "" {
		req.Split = models.SplitPolicy(split)
	}

	return req, nil
}
