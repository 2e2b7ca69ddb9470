package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/sasya-arogya/bima/internal/interfaces"
	"github.com/sasya-arogya/bima/internal/models"
)

type stubPolicyService struct {
	record  models.PolicyRecord
	summary models.PremiumSummary
	err     error
}

var _ interfaces.PolicyService = (*stubPolicyService)(nil)

func (s *stubPolicyService) Build(ctx context.Context, req models.QuoteRequest, issueTime time.Time) (models.PolicyRecord, error) {
	if s.err != nil {
		return models.PolicyRecord{}, s.err
	}
	return s.record, nil
}

func (s *stubPolicyService) Summarize(ctx context.Context, req models.QuoteRequest) (models.PremiumSummary, error) {
	if s.err != nil {
		return models.PremiumSummary{}, s.err
	}
	return s.summary, nil
}

type stubCertificateService struct {
	doc models.CertificateDocument
	err error
}

var _ interfaces.CertificateService = (*stubCertificateService)(nil)

func (s *stubCertificateService) Render(policy models.PolicyRecord) (models.CertificateDocument, error) {
	if s.err != nil {
		return models.CertificateDocument{}, s.err
	}
	return s.doc, nil
}

func newTestHandler(policyErr error) *InsuranceHandler {
	return NewInsuranceHandler(
		&stubPolicyService{
			record: models.PolicyRecord{PolicyID: "PMFBY-2026-AG1234K"},
			summary: models.PremiumSummary{
				CropName:     "Wheat",
				InsurerName:  "Insurer B",
				GrossPremium: 3150,
			},
			err: policyErr,
		},
		&stubCertificateService{
			doc: models.CertificateDocument{
				Data:        []byte("%PDF-1.4 stub"),
				ContentType: "application/pdf",
				Filename:    "ram_kumar_report.pdf",
			},
		},
		arbor.NewLogger(),
	)
}

func TestCertificateHandler(t *testing.T) {
	handler := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/insurance?farmer_name=Ram+Kumar&crop=Wheat&area_hectare=2.0&state=Punjab", nil)
	rec := httptest.NewRecorder()

	handler.CertificateHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "inline; filename=ram_kumar_report.pdf", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4 stub", rec.Body.String())
}

func TestCertificateHandlerMissingArea(t *testing.T) {
	handler := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/insurance?farmer_name=Ram&crop=Wheat", nil)
	rec := httptest.NewRecorder()

	handler.CertificateHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCertificateHandlerMethodNotAllowed(t *testing.T) {
	handler := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/insurance", nil)
	rec := httptest.NewRecorder()

	handler.CertificateHandler(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestPremiumHandler(t *testing.T) {
	handler := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/premium?farmer_name=Ram&crop=Wheat&area_hectare=2.0", nil)
	rec := httptest.NewRecorder()

	handler.PremiumHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var summary models.PremiumSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, "Wheat", summary.CropName)
	assert.Equal(t, "Insurer B", summary.InsurerName)
	assert.Equal(t, 3150.0, summary.GrossPremium)
}

func TestPremiumHandlerCropNotFound(t *testing.T) {
	handler := newTestHandler(models.ErrCropNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/premium?farmer_name=Ram&crop=Unknown&area_hectare=2.0", nil)
	rec := httptest.NewRecorder()

	handler.PremiumHandler(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", models.ErrInvalidInput, http.StatusBadRequest},
		{"crop not found", models.ErrCropNotFound, http.StatusNotFound},
		{"no insurer", models.ErrNoInsurerAvailable, http.StatusNotFound},
		{"fatal configuration", models.ErrFatalConfiguration, http.StatusInternalServerError},
		{"rendering", models.ErrRendering, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusForError(tt.err))
		})
	}
}
