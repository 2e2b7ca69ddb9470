package certificate

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/ternarybob/arbor"

	"github.com/sasya-arogya/bima/internal/interfaces"
	"github.com/sasya-arogya/bima/internal/models"
)

const (
	pageWidth  = 190.0 // A4 width minus margins
	labelWidth = 70.0
	lineHeight = 7.0
)

// Service implements interfaces.CertificateService using fpdf.
type Service struct {
	logoPath string
	logger   arbor.ILogger
}

// Compile-time assertion
var _ interfaces.CertificateService = (*Service)(nil)

// NewService creates a new certificate service. logoPath may point at a
// missing file; rendering degrades to a certificate without a logo.
func NewService(logoPath string, logger arbor.ILogger) *Service {
	return &Service{
		logoPath: logoPath,
		logger:   logger,
	}
}

// Render lays out the policy record as a paginated PDF certificate and
// returns the document bytes with content type and suggested filename.
func (s *Service) Render(policy models.PolicyRecord) (models.CertificateDocument, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	s.renderLogo(pdf)
	s.renderHeader(pdf, policy)
	s.renderIdentity(pdf, policy)
	s.renderOverview(pdf, policy)
	s.renderCropDetails(pdf, policy)
	s.renderTerms(pdf, policy)
	s.renderFooter(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.logger.Error().Err(err).Str("policy_id", policy.PolicyID).Msg("Failed to generate certificate PDF")
		return models.CertificateDocument{}, fmt.Errorf("%w: %v", models.ErrRendering, err)
	}

	doc := models.CertificateDocument{
		Data:        buf.Bytes(),
		ContentType: "application/pdf",
		Filename:    suggestedFilename(policy),
	}

	s.logger.Debug().
		Str("policy_id", policy.PolicyID).
		Str("filename", doc.Filename).
		Int("pdf_size", len(doc.Data)).
		Msg("Certificate generated")

	return doc, nil
}

// renderLogo places the scheme logo at the top of the page. A missing
// asset logs a warning and renders nothing; it never fails the document.
func (s *Service) renderLogo(pdf *fpdf.Fpdf) {
	if s.logoPath == "" {
		return
	}
	if _, err := os.Stat(s.logoPath); err != nil {
		s.logger.Warn().Str("logo", s.logoPath).Msg("Logo asset missing, rendering certificate without it")
		return
	}

	pdf.ImageOptions(s.logoPath, 90, 10, 28, 0, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
	pdf.SetY(42)
}

func (s *Service) renderHeader(pdf *fpdf.Fpdf, policy models.PolicyRecord) {
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(pageWidth, 8, "Government of India", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	title := "Pradhan Mantri Fasal Bima Yojana (PMFBY)"
	if year := policyYear(policy.PolicyID); year != "" {
		title = fmt.Sprintf("%s - %s", title, year)
	}
	pdf.CellFormat(pageWidth, 7, title, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(pageWidth, 6, "Crop Insurance Policy Certificate", "", 1, "C", false, 0, "")
	pdf.Ln(4)
}

func (s *Service) renderIdentity(pdf *fpdf.Fpdf, policy models.PolicyRecord) {
	insurer := policy.InsurerName
	if policy.InsurerAddress != "" {
		insurer = fmt.Sprintf("%s, %s", policy.InsurerName, policy.InsurerAddress)
	}

	rows := [][2]string{
		{"Policy ID", policy.PolicyID},
		{"Farmer Name", policy.FarmerName},
		{"Farmer ID", policy.FarmerID},
		{"Insurance Company", insurer},
	}
	if policy.State != "" {
		rows = append(rows, [2]string{"State", policy.State})
	}

	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(labelWidth, lineHeight, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(pageWidth-labelWidth, lineHeight, row[1], "1", "L", false)
	}
	pdf.Ln(4)
}

func (s *Service) renderOverview(pdf *fpdf.Fpdf, policy models.PolicyRecord) {
	s.sectionTitle(pdf, "Insurance Overview")

	rows := [][2]string{
		{"Sum Insured (per Hectare)", fmt.Sprintf("Rs. %.2f", policy.SumInsuredPerHectare)},
		{"Farmer Share (%)", fmt.Sprintf("%.2f", policy.FarmerSharePercent)},
		{"Actuarial Rate (%)", fmt.Sprintf("%.2f", policy.ActuarialRatePercent)},
		{"Cut-off Date", policy.CutoffDate},
	}

	for _, row := range rows {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(labelWidth, lineHeight, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(pageWidth-labelWidth, lineHeight, row[1], "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func (s *Service) renderCropDetails(pdf *fpdf.Fpdf, policy models.PolicyRecord) {
	s.sectionTitle(pdf, "Crop & Premium Details")

	headers := []string{"Crop", "Area (Ha)", "Farmer Premium", "Govt Premium", "Total Sum Insured"}
	widths := []float64{40, 25, 40, 40, 45}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range headers {
		pdf.CellFormat(widths[i], lineHeight, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(lineHeight)

	details := policy.CropDetails
	cells := []string{
		details.Name,
		fmt.Sprintf("%.1f", details.AreaHectare),
		fmt.Sprintf("Rs. %.2f", details.PremiumPaidByFarmer),
		fmt.Sprintf("Rs. %.2f", details.PremiumPaidByGovt),
		fmt.Sprintf("Rs. %.2f", details.TotalSumInsured),
	}

	pdf.SetFont("Arial", "", 9)
	for i, cell := range cells {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(widths[i], lineHeight, cell, "1", 0, align, false, 0, "")
	}
	pdf.Ln(lineHeight + 4)
}

func (s *Service) renderTerms(pdf *fpdf.Fpdf, policy models.PolicyRecord) {
	s.sectionTitle(pdf, "Terms & Conditions")

	pdf.SetFont("Arial", "", 9)
	for i, term := range policy.TermsAndConditions {
		pdf.MultiCell(pageWidth, 5.5, fmt.Sprintf("%d. %s", i+1, term), "", "L", false)
	}
	pdf.Ln(6)
}

func (s *Service) renderFooter(pdf *fpdf.Fpdf) {
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(pageWidth, 5,
		"This is a system-generated certificate and does not require a signature.",
		"", "C", false)
	pdf.SetTextColor(0, 0, 0)
}

func (s *Service) sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(pageWidth, 7, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

// policyYear extracts the year segment from a PMFBY-<year>-AG...K policy id
func policyYear(policyID string) string {
	parts := strings.Split(policyID, "-")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// suggestedFilename derives the download filename from the farmer name,
// falling back to the policy id.
func suggestedFilename(policy models.PolicyRecord) string {
	base := strings.TrimSpace(policy.FarmerName)
	if base == "" {
		base = policy.PolicyID
	}
	base = strings.ToLower(strings.Join(strings.Fields(base), "_"))
	return base + "_report.pdf"
}
