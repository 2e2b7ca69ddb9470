package main

import (
	"fmt"
	"strings"

	"github.com/sasya-arogya/bima/internal/models"
)

// formatPremiumSummary renders a premium breakdown as markdown
func formatPremiumSummary(s models.PremiumSummary) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Premium Quote: %s (%s)\n\n", s.CropName, s.Season))
	sb.WriteString(fmt.Sprintf("**Cheapest insurer:** %s\n\n", s.InsurerName))
	sb.WriteString("| Item | Amount |\n|------|--------|\n")
	sb.WriteString(fmt.Sprintf("| Area (hectares) | %.1f |\n", s.AreaHectare))
	sb.WriteString(fmt.Sprintf("| Sum insured | Rs. %.2f |\n", s.SumInsured))
	sb.WriteString(fmt.Sprintf("| Gross premium | Rs. %.2f |\n", s.GrossPremium))
	sb.WriteString(fmt.Sprintf("| Premium per hectare | Rs. %.2f |\n", s.PremiumPerHectare))
	sb.WriteString(fmt.Sprintf("| Farmer pays (%.2f%%) | Rs. %.2f |\n", s.FarmerSharePercent, s.PremiumPaidByFarmer))
	sb.WriteString(fmt.Sprintf("| Government subsidy | Rs. %.2f |\n", s.PremiumPaidByGovt))

	return sb.String()
}

// formatPolicyRecord renders the issued policy as markdown, with a pointer
// to the attached certificate resource
func formatPolicyRecord(record models.PolicyRecord, doc models.CertificateDocument) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Policy Issued: %s\n\n", record.PolicyID))
	sb.WriteString(fmt.Sprintf("**Farmer:** %s (%s)\n", record.FarmerName, record.FarmerID))
	sb.WriteString(fmt.Sprintf("**Insurer:** %s, %s\n", record.InsurerName, record.InsurerAddress))
	sb.WriteString(fmt.Sprintf("**Crop:** %s, %.1f hectares\n", record.CropDetails.Name, record.CropDetails.AreaHectare))
	sb.WriteString(fmt.Sprintf("**Enrollment cut-off:** %s\n\n", record.CutoffDate))
	sb.WriteString(fmt.Sprintf("| Farmer premium | Govt premium | Total sum insured |\n|---|---|---|\n| Rs. %.2f | Rs. %.2f | Rs. %.2f |\n\n",
		record.CropDetails.PremiumPaidByFarmer,
		record.CropDetails.PremiumPaidByGovt,
		record.CropDetails.TotalSumInsured))
	sb.WriteString(fmt.Sprintf("Certificate attached as %s (%s).\n", doc.Filename, doc.ContentType))

	return sb.String()
}
