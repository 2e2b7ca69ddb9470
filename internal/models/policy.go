package models

// SplitPolicy selects how the gross premium is divided between the farmer
// and the government subsidy. Callers choose explicitly; there is no
// implicit fallback between strategies.
type SplitPolicy string

const (
	// SplitSeasonBased applies the season-dependent farmer share
	// (Kharif 2%, Rabi 1.5%, Horticulture 5%).
	SplitSeasonBased SplitPolicy = "season_based"

	// SplitFixedRatio applies the historical fixed 10% farmer / 90%
	// government split regardless of season.
	SplitFixedRatio SplitPolicy = "fixed_ratio"
)

// IsValid checks if the SplitPolicy is a known, valid value
func (p SplitPolicy) IsValid() bool {
	switch p {
	case SplitSeasonBased, SplitFixedRatio:
		return true
	}
	return false
}

// CropDetails carries the per-crop computed amounts shown on the
// certificate. Monetary values are rounded to 2 decimals at build time.
type CropDetails struct {
	Name                string  `json:"name"`
	AreaHectare         float64 `json:"area_hectare"`
	PremiumPaidByFarmer float64 `json:"premium_paid_by_farmer"`
	PremiumPaidByGovt   float64 `json:"premium_paid_by_govt"`
	TotalSumInsured     float64 `json:"total_sum_insured"`
}

// PolicyRecord is the complete quoted policy. It is assembled once by the
// policy builder and immutable afterwards; the certificate renderer is a
// pure function of this record.
type PolicyRecord struct {
	PolicyID             string      `json:"policy_id"` // PMFBY-<year>-AG<4 digits>K
	FarmerName           string      `json:"farmer_name"`
	FarmerID             string      `json:"farmer_id"` // FKID-<9 digits>
	State                string      `json:"state"`
	InsurerName          string      `json:"insurance_company_name"`
	InsurerAddress       string      `json:"company_address"`
	SumInsuredPerHectare float64     `json:"sum_insured_per_hectare"`
	FarmerSharePercent   float64     `json:"farmer_share_percent"`
	ActuarialRatePercent float64     `json:"actuarial_rate_percent"`
	CutoffDate           string      `json:"cut_off_date"` // DD-MM-YYYY, issue + 45 days
	CropDetails          CropDetails `json:"crop_details"`
	TermsAndConditions   []string    `json:"terms_and_conditions"`
}

// CertificateDocument is the rendered certificate: raw bytes plus the
// metadata the transport layer needs to deliver it.
type CertificateDocument struct {
	Data        []byte `json:"-"`
	ContentType string `json:"content_type"`
	Filename    string `json:"filename"`
}
