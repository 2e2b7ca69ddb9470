package models

// QuoteRequest carries the fields the policy builder actually consumes.
// All fields are validated using go-playground/validator tags.
type QuoteRequest struct {
	FarmerName  string  `json:"farmer_name" validate:"required"`
	State       string  `json:"state"`
	CropName    string  `json:"crop" validate:"required"`
	AreaHectare float64 `json:"area_hectare" validate:"required,gt=0"`

	// Split selects the premium split strategy. Empty means SplitSeasonBased.
	Split SplitPolicy `json:"split,omitempty" validate:"omitempty,oneof=season_based fixed_ratio"`
}

// SplitOrDefault returns the requested split policy, defaulting to
// SplitSeasonBased when unset.
func (r QuoteRequest) SplitOrDefault() SplitPolicy {
	if r.Split == "" {
		return SplitSeasonBased
	}
	return r.Split
}

// PremiumSummary is the JSON premium breakdown returned by the transport
// layer when the caller wants numbers rather than a certificate.
type PremiumSummary struct {
	CropName            string  `json:"crop"`
	Season              Season  `json:"season"`
	AreaHectare         float64 `json:"area_hectare"`
	InsurerName         string  `json:"insurance_company_name"`
	SumInsured          float64 `json:"sum_insured"`
	GrossPremium        float64 `json:"gross_premium"`
	PremiumPerHectare   float64 `json:"premium_per_hectare"`
	PremiumPaidByFarmer float64 `json:"premium_paid_by_farmer"`
	PremiumPaidByGovt   float64 `json:"premium_paid_by_govt"`
	FarmerSharePercent  float64 `json:"farmer_share_percent"`
}
