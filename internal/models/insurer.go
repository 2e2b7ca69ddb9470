package models

// Multiplier bounds used when insurer rates are re-randomized to simulate
// daily market variation.
const (
	MinRateMultiplier = 0.8
	MaxRateMultiplier = 1.2
)

// Insurer is one row of the registered insurer table. RateMultiplier scales
// the actuarial premium to this insurer's quoted gross premium.
type Insurer struct {
	CompanyName    string  `json:"company_name"`
	Address        string  `json:"address"`
	State          string  `json:"state"`
	RateMultiplier float64 `json:"rate_multiplier"`
}
