package premium

import (
	"fmt"
	"math"

	"github.com/sasya-arogya/bima/internal/models"
)

// FixedRatioFarmerShare is the farmer's fraction of the gross premium
// under the historical fixed split (remainder is government subsidy).
const FixedRatioFarmerShare = 0.10

// Quote holds the computed amounts for one (crop, area, multiplier) triple.
type Quote struct {
	SumInsured        float64
	GrossPremium      float64
	PremiumPerHectare float64
}

// Compute calculates the sum insured and premium amounts for a crop and
// cultivated area using one insurer's rate multiplier.
func Compute(crop models.CropRate, areaHectare, rateMultiplier float64) (Quote, error) {
	if areaHectare <= 0 {
		return Quote{}, fmt.Errorf("area must be a positive number: %w", models.ErrInvalidInput)
	}

	sumInsured := crop.ScaleOfFinance * areaHectare
	grossPremium := sumInsured * (crop.ActuarialRatePercent / 100) * rateMultiplier

	return Quote{
		SumInsured:        sumInsured,
		GrossPremium:      grossPremium,
		PremiumPerHectare: grossPremium / areaHectare,
	}, nil
}

// Split divides a gross premium between farmer and government according to
// the selected policy. The government share is the remainder, so the two
// parts always sum to the gross premium.
func Split(grossPremium float64, season models.Season, policy models.SplitPolicy) (farmer, govt float64) {
	fraction := season.FarmerShareFraction()
	if policy == models.SplitFixedRatio {
		fraction = FixedRatioFarmerShare
	}
	farmer = grossPremium * fraction
	govt = grossPremium - farmer
	return farmer, govt
}

// Round2 rounds a monetary amount to 2 decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
