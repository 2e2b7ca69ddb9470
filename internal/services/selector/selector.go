package selector

import (
	"fmt"
	"strings"

	"github.com/sasya-arogya/bima/internal/models"
	"github.com/sasya-arogya/bima/internal/services/premium"
)

// FindCrop looks up a crop rate by name, case-insensitive exact match.
func FindCrop(crops []models.CropRate, name string) (models.CropRate, error) {
	for _, crop := range crops {
		if strings.EqualFold(crop.Name, strings.TrimSpace(name)) {
			return crop, nil
		}
	}
	return models.CropRate{}, fmt.Errorf("crop %q: %w", name, models.ErrCropNotFound)
}

// SelectCheapest evaluates every registered insurer for the given crop and
// area and returns the one quoting the lowest gross premium, together with
// that premium. The comparison is strict less-than, so an exact tie is won
// by the insurer appearing earlier in the table's load order.
func SelectCheapest(crop models.CropRate, areaHectare float64, insurers []models.Insurer) (models.Insurer, float64, error) {
	if len(insurers) == 0 {
		return models.Insurer{}, 0, models.ErrNoInsurerAvailable
	}

	var best models.Insurer
	found := false
	lowest := 0.0

	for _, insurer := range insurers {
		quote, err := premium.Compute(crop, areaHectare, insurer.RateMultiplier)
		if err != nil {
			return models.Insurer{}, 0, err
		}
		if !found || quote.GrossPremium < lowest {
			best = insurer
			lowest = quote.GrossPremium
			found = true
		}
	}

	return best, lowest, nil
}
