package interfaces

import (
	"context"

	"github.com/sasya-arogya/bima/internal/models"
)

// RefDataService loads the tabular reference data the engine computes from.
// Implementations re-read the sources on every call; returned slices are
// fresh copies the caller owns.
type RefDataService interface {
	// LoadCropRates loads and validates the crop reference table.
	LoadCropRates(ctx context.Context) ([]models.CropRate, error)

	// LoadInsurers loads the registered insurer table. When randomize is
	// true each returned insurer carries a fresh uniform rate multiplier
	// in [0.8, 1.2); the source is never written back.
	LoadInsurers(ctx context.Context, randomize bool) ([]models.Insurer, error)
}
