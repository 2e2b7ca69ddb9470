package premium

import (
	"errors"
	"math"
	"testing"

	"github.com/sasya-arogya/bima/internal/models"
)

const tolerance = 1e-6

func TestCompute(t *testing.T) {
	tests := []struct {
		name           string
		scale          float64
		ratePercent    float64
		area           float64
		multiplier     float64
		wantSumInsured float64
		wantGross      float64
		wantErr        bool
	}{
		{
			name:           "wheat example",
			scale:          50000,
			ratePercent:    3.5,
			area:           2.0,
			multiplier:     0.9,
			wantSumInsured: 100000,
			wantGross:      3150,
		},
		{
			name:           "unit multiplier",
			scale:          60000,
			ratePercent:    4.0,
			area:           1.5,
			multiplier:     1.0,
			wantSumInsured: 90000,
			wantGross:      3600,
		},
		{
			name:           "fractional area",
			scale:          45000,
			ratePercent:    3.0,
			area:           0.25,
			multiplier:     1.2,
			wantSumInsured: 11250,
			wantGross:      405,
		},
		{
			name:        "zero area fails",
			scale:       50000,
			ratePercent: 3.5,
			area:        0,
			wantErr:     true,
		},
		{
			name:        "negative area fails",
			scale:       50000,
			ratePercent: 3.5,
			area:        -1,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crop := models.CropRate{
				Name:                 "Test",
				Season:               models.SeasonRabi,
				ScaleOfFinance:       tt.scale,
				ActuarialRatePercent: tt.ratePercent,
			}

			quote, err := Compute(crop, tt.area, tt.multiplier)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Compute() expected error, got none")
				}
				if !errors.Is(err, models.ErrInvalidInput) {
					t.Errorf("Compute() error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Compute() unexpected error: %v", err)
			}

			if math.Abs(quote.SumInsured-tt.wantSumInsured) > tolerance {
				t.Errorf("SumInsured = %f, want %f", quote.SumInsured, tt.wantSumInsured)
			}
			if math.Abs(quote.GrossPremium-tt.wantGross) > tolerance {
				t.Errorf("GrossPremium = %f, want %f", quote.GrossPremium, tt.wantGross)
			}
			wantPerHectare := tt.wantGross / tt.area
			if math.Abs(quote.PremiumPerHectare-wantPerHectare) > tolerance {
				t.Errorf("PremiumPerHectare = %f, want %f", quote.PremiumPerHectare, wantPerHectare)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		gross      float64
		season     models.Season
		policy     models.SplitPolicy
		wantFarmer float64
	}{
		{"rabi season based", 3150, models.SeasonRabi, models.SplitSeasonBased, 47.25},
		{"kharif season based", 1000, models.SeasonKharif, models.SplitSeasonBased, 20},
		{"horticulture season based", 1000, models.SeasonHorticulture, models.SplitSeasonBased, 50},
		{"other season based", 1000, models.SeasonOther, models.SplitSeasonBased, 20},
		{"fixed ratio ignores season", 1000, models.SeasonHorticulture, models.SplitFixedRatio, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			farmer, govt := Split(tt.gross, tt.season, tt.policy)
			if math.Abs(farmer-tt.wantFarmer) > tolerance {
				t.Errorf("farmer share = %f, want %f", farmer, tt.wantFarmer)
			}
			// The split must always reconstruct the gross premium
			if math.Abs(farmer+govt-tt.gross) > 0.01 {
				t.Errorf("farmer+govt = %f, want %f", farmer+govt, tt.gross)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"round down", 47.254, 47.25},
		{"round up", 3102.746, 3102.75},
		{"already exact", 100.00, 100.00},
		{"half rounds away", 0.005, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round2(tt.in); math.Abs(got-tt.want) > tolerance {
				t.Errorf("Round2(%f) = %f, want %f", tt.in, got, tt.want)
			}
		})
	}
}
