package selector

import (
	"errors"
	"math"
	"testing"

	"github.com/sasya-arogya/bima/internal/models"
)

var wheat = models.CropRate{
	Name:                 "Wheat",
	Season:               models.SeasonRabi,
	ScaleOfFinance:       50000,
	ActuarialRatePercent: 3.5,
}

func TestFindCrop(t *testing.T) {
	crops := []models.CropRate{
		wheat,
		{Name: "Rice", Season: models.SeasonKharif, ScaleOfFinance: 60000, ActuarialRatePercent: 4.0},
	}

	tests := []struct {
		name     string
		lookup   string
		wantName string
		wantErr  bool
	}{
		{"exact match", "Wheat", "Wheat", false},
		{"case insensitive", "wHeAt", "Wheat", false},
		{"padded input", "  rice ", "Rice", false},
		{"unknown crop", "Unknown", "", true},
		{"empty name", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crop, err := FindCrop(crops, tt.lookup)
			if tt.wantErr {
				if err == nil {
					t.Fatal("FindCrop() expected error, got none")
				}
				if !errors.Is(err, models.ErrCropNotFound) {
					t.Errorf("FindCrop() error = %v, want ErrCropNotFound", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindCrop() unexpected error: %v", err)
			}
			if crop.Name != tt.wantName {
				t.Errorf("FindCrop() = %q, want %q", crop.Name, tt.wantName)
			}
		})
	}
}

func TestSelectCheapest(t *testing.T) {
	insurers := []models.Insurer{
		{CompanyName: "A", RateMultiplier: 1.0},
		{CompanyName: "B", RateMultiplier: 0.9},
		{CompanyName: "C", RateMultiplier: 1.1},
	}

	best, gross, err := SelectCheapest(wheat, 2.0, insurers)
	if err != nil {
		t.Fatalf("SelectCheapest() unexpected error: %v", err)
	}
	if best.CompanyName != "B" {
		t.Errorf("SelectCheapest() picked %q, want B", best.CompanyName)
	}
	// 50000 * 2 * 0.035 * 0.9
	if math.Abs(gross-3150) > 1e-6 {
		t.Errorf("gross premium = %f, want 3150", gross)
	}
}

func TestSelectCheapestTieBreaksFirst(t *testing.T) {
	insurers := []models.Insurer{
		{CompanyName: "First", RateMultiplier: 0.9},
		{CompanyName: "Second", RateMultiplier: 0.9},
		{CompanyName: "Third", RateMultiplier: 1.0},
	}

	best, _, err := SelectCheapest(wheat, 1.0, insurers)
	if err != nil {
		t.Fatalf("SelectCheapest() unexpected error: %v", err)
	}
	if best.CompanyName != "First" {
		t.Errorf("tie broken in favor of %q, want First (table load order)", best.CompanyName)
	}
}

func TestSelectCheapestEmptyTable(t *testing.T) {
	_, _, err := SelectCheapest(wheat, 1.0, nil)
	if !errors.Is(err, models.ErrNoInsurerAvailable) {
		t.Errorf("SelectCheapest() error = %v, want ErrNoInsurerAvailable", err)
	}
}

func TestSelectCheapestInvalidArea(t *testing.T) {
	insurers := []models.Insurer{{CompanyName: "A", RateMultiplier: 1.0}}
	_, _, err := SelectCheapest(wheat, 0, insurers)
	if !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("SelectCheapest() error = %v, want ErrInvalidInput", err)
	}
}
