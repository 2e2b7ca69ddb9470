package models

import "strings"

// Season represents the cropping season a crop rate row belongs to.
// The season drives the farmer's share of the gross premium.
type Season string

const (
	SeasonKharif       Season = "Kharif"
	SeasonRabi         Season = "Rabi"
	SeasonHorticulture Season = "Horticulture"
	SeasonOther        Season = "Other"
)

// ParseSeason maps a raw season cell onto a known Season.
// Unrecognized values fold into SeasonOther rather than failing the row.
func ParseSeason(s string) Season {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kharif":
		return SeasonKharif
	case "rabi":
		return SeasonRabi
	case "horticulture":
		return SeasonHorticulture
	default:
		return SeasonOther
	}
}

// IsValid checks if the Season is a known, valid value
func (s Season) IsValid() bool {
	switch s {
	case SeasonKharif, SeasonRabi, SeasonHorticulture, SeasonOther:
		return true
	}
	return false
}

// FarmerShareFraction returns the fraction of the gross premium borne by
// the farmer for this season. The remainder is government subsidy.
func (s Season) FarmerShareFraction() float64 {
	switch s {
	case SeasonKharif:
		return 0.02
	case SeasonRabi:
		return 0.015
	case SeasonHorticulture:
		return 0.05
	default:
		return 0.02
	}
}

// CropRate is one row of the crop reference table: the per-hectare sum
// insured baseline and the insurer-independent base premium rate.
type CropRate struct {
	Name                 string  `json:"name"`
	Season               Season  `json:"season"`
	ScaleOfFinance       float64 `json:"scale_of_finance"`       // Rs per hectare
	ActuarialRatePercent float64 `json:"actuarial_rate_percent"` // percent, e.g. 3.5
}
