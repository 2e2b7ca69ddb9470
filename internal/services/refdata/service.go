package refdata

import (
	"context"
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/sasya-arogya/bima/internal/interfaces"
	"github.com/sasya-arogya/bima/internal/models"
)

// Column headers of the reference tables. Matching is exact on the
// trimmed header cell.
const (
	colCrop           = "Crop"
	colSeason         = "Season"
	colScaleOfFinance = "Scale of Finance (Rs/Hectare)"
	colActuarialRate  = "Actuarial Premium Rate (%)"

	colCompanyName    = "Company_Name"
	colAddress        = "Address"
	colState          = "State"
	colRateMultiplier = "Rate_Multiplier"
)

// Service implements interfaces.RefDataService over CSV sources.
// Sources are re-read on every call; there is no caching.
type Service struct {
	cropPath    string
	insurerPath string
	logger      arbor.ILogger
}

// Compile-time assertion
var _ interfaces.RefDataService = (*Service)(nil)

// NewService creates a new reference data service
func NewService(cropPath, insurerPath string, logger arbor.ILogger) *Service {
	return &Service{
		cropPath:    cropPath,
		insurerPath: insurerPath,
		logger:      logger,
	}
}

// LoadCropRates loads the crop reference table. Rows whose numeric columns
// fail coercion are dropped, never surfaced as crops.
func (s *Service) LoadCropRates(ctx context.Context) ([]models.CropRate, error) {
	header, rows, err := s.readTable(s.cropPath)
	if err != nil {
		return nil, err
	}

	idx, err := columnIndex(header, colCrop, colSeason, colScaleOfFinance, colActuarialRate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", s.cropPath, models.ErrFatalConfiguration, err)
	}

	crops := make([]models.CropRate, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		if len(row) < len(header) {
			dropped++
			continue
		}
		scale, errScale := parseNumeric(row[idx[colScaleOfFinance]])
		rate, errRate := parseNumeric(row[idx[colActuarialRate]])
		if errScale != nil || errRate != nil || scale < 0 || rate < 0 {
			dropped++
			continue
		}
		crops = append(crops, models.CropRate{
			Name:                 strings.TrimSpace(row[idx[colCrop]]),
			Season:               models.ParseSeason(row[idx[colSeason]]),
			ScaleOfFinance:       scale,
			ActuarialRatePercent: rate,
		})
	}

	if dropped > 0 {
		s.logger.Debug().
			Str("source", s.cropPath).
			Int("dropped", dropped).
			Msg("Dropped crop rows with non-numeric columns")
	}

	if len(crops) == 0 {
		return nil, fmt.Errorf("%s: %w: no usable crop rows", s.cropPath, models.ErrFatalConfiguration)
	}

	return crops, nil
}

// LoadInsurers loads the registered insurer table. When randomize is true,
// each returned insurer carries a fresh uniform multiplier in [0.8, 1.2).
// The returned slice is a per-call copy; nothing shared is mutated and the
// randomization is never persisted back to the source.
func (s *Service) LoadInsurers(ctx context.Context, randomize bool) ([]models.Insurer, error) {
	header, rows, err := s.readTable(s.insurerPath)
	if err != nil {
		return nil, err
	}

	idx, err := columnIndex(header, colCompanyName, colAddress, colState, colRateMultiplier)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", s.insurerPath, models.ErrFatalConfiguration, err)
	}

	insurers := make([]models.Insurer, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		if len(row) < len(header) {
			dropped++
			continue
		}
		multiplier, errMult := parseNumeric(row[idx[colRateMultiplier]])
		if errMult != nil || multiplier <= 0 {
			dropped++
			continue
		}
		if randomize {
			multiplier = models.MinRateMultiplier +
				rand.Float64()*(models.MaxRateMultiplier-models.MinRateMultiplier)
		}
		insurers = append(insurers, models.Insurer{
			CompanyName:    strings.TrimSpace(row[idx[colCompanyName]]),
			Address:        strings.TrimSpace(row[idx[colAddress]]),
			State:          strings.TrimSpace(row[idx[colState]]),
			RateMultiplier: multiplier,
		})
	}

	if dropped > 0 {
		s.logger.Debug().
			Str("source", s.insurerPath).
			Int("dropped", dropped).
			Msg("Dropped insurer rows with non-numeric multiplier")
	}

	if len(insurers) == 0 {
		return nil, fmt.Errorf("%s: %w: no usable insurer rows", s.insurerPath, models.ErrFatalConfiguration)
	}

	return insurers, nil
}

// readTable reads a CSV source and returns the header row and data rows.
// A missing or empty source is a startup-class configuration failure.
func (s *Service) readTable(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w: %v", path, models.ErrFatalConfiguration, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // ragged rows are dropped per-row, not fatal

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w: %v", path, models.ErrFatalConfiguration, err)
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("%s: %w: table is empty", path, models.ErrFatalConfiguration)
	}

	return records[0], records[1:], nil
}

// columnIndex maps required column names onto their positions in the header
func columnIndex(header []string, columns ...string) (map[string]int, error) {
	idx := make(map[string]int, len(columns))
	for i, cell := range header {
		idx[strings.TrimSpace(cell)] = i
	}
	for _, col := range columns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}
	return idx, nil
}

// parseNumeric coerces a cell to float64 the way the reference tables are
// cleaned: trimmed, empty or malformed cells fail.
func parseNumeric(cell string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(cell), 64)
}
