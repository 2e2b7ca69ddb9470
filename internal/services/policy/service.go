package policy

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"

	"github.com/sasya-arogya/bima/internal/common"
	"github.com/sasya-arogya/bima/internal/interfaces"
	"github.com/sasya-arogya/bima/internal/models"
	"github.com/sasya-arogya/bima/internal/services/premium"
	"github.com/sasya-arogya/bima/internal/services/selector"
)

// cutoffDays is the enrollment window: the cutoff date is fixed at this
// many calendar days after issuance.
const cutoffDays = 45

// termsAndConditions is the fixed legal boilerplate printed on every
// certificate. Static content, not parameterized.
var termsAndConditions = []string{
	"The policy is valid for one year from the date of issuance.",
	"Claims must be reported within 30 days of the incident.",
	"The insured must follow recommended agricultural practices.",
	"The insurer reserves the right to inspect the farm before claim settlement.",
}

// Service implements interfaces.PolicyService
type Service struct {
	refData  interfaces.RefDataService
	validate *validator.Validate
	logger   arbor.ILogger
}

// Compile-time assertion
var _ interfaces.PolicyService = (*Service)(nil)

// NewService creates a new policy service
func NewService(refData interfaces.RefDataService, logger arbor.ILogger) *Service {
	return &Service{
		refData:  refData,
		validate: validator.New(),
		logger:   logger,
	}
}

// Build assembles a complete policy record for the quote request. Insurer
// rates are freshly randomized per call to simulate live market rates at
// quote time; the record is immutable once returned.
func (s *Service) Build(ctx context.Context, req models.QuoteRequest, issueTime time.Time) (models.PolicyRecord, error) {
	crop, insurer, quote, err := s.evaluate(ctx, req)
	if err != nil {
		return models.PolicyRecord{}, err
	}

	farmerShare, govtShare := premium.Split(quote.GrossPremium, crop.Season, req.SplitOrDefault())

	fraction := crop.Season.FarmerShareFraction()
	if req.SplitOrDefault() == models.SplitFixedRatio {
		fraction = premium.FixedRatioFarmerShare
	}

	record := models.PolicyRecord{
		PolicyID:             common.NewPolicyID(issueTime),
		FarmerName:           titleCase(req.FarmerName),
		FarmerID:             common.NewFarmerID(),
		State:                strings.TrimSpace(req.State),
		InsurerName:          insurer.CompanyName,
		InsurerAddress:       insurer.Address,
		SumInsuredPerHectare: crop.ScaleOfFinance,
		FarmerSharePercent:   fraction * 100,
		ActuarialRatePercent: crop.ActuarialRatePercent,
		CutoffDate:           issueTime.AddDate(0, 0, cutoffDays).Format("02-01-2006"),
		CropDetails: models.CropDetails{
			Name:                crop.Name,
			AreaHectare:         req.AreaHectare,
			PremiumPaidByFarmer: premium.Round2(farmerShare),
			PremiumPaidByGovt:   premium.Round2(govtShare),
			TotalSumInsured:     premium.Round2(quote.SumInsured),
		},
		TermsAndConditions: termsAndConditions,
	}

	s.logger.Info().
		Str("policy_id", record.PolicyID).
		Str("crop", crop.Name).
		Str("insurer", insurer.CompanyName).
		Str("gross_premium", fmt.Sprintf("%.2f", quote.GrossPremium)).
		Msg("Policy record built")

	return record, nil
}

// Summarize computes the premium breakdown without assembling a full
// certificate-ready record.
func (s *Service) Summarize(ctx context.Context, req models.QuoteRequest) (models.PremiumSummary, error) {
	crop, insurer, quote, err := s.evaluate(ctx, req)
	if err != nil {
		return models.PremiumSummary{}, err
	}

	farmerShare, govtShare := premium.Split(quote.GrossPremium, crop.Season, req.SplitOrDefault())

	fraction := crop.Season.FarmerShareFraction()
	if req.SplitOrDefault() == models.SplitFixedRatio {
		fraction = premium.FixedRatioFarmerShare
	}

	return models.PremiumSummary{
		CropName:            crop.Name,
		Season:              crop.Season,
		AreaHectare:         req.AreaHectare,
		InsurerName:         insurer.CompanyName,
		SumInsured:          premium.Round2(quote.SumInsured),
		GrossPremium:        premium.Round2(quote.GrossPremium),
		PremiumPerHectare:   premium.Round2(quote.PremiumPerHectare),
		PremiumPaidByFarmer: premium.Round2(farmerShare),
		PremiumPaidByGovt:   premium.Round2(govtShare),
		FarmerSharePercent:  fraction * 100,
	}, nil
}

// evaluate runs the shared quote pipeline: validate the request, load
// reference data, find the crop, select the cheapest insurer.
func (s *Service) evaluate(ctx context.Context, req models.QuoteRequest) (models.CropRate, models.Insurer, premium.Quote, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.CropRate{}, models.Insurer{}, premium.Quote{}, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	crops, err := s.refData.LoadCropRates(ctx)
	if err != nil {
		return models.CropRate{}, models.Insurer{}, premium.Quote{}, err
	}

	// Fresh randomized multipliers per request: live market rates at quote time
	insurers, err := s.refData.LoadInsurers(ctx, true)
	if err != nil {
		return models.CropRate{}, models.Insurer{}, premium.Quote{}, err
	}

	crop, err := selector.FindCrop(crops, req.CropName)
	if err != nil {
		return models.CropRate{}, models.Insurer{}, premium.Quote{}, err
	}

	insurer, _, err := selector.SelectCheapest(crop, req.AreaHectare, insurers)
	if err != nil {
		return models.CropRate{}, models.Insurer{}, premium.Quote{}, err
	}

	quote, err := premium.Compute(crop, req.AreaHectare, insurer.RateMultiplier)
	if err != nil {
		return models.CropRate{}, models.Insurer{}, premium.Quote{}, err
	}

	return crop, insurer, quote, nil
}

// titleCase uppercases the first letter of each space-separated word,
// lowercasing the rest, for display on the certificate.
func titleCase(name string) string {
	words := strings.Fields(strings.TrimSpace(name))
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
