package interfaces

import (
	"context"
	"time"

	"github.com/sasya-arogya/bima/internal/models"
)

// PolicyService assembles complete policy records from quote requests.
type PolicyService interface {
	// Build computes a full policy record: crop lookup, cheapest-insurer
	// selection against freshly randomized rates, premium split,
	// identifier and date generation.
	Build(ctx context.Context, req models.QuoteRequest, issueTime time.Time) (models.PolicyRecord, error)

	// Summarize computes the premium breakdown for a quote request
	// without assembling a certificate-ready record.
	Summarize(ctx context.Context, req models.QuoteRequest) (models.PremiumSummary, error)
}
