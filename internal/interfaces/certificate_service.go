package interfaces

import (
	"github.com/sasya-arogya/bima/internal/models"
)

// CertificateService renders policy records into deliverable documents.
type CertificateService interface {
	// Render lays out the policy record as a PDF certificate. Rendering
	// is a pure function of the record plus the static logo asset.
	Render(policy models.PolicyRecord) (models.CertificateDocument, error)
}
