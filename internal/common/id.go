package common

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// NewPolicyID generates a policy identifier for the given issue time.
// Format: PMFBY-<year>-AG<4 digits>K. Demo-grade: not globally unique,
// collisions are accepted by design.
func NewPolicyID(issueTime time.Time) string {
	return fmt.Sprintf("PMFBY-%d-AG%dK", issueTime.Year(), 1000+rand.IntN(9000))
}

// NewFarmerID generates a farmer identifier.
// Format: FKID-<9 digits>.
func NewFarmerID() string {
	return fmt.Sprintf("FKID-%d", 100000000+rand.IntN(900000000))
}

// NewRequestID generates a unique request ID with the "req_" prefix
// Format: req_<uuid>
func NewRequestID() string {
	return "req_" + uuid.New().String()
}
