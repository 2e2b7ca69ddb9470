package server

import (
	"fmt"
	"net/http"

	"github.com/sasya-arogya/bima/internal/common"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// API routes - Insurance engine
	mux.HandleFunc("/api/insurance", s.app.InsuranceHandler.CertificateHandler) // GET - policy certificate (PDF)
	mux.HandleFunc("/api/premium", s.app.InsuranceHandler.PremiumHandler)       // GET - premium breakdown (JSON)

	// Health check
	mux.HandleFunc("/health", s.healthHandler)

	return mux
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"ok","version":%q}`, common.GetVersion())
}
