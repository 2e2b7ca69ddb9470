package app

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/sasya-arogya/bima/internal/common"
	"github.com/sasya-arogya/bima/internal/handlers"
	"github.com/sasya-arogya/bima/internal/interfaces"
	"github.com/sasya-arogya/bima/internal/services/certificate"
	"github.com/sasya-arogya/bima/internal/services/policy"
	"github.com/sasya-arogya/bima/internal/services/refdata"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Engine services
	RefDataService     interfaces.RefDataService
	PolicyService      interfaces.PolicyService
	CertificateService interfaces.CertificateService

	// HTTP handlers
	InsuranceHandler *handlers.InsuranceHandler
}

// New wires the engine services and handlers together
func New(config *common.Config, logger arbor.ILogger) (*App, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}

	refDataService := refdata.NewService(config.Resources.CropData, config.Resources.InsurerData, logger)
	policyService := policy.NewService(refDataService, logger)
	certificateService := certificate.NewService(config.Resources.Logo, logger)

	a := &App{
		Config:             config,
		Logger:             logger,
		RefDataService:     refDataService,
		PolicyService:      policyService,
		CertificateService: certificateService,
	}

	a.InsuranceHandler = handlers.NewInsuranceHandler(policyService, certificateService, logger)

	return a, nil
}

// WarmUp probes both reference data sources once so that a missing or
// empty source aborts startup instead of failing the first request.
func (a *App) WarmUp(ctx context.Context) error {
	crops, err := a.RefDataService.LoadCropRates(ctx)
	if err != nil {
		return err
	}

	insurers, err := a.RefDataService.LoadInsurers(ctx, false)
	if err != nil {
		return err
	}

	a.Logger.Info().
		Int("crops", len(crops)).
		Int("insurers", len(insurers)).
		Msg("Reference data sources verified")

	return nil
}
