package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	arbor_models "github.com/ternarybob/arbor/models"

	"github.com/sasya-arogya/bima/internal/common"
	"github.com/sasya-arogya/bima/internal/services/certificate"
	"github.com/sasya-arogya/bima/internal/services/policy"
	"github.com/sasya-arogya/bima/internal/services/refdata"
)

func main() {
	configPath := os.Getenv("BIMA_CONFIG")
	if configPath == "" {
		configPath = "bima.toml"
	}
	if _, err := os.Stat(configPath); err != nil && os.Getenv("BIMA_CONFIG") == "" {
		// Fall back to defaults when no config file is present
		configPath = ""
	}

	config, err := common.LoadFromFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Minimal logging to avoid cluttering MCP stdio
	logger := arbor.NewLogger().WithConsoleWriter(arbor_models.WriterConfiguration{
		Type:             arbor_models.LogWriterTypeConsole,
		TimeFormat:       "15:04:05",
		DisableTimestamp: false,
	}).WithLevelFromString("warn")

	refDataService := refdata.NewService(config.Resources.CropData, config.Resources.InsurerData, logger)
	policyService := policy.NewService(refDataService, logger)
	certificateService := certificate.NewService(config.Resources.Logo, logger)

	mcpServer := server.NewMCPServer(
		"bima",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(createPremiumQuoteTool(), handlePremiumQuote(policyService, logger))
	mcpServer.AddTool(createGenerateCertificateTool(), handleGenerateCertificate(policyService, certificateService, logger))

	// Start server (blocks on stdio)
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}
