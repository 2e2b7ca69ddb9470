package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"

	"github.com/sasya-arogya/bima/internal/interfaces"
	"github.com/sasya-arogya/bima/internal/models"
)

// handlePremiumQuote implements the get_premium_quote tool
func handlePremiumQuote(policyService interfaces.PolicyService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		req, errResult := quoteRequestFromTool(request)
		if errResult != nil {
			return errResult, nil
		}

		summary, err := policyService.Summarize(ctx, req)
		if err != nil {
			logger.Error().Err(err).Str("crop", req.CropName).Msg("Premium summary failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Quote error: %v", err)),
				},
			}, nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(formatPremiumSummary(summary)),
			},
		}, nil
	}
}

// handleGenerateCertificate implements the generate_certificate tool
func handleGenerateCertificate(
	policyService interfaces.PolicyService,
	certificateService interfaces.CertificateService,
	logger arbor.ILogger,
) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		req, errResult := quoteRequestFromTool(request)
		if errResult != nil {
			return errResult, nil
		}

		record, err := policyService.Build(ctx, req, time.Now())
		if err != nil {
			logger.Error().Err(err).Str("crop", req.CropName).Msg("Policy build failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Policy error: %v", err)),
				},
			}, nil
		}

		doc, err := certificateService.Render(record)
		if err != nil {
			logger.Error().Err(err).Str("policy_id", record.PolicyID).Msg("Certificate render failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Certificate error: %v", err)),
				},
			}, nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(formatPolicyRecord(record, doc)),
				mcp.NewEmbeddedResource(mcp.BlobResourceContents{
					URI:      "bima://certificates/" + doc.Filename,
					MIMEType: doc.ContentType,
					Blob:     base64.StdEncoding.EncodeToString(doc.Data),
				}),
			},
		}, nil
	}
}

// quoteRequestFromTool maps tool-call arguments onto a QuoteRequest.
// Returns a non-nil error result when a required argument is missing.
func quoteRequestFromTool(request mcp.CallToolRequest) (models.QuoteRequest, *mcp.CallToolResult) {
	crop, err := request.RequireString("crop")
	if err != nil || crop == "" {
		return models.QuoteRequest{}, &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent("Error: crop parameter is required"),
			},
		}
	}

	farmerName, err := request.RequireString("farmer_name")
	if err != nil || farmerName == "" {
		return models.QuoteRequest{}, &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent("Error: farmer_name parameter is required"),
			},
		}
	}

	area := request.GetFloat("area_hectare", 0)
	if area == 0 {
		return models.QuoteRequest{}, &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent("Error: area_hectare parameter is required and must be a positive number"),
			},
		}
	}

	return models.QuoteRequest{
		FarmerName:  farmerName,
		State:       request.GetString("state", ""),
		CropName:    crop,
		AreaHectare: area,
	}, nil
}
