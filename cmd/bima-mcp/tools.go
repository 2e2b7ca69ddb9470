package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createPremiumQuoteTool returns the get_premium_quote tool definition
func createPremiumQuoteTool() mcp.Tool {
	return mcp.NewTool("get_premium_quote",
		mcp.WithDescription("Compute a crop-insurance premium quote: cheapest registered insurer, gross premium, and farmer/government split"),
		mcp.WithString("crop",
			mcp.Required(),
			mcp.Description("Crop name (case-insensitive, must exist in the crop reference table)"),
		),
		mcp.WithNumber("area_hectare",
			mcp.Required(),
			mcp.Description("Cultivated area in hectares (must be positive)"),
		),
		mcp.WithString("farmer_name",
			mcp.Required(),
			mcp.Description("Name of the farmer requesting the quote"),
		),
		mcp.WithString("state",
			mcp.Description("State where the farm is located (display only)"),
		),
	)
}

// createGenerateCertificateTool returns the generate_certificate tool definition
func createGenerateCertificateTool() mcp.Tool {
	return mcp.NewTool("generate_certificate",
		mcp.WithDescription("Compute a full policy record and render the PMFBY certificate as a base64-encoded PDF resource"),
		mcp.WithString("crop",
			mcp.Required(),
			mcp.Description("Crop name (case-insensitive, must exist in the crop reference table)"),
		),
		mcp.WithNumber("area_hectare",
			mcp.Required(),
			mcp.Description("Cultivated area in hectares (must be positive)"),
		),
		mcp.WithString("farmer_name",
			mcp.Required(),
			mcp.Description("Name of the farmer the policy is issued to"),
		),
		mcp.WithString("state",
			mcp.Description("State where the farm is located (display only)"),
		),
	)
}
