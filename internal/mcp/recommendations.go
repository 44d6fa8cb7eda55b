package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-mcp-api/internal/config"
)

type GetRecommendationsInput struct {
	CustomerID          string   `json:"customer_id" jsonschema:"the customer account id, digits only"`
	RecommendationTypes []string `json:"recommendation_types,omitempty" jsonschema:"optional recommendation type enum names to filter by"`
	LoginCustomerID     string   `json:"login_customer_id,omitempty" jsonschema:"optional manager account id, digits only"`
}

func (in GetRecommendationsInput) customer() string { return in.CustomerID }

type GetRecommendationsResult struct {
	Recommendations []googleads.Recommendation `json:"recommendations" jsonschema:"recommendation records"`
}

func (d *deps) getRecommendations(ctx context.Context, _ *mcp.CallToolRequest, input GetRecommendationsInput) (*mcp.CallToolResult, GetRecommendationsResult, error) {
	recommendations, err := d.integrator.GetRecommendations(ctx,
		config.NormalizeCustomerID(input.CustomerID),
		input.RecommendationTypes,
		config.NormalizeCustomerID(input.LoginCustomerID),
	)
	if err != nil {
		return nil, GetRecommendationsResult{}, err
	}

	return nil, GetRecommendationsResult{Recommendations: recommendations}, nil
}

type ApplyRecommendationInput struct {
	CustomerID       string `json:"customer_id" jsonschema:"the customer account id, digits only"`
	RecommendationID string `json:"recommendation_id" jsonschema:"the recommendation id, digits only"`
	LoginCustomerID  string `json:"login_customer_id,omitempty" jsonschema:"optional manager account id, digits only"`
}

func (in ApplyRecommendationInput) customer() string { return in.CustomerID }

type ApplyRecommendationResult struct {
	ResourceName     string `json:"resource_name" jsonschema:"resource name of the applied recommendation"`
	RecommendationID string `json:"recommendation_id" jsonschema:"the recommendation id"`
}

func (d *deps) applyRecommendation(ctx context.Context, _ *mcp.CallToolRequest, input ApplyRecommendationInput) (*mcp.CallToolResult, ApplyRecommendationResult, error) {
	resourceName, err := d.integrator.ApplyRecommendation(ctx,
		config.NormalizeCustomerID(input.CustomerID),
		input.RecommendationID,
		config.NormalizeCustomerID(input.LoginCustomerID),
	)
	if err != nil {
		return nil, ApplyRecommendationResult{}, err
	}

	return nil, ApplyRecommendationResult{
		ResourceName:     resourceName,
		RecommendationID: input.RecommendationID,
	}, nil
}

type DismissRecommendationInput struct {
	CustomerID       string `json:"customer_id" jsonschema:"the customer account id, digits only"`
	RecommendationID string `json:"recommendation_id" jsonschema:"the recommendation id, digits only"`
	LoginCustomerID  string `json:"login_customer_id,omitempty" jsonschema:"optional manager account id, digits only"`
}

func (in DismissRecommendationInput) customer() string { return in.CustomerID }

type DismissRecommendationResult struct {
	ResourceName     string `json:"resource_name" jsonschema:"resource name of the dismissed recommendation"`
	RecommendationID string `json:"recommendation_id" jsonschema:"the recommendation id"`
}

func (d *deps) dismissRecommendation(ctx context.Context, _ *mcp.CallToolRequest, input DismissRecommendationInput) (*mcp.CallToolResult, DismissRecommendationResult, error) {
	resourceName, err := d.integrator.DismissRecommendation(ctx,
		config.NormalizeCustomerID(input.CustomerID),
		input.RecommendationID,
		config.NormalizeCustomerID(input.LoginCustomerID),
	)
	if err != nil {
		return nil, DismissRecommendationResult{}, err
	}

	return nil, DismissRecommendationResult{
		ResourceName:     resourceName,
		RecommendationID: input.RecommendationID,
	}, nil
}

func registerRecommendationTools(server *mcp.Server, d *deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_recommendations",
		Description: "Gets optimization recommendations for a customer.",
	}, instrument(d, "get_recommendations", d.getRecommendations))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "apply_recommendation",
		Description: "Applies a recommendation by ID.",
	}, instrument(d, "apply_recommendation", d.applyRecommendation))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "dismiss_recommendation",
		Description: "Dismisses a recommendation by ID.",
	}, instrument(d, "dismiss_recommendation", d.dismissRecommendation))
}
