package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-mcp-api/internal/config"
)

type CreateResponsiveSearchAdInput struct {
	CustomerID      string   `json:"customer_id" jsonschema:"the customer account id, digits only"`
	AdGroupID       string   `json:"ad_group_id" jsonschema:"the ad group id, digits only"`
	Headlines       []string `json:"headlines" jsonschema:"headline text list"`
	Descriptions    []string `json:"descriptions" jsonschema:"description text list"`
	FinalURLs       []string `json:"final_urls" jsonschema:"final URL list"`
	LoginCustomerID string   `json:"login_customer_id,omitempty" jsonschema:"optional manager account id, digits only"`
}

func (in CreateResponsiveSearchAdInput) customer() string { return in.CustomerID }

type CreateResponsiveSearchAdResult struct {
	AdGroupAdResourceName string `json:"ad_group_ad_resource_name" jsonschema:"resource name of the created ad group ad"`
	AdID                  string `json:"ad_id" jsonschema:"id of the created ad"`
}

func (d *deps) createResponsiveSearchAd(ctx context.Context, _ *mcp.CallToolRequest, input CreateResponsiveSearchAdInput) (*mcp.CallToolResult, CreateResponsiveSearchAdResult, error) {
	if len(input.Headlines) == 0 {
		return nil, CreateResponsiveSearchAdResult{}, fmt.Errorf("headlines must not be empty")
	}
	if len(input.Descriptions) == 0 {
		return nil, CreateResponsiveSearchAdResult{}, fmt.Errorf("descriptions must not be empty")
	}
	if len(input.FinalURLs) == 0 {
		return nil, CreateResponsiveSearchAdResult{}, fmt.Errorf("final_urls must not be empty")
	}

	creation, err := d.integrator.CreateResponsiveSearchAd(ctx, googleads.CreateResponsiveSearchAdParams{
		CustomerID:      config.NormalizeCustomerID(input.CustomerID),
		AdGroupID:       input.AdGroupID,
		Headlines:       input.Headlines,
		Descriptions:    input.Descriptions,
		FinalURLs:       input.FinalURLs,
		LoginCustomerID: config.NormalizeCustomerID(input.LoginCustomerID),
	})
	if err != nil {
		return nil, CreateResponsiveSearchAdResult{}, err
	}

	return nil, CreateResponsiveSearchAdResult{
		AdGroupAdResourceName: creation.ResourceName,
		AdID:                  creation.AdID,
	}, nil
}

type UpdateAdStatusInput struct {
	CustomerID      string `json:"customer_id" jsonschema:"the customer account id, digits only"`
	AdID            string `json:"ad_id" jsonschema:"the ad id, digits only"`
	Status          string `json:"status" jsonschema:"ad group ad status enum name"`
	LoginCustomerID string `json:"login_customer_id,omitempty" jsonschema:"optional manager account id, digits only"`
}

func (in UpdateAdStatusInput) customer() string { return in.CustomerID }

type UpdateAdStatusResult struct {
	AdGroupAdResourceName string `json:"ad_group_ad_resource_name" jsonschema:"resource name of the updated ad group ad"`
	Status                string `json:"status" jsonschema:"the applied status"`
}

func (d *deps) updateAdStatus(ctx context.Context, _ *mcp.CallToolRequest, input UpdateAdStatusInput) (*mcp.CallToolResult, UpdateAdStatusResult, error) {
	if err := validateEnum(adGroupAdStatuses, input.Status, "status"); err != nil {
		return nil, UpdateAdStatusResult{}, err
	}

	resourceName, err := d.integrator.UpdateAdStatus(ctx,
		config.NormalizeCustomerID(input.CustomerID),
		input.AdID,
		input.Status,
		config.NormalizeCustomerID(input.LoginCustomerID),
	)
	if err != nil {
		return nil, UpdateAdStatusResult{}, err
	}

	return nil, UpdateAdStatusResult{
		AdGroupAdResourceName: resourceName,
		Status:                input.Status,
	}, nil
}

func registerAdTools(server *mcp.Server, d *deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_responsive_search_ad",
		Description: "Creates a responsive search ad in an ad group.",
	}, instrument(d, "create_responsive_search_ad", d.createResponsiveSearchAd))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_ad_status",
		Description: "Updates an ad status through its ad group ad record.",
	}, instrument(d, "update_ad_status", d.updateAdStatus))
}
