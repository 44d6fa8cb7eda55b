package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-mcp-api/internal/config"
)

type CreateAdGroupInput struct {
	CustomerID      string `json:"customer_id" jsonschema:"the customer account id, digits only"`
	CampaignID      string `json:"campaign_id" jsonschema:"the campaign id, digits only"`
	Name            string `json:"name" jsonschema:"the ad group name"`
	CpcBidMicros    int64  `json:"cpc_bid_micros,omitempty" jsonschema:"optional CPC bid in micros"`
	Status          string `json:"status,omitempty" jsonschema:"ad group status enum name, defaults to ENABLED"`
	LoginCustomerID string `json:"login_customer_id,omitempty" jsonschema:"optional manager account id, digits only"`
}

func (in CreateAdGroupInput) customer() string { return in.CustomerID }

type CreateAdGroupResult struct {
	AdGroupResourceName string `json:"ad_group_resource_name" jsonschema:"resource name of the created ad group"`
	AdGroupID           string `json:"ad_group_id" jsonschema:"id of the created ad group"`
}

func (d *deps) createAdGroup(ctx context.Context, _ *mcp.CallToolRequest, input CreateAdGroupInput) (*mcp.CallToolResult, CreateAdGroupResult, error) {
	status := input.Status
	if status == "" {
		status = "ENABLED"
	}
	if err := validateEnum(adGroupStatuses, status, "status"); err != nil {
		return nil, CreateAdGroupResult{}, err
	}

	creation, err := d.integrator.CreateAdGroup(ctx, googleads.CreateAdGroupParams{
		CustomerID:      config.NormalizeCustomerID(input.CustomerID),
		CampaignID:      input.CampaignID,
		Name:            input.Name,
		Status:          status,
		CpcBidMicros:    input.CpcBidMicros,
		LoginCustomerID: config.NormalizeCustomerID(input.LoginCustomerID),
	})
	if err != nil {
		return nil, CreateAdGroupResult{}, err
	}

	return nil, CreateAdGroupResult{
		AdGroupResourceName: creation.ResourceName,
		AdGroupID:           creation.AdGroupID,
	}, nil
}

type UpdateAdGroupInput struct {
	CustomerID      string `json:"customer_id" jsonschema:"the customer account id, digits only"`
	AdGroupID       string `json:"ad_group_id" jsonschema:"the ad group id, digits only"`
	Status          string `json:"status,omitempty" jsonschema:"optional ad group status enum name"`
	Name            string `json:"name,omitempty" jsonschema:"optional ad group name"`
	CpcBidMicros    *int64 `json:"cpc_bid_micros,omitempty" jsonschema:"optional CPC bid in micros"`
	LoginCustomerID string `json:"login_customer_id,omitempty" jsonschema:"optional manager account id, digits only"`
}

func (in UpdateAdGroupInput) customer() string { return in.CustomerID }

type UpdateAdGroupResult struct {
	AdGroupResourceName string `json:"ad_group_resource_name" jsonschema:"resource name of the updated ad group"`
	AdGroupID           string `json:"ad_group_id" jsonschema:"id of the updated ad group"`
}

func (d *deps) updateAdGroup(ctx context.Context, _ *mcp.CallToolRequest, input UpdateAdGroupInput) (*mcp.CallToolResult, UpdateAdGroupResult, error) {
	if input.Status == "" && input.Name == "" && input.CpcBidMicros == nil {
		return nil, UpdateAdGroupResult{}, fmt.Errorf("At least one of status, name, or cpc_bid_micros is required")
	}
	if input.Status != "" {
		if err := validateEnum(adGroupStatuses, input.Status, "status"); err != nil {
			return nil, UpdateAdGroupResult{}, err
		}
	}

	params := googleads.UpdateAdGroupParams{
		CustomerID:      config.NormalizeCustomerID(input.CustomerID),
		AdGroupID:       input.AdGroupID,
		Status:          input.Status,
		Name:            input.Name,
		LoginCustomerID: config.NormalizeCustomerID(input.LoginCustomerID),
	}
	if input.CpcBidMicros != nil {
		params.CpcBidMicros = *input.CpcBidMicros
		params.HasCpcBid = true
	}

	resourceName, err := d.integrator.UpdateAdGroup(ctx, params)
	if err != nil {
		return nil, UpdateAdGroupResult{}, err
	}

	return nil, UpdateAdGroupResult{
		AdGroupResourceName: resourceName,
		AdGroupID:           input.AdGroupID,
	}, nil
}

func registerAdGroupTools(server *mcp.Server, d *deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_ad_group",
		Description: "Creates an ad group under a campaign.",
	}, instrument(d, "create_ad_group", d.createAdGroup))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_ad_group",
		Description: "Updates ad group fields. At least one of status, name, or cpc_bid_micros is required.",
	}, instrument(d, "update_ad_group", d.updateAdGroup))
}
