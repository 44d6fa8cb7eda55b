package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-mcp-api/internal/config"
)

type CreateCampaignInput struct {
	CustomerID             string `json:"customer_id" jsonschema:"the customer account id, digits only"`
	Name                   string `json:"name" jsonschema:"the campaign name"`
	AdvertisingChannelType string `json:"advertising_channel_type" jsonschema:"campaign channel enum name, e.g. SEARCH"`
	Status                 string `json:"status,omitempty" jsonschema:"campaign status enum name, defaults to PAUSED"`
	BudgetAmountMicros     int64  `json:"budget_amount_micros,omitempty" jsonschema:"budget amount in micros, defaults to 1000000"`
	LoginCustomerID        string `json:"login_customer_id,omitempty" jsonschema:"optional manager account id, digits only"`
}

func (in CreateCampaignInput) customer() string { return in.CustomerID }

type CreateCampaignResult struct {
	CampaignResourceName string `json:"campaign_resource_name" jsonschema:"resource name of the created campaign"`
	CampaignID           string `json:"campaign_id" jsonschema:"id of the created campaign"`
	BudgetResourceName   string `json:"budget_resource_name" jsonschema:"resource name of the created budget"`
	BudgetID             string `json:"budget_id" jsonschema:"id of the created budget"`
}

func (d *deps) createCampaign(ctx context.Context, _ *mcp.CallToolRequest, input CreateCampaignInput) (*mcp.CallToolResult, CreateCampaignResult, error) {
	status := input.Status
	if status == "" {
		status = "PAUSED"
	}
	if err := validateEnum(campaignStatuses, status, "status"); err != nil {
		return nil, CreateCampaignResult{}, err
	}
	if err := validateEnum(advertisingChannelTypes, input.AdvertisingChannelType, "advertising_channel_type"); err != nil {
		return nil, CreateCampaignResult{}, err
	}

	creation, err := d.integrator.CreateCampaign(ctx, googleads.CreateCampaignParams{
		CustomerID:             config.NormalizeCustomerID(input.CustomerID),
		Name:                   input.Name,
		AdvertisingChannelType: input.AdvertisingChannelType,
		Status:                 status,
		BudgetAmountMicros:     input.BudgetAmountMicros,
		LoginCustomerID:        config.NormalizeCustomerID(input.LoginCustomerID),
	})
	if err != nil {
		return nil, CreateCampaignResult{}, err
	}

	return nil, CreateCampaignResult{
		CampaignResourceName: creation.CampaignResourceName,
		CampaignID:           creation.CampaignID,
		BudgetResourceName:   creation.BudgetResourceName,
		BudgetID:             creation.BudgetID,
	}, nil
}

type UpdateCampaignStatusInput struct {
	CustomerID      string `json:"customer_id" jsonschema:"the customer account id, digits only"`
	CampaignID      string `json:"campaign_id" jsonschema:"the campaign id, digits only"`
	Status          string `json:"status" jsonschema:"campaign status enum name"`
	LoginCustomerID string `json:"login_customer_id,omitempty" jsonschema:"optional manager account id, digits only"`
}

func (in UpdateCampaignStatusInput) customer() string { return in.CustomerID }

type UpdateCampaignStatusResult struct {
	CampaignResourceName string `json:"campaign_resource_name" jsonschema:"resource name of the updated campaign"`
	Status               string `json:"status" jsonschema:"the applied status"`
}

func (d *deps) updateCampaignStatus(ctx context.Context, _ *mcp.CallToolRequest, input UpdateCampaignStatusInput) (*mcp.CallToolResult, UpdateCampaignStatusResult, error) {
	if err := validateEnum(campaignStatuses, input.Status, "status"); err != nil {
		return nil, UpdateCampaignStatusResult{}, err
	}

	resourceName, err := d.integrator.UpdateCampaignStatus(ctx,
		config.NormalizeCustomerID(input.CustomerID),
		input.CampaignID,
		input.Status,
		config.NormalizeCustomerID(input.LoginCustomerID),
	)
	if err != nil {
		return nil, UpdateCampaignStatusResult{}, err
	}

	return nil, UpdateCampaignStatusResult{
		CampaignResourceName: resourceName,
		Status:               input.Status,
	}, nil
}

type UpdateCampaignBudgetInput struct {
	CustomerID         string `json:"customer_id" jsonschema:"the customer account id, digits only"`
	CampaignID         string `json:"campaign_id" jsonschema:"the campaign id, digits only"`
	BudgetAmountMicros int64  `json:"budget_amount_micros" jsonschema:"new budget amount in micros"`
	LoginCustomerID    string `json:"login_customer_id,omitempty" jsonschema:"optional manager account id, digits only"`
}

func (in UpdateCampaignBudgetInput) customer() string { return in.CustomerID }

type UpdateCampaignBudgetResult struct {
	BudgetResourceName string `json:"budget_resource_name" jsonschema:"resource name of the updated budget"`
	AmountMicros       int64  `json:"amount_micros" jsonschema:"the applied budget amount in micros"`
}

func (d *deps) updateCampaignBudget(ctx context.Context, _ *mcp.CallToolRequest, input UpdateCampaignBudgetInput) (*mcp.CallToolResult, UpdateCampaignBudgetResult, error) {
	resourceName, err := d.integrator.UpdateCampaignBudget(ctx,
		config.NormalizeCustomerID(input.CustomerID),
		input.CampaignID,
		input.BudgetAmountMicros,
		config.NormalizeCustomerID(input.LoginCustomerID),
	)
	if err != nil {
		return nil, UpdateCampaignBudgetResult{}, err
	}

	return nil, UpdateCampaignBudgetResult{
		BudgetResourceName: resourceName,
		AmountMicros:       input.BudgetAmountMicros,
	}, nil
}

func registerCampaignTools(server *mcp.Server, d *deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_campaign",
		Description: "Creates a new campaign and campaign budget.",
	}, instrument(d, "create_campaign", d.createCampaign))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_campaign_status",
		Description: "Updates a campaign status.",
	}, instrument(d, "update_campaign_status", d.updateCampaignStatus))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_campaign_budget",
		Description: "Updates the budget amount for a campaign.",
	}, instrument(d, "update_campaign_budget", d.updateCampaignBudget))
}
