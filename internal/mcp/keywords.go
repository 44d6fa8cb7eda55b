package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-mcp-api/internal/config"
)

type AddKeywordsInput struct {
	CustomerID      string   `json:"customer_id" jsonschema:"the customer account id, digits only"`
	AdGroupID       string   `json:"ad_group_id" jsonschema:"the ad group id, digits only"`
	Keywords        []string `json:"keywords" jsonschema:"keyword texts to add"`
	MatchType       string   `json:"match_type,omitempty" jsonschema:"keyword match type enum name, defaults to BROAD"`
	LoginCustomerID string   `json:"login_customer_id,omitempty" jsonschema:"optional manager account id, digits only"`
}

func (in AddKeywordsInput) customer() string { return in.CustomerID }

type AddKeywordsResult struct {
	KeywordResourceNames []string `json:"keyword_resource_names" jsonschema:"resource names of the created keyword criteria"`
}

func (d *deps) addKeywords(ctx context.Context, _ *mcp.CallToolRequest, input AddKeywordsInput) (*mcp.CallToolResult, AddKeywordsResult, error) {
	if len(input.Keywords) == 0 {
		return nil, AddKeywordsResult{}, fmt.Errorf("keywords must not be empty")
	}

	matchType := input.MatchType
	if matchType == "" {
		matchType = "BROAD"
	}
	if err := validateEnum(keywordMatchTypes, matchType, "match_type"); err != nil {
		return nil, AddKeywordsResult{}, err
	}

	resourceNames, err := d.integrator.AddKeywords(ctx, googleads.AddKeywordsParams{
		CustomerID:      config.NormalizeCustomerID(input.CustomerID),
		AdGroupID:       input.AdGroupID,
		Keywords:        input.Keywords,
		MatchType:       matchType,
		LoginCustomerID: config.NormalizeCustomerID(input.LoginCustomerID),
	})
	if err != nil {
		return nil, AddKeywordsResult{}, err
	}

	return nil, AddKeywordsResult{KeywordResourceNames: resourceNames}, nil
}

type UpdateKeywordStatusInput struct {
	CustomerID      string `json:"customer_id" jsonschema:"the customer account id, digits only"`
	CriterionID     string `json:"criterion_id" jsonschema:"the criterion id, digits only"`
	AdGroupID       string `json:"ad_group_id" jsonschema:"the ad group id, digits only"`
	Status          string `json:"status" jsonschema:"ad group criterion status enum name"`
	LoginCustomerID string `json:"login_customer_id,omitempty" jsonschema:"optional manager account id, digits only"`
}

func (in UpdateKeywordStatusInput) customer() string { return in.CustomerID }

type UpdateKeywordStatusResult struct {
	CriterionResourceName string `json:"criterion_resource_name" jsonschema:"resource name of the updated criterion"`
	Status                string `json:"status" jsonschema:"the applied status"`
}

func (d *deps) updateKeywordStatus(ctx context.Context, _ *mcp.CallToolRequest, input UpdateKeywordStatusInput) (*mcp.CallToolResult, UpdateKeywordStatusResult, error) {
	if err := validateEnum(adGroupCriterionStatuses, input.Status, "status"); err != nil {
		return nil, UpdateKeywordStatusResult{}, err
	}

	resourceName, err := d.integrator.UpdateKeywordStatus(ctx,
		config.NormalizeCustomerID(input.CustomerID),
		input.AdGroupID,
		input.CriterionID,
		input.Status,
		config.NormalizeCustomerID(input.LoginCustomerID),
	)
	if err != nil {
		return nil, UpdateKeywordStatusResult{}, err
	}

	return nil, UpdateKeywordStatusResult{
		CriterionResourceName: resourceName,
		Status:                input.Status,
	}, nil
}

type AddNegativeKeywordsInput struct {
	CustomerID      string   `json:"customer_id" jsonschema:"the customer account id, digits only"`
	CampaignID      string   `json:"campaign_id" jsonschema:"the campaign id, digits only"`
	Keywords        []string `json:"keywords" jsonschema:"negative keyword texts to add"`
	LoginCustomerID string   `json:"login_customer_id,omitempty" jsonschema:"optional manager account id, digits only"`
}

func (in AddNegativeKeywordsInput) customer() string { return in.CustomerID }

type AddNegativeKeywordsResult struct {
	NegativeKeywordResourceNames []string `json:"negative_keyword_resource_names" jsonschema:"resource names of the created negative criteria"`
}

func (d *deps) addNegativeKeywords(ctx context.Context, _ *mcp.CallToolRequest, input AddNegativeKeywordsInput) (*mcp.CallToolResult, AddNegativeKeywordsResult, error) {
	if len(input.Keywords) == 0 {
		return nil, AddNegativeKeywordsResult{}, fmt.Errorf("keywords must not be empty")
	}

	resourceNames, err := d.integrator.AddNegativeKeywords(ctx,
		config.NormalizeCustomerID(input.CustomerID),
		input.CampaignID,
		input.Keywords,
		config.NormalizeCustomerID(input.LoginCustomerID),
	)
	if err != nil {
		return nil, AddNegativeKeywordsResult{}, err
	}

	return nil, AddNegativeKeywordsResult{NegativeKeywordResourceNames: resourceNames}, nil
}

func registerKeywordTools(server *mcp.Server, d *deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_keywords",
		Description: "Adds positive keywords to an ad group.",
	}, instrument(d, "add_keywords", d.addKeywords))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_keyword_status",
		Description: "Updates ad group keyword criterion status.",
	}, instrument(d, "update_keyword_status", d.updateKeywordStatus))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_negative_keywords",
		Description: "Adds campaign-level negative keywords.",
	}, instrument(d, "add_negative_keywords", d.addNegativeKeywords))
}
