package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	adsdomain "github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-mcp-api/internal/config"
)

type ExecuteGAQLInput struct {
	Query           string `json:"query" jsonschema:"the GAQL query to execute"`
	CustomerID      string `json:"customer_id" jsonschema:"the customer account id, digits only"`
	LoginCustomerID string `json:"login_customer_id,omitempty" jsonschema:"optional manager account id on top of the target account, digits only"`
}

func (in ExecuteGAQLInput) customer() string { return in.CustomerID }

type ExecuteGAQLResult struct {
	Data []adsdomain.Row `json:"data" jsonschema:"query result rows keyed by selected field path"`
}

func (d *deps) executeGAQL(ctx context.Context, _ *mcp.CallToolRequest, input ExecuteGAQLInput) (*mcp.CallToolResult, ExecuteGAQLResult, error) {
	rows, _, err := d.integrator.ExecuteGAQL(ctx,
		config.NormalizeCustomerID(input.CustomerID),
		input.Query,
		config.NormalizeCustomerID(input.LoginCustomerID),
	)
	if err != nil {
		return nil, ExecuteGAQLResult{}, err
	}

	return nil, ExecuteGAQLResult{Data: rows}, nil
}

type SearchAdsInput struct {
	CustomerID      string   `json:"customer_id" jsonschema:"the customer account id, digits only"`
	Resource        string   `json:"resource" jsonschema:"the resource to query, e.g. campaign or ad_group"`
	Fields          []string `json:"fields" jsonschema:"fully qualified fields to select, e.g. campaign.id or metrics.clicks"`
	Conditions      []string `json:"conditions,omitempty" jsonschema:"optional WHERE conditions combined with AND"`
	Orderings       []string `json:"orderings,omitempty" jsonschema:"optional ORDER BY clauses, e.g. metrics.impressions DESC"`
	Limit           *int64   `json:"limit,omitempty" jsonschema:"optional maximum number of rows, required for change_event queries"`
	LoginCustomerID string   `json:"login_customer_id,omitempty" jsonschema:"optional manager account id, digits only"`
}

func (in SearchAdsInput) customer() string { return in.CustomerID }

type SearchAdsResult struct {
	Data  []adsdomain.Row `json:"data" jsonschema:"query result rows keyed by selected field path"`
	Query string          `json:"query" jsonschema:"the generated GAQL query"`
}

// searchAds is a convenience wrapper around GAQL that assembles the query
// from structured parts.
func (d *deps) searchAds(ctx context.Context, _ *mcp.CallToolRequest, input SearchAdsInput) (*mcp.CallToolResult, SearchAdsResult, error) {
	if len(input.Fields) == 0 {
		return nil, SearchAdsResult{}, fmt.Errorf("fields must not be empty")
	}
	if input.Resource == "" {
		return nil, SearchAdsResult{}, fmt.Errorf("resource must not be empty")
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(input.Fields, ", "), input.Resource)
	if len(input.Conditions) > 0 {
		query += fmt.Sprintf(" WHERE %s", strings.Join(input.Conditions, " AND "))
	}
	if len(input.Orderings) > 0 {
		query += fmt.Sprintf(" ORDER BY %s", strings.Join(input.Orderings, ", "))
	}
	if input.Limit != nil {
		query += fmt.Sprintf(" LIMIT %d", *input.Limit)
	}

	rows, finalQuery, err := d.integrator.ExecuteGAQL(ctx,
		config.NormalizeCustomerID(input.CustomerID),
		query,
		config.NormalizeCustomerID(input.LoginCustomerID),
	)
	if err != nil {
		return nil, SearchAdsResult{}, err
	}

	return nil, SearchAdsResult{Data: rows, Query: finalQuery}, nil
}

func registerReportingTools(server *mcp.Server, d *deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "execute_gaql",
		Description: "Executes a Google Ads Query Language (GAQL) query to get reporting data.",
	}, instrument(d, "execute_gaql", d.executeGAQL))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_ads",
		Description: "Searches Google Ads data using structured parameters, a convenience wrapper around GAQL.",
	}, instrument(d, "search_ads", d.searchAds))
}
