package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-mcp-api/internal/config"
	"github.com/vfg2006/ads-mcp-api/pkg/utils"
)

type GetChangeEventsInput struct {
	CustomerID      string `json:"customer_id" jsonschema:"the customer account id, digits only"`
	StartDate       string `json:"start_date" jsonschema:"start date in yyyy-mm-dd format"`
	EndDate         string `json:"end_date,omitempty" jsonschema:"optional end date in yyyy-mm-dd format, defaults to start_date"`
	ResourceType    string `json:"resource_type,omitempty" jsonschema:"optional ChangeEventResourceType enum name"`
	LoginCustomerID string `json:"login_customer_id,omitempty" jsonschema:"optional manager account id, digits only"`
}

func (in GetChangeEventsInput) customer() string { return in.CustomerID }

type GetChangeEventsResult struct {
	Events []googleads.ChangeEvent `json:"events" jsonschema:"change event records, newest first"`
}

func (d *deps) getChangeEvents(ctx context.Context, _ *mcp.CallToolRequest, input GetChangeEventsInput) (*mcp.CallToolResult, GetChangeEventsResult, error) {
	if input.StartDate == "" {
		return nil, GetChangeEventsResult{}, fmt.Errorf("start_date is required")
	}
	if _, err := utils.ParseDate(input.StartDate); err != nil {
		return nil, GetChangeEventsResult{}, fmt.Errorf("Invalid start_date: %s", input.StartDate)
	}
	if _, err := utils.ParseDate(input.EndDate); err != nil {
		return nil, GetChangeEventsResult{}, fmt.Errorf("Invalid end_date: %s", input.EndDate)
	}

	events, err := d.integrator.GetChangeEvents(ctx, googleads.ChangeEventsParams{
		CustomerID:      config.NormalizeCustomerID(input.CustomerID),
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		ResourceType:    input.ResourceType,
		LoginCustomerID: config.NormalizeCustomerID(input.LoginCustomerID),
	})
	if err != nil {
		return nil, GetChangeEventsResult{}, err
	}

	return nil, GetChangeEventsResult{Events: events}, nil
}

func registerChangeHistoryTools(server *mcp.Server, d *deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_change_events",
		Description: "Gets account change events from the change_event resource.",
	}, instrument(d, "get_change_events", d.getChangeEvents))
}
