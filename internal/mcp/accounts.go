package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ListAccessibleAccountsInput struct{}

type ListAccessibleAccountsResult struct {
	Accounts []string `json:"accounts" jsonschema:"customer ids directly accessible by the authenticated user"`
}

func (d *deps) listAccessibleAccounts(ctx context.Context, _ *mcp.CallToolRequest, _ ListAccessibleAccountsInput) (*mcp.CallToolResult, ListAccessibleAccountsResult, error) {
	accounts, err := d.integrator.ListAccessibleAccounts(ctx)
	if err != nil {
		return nil, ListAccessibleAccountsResult{}, err
	}

	return nil, ListAccessibleAccountsResult{Accounts: accounts}, nil
}

func registerAccountTools(server *mcp.Server, d *deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_accessible_accounts",
		Description: "Lists Google Ads customer ids directly accessible by the user. The accounts can be used as login_customer_id.",
	}, instrument(d, "list_accessible_accounts", d.listAccessibleAccounts))
}
