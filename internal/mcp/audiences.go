package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-mcp-api/internal/config"
)

type CreateCustomerListInput struct {
	CustomerID      string `json:"customer_id" jsonschema:"the customer account id, digits only"`
	ListName        string `json:"list_name" jsonschema:"the user list name"`
	Description     string `json:"description,omitempty" jsonschema:"optional user list description"`
	LoginCustomerID string `json:"login_customer_id,omitempty" jsonschema:"optional manager account id, digits only"`
}

func (in CreateCustomerListInput) customer() string { return in.CustomerID }

type CreateCustomerListResult struct {
	UserListResourceName string `json:"user_list_resource_name" jsonschema:"resource name of the created user list"`
	UserListID           string `json:"user_list_id" jsonschema:"id of the created user list"`
}

func (d *deps) createCustomerList(ctx context.Context, _ *mcp.CallToolRequest, input CreateCustomerListInput) (*mcp.CallToolResult, CreateCustomerListResult, error) {
	creation, err := d.integrator.CreateCustomerList(ctx,
		config.NormalizeCustomerID(input.CustomerID),
		input.ListName,
		input.Description,
		config.NormalizeCustomerID(input.LoginCustomerID),
	)
	if err != nil {
		return nil, CreateCustomerListResult{}, err
	}

	return nil, CreateCustomerListResult{
		UserListResourceName: creation.ResourceName,
		UserListID:           creation.UserListID,
	}, nil
}

type CustomerListMembersInput struct {
	CustomerID      string   `json:"customer_id" jsonschema:"the customer account id, digits only"`
	UserListID      string   `json:"user_list_id" jsonschema:"the user list id, digits only"`
	Emails          []string `json:"emails,omitempty" jsonschema:"plain text emails to normalize and hash"`
	PhoneNumbers    []string `json:"phone_numbers,omitempty" jsonschema:"phone numbers to normalize and hash"`
	LoginCustomerID string   `json:"login_customer_id,omitempty" jsonschema:"optional manager account id, digits only"`
}

func (in CustomerListMembersInput) customer() string { return in.CustomerID }

type CustomerListMembersResult struct {
	OfflineUserDataJobResourceName string `json:"offline_user_data_job_resource_name" jsonschema:"resource name of the offline user data job"`
	OperationCount                 int    `json:"operation_count" jsonschema:"number of member operations submitted"`
	PartialFailureCode             int    `json:"partial_failure_code" jsonschema:"partial failure status code, 0 when all operations were accepted"`
}

func (d *deps) updateCustomerListMembers(ctx context.Context, input CustomerListMembersInput, remove bool) (CustomerListMembersResult, error) {
	if len(input.Emails) == 0 && len(input.PhoneNumbers) == 0 {
		return CustomerListMembersResult{}, fmt.Errorf("At least one of emails or phone_numbers is required")
	}

	job, err := d.integrator.UpdateCustomerListMembers(ctx, googleads.CustomerListMembersParams{
		CustomerID:      config.NormalizeCustomerID(input.CustomerID),
		UserListID:      input.UserListID,
		Emails:          input.Emails,
		PhoneNumbers:    input.PhoneNumbers,
		Remove:          remove,
		LoginCustomerID: config.NormalizeCustomerID(input.LoginCustomerID),
	})
	if err != nil {
		return CustomerListMembersResult{}, err
	}

	return CustomerListMembersResult{
		OfflineUserDataJobResourceName: job.JobResourceName,
		OperationCount:                 job.OperationCount,
		PartialFailureCode:             job.PartialFailureCode,
	}, nil
}

func (d *deps) addCustomerListMembers(ctx context.Context, _ *mcp.CallToolRequest, input CustomerListMembersInput) (*mcp.CallToolResult, CustomerListMembersResult, error) {
	result, err := d.updateCustomerListMembers(ctx, input, false)
	return nil, result, err
}

func (d *deps) removeCustomerListMembers(ctx context.Context, _ *mcp.CallToolRequest, input CustomerListMembersInput) (*mcp.CallToolResult, CustomerListMembersResult, error) {
	result, err := d.updateCustomerListMembers(ctx, input, true)
	return nil, result, err
}

func registerAudienceTools(server *mcp.Server, d *deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_customer_list",
		Description: "Creates a Customer Match user list.",
	}, instrument(d, "create_customer_list", d.createCustomerList))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_customer_list_members",
		Description: "Adds members to a Customer Match list via an offline user data job.",
	}, instrument(d, "add_customer_list_members", d.addCustomerListMembers))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "remove_customer_list_members",
		Description: "Removes members from a Customer Match list via an offline user data job.",
	}, instrument(d, "remove_customer_list_members", d.removeCustomerListMembers))
}
