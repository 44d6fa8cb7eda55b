package adsclient

import (
	"context"
	"fmt"

	adsdomain "github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads/domain"
)

// Mutate posts operations to a per-resource mutate endpoint, for example
// service "campaigns" hits customers/{id}/campaigns:mutate.
func (c *GoogleAdsClient) Mutate(ctx context.Context, customerID, service string, operations []adsdomain.MutateOperation, loginCustomerID string) (*adsdomain.MutateResponse, error) {
	url := c.customerURL(customerID, fmt.Sprintf("/%s:mutate", service))

	var response adsdomain.MutateResponse
	err := c.post(ctx, url, adsdomain.MutateRequest{Operations: operations}, loginCustomerID, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}
