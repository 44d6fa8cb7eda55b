package adsclient

import (
	"context"
	"fmt"

	adsdomain "github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads/domain"
)

// ListAccessibleCustomers returns the customer resource names the
// authenticated user can access directly.
func (c *GoogleAdsClient) ListAccessibleCustomers(ctx context.Context) ([]string, error) {
	url := fmt.Sprintf("%s/customers:listAccessibleCustomers", c.Cfg.URL)

	var response adsdomain.ListAccessibleCustomersResponse
	if err := c.get(ctx, url, "", &response); err != nil {
		return nil, err
	}

	return response.ResourceNames, nil
}
