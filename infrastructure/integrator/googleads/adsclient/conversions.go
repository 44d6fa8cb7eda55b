package adsclient

import (
	"context"

	adsdomain "github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads/domain"
)

// UploadClickConversions uploads offline click conversions.
func (c *GoogleAdsClient) UploadClickConversions(ctx context.Context, customerID string, req *adsdomain.UploadClickConversionsRequest, loginCustomerID string) (*adsdomain.UploadClickConversionsResponse, error) {
	url := c.customerURL(customerID, ":uploadClickConversions")

	var response adsdomain.UploadClickConversionsResponse
	if err := c.post(ctx, url, req, loginCustomerID, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
