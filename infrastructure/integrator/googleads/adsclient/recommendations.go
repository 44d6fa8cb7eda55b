package adsclient

import (
	"context"

	adsdomain "github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads/domain"
)

// ApplyRecommendation applies recommendations by resource name.
func (c *GoogleAdsClient) ApplyRecommendation(ctx context.Context, customerID string, req *adsdomain.ApplyRecommendationRequest, loginCustomerID string) (*adsdomain.ApplyRecommendationResponse, error) {
	url := c.customerURL(customerID, "/recommendations:apply")

	var response adsdomain.ApplyRecommendationResponse
	if err := c.post(ctx, url, req, loginCustomerID, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// DismissRecommendation dismisses recommendations by resource name.
func (c *GoogleAdsClient) DismissRecommendation(ctx context.Context, customerID string, req *adsdomain.DismissRecommendationRequest, loginCustomerID string) (*adsdomain.DismissRecommendationResponse, error) {
	url := c.customerURL(customerID, "/recommendations:dismiss")

	var response adsdomain.DismissRecommendationResponse
	if err := c.post(ctx, url, req, loginCustomerID, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
