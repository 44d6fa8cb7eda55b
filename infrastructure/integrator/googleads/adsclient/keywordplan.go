package adsclient

import (
	"context"

	adsdomain "github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads/domain"
)

// GenerateKeywordIdeas asks the keyword planner for ideas, following page
// tokens so callers get the full result set.
func (c *GoogleAdsClient) GenerateKeywordIdeas(ctx context.Context, customerID string, req *adsdomain.GenerateKeywordIdeasRequest, loginCustomerID string) (*adsdomain.GenerateKeywordIdeasResponse, error) {
	url := c.customerURL(customerID, ":generateKeywordIdeas")

	combined := &adsdomain.GenerateKeywordIdeasResponse{}
	for {
		var page adsdomain.GenerateKeywordIdeasResponse
		if err := c.post(ctx, url, req, loginCustomerID, &page); err != nil {
			return nil, err
		}

		combined.Results = append(combined.Results, page.Results...)

		if page.NextPageToken == "" {
			return combined, nil
		}
		req.PageToken = page.NextPageToken
	}
}
