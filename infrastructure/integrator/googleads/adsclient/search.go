package adsclient

import (
	"context"

	adsdomain "github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads/domain"
)

// SearchStream executes a GAQL query via the streaming endpoint and returns
// the flattened rows of every batch.
func (c *GoogleAdsClient) SearchStream(ctx context.Context, customerID, query, loginCustomerID string) ([]adsdomain.Row, error) {
	url := c.customerURL(customerID, "/googleAds:searchStream")

	var batches []adsdomain.SearchStreamBatch
	err := c.post(ctx, url, map[string]string{"query": query}, loginCustomerID, &batches)
	if err != nil {
		return nil, err
	}

	rows := []adsdomain.Row{}
	for _, batch := range batches {
		rows = append(rows, flattenBatch(batch.Results, batch.FieldMask)...)
	}

	return rows, nil
}

// Search executes a GAQL query via the paged endpoint, following page
// tokens until the result set is exhausted.
func (c *GoogleAdsClient) Search(ctx context.Context, customerID, query, loginCustomerID string) ([]adsdomain.Row, error) {
	url := c.customerURL(customerID, "/googleAds:search")

	rows := []adsdomain.Row{}
	pageToken := ""
	for {
		payload := map[string]string{"query": query}
		if pageToken != "" {
			payload["pageToken"] = pageToken
		}

		var page adsdomain.SearchResponse
		if err := c.post(ctx, url, payload, loginCustomerID, &page); err != nil {
			return nil, err
		}

		rows = append(rows, flattenBatch(page.Results, page.FieldMask)...)

		if page.NextPageToken == "" {
			return rows, nil
		}
		pageToken = page.NextPageToken
	}
}
