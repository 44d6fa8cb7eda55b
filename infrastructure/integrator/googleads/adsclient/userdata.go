package adsclient

import (
	"context"
	"fmt"

	adsdomain "github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads/domain"
)

// CreateOfflineUserDataJob creates a Customer Match membership job.
func (c *GoogleAdsClient) CreateOfflineUserDataJob(ctx context.Context, customerID string, job adsdomain.OfflineUserDataJob, loginCustomerID string) (*adsdomain.CreateOfflineUserDataJobResponse, error) {
	url := c.customerURL(customerID, "/offlineUserDataJobs:create")

	var response adsdomain.CreateOfflineUserDataJobResponse
	err := c.post(ctx, url, adsdomain.CreateOfflineUserDataJobRequest{Job: job}, loginCustomerID, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

// AddOfflineUserDataJobOperations appends membership operations to a job.
func (c *GoogleAdsClient) AddOfflineUserDataJobOperations(ctx context.Context, jobResourceName string, req *adsdomain.AddOfflineUserDataJobOperationsRequest, loginCustomerID string) (*adsdomain.AddOfflineUserDataJobOperationsResponse, error) {
	url := fmt.Sprintf("%s/%s:addOperations", c.Cfg.URL, jobResourceName)

	var response adsdomain.AddOfflineUserDataJobOperationsResponse
	if err := c.post(ctx, url, req, loginCustomerID, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// RunOfflineUserDataJob starts asynchronous processing of a job.
func (c *GoogleAdsClient) RunOfflineUserDataJob(ctx context.Context, jobResourceName, loginCustomerID string) error {
	url := fmt.Sprintf("%s/%s:run", c.Cfg.URL, jobResourceName)

	return c.post(ctx, url, map[string]any{}, loginCustomerID, nil)
}
