package adsclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-mcp-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client is the REST surface of the Google Ads API this service uses.
type Client interface {
	SearchStream(ctx context.Context, customerID, query, loginCustomerID string) ([]adsdomain.Row, error)
	Search(ctx context.Context, customerID, query, loginCustomerID string) ([]adsdomain.Row, error)
	ListAccessibleCustomers(ctx context.Context) ([]string, error)
	Mutate(ctx context.Context, customerID, service string, operations []adsdomain.MutateOperation, loginCustomerID string) (*adsdomain.MutateResponse, error)
	UploadClickConversions(ctx context.Context, customerID string, req *adsdomain.UploadClickConversionsRequest, loginCustomerID string) (*adsdomain.UploadClickConversionsResponse, error)
	CreateOfflineUserDataJob(ctx context.Context, customerID string, job adsdomain.OfflineUserDataJob, loginCustomerID string) (*adsdomain.CreateOfflineUserDataJobResponse, error)
	AddOfflineUserDataJobOperations(ctx context.Context, jobResourceName string, req *adsdomain.AddOfflineUserDataJobOperationsRequest, loginCustomerID string) (*adsdomain.AddOfflineUserDataJobOperationsResponse, error)
	RunOfflineUserDataJob(ctx context.Context, jobResourceName, loginCustomerID string) error
	ApplyRecommendation(ctx context.Context, customerID string, req *adsdomain.ApplyRecommendationRequest, loginCustomerID string) (*adsdomain.ApplyRecommendationResponse, error)
	DismissRecommendation(ctx context.Context, customerID string, req *adsdomain.DismissRecommendationRequest, loginCustomerID string) (*adsdomain.DismissRecommendationResponse, error)
	GenerateKeywordIdeas(ctx context.Context, customerID string, req *adsdomain.GenerateKeywordIdeasRequest, loginCustomerID string) (*adsdomain.GenerateKeywordIdeasResponse, error)
}

type GoogleAdsClient struct {
	Cfg          config.GoogleAds
	TokenManager *TokenManager
	HTTPClient   *http.Client
}

func NewClient(cfg config.GoogleAds, tokenManager *TokenManager) Client {
	return &GoogleAdsClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		HTTPClient:   &http.Client{Timeout: 120 * time.Second},
	}
}

// post sends one JSON request and decodes the response into out. A single
// UNAUTHENTICATED answer triggers a forced token refresh and one retry.
func (c *GoogleAdsClient) post(ctx context.Context, url string, payload any, loginCustomerID string, out any) error {
	body, err := c.doOnce(ctx, http.MethodPost, url, payload, loginCustomerID)
	if err != nil {
		if !isTokenExpired(err) {
			return err
		}

		logrus.Warn("Google Ads API rejected the access token, refreshing and retrying")
		if refreshErr := c.TokenManager.ForceRefresh(ctx); refreshErr != nil {
			return refreshErr
		}

		body, err = c.doOnce(ctx, http.MethodPost, url, payload, loginCustomerID)
		if err != nil {
			return err
		}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "decoding Google Ads API response")
	}

	return nil
}

// get mirrors post for the few endpoints without a request body.
func (c *GoogleAdsClient) get(ctx context.Context, url, loginCustomerID string, out any) error {
	body, err := c.doOnce(ctx, http.MethodGet, url, nil, loginCustomerID)
	if err != nil {
		if !isTokenExpired(err) {
			return err
		}

		if refreshErr := c.TokenManager.ForceRefresh(ctx); refreshErr != nil {
			return refreshErr
		}

		body, err = c.doOnce(ctx, http.MethodGet, url, nil, loginCustomerID)
		if err != nil {
			return err
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "decoding Google Ads API response")
	}

	return nil
}

func (c *GoogleAdsClient) doOnce(ctx context.Context, method, url string, payload any, loginCustomerID string) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "encoding request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}

	accessToken, err := c.TokenManager.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("developer-token", c.Cfg.DeveloperToken)
	req.Header.Set("Content-Type", "application/json")

	// A per-call login customer id beats the configured default.
	if loginCustomerID == "" {
		loginCustomerID = c.Cfg.LoginCustomerID
	}
	if loginCustomerID != "" {
		req.Header.Set("login-customer-id", loginCustomerID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "calling Google Ads API")
	}
	defer resp.Body.Close()

	return HandleResponse(resp)
}

// HandleResponse reads the body and converts non-2xx answers into an
// *APIError carrying the decoded GoogleAdsFailure.
func HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	return nil, parseErrorBody(resp.StatusCode, body)
}

// APIError is a failed Google Ads API call. Err() renders the failure the
// way tool clients expect: one line per GoogleAdsFailure error.
type APIError struct {
	StatusCode int
	Response   *adsdomain.ErrorResponse
	RawBody    string
}

func (e *APIError) Error() string {
	if e.Response != nil {
		if messages := e.Response.Messages(); len(messages) > 0 {
			return strings.Join(messages, "\n")
		}
	}
	return fmt.Sprintf("Google Ads API error, status %d: %s", e.StatusCode, e.RawBody)
}

func parseErrorBody(statusCode int, body []byte) error {
	trimmed := bytes.TrimSpace(body)

	// Streaming endpoints wrap the status in a one-element array.
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var wrapped []adsdomain.ErrorResponse
		if err := json.Unmarshal(trimmed, &wrapped); err == nil && len(wrapped) > 0 {
			return &APIError{StatusCode: statusCode, Response: &wrapped[0], RawBody: string(body)}
		}
	}

	var errorResp adsdomain.ErrorResponse
	if err := json.Unmarshal(trimmed, &errorResp); err == nil && errorResp.Error.Code != 0 {
		return &APIError{StatusCode: statusCode, Response: &errorResp, RawBody: string(body)}
	}

	return &APIError{StatusCode: statusCode, RawBody: string(body)}
}

func isTokenExpired(err error) bool {
	apiErr, ok := err.(*APIError)
	if !ok {
		return false
	}
	if apiErr.Response != nil && apiErr.Response.IsTokenExpired() {
		return true
	}
	return apiErr.StatusCode == http.StatusUnauthorized
}

func (c *GoogleAdsClient) customerURL(customerID, suffix string) string {
	return fmt.Sprintf("%s/customers/%s%s", c.Cfg.URL, customerID, suffix)
}
