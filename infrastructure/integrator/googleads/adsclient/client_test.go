package adsclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	adsdomain "github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-mcp-api/internal/config"
	"golang.org/x/oauth2"
)

// newTestClient points a client at the given test server with a pre-seeded
// access token so no real OAuth exchange happens.
func newTestClient(server *httptest.Server, cfg config.GoogleAds) *GoogleAdsClient {
	cfg.URL = server.URL

	tokenManager := NewTokenManager(cfg)
	tokenManager.token = &oauth2.Token{
		AccessToken: "test-access-token",
		Expiry:      time.Now().Add(time.Hour),
	}

	return &GoogleAdsClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		HTTPClient:   server.Client(),
	}
}

func TestSearchStream(t *testing.T) {
	var gotPath, gotAuth, gotDevToken, gotLogin string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotDevToken = r.Header.Get("developer-token")
		gotLogin = r.Header.Get("login-customer-id")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"results": [
					{"campaign": {"id": "456", "name": "Summer Sale"}},
					{"campaign": {"id": "789", "name": "Winter Sale"}}
				],
				"fieldMask": "campaign.id,campaign.name"
			},
			{
				"results": [
					{"campaign": {"id": "1010", "name": "Spring Sale"}}
				],
				"fieldMask": "campaign.id,campaign.name"
			}
		]`))
	}))
	defer server.Close()

	client := newTestClient(server, config.GoogleAds{
		DeveloperToken:  "dev-token",
		LoginCustomerID: "9999999999",
	})

	rows, err := client.SearchStream(context.Background(), "1234567890", "SELECT campaign.id, campaign.name FROM campaign", "")
	require.NoError(t, err)

	assert.Equal(t, "/customers/1234567890/googleAds:searchStream", gotPath)
	assert.Equal(t, "Bearer test-access-token", gotAuth)
	assert.Equal(t, "dev-token", gotDevToken)
	assert.Equal(t, "9999999999", gotLogin)

	require.Len(t, rows, 3)
	assert.Equal(t, "456", rows[0]["campaign.id"])
	assert.Equal(t, "Spring Sale", rows[2]["campaign.name"])
}

func TestSearch_FollowsPageTokens(t *testing.T) {
	var pageTokens []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		pageTokens = append(pageTokens, payload["pageToken"])

		w.Header().Set("Content-Type", "application/json")
		if payload["pageToken"] == "" {
			_, _ = w.Write([]byte(`{
				"results": [{"campaign": {"id": "1"}}],
				"fieldMask": "campaign.id",
				"nextPageToken": "page-2"
			}`))
			return
		}
		_, _ = w.Write([]byte(`{
			"results": [{"campaign": {"id": "2"}}],
			"fieldMask": "campaign.id"
		}`))
	}))
	defer server.Close()

	client := newTestClient(server, config.GoogleAds{})

	rows, err := client.Search(context.Background(), "1234567890", "SELECT campaign.id FROM campaign", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"", "page-2"}, pageTokens)
	require.Len(t, rows, 2)
	assert.Equal(t, "2", rows[1]["campaign.id"])
}

func TestListAccessibleCustomers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/customers:listAccessibleCustomers", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"resourceNames": ["customers/1234567890", "customers/9876543210"]}`))
	}))
	defer server.Close()

	client := newTestClient(server, config.GoogleAds{})

	names, err := client.ListAccessibleCustomers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"customers/1234567890", "customers/9876543210"}, names)
}

func TestSearchStream_PerCallLoginCustomerIDWins(t *testing.T) {
	var gotLogin string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLogin = r.Header.Get("login-customer-id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server, config.GoogleAds{LoginCustomerID: "9999999999"})

	_, err := client.SearchStream(context.Background(), "1234567890", "SELECT campaign.id FROM campaign", "5555555555")
	require.NoError(t, err)
	assert.Equal(t, "5555555555", gotLogin)
}

func TestParseErrorBody_GoogleAdsFailure(t *testing.T) {
	body := []byte(`{
		"error": {
			"code": 400,
			"message": "Request contains an invalid argument.",
			"status": "INVALID_ARGUMENT",
			"details": [{
				"@type": "type.googleapis.com/google.ads.googleads.v21.errors.GoogleAdsFailure",
				"errors": [
					{"errorCode": {"queryError": "UNRECOGNIZED_FIELD"}, "message": "Unrecognized field in the query."},
					{"errorCode": {"queryError": "BAD_VALUE"}, "message": "Bad value in the query."}
				]
			}]
		}
	}`)

	err := parseErrorBody(http.StatusBadRequest, body)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t,
		"queryError.UNRECOGNIZED_FIELD: Unrecognized field in the query.\n"+
			"queryError.BAD_VALUE: Bad value in the query.",
		err.Error(),
	)
}

func TestParseErrorBody_ArrayWrappedStatus(t *testing.T) {
	// Streaming endpoints wrap the status in a one-element array.
	body := []byte(`[{
		"error": {
			"code": 401,
			"message": "Request had invalid authentication credentials.",
			"status": "UNAUTHENTICATED"
		}
	}]`)

	err := parseErrorBody(http.StatusUnauthorized, body)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.NotNil(t, apiErr.Response)
	assert.True(t, apiErr.Response.IsTokenExpired())
	assert.Equal(t, "Request had invalid authentication credentials.", err.Error())
}

func TestParseErrorBody_UnparseableBody(t *testing.T) {
	err := parseErrorBody(http.StatusBadGateway, []byte("upstream timed out"))

	assert.Equal(t, "Google Ads API error, status 502: upstream timed out", err.Error())
}

func TestHandleResponse(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       http.NoBody,
	}

	body, err := HandleResponse(resp)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestIsTokenExpired(t *testing.T) {
	assert.False(t, isTokenExpired(assert.AnError))
	assert.True(t, isTokenExpired(&APIError{StatusCode: http.StatusUnauthorized}))
	assert.False(t, isTokenExpired(&APIError{StatusCode: http.StatusBadRequest}))
	assert.True(t, isTokenExpired(&APIError{
		StatusCode: http.StatusBadRequest,
		Response:   &adsdomain.ErrorResponse{Error: adsdomain.ErrorStatus{Status: "UNAUTHENTICATED"}},
	}))
}
