package googleads_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads"
	adsdomain "github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads/domain"
	"go.uber.org/mock/gomock"
)

func TestListAccessibleAccounts(t *testing.T) {
	integrator, client := newIntegrator(t)
	ctx := context.Background()

	client.EXPECT().
		ListAccessibleCustomers(ctx).
		Return([]string{"customers/1234567890", "customers/9876543210"}, nil)

	accounts, err := integrator.ListAccessibleAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1234567890", "9876543210"}, accounts)
}

func TestExecuteGAQL_PreprocessesQuery(t *testing.T) {
	integrator, client := newIntegrator(t)
	ctx := context.Background()

	client.EXPECT().
		SearchStream(ctx, "1234567890", "SELECT campaign.id FROM campaign PARAMETERS omit_unselected_resource_names=true", "").
		Return([]adsdomain.Row{{"campaign.id": "1"}}, nil)

	rows, finalQuery, err := integrator.ExecuteGAQL(ctx, "1234567890", "SELECT campaign.id FROM campaign", "")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Contains(t, finalQuery, "omit_unselected_resource_names=true")
}

func TestGetChangeEvents_QueryWindow(t *testing.T) {
	integrator, client := newIntegrator(t)
	ctx := context.Background()

	client.EXPECT().
		Search(ctx, "1234567890", gomock.Any(), "").
		DoAndReturn(func(_ context.Context, _, query, _ string) ([]adsdomain.Row, error) {
			assert.Contains(t, query, "BETWEEN '2025-01-01 00:00:00' AND '2025-01-01 23:59:59'")
			assert.Contains(t, query, "change_event.change_resource_type = CAMPAIGN")
			assert.Contains(t, query, "ORDER BY change_event.change_date_time DESC")
			assert.Contains(t, query, "LIMIT 10000")
			return []adsdomain.Row{{
				"change_event.resource_name":             "customers/1234567890/changeEvents/1",
				"change_event.change_date_time":          "2025-01-01 12:00:00",
				"change_event.change_resource_type":      "CAMPAIGN",
				"change_event.change_resource_name":      "customers/1234567890/campaigns/42",
				"change_event.user_email":                "ops@example.com",
				"change_event.client_type":               "GOOGLE_ADS_WEB_CLIENT",
				"change_event.resource_change_operation": "UPDATE",
			}}, nil
		})

	events, err := integrator.GetChangeEvents(ctx, googleads.ChangeEventsParams{
		CustomerID:   "1234567890",
		StartDate:    "2025-01-01",
		ResourceType: "CAMPAIGN",
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "ops@example.com", events[0].UserEmail)
	assert.Equal(t, "UPDATE", events[0].ResourceChangeOperation)
}

func TestGetRecommendations_TypeFilter(t *testing.T) {
	integrator, client := newIntegrator(t)
	ctx := context.Background()

	client.EXPECT().
		Search(ctx, "1234567890", gomock.Any(), "").
		DoAndReturn(func(_ context.Context, _, query, _ string) ([]adsdomain.Row, error) {
			assert.Contains(t, query, "WHERE recommendation.type IN (KEYWORD, TEXT_AD)")
			return []adsdomain.Row{{
				"recommendation.resource_name": "customers/1234567890/recommendations/5",
				"recommendation.type":          "KEYWORD",
				"recommendation.dismissed":     false,
			}}, nil
		})

	recommendations, err := integrator.GetRecommendations(ctx, "1234567890", []string{"KEYWORD", "TEXT_AD"}, "")
	require.NoError(t, err)
	require.Len(t, recommendations, 1)
	assert.Equal(t, "5", recommendations[0].RecommendationID)
	assert.False(t, recommendations[0].Dismissed)
}

func TestApplyRecommendation(t *testing.T) {
	integrator, client := newIntegrator(t)
	ctx := context.Background()

	client.EXPECT().
		ApplyRecommendation(ctx, "1234567890", gomock.Any(), "").
		DoAndReturn(func(_ context.Context, _ string, req *adsdomain.ApplyRecommendationRequest, _ string) (*adsdomain.ApplyRecommendationResponse, error) {
			require.Len(t, req.Operations, 1)
			assert.Equal(t, "customers/1234567890/recommendations/5", req.Operations[0].ResourceName)
			return &adsdomain.ApplyRecommendationResponse{
				Results: []adsdomain.MutateResult{{ResourceName: "customers/1234567890/recommendations/5"}},
			}, nil
		})

	resourceName, err := integrator.ApplyRecommendation(ctx, "1234567890", "5", "")
	require.NoError(t, err)
	assert.Equal(t, "customers/1234567890/recommendations/5", resourceName)
}

func TestDismissRecommendation(t *testing.T) {
	integrator, client := newIntegrator(t)
	ctx := context.Background()

	client.EXPECT().
		DismissRecommendation(ctx, "1234567890", gomock.Any(), "").
		Return(&adsdomain.DismissRecommendationResponse{}, nil)

	resourceName, err := integrator.DismissRecommendation(ctx, "1234567890", "5", "")
	require.NoError(t, err)
	assert.Equal(t, "customers/1234567890/recommendations/5", resourceName)
}
