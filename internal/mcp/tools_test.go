package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads/mocks"
	"github.com/vfg2006/ads-mcp-api/internal/config"
	"go.uber.org/mock/gomock"
)

type recordedCall struct {
	tool       string
	customerID string
	err        error
}

type captureRecorder struct {
	calls []recordedCall
}

func (r *captureRecorder) Record(_ context.Context, tool, customerID string, _ time.Duration, callErr error) {
	r.calls = append(r.calls, recordedCall{tool: tool, customerID: customerID, err: callErr})
}

func newTestDeps(t *testing.T) (*deps, *mocks.MockIntegrator, *captureRecorder) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)
	recorder := &captureRecorder{}
	return &deps{integrator: integrator, recorder: recorder}, integrator, recorder
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := New(config.GoogleAds{}, mocks.NewMockIntegrator(ctrl), nil)
	require.NotNil(t, server)
}

func TestCreateCampaign_DefaultsAndNormalization(t *testing.T) {
	d, integrator, _ := newTestDeps(t)
	ctx := context.Background()

	integrator.EXPECT().
		CreateCampaign(ctx, googleads.CreateCampaignParams{
			CustomerID:             "1234567890",
			Name:                   "Summer Sale",
			AdvertisingChannelType: "SEARCH",
			Status:                 "PAUSED",
		}).
		Return(&googleads.CampaignCreation{
			CampaignResourceName: "customers/1234567890/campaigns/222",
			CampaignID:           "222",
			BudgetResourceName:   "customers/1234567890/campaignBudgets/111",
			BudgetID:             "111",
		}, nil)

	_, result, err := d.createCampaign(ctx, nil, CreateCampaignInput{
		CustomerID:             "123-456-7890",
		Name:                   "Summer Sale",
		AdvertisingChannelType: "SEARCH",
	})
	require.NoError(t, err)
	assert.Equal(t, "222", result.CampaignID)
	assert.Equal(t, "111", result.BudgetID)
}

func TestCreateCampaign_InvalidStatus(t *testing.T) {
	d, _, _ := newTestDeps(t)

	_, _, err := d.createCampaign(context.Background(), nil, CreateCampaignInput{
		CustomerID:             "1234567890",
		Name:                   "Summer Sale",
		AdvertisingChannelType: "SEARCH",
		Status:                 "RUNNING",
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid status: RUNNING", err.Error())
}

func TestCreateCampaign_InvalidChannelType(t *testing.T) {
	d, _, _ := newTestDeps(t)

	_, _, err := d.createCampaign(context.Background(), nil, CreateCampaignInput{
		CustomerID:             "1234567890",
		Name:                   "Summer Sale",
		AdvertisingChannelType: "PODCAST",
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid advertising_channel_type: PODCAST", err.Error())
}

func TestSearchAds_BuildsQuery(t *testing.T) {
	d, integrator, _ := newTestDeps(t)
	ctx := context.Background()
	limit := int64(50)

	expectedQuery := "SELECT campaign.id, metrics.clicks FROM campaign" +
		" WHERE campaign.status = 'ENABLED' AND metrics.clicks > 0" +
		" ORDER BY metrics.clicks DESC LIMIT 50"

	integrator.EXPECT().
		ExecuteGAQL(ctx, "1234567890", expectedQuery, "").
		Return(nil, expectedQuery+" PARAMETERS omit_unselected_resource_names=true", nil)

	_, result, err := d.searchAds(ctx, nil, SearchAdsInput{
		CustomerID: "1234567890",
		Resource:   "campaign",
		Fields:     []string{"campaign.id", "metrics.clicks"},
		Conditions: []string{"campaign.status = 'ENABLED'", "metrics.clicks > 0"},
		Orderings:  []string{"metrics.clicks DESC"},
		Limit:      &limit,
	})
	require.NoError(t, err)
	assert.Contains(t, result.Query, "omit_unselected_resource_names=true")
}

func TestSearchAds_RequiresFields(t *testing.T) {
	d, _, _ := newTestDeps(t)

	_, _, err := d.searchAds(context.Background(), nil, SearchAdsInput{
		CustomerID: "1234567890",
		Resource:   "campaign",
	})
	require.Error(t, err)
	assert.Equal(t, "fields must not be empty", err.Error())
}

func TestUpdateAdGroup_RequiresAField(t *testing.T) {
	d, _, _ := newTestDeps(t)

	_, _, err := d.updateAdGroup(context.Background(), nil, UpdateAdGroupInput{
		CustomerID: "1234567890",
		AdGroupID:  "555",
	})
	require.Error(t, err)
	assert.Equal(t, "At least one of status, name, or cpc_bid_micros is required", err.Error())
}

func TestUpdateAdGroup_ZeroBidIsExplicit(t *testing.T) {
	d, integrator, _ := newTestDeps(t)
	ctx := context.Background()
	bid := int64(0)

	integrator.EXPECT().
		UpdateAdGroup(ctx, googleads.UpdateAdGroupParams{
			CustomerID:   "1234567890",
			AdGroupID:    "555",
			CpcBidMicros: 0,
			HasCpcBid:    true,
		}).
		Return("customers/1234567890/adGroups/555", nil)

	_, result, err := d.updateAdGroup(ctx, nil, UpdateAdGroupInput{
		CustomerID:   "1234567890",
		AdGroupID:    "555",
		CpcBidMicros: &bid,
	})
	require.NoError(t, err)
	assert.Equal(t, "555", result.AdGroupID)
}

func TestAddKeywords_DefaultMatchType(t *testing.T) {
	d, integrator, _ := newTestDeps(t)
	ctx := context.Background()

	integrator.EXPECT().
		AddKeywords(ctx, googleads.AddKeywordsParams{
			CustomerID: "1234567890",
			AdGroupID:  "555",
			Keywords:   []string{"running shoes"},
			MatchType:  "BROAD",
		}).
		Return([]string{"customers/1234567890/adGroupCriteria/555~1"}, nil)

	_, result, err := d.addKeywords(ctx, nil, AddKeywordsInput{
		CustomerID: "1234567890",
		AdGroupID:  "555",
		Keywords:   []string{"running shoes"},
	})
	require.NoError(t, err)
	assert.Len(t, result.KeywordResourceNames, 1)
}

func TestAddKeywords_EmptyKeywords(t *testing.T) {
	d, _, _ := newTestDeps(t)

	_, _, err := d.addKeywords(context.Background(), nil, AddKeywordsInput{
		CustomerID: "1234567890",
		AdGroupID:  "555",
	})
	require.Error(t, err)
	assert.Equal(t, "keywords must not be empty", err.Error())
}

func TestCustomerListMembers_RequiresIdentifiers(t *testing.T) {
	d, _, _ := newTestDeps(t)

	_, _, err := d.addCustomerListMembers(context.Background(), nil, CustomerListMembersInput{
		CustomerID: "1234567890",
		UserListID: "777",
	})
	require.Error(t, err)
	assert.Equal(t, "At least one of emails or phone_numbers is required", err.Error())
}

func TestGetChangeEvents_RejectsBadDates(t *testing.T) {
	d, _, _ := newTestDeps(t)
	ctx := context.Background()

	_, _, err := d.getChangeEvents(ctx, nil, GetChangeEventsInput{CustomerID: "1234567890"})
	require.Error(t, err)
	assert.Equal(t, "start_date is required", err.Error())

	_, _, err = d.getChangeEvents(ctx, nil, GetChangeEventsInput{
		CustomerID: "1234567890",
		StartDate:  "01/15/2025",
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid start_date: 01/15/2025", err.Error())
}

func TestInstrument_RecordsInvocation(t *testing.T) {
	d, _, recorder := newTestDeps(t)

	handler := instrument(d, "update_campaign_status",
		func(_ context.Context, _ *mcp.CallToolRequest, _ UpdateCampaignStatusInput) (*mcp.CallToolResult, UpdateCampaignStatusResult, error) {
			return nil, UpdateCampaignStatusResult{}, nil
		})

	_, _, err := handler(context.Background(), nil, UpdateCampaignStatusInput{
		CustomerID: "123-456-7890",
		CampaignID: "42",
		Status:     "PAUSED",
	})
	require.NoError(t, err)

	require.Len(t, recorder.calls, 1)
	assert.Equal(t, "update_campaign_status", recorder.calls[0].tool)
	assert.Equal(t, "1234567890", recorder.calls[0].customerID)
	assert.NoError(t, recorder.calls[0].err)
}

func TestInstrument_RecordsHandlerError(t *testing.T) {
	d, _, recorder := newTestDeps(t)

	handler := instrument(d, "execute_gaql",
		func(_ context.Context, _ *mcp.CallToolRequest, _ ExecuteGAQLInput) (*mcp.CallToolResult, ExecuteGAQLResult, error) {
			return nil, ExecuteGAQLResult{}, assert.AnError
		})

	_, _, err := handler(context.Background(), nil, ExecuteGAQLInput{CustomerID: "1234567890"})
	require.Error(t, err)

	require.Len(t, recorder.calls, 1)
	assert.Equal(t, assert.AnError, recorder.calls[0].err)
}

func TestValidateEnum(t *testing.T) {
	require.NoError(t, validateEnum(keywordMatchTypes, "EXACT", "match_type"))

	err := validateEnum(keywordMatchTypes, "NARROW", "match_type")
	require.Error(t, err)
	assert.Equal(t, "Invalid match_type: NARROW", err.Error())
}
