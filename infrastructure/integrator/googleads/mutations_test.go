package googleads_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads"
	adsdomain "github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads/adsclient/mocks"
	"github.com/vfg2006/ads-mcp-api/internal/config"
	"go.uber.org/mock/gomock"
)

func newIntegrator(t *testing.T) (*googleads.GoogleAdsIntegrator, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	return googleads.New(config.GoogleAds{}, client), client
}

func TestCreateCampaign(t *testing.T) {
	integrator, client := newIntegrator(t)
	ctx := context.Background()

	client.EXPECT().
		Mutate(ctx, "1234567890", "campaignBudgets", gomock.Any(), "").
		DoAndReturn(func(_ context.Context, _, _ string, ops []adsdomain.MutateOperation, _ string) (*adsdomain.MutateResponse, error) {
			require.Len(t, ops, 1)
			assert.Equal(t, "Summer Sale Budget", ops[0].Create["name"])
			assert.Equal(t, "STANDARD", ops[0].Create["deliveryMethod"])
			assert.Equal(t, "1000000", ops[0].Create["amountMicros"])
			assert.Equal(t, false, ops[0].Create["explicitlyShared"])
			return &adsdomain.MutateResponse{Results: []adsdomain.MutateResult{
				{ResourceName: "customers/1234567890/campaignBudgets/111"},
			}}, nil
		})

	client.EXPECT().
		Mutate(ctx, "1234567890", "campaigns", gomock.Any(), "").
		DoAndReturn(func(_ context.Context, _, _ string, ops []adsdomain.MutateOperation, _ string) (*adsdomain.MutateResponse, error) {
			require.Len(t, ops, 1)
			assert.Equal(t, "PAUSED", ops[0].Create["status"])
			assert.Equal(t, "SEARCH", ops[0].Create["advertisingChannelType"])
			assert.Equal(t, "customers/1234567890/campaignBudgets/111", ops[0].Create["campaignBudget"])
			return &adsdomain.MutateResponse{Results: []adsdomain.MutateResult{
				{ResourceName: "customers/1234567890/campaigns/222"},
			}}, nil
		})

	creation, err := integrator.CreateCampaign(ctx, googleads.CreateCampaignParams{
		CustomerID:             "1234567890",
		Name:                   "Summer Sale",
		AdvertisingChannelType: "SEARCH",
		Status:                 "PAUSED",
	})
	require.NoError(t, err)

	assert.Equal(t, "222", creation.CampaignID)
	assert.Equal(t, "111", creation.BudgetID)
	assert.Equal(t, "customers/1234567890/campaigns/222", creation.CampaignResourceName)
}

func TestUpdateCampaignBudget_CampaignNotFound(t *testing.T) {
	integrator, client := newIntegrator(t)
	ctx := context.Background()

	client.EXPECT().
		Search(ctx, "1234567890", "SELECT campaign.campaign_budget FROM campaign WHERE campaign.id = 42 LIMIT 1", "").
		Return(nil, nil)

	_, err := integrator.UpdateCampaignBudget(ctx, "1234567890", "42", 5_000_000, "")
	require.Error(t, err)
	assert.Equal(t, "Campaign not found: 42", err.Error())
}

func TestUpdateCampaignBudget(t *testing.T) {
	integrator, client := newIntegrator(t)
	ctx := context.Background()

	client.EXPECT().
		Search(ctx, "1234567890", gomock.Any(), "").
		Return([]adsdomain.Row{
			{"campaign.campaign_budget": "customers/1234567890/campaignBudgets/111"},
		}, nil)

	client.EXPECT().
		Mutate(ctx, "1234567890", "campaignBudgets", gomock.Any(), "").
		DoAndReturn(func(_ context.Context, _, _ string, ops []adsdomain.MutateOperation, _ string) (*adsdomain.MutateResponse, error) {
			require.Len(t, ops, 1)
			assert.Equal(t, "5000000", ops[0].Update["amountMicros"])
			assert.Equal(t, "amount_micros", ops[0].UpdateMask)
			return &adsdomain.MutateResponse{}, nil
		})

	resourceName, err := integrator.UpdateCampaignBudget(ctx, "1234567890", "42", 5_000_000, "")
	require.NoError(t, err)
	assert.Equal(t, "customers/1234567890/campaignBudgets/111", resourceName)
}

func TestUpdateAdStatus_AdNotFound(t *testing.T) {
	integrator, client := newIntegrator(t)
	ctx := context.Background()

	client.EXPECT().
		Search(ctx, "1234567890", "SELECT ad_group.id FROM ad_group_ad WHERE ad_group_ad.ad.id = 99 LIMIT 1", "").
		Return([]adsdomain.Row{}, nil)

	_, err := integrator.UpdateAdStatus(ctx, "1234567890", "99", "PAUSED", "")
	require.Error(t, err)
	assert.Equal(t, "Ad not found: 99", err.Error())
}

func TestUpdateAdStatus(t *testing.T) {
	integrator, client := newIntegrator(t)
	ctx := context.Background()

	client.EXPECT().
		Search(ctx, "1234567890", gomock.Any(), "").
		Return([]adsdomain.Row{{"ad_group.id": "555"}}, nil)

	client.EXPECT().
		Mutate(ctx, "1234567890", "adGroupAds", gomock.Any(), "").
		DoAndReturn(func(_ context.Context, _, _ string, ops []adsdomain.MutateOperation, _ string) (*adsdomain.MutateResponse, error) {
			require.Len(t, ops, 1)
			assert.Equal(t, "customers/1234567890/adGroupAds/555~99", ops[0].Update["resourceName"])
			assert.Equal(t, "status", ops[0].UpdateMask)
			return &adsdomain.MutateResponse{}, nil
		})

	resourceName, err := integrator.UpdateAdStatus(ctx, "1234567890", "99", "PAUSED", "")
	require.NoError(t, err)
	assert.Equal(t, "customers/1234567890/adGroupAds/555~99", resourceName)
}

func TestCreateResponsiveSearchAd(t *testing.T) {
	integrator, client := newIntegrator(t)
	ctx := context.Background()

	client.EXPECT().
		Mutate(ctx, "1234567890", "adGroupAds", gomock.Any(), "").
		DoAndReturn(func(_ context.Context, _, _ string, ops []adsdomain.MutateOperation, _ string) (*adsdomain.MutateResponse, error) {
			require.Len(t, ops, 1)
			assert.Equal(t, "PAUSED", ops[0].Create["status"])
			ad := ops[0].Create["ad"].(map[string]any)
			rsa := ad["responsiveSearchAd"].(map[string]any)
			assert.Equal(t, []map[string]any{{"text": "Buy now"}}, rsa["headlines"])
			return &adsdomain.MutateResponse{Results: []adsdomain.MutateResult{
				{ResourceName: "customers/1234567890/adGroupAds/555~99"},
			}}, nil
		})

	creation, err := integrator.CreateResponsiveSearchAd(ctx, googleads.CreateResponsiveSearchAdParams{
		CustomerID:   "1234567890",
		AdGroupID:    "555",
		Headlines:    []string{"Buy now"},
		Descriptions: []string{"Great deals"},
		FinalURLs:    []string{"https://example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, "99", creation.AdID)
}

func TestUpdateAdGroup_MaskPaths(t *testing.T) {
	integrator, client := newIntegrator(t)
	ctx := context.Background()

	client.EXPECT().
		Mutate(ctx, "1234567890", "adGroups", gomock.Any(), "").
		DoAndReturn(func(_ context.Context, _, _ string, ops []adsdomain.MutateOperation, _ string) (*adsdomain.MutateResponse, error) {
			require.Len(t, ops, 1)
			assert.Equal(t, "status,cpc_bid_micros", ops[0].UpdateMask)
			assert.Equal(t, "2500000", ops[0].Update["cpcBidMicros"])
			return &adsdomain.MutateResponse{}, nil
		})

	_, err := integrator.UpdateAdGroup(ctx, googleads.UpdateAdGroupParams{
		CustomerID:   "1234567890",
		AdGroupID:    "555",
		Status:       "PAUSED",
		CpcBidMicros: 2_500_000,
		HasCpcBid:    true,
	})
	require.NoError(t, err)
}

func TestAddNegativeKeywords(t *testing.T) {
	integrator, client := newIntegrator(t)
	ctx := context.Background()

	client.EXPECT().
		Mutate(ctx, "1234567890", "campaignCriteria", gomock.Any(), "").
		DoAndReturn(func(_ context.Context, _, _ string, ops []adsdomain.MutateOperation, _ string) (*adsdomain.MutateResponse, error) {
			require.Len(t, ops, 2)
			assert.Equal(t, true, ops[0].Create["negative"])
			keyword := ops[0].Create["keyword"].(map[string]any)
			assert.Equal(t, "BROAD", keyword["matchType"])
			return &adsdomain.MutateResponse{Results: []adsdomain.MutateResult{
				{ResourceName: "customers/1234567890/campaignCriteria/42~1"},
				{ResourceName: "customers/1234567890/campaignCriteria/42~2"},
			}}, nil
		})

	resourceNames, err := integrator.AddNegativeKeywords(ctx, "1234567890", "42", []string{"free", "cheap"}, "")
	require.NoError(t, err)
	assert.Len(t, resourceNames, 2)
}
