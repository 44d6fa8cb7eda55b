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

func TestCreateCustomerList_Defaults(t *testing.T) {
	integrator, client := newIntegrator(t)
	ctx := context.Background()

	client.EXPECT().
		Mutate(ctx, "1234567890", "userLists", gomock.Any(), "").
		DoAndReturn(func(_ context.Context, _, _ string, ops []adsdomain.MutateOperation, _ string) (*adsdomain.MutateResponse, error) {
			require.Len(t, ops, 1)
			assert.Equal(t, "Customer Match list", ops[0].Create["description"])
			assert.Equal(t, "30", ops[0].Create["membershipLifeSpan"])
			crm := ops[0].Create["crmBasedUserList"].(map[string]any)
			assert.Equal(t, "CONTACT_INFO", crm["uploadKeyType"])
			return &adsdomain.MutateResponse{Results: []adsdomain.MutateResult{
				{ResourceName: "customers/1234567890/userLists/777"},
			}}, nil
		})

	creation, err := integrator.CreateCustomerList(ctx, "1234567890", "My list", "", "")
	require.NoError(t, err)
	assert.Equal(t, "777", creation.UserListID)
}

func TestUpdateCustomerListMembers(t *testing.T) {
	integrator, client := newIntegrator(t)
	ctx := context.Background()

	client.EXPECT().
		CreateOfflineUserDataJob(ctx, "1234567890", gomock.Any(), "").
		DoAndReturn(func(_ context.Context, _ string, job adsdomain.OfflineUserDataJob, _ string) (*adsdomain.CreateOfflineUserDataJobResponse, error) {
			assert.Equal(t, "CUSTOMER_MATCH_USER_LIST", job.Type)
			require.NotNil(t, job.CustomerMatchUserListMetadata)
			assert.Equal(t, "customers/1234567890/userLists/777", job.CustomerMatchUserListMetadata.UserList)
			return &adsdomain.CreateOfflineUserDataJobResponse{
				ResourceName: "customers/1234567890/offlineUserDataJobs/88",
			}, nil
		})

	client.EXPECT().
		AddOfflineUserDataJobOperations(ctx, "customers/1234567890/offlineUserDataJobs/88", gomock.Any(), "").
		DoAndReturn(func(_ context.Context, _ string, req *adsdomain.AddOfflineUserDataJobOperationsRequest, _ string) (*adsdomain.AddOfflineUserDataJobOperationsResponse, error) {
			assert.True(t, req.EnablePartialFailure)
			require.Len(t, req.Operations, 2)

			// Hashed email first, hashed phone second.
			require.NotNil(t, req.Operations[0].Create)
			assert.Equal(t,
				"ff8d9819fc0e12bf0d24892e45987e249a28dce836a85cad60e28eaaa8c6d976",
				req.Operations[0].Create.UserIdentifiers[0].HashedEmail,
			)
			require.NotNil(t, req.Operations[1].Create)
			assert.Equal(t,
				"8a59780bb8cd2ba022bfa5ba2ea3b6e07af17a7d8b30c1f9b3390e36f69019e4",
				req.Operations[1].Create.UserIdentifiers[0].HashedPhoneNumber,
			)
			return &adsdomain.AddOfflineUserDataJobOperationsResponse{}, nil
		})

	client.EXPECT().
		RunOfflineUserDataJob(ctx, "customers/1234567890/offlineUserDataJobs/88", "").
		Return(nil)

	job, err := integrator.UpdateCustomerListMembers(ctx, googleads.CustomerListMembersParams{
		CustomerID:   "1234567890",
		UserListID:   "777",
		Emails:       []string{"Alice@Example.com"},
		PhoneNumbers: []string{"+1 555 123 4567"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, job.OperationCount)
	assert.Equal(t, 0, job.PartialFailureCode)
}

func TestUpdateCustomerListMembers_Remove(t *testing.T) {
	integrator, client := newIntegrator(t)
	ctx := context.Background()

	client.EXPECT().
		CreateOfflineUserDataJob(ctx, "1234567890", gomock.Any(), "").
		Return(&adsdomain.CreateOfflineUserDataJobResponse{
			ResourceName: "customers/1234567890/offlineUserDataJobs/89",
		}, nil)

	client.EXPECT().
		AddOfflineUserDataJobOperations(ctx, gomock.Any(), gomock.Any(), "").
		DoAndReturn(func(_ context.Context, _ string, req *adsdomain.AddOfflineUserDataJobOperationsRequest, _ string) (*adsdomain.AddOfflineUserDataJobOperationsResponse, error) {
			require.Len(t, req.Operations, 1)
			assert.Nil(t, req.Operations[0].Create)
			require.NotNil(t, req.Operations[0].Remove)
			return &adsdomain.AddOfflineUserDataJobOperationsResponse{
				PartialFailureError: &adsdomain.ErrorStatus{Code: 3},
			}, nil
		})

	client.EXPECT().
		RunOfflineUserDataJob(ctx, gomock.Any(), "").
		Return(nil)

	job, err := integrator.UpdateCustomerListMembers(ctx, googleads.CustomerListMembersParams{
		CustomerID: "1234567890",
		UserListID: "777",
		Emails:     []string{"bob@example.com"},
		Remove:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, job.PartialFailureCode)
}

func TestUploadOfflineConversion(t *testing.T) {
	integrator, client := newIntegrator(t)
	ctx := context.Background()

	client.EXPECT().
		UploadClickConversions(ctx, "1234567890", gomock.Any(), "").
		DoAndReturn(func(_ context.Context, _ string, req *adsdomain.UploadClickConversionsRequest, _ string) (*adsdomain.UploadClickConversionsResponse, error) {
			assert.True(t, req.PartialFailure)
			require.Len(t, req.Conversions, 1)
			assert.Equal(t, "customers/1234567890/conversionActions/33", req.Conversions[0].ConversionAction)
			return &adsdomain.UploadClickConversionsResponse{
				Results: []adsdomain.ClickConversionResult{{
					ConversionAction:   "customers/1234567890/conversionActions/33",
					ConversionDateTime: "2025-01-15 10:00:00+00:00",
					Gclid:              "abc123",
				}},
			}, nil
		})

	result, err := integrator.UploadOfflineConversion(ctx, googleads.UploadConversionParams{
		CustomerID:         "1234567890",
		ConversionActionID: "33",
		Gclid:              "abc123",
		ConversionDateTime: "2025-01-15 10:00:00+00:00",
		ConversionValue:    12.5,
		CurrencyCode:       "USD",
	})
	require.NoError(t, err)
	assert.Equal(t, "abc123", result.Gclid)
}

func TestUploadOfflineConversion_PartialFailure(t *testing.T) {
	integrator, client := newIntegrator(t)
	ctx := context.Background()

	client.EXPECT().
		UploadClickConversions(ctx, "1234567890", gomock.Any(), "").
		Return(&adsdomain.UploadClickConversionsResponse{
			PartialFailureError: &adsdomain.ErrorStatus{Code: 3, Message: "gclid expired"},
		}, nil)

	_, err := integrator.UploadOfflineConversion(ctx, googleads.UploadConversionParams{
		CustomerID:         "1234567890",
		ConversionActionID: "33",
		Gclid:              "stale",
		ConversionDateTime: "2025-01-15 10:00:00+00:00",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gclid expired")
}

func TestGenerateKeywordIdeas_Seeds(t *testing.T) {
	integrator, client := newIntegrator(t)
	ctx := context.Background()

	client.EXPECT().
		GenerateKeywordIdeas(ctx, "1234567890", gomock.Any(), "").
		DoAndReturn(func(_ context.Context, _ string, req *adsdomain.GenerateKeywordIdeasRequest, _ string) (*adsdomain.GenerateKeywordIdeasResponse, error) {
			assert.Equal(t, "languageConstants/1000", req.Language)
			assert.Equal(t, []string{"geoTargetConstants/2840"}, req.GeoTargetConstants)
			assert.Equal(t, "GOOGLE_SEARCH_AND_PARTNERS", req.KeywordPlanNetwork)
			require.NotNil(t, req.KeywordAndURLSeed)
			assert.Equal(t, "https://example.com", req.KeywordAndURLSeed.URL)
			return &adsdomain.GenerateKeywordIdeasResponse{
				Results: []adsdomain.KeywordIdea{{
					Text: "running shoes",
					KeywordIdeaMetrics: &adsdomain.KeywordIdeaMetrics{
						AvgMonthlySearches: "1200",
						Competition:        "HIGH",
						CompetitionIndex:   "87",
					},
				}},
			}, nil
		})

	ideas, err := integrator.GenerateKeywordIdeas(ctx, googleads.KeywordIdeasParams{
		CustomerID:   "1234567890",
		Keywords:     []string{"shoes"},
		PageURL:      "https://example.com",
		GeoTargetIDs: []string{"2840"},
	})
	require.NoError(t, err)
	require.Len(t, ideas, 1)
	assert.Equal(t, int64(1200), ideas[0].AvgMonthlySearches)
	assert.Equal(t, "HIGH", ideas[0].Competition)
	assert.Equal(t, int64(87), ideas[0].CompetitionIndex)
}
