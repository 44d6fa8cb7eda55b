package googleads

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads/adsclient"
	adsdomain "github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-mcp-api/internal/config"
)

// Integrator is the application-facing surface of the Google Ads API. Tool
// handlers validate input and shape output; this layer builds the REST
// payloads and owns the resource-name arithmetic.
type Integrator interface {
	ListAccessibleAccounts(ctx context.Context) ([]string, error)
	ExecuteGAQL(ctx context.Context, customerID, query, loginCustomerID string) ([]adsdomain.Row, string, error)

	CreateCampaign(ctx context.Context, params CreateCampaignParams) (*CampaignCreation, error)
	UpdateCampaignStatus(ctx context.Context, customerID, campaignID, status, loginCustomerID string) (string, error)
	UpdateCampaignBudget(ctx context.Context, customerID, campaignID string, budgetAmountMicros int64, loginCustomerID string) (string, error)

	CreateAdGroup(ctx context.Context, params CreateAdGroupParams) (*AdGroupCreation, error)
	UpdateAdGroup(ctx context.Context, params UpdateAdGroupParams) (string, error)

	CreateResponsiveSearchAd(ctx context.Context, params CreateResponsiveSearchAdParams) (*AdCreation, error)
	UpdateAdStatus(ctx context.Context, customerID, adID, status, loginCustomerID string) (string, error)

	AddKeywords(ctx context.Context, params AddKeywordsParams) ([]string, error)
	UpdateKeywordStatus(ctx context.Context, customerID, adGroupID, criterionID, status, loginCustomerID string) (string, error)
	AddNegativeKeywords(ctx context.Context, customerID, campaignID string, keywords []string, loginCustomerID string) ([]string, error)

	CreateCustomerList(ctx context.Context, customerID, listName, description, loginCustomerID string) (*UserListCreation, error)
	UpdateCustomerListMembers(ctx context.Context, params CustomerListMembersParams) (*MembershipJob, error)

	UploadOfflineConversion(ctx context.Context, params UploadConversionParams) (*adsdomain.ClickConversionResult, error)

	GetChangeEvents(ctx context.Context, params ChangeEventsParams) ([]ChangeEvent, error)

	GetRecommendations(ctx context.Context, customerID string, recommendationTypes []string, loginCustomerID string) ([]Recommendation, error)
	ApplyRecommendation(ctx context.Context, customerID, recommendationID, loginCustomerID string) (string, error)
	DismissRecommendation(ctx context.Context, customerID, recommendationID, loginCustomerID string) (string, error)

	GenerateKeywordIdeas(ctx context.Context, params KeywordIdeasParams) ([]KeywordIdea, error)
}

type GoogleAdsIntegrator struct {
	cfg    config.GoogleAds
	Client adsclient.Client
}

func New(cfg config.GoogleAds, client adsclient.Client) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// PreprocessGAQL appends omit_unselected_resource_names=true so result rows
// stay free of resource names the query never selected.
func PreprocessGAQL(query string) string {
	if strings.Contains(query, "omit_unselected_resource_names") {
		return query
	}
	if strings.Contains(query, "PARAMETERS") && strings.Contains(query, "include_drafts") {
		return query + " omit_unselected_resource_names=true"
	}
	return query + " PARAMETERS omit_unselected_resource_names=true"
}

// NormalizeAndHash lowercases, trims and SHA-256 hashes a Customer Match
// identifier, the normalization the API mandates for contact info uploads.
func NormalizeAndHash(value string, removeAllWhitespace bool) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if removeAllWhitespace {
		normalized = strings.Join(strings.Fields(normalized), "")
	}
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

func campaignPath(customerID, campaignID string) string {
	return fmt.Sprintf("customers/%s/campaigns/%s", customerID, campaignID)
}

func adGroupPath(customerID, adGroupID string) string {
	return fmt.Sprintf("customers/%s/adGroups/%s", customerID, adGroupID)
}

func adGroupAdPath(customerID, adGroupID, adID string) string {
	return fmt.Sprintf("customers/%s/adGroupAds/%s~%s", customerID, adGroupID, adID)
}

func adGroupCriterionPath(customerID, adGroupID, criterionID string) string {
	return fmt.Sprintf("customers/%s/adGroupCriteria/%s~%s", customerID, adGroupID, criterionID)
}

func userListPath(customerID, userListID string) string {
	return fmt.Sprintf("customers/%s/userLists/%s", customerID, userListID)
}

func conversionActionPath(customerID, conversionActionID string) string {
	return fmt.Sprintf("customers/%s/conversionActions/%s", customerID, conversionActionID)
}

func recommendationPath(customerID, recommendationID string) string {
	return fmt.Sprintf("customers/%s/recommendations/%s", customerID, recommendationID)
}

func lastPathSegment(resourceName string) string {
	parts := strings.Split(resourceName, "/")
	return parts[len(parts)-1]
}

// rowString reads a flattened GAQL row value as a string. The REST surface
// renders int64 fields as JSON strings, so both arrive here.
func rowString(row adsdomain.Row, key string) string {
	switch v := row[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func rowBool(row adsdomain.Row, key string) bool {
	v, _ := row[key].(bool)
	return v
}
