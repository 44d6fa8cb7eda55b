package googleads

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads/domain"
)

const defaultBudgetAmountMicros = 1_000_000

type CreateCampaignParams struct {
	CustomerID             string
	Name                   string
	AdvertisingChannelType string
	Status                 string
	BudgetAmountMicros     int64
	LoginCustomerID        string
}

type CampaignCreation struct {
	CampaignResourceName string
	CampaignID           string
	BudgetResourceName   string
	BudgetID             string
}

// CreateCampaign creates a dedicated budget first, then the campaign
// referencing it.
func (s *GoogleAdsIntegrator) CreateCampaign(ctx context.Context, params CreateCampaignParams) (*CampaignCreation, error) {
	budgetAmount := params.BudgetAmountMicros
	if budgetAmount <= 0 {
		budgetAmount = defaultBudgetAmountMicros
	}

	budgetOps := []adsdomain.MutateOperation{{
		Create: map[string]any{
			"name":             fmt.Sprintf("%s Budget", params.Name),
			"deliveryMethod":   "STANDARD",
			"amountMicros":     fmt.Sprintf("%d", budgetAmount),
			"explicitlyShared": false,
		},
	}}

	budgetResponse, err := s.Client.Mutate(ctx, params.CustomerID, "campaignBudgets", budgetOps, params.LoginCustomerID)
	if err != nil {
		return nil, err
	}
	if len(budgetResponse.Results) == 0 {
		return nil, fmt.Errorf("campaign budget mutate returned no results")
	}
	budgetResourceName := budgetResponse.Results[0].ResourceName

	campaignOps := []adsdomain.MutateOperation{{
		Create: map[string]any{
			"name":                   params.Name,
			"status":                 params.Status,
			"advertisingChannelType": params.AdvertisingChannelType,
			"campaignBudget":         budgetResourceName,
		},
	}}

	campaignResponse, err := s.Client.Mutate(ctx, params.CustomerID, "campaigns", campaignOps, params.LoginCustomerID)
	if err != nil {
		return nil, err
	}
	if len(campaignResponse.Results) == 0 {
		return nil, fmt.Errorf("campaign mutate returned no results")
	}
	campaignResourceName := campaignResponse.Results[0].ResourceName

	logrus.WithFields(logrus.Fields{
		"customer_id": params.CustomerID,
		"campaign":    campaignResourceName,
	}).Info("campaigns: campaign created")

	return &CampaignCreation{
		CampaignResourceName: campaignResourceName,
		CampaignID:           lastPathSegment(campaignResourceName),
		BudgetResourceName:   budgetResourceName,
		BudgetID:             lastPathSegment(budgetResourceName),
	}, nil
}

// UpdateCampaignStatus updates only the status field of a campaign.
func (s *GoogleAdsIntegrator) UpdateCampaignStatus(ctx context.Context, customerID, campaignID, status, loginCustomerID string) (string, error) {
	resourceName := campaignPath(customerID, campaignID)

	ops := []adsdomain.MutateOperation{{
		Update: map[string]any{
			"resourceName": resourceName,
			"status":       status,
		},
		UpdateMask: "status",
	}}

	if _, err := s.Client.Mutate(ctx, customerID, "campaigns", ops, loginCustomerID); err != nil {
		return "", err
	}

	return resourceName, nil
}

// UpdateCampaignBudget looks up the campaign's budget resource and updates
// its amount.
func (s *GoogleAdsIntegrator) UpdateCampaignBudget(ctx context.Context, customerID, campaignID string, budgetAmountMicros int64, loginCustomerID string) (string, error) {
	query := fmt.Sprintf(
		"SELECT campaign.campaign_budget FROM campaign WHERE campaign.id = %s LIMIT 1",
		campaignID,
	)

	rows, err := s.Client.Search(ctx, customerID, query, loginCustomerID)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", fmt.Errorf("Campaign not found: %s", campaignID)
	}

	budgetResourceName := rowString(rows[0], "campaign.campaign_budget")

	ops := []adsdomain.MutateOperation{{
		Update: map[string]any{
			"resourceName": budgetResourceName,
			"amountMicros": fmt.Sprintf("%d", budgetAmountMicros),
		},
		UpdateMask: "amount_micros",
	}}

	if _, err := s.Client.Mutate(ctx, customerID, "campaignBudgets", ops, loginCustomerID); err != nil {
		return "", err
	}

	return budgetResourceName, nil
}

type CreateAdGroupParams struct {
	CustomerID      string
	CampaignID      string
	Name            string
	Status          string
	CpcBidMicros    int64
	LoginCustomerID string
}

type AdGroupCreation struct {
	ResourceName string
	AdGroupID    string
}

// CreateAdGroup creates a SEARCH_STANDARD ad group under a campaign.
func (s *GoogleAdsIntegrator) CreateAdGroup(ctx context.Context, params CreateAdGroupParams) (*AdGroupCreation, error) {
	create := map[string]any{
		"name":     params.Name,
		"campaign": campaignPath(params.CustomerID, params.CampaignID),
		"status":   params.Status,
		"type":     "SEARCH_STANDARD",
	}
	if params.CpcBidMicros > 0 {
		create["cpcBidMicros"] = fmt.Sprintf("%d", params.CpcBidMicros)
	}

	ops := []adsdomain.MutateOperation{{Create: create}}

	response, err := s.Client.Mutate(ctx, params.CustomerID, "adGroups", ops, params.LoginCustomerID)
	if err != nil {
		return nil, err
	}
	if len(response.Results) == 0 {
		return nil, fmt.Errorf("ad group mutate returned no results")
	}

	resourceName := response.Results[0].ResourceName
	return &AdGroupCreation{
		ResourceName: resourceName,
		AdGroupID:    lastPathSegment(resourceName),
	}, nil
}

type UpdateAdGroupParams struct {
	CustomerID      string
	AdGroupID       string
	Status          string
	Name            string
	CpcBidMicros    int64
	HasCpcBid       bool
	LoginCustomerID string
}

// UpdateAdGroup updates the provided subset of ad group fields.
func (s *GoogleAdsIntegrator) UpdateAdGroup(ctx context.Context, params UpdateAdGroupParams) (string, error) {
	resourceName := adGroupPath(params.CustomerID, params.AdGroupID)

	update := map[string]any{"resourceName": resourceName}
	maskPaths := []string{}

	if params.Status != "" {
		update["status"] = params.Status
		maskPaths = append(maskPaths, "status")
	}
	if params.Name != "" {
		update["name"] = params.Name
		maskPaths = append(maskPaths, "name")
	}
	if params.HasCpcBid {
		update["cpcBidMicros"] = fmt.Sprintf("%d", params.CpcBidMicros)
		maskPaths = append(maskPaths, "cpc_bid_micros")
	}

	ops := []adsdomain.MutateOperation{{
		Update:     update,
		UpdateMask: joinMask(maskPaths),
	}}

	if _, err := s.Client.Mutate(ctx, params.CustomerID, "adGroups", ops, params.LoginCustomerID); err != nil {
		return "", err
	}

	return resourceName, nil
}

type CreateResponsiveSearchAdParams struct {
	CustomerID      string
	AdGroupID       string
	Headlines       []string
	Descriptions    []string
	FinalURLs       []string
	LoginCustomerID string
}

type AdCreation struct {
	ResourceName string
	AdID         string
}

// CreateResponsiveSearchAd creates a paused responsive search ad.
func (s *GoogleAdsIntegrator) CreateResponsiveSearchAd(ctx context.Context, params CreateResponsiveSearchAdParams) (*AdCreation, error) {
	headlines := make([]map[string]any, 0, len(params.Headlines))
	for _, text := range params.Headlines {
		headlines = append(headlines, map[string]any{"text": text})
	}
	descriptions := make([]map[string]any, 0, len(params.Descriptions))
	for _, text := range params.Descriptions {
		descriptions = append(descriptions, map[string]any{"text": text})
	}

	ops := []adsdomain.MutateOperation{{
		Create: map[string]any{
			"adGroup": adGroupPath(params.CustomerID, params.AdGroupID),
			"status":  "PAUSED",
			"ad": map[string]any{
				"finalUrls": params.FinalURLs,
				"responsiveSearchAd": map[string]any{
					"headlines":    headlines,
					"descriptions": descriptions,
				},
			},
		},
	}}

	response, err := s.Client.Mutate(ctx, params.CustomerID, "adGroupAds", ops, params.LoginCustomerID)
	if err != nil {
		return nil, err
	}
	if len(response.Results) == 0 {
		return nil, fmt.Errorf("ad group ad mutate returned no results")
	}

	resourceName := response.Results[0].ResourceName
	return &AdCreation{
		ResourceName: resourceName,
		// Ad group ad names end in {adGroupId}~{adId}.
		AdID: lastTildeSegment(resourceName),
	}, nil
}

// UpdateAdStatus resolves the ad's ad group via GAQL, then updates the
// ad group ad status.
func (s *GoogleAdsIntegrator) UpdateAdStatus(ctx context.Context, customerID, adID, status, loginCustomerID string) (string, error) {
	query := fmt.Sprintf(
		"SELECT ad_group.id FROM ad_group_ad WHERE ad_group_ad.ad.id = %s LIMIT 1",
		adID,
	)

	rows, err := s.Client.Search(ctx, customerID, query, loginCustomerID)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", fmt.Errorf("Ad not found: %s", adID)
	}

	adGroupID := rowString(rows[0], "ad_group.id")
	resourceName := adGroupAdPath(customerID, adGroupID, adID)

	ops := []adsdomain.MutateOperation{{
		Update: map[string]any{
			"resourceName": resourceName,
			"status":       status,
		},
		UpdateMask: "status",
	}}

	if _, err := s.Client.Mutate(ctx, customerID, "adGroupAds", ops, loginCustomerID); err != nil {
		return "", err
	}

	return resourceName, nil
}

type AddKeywordsParams struct {
	CustomerID      string
	AdGroupID       string
	Keywords        []string
	MatchType       string
	LoginCustomerID string
}

// AddKeywords creates one enabled keyword criterion per keyword text.
func (s *GoogleAdsIntegrator) AddKeywords(ctx context.Context, params AddKeywordsParams) ([]string, error) {
	adGroup := adGroupPath(params.CustomerID, params.AdGroupID)

	ops := make([]adsdomain.MutateOperation, 0, len(params.Keywords))
	for _, keywordText := range params.Keywords {
		ops = append(ops, adsdomain.MutateOperation{
			Create: map[string]any{
				"adGroup": adGroup,
				"status":  "ENABLED",
				"keyword": map[string]any{
					"text":      keywordText,
					"matchType": params.MatchType,
				},
			},
		})
	}

	response, err := s.Client.Mutate(ctx, params.CustomerID, "adGroupCriteria", ops, params.LoginCustomerID)
	if err != nil {
		return nil, err
	}

	resourceNames := make([]string, 0, len(response.Results))
	for _, result := range response.Results {
		resourceNames = append(resourceNames, result.ResourceName)
	}

	return resourceNames, nil
}

// UpdateKeywordStatus updates the status of one ad group criterion.
func (s *GoogleAdsIntegrator) UpdateKeywordStatus(ctx context.Context, customerID, adGroupID, criterionID, status, loginCustomerID string) (string, error) {
	resourceName := adGroupCriterionPath(customerID, adGroupID, criterionID)

	ops := []adsdomain.MutateOperation{{
		Update: map[string]any{
			"resourceName": resourceName,
			"status":       status,
		},
		UpdateMask: "status",
	}}

	if _, err := s.Client.Mutate(ctx, customerID, "adGroupCriteria", ops, loginCustomerID); err != nil {
		return "", err
	}

	return resourceName, nil
}

// AddNegativeKeywords creates campaign-level negative keyword criteria,
// always BROAD match.
func (s *GoogleAdsIntegrator) AddNegativeKeywords(ctx context.Context, customerID, campaignID string, keywords []string, loginCustomerID string) ([]string, error) {
	campaign := campaignPath(customerID, campaignID)

	ops := make([]adsdomain.MutateOperation, 0, len(keywords))
	for _, keywordText := range keywords {
		ops = append(ops, adsdomain.MutateOperation{
			Create: map[string]any{
				"campaign": campaign,
				"negative": true,
				"keyword": map[string]any{
					"text":      keywordText,
					"matchType": "BROAD",
				},
			},
		})
	}

	response, err := s.Client.Mutate(ctx, customerID, "campaignCriteria", ops, loginCustomerID)
	if err != nil {
		return nil, err
	}

	resourceNames := make([]string, 0, len(response.Results))
	for _, result := range response.Results {
		resourceNames = append(resourceNames, result.ResourceName)
	}

	return resourceNames, nil
}

func joinMask(paths []string) string {
	return strings.Join(paths, ",")
}

func lastTildeSegment(resourceName string) string {
	for i := len(resourceName) - 1; i >= 0; i-- {
		if resourceName[i] == '~' {
			return resourceName[i+1:]
		}
	}
	return resourceName
}
