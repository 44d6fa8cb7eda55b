package googleads

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads/domain"
)

// Membership changes stay active for 30 days unless re-uploaded.
const customerListMembershipDays = 30

type UserListCreation struct {
	ResourceName string
	UserListID   string
}

// CreateCustomerList creates a CRM-based Customer Match user list keyed by
// contact info.
func (s *GoogleAdsIntegrator) CreateCustomerList(ctx context.Context, customerID, listName, description, loginCustomerID string) (*UserListCreation, error) {
	if description == "" {
		description = "Customer Match list"
	}

	ops := []adsdomain.MutateOperation{{
		Create: map[string]any{
			"name":        listName,
			"description": description,
			"crmBasedUserList": map[string]any{
				"uploadKeyType": "CONTACT_INFO",
			},
			"membershipLifeSpan": fmt.Sprintf("%d", customerListMembershipDays),
		},
	}}

	response, err := s.Client.Mutate(ctx, customerID, "userLists", ops, loginCustomerID)
	if err != nil {
		return nil, err
	}
	if len(response.Results) == 0 {
		return nil, fmt.Errorf("user list mutate returned no results")
	}

	resourceName := response.Results[0].ResourceName
	return &UserListCreation{
		ResourceName: resourceName,
		UserListID:   lastPathSegment(resourceName),
	}, nil
}

type CustomerListMembersParams struct {
	CustomerID      string
	UserListID      string
	Emails          []string
	PhoneNumbers    []string
	Remove          bool
	LoginCustomerID string
}

type MembershipJob struct {
	JobResourceName    string
	OperationCount     int
	PartialFailureCode int
}

// UpdateCustomerListMembers adds or removes Customer Match members through
/// an offline user data job: create the job, append hashed identifiers with
// partial failure enabled, then run it.
func (s *GoogleAdsIntegrator) UpdateCustomerListMembers(ctx context.Context, params CustomerListMembersParams) (*MembershipJob, error) {
	job := adsdomain.OfflineUserDataJob{
		Type: "CUSTOMER_MATCH_USER_LIST",
		CustomerMatchUserListMetadata: &adsdomain.CustomerMatchUserListMetadata{
			UserList: userListPath(params.CustomerID, params.UserListID),
		},
	}

	createResponse, err := s.Client.CreateOfflineUserDataJob(ctx, params.CustomerID, job, params.LoginCustomerID)
	if err != nil {
		return nil, err
	}

	operations := buildMembershipOperations(params.Emails, params.PhoneNumbers, params.Remove)

	addRequest := &adsdomain.AddOfflineUserDataJobOperationsRequest{
		Operations:           operations,
		EnablePartialFailure: true,
	}

	addResponse, err := s.Client.AddOfflineUserDataJobOperations(ctx, createResponse.ResourceName, addRequest, params.LoginCustomerID)
	if err != nil {
		return nil, err
	}

	if err := s.Client.RunOfflineUserDataJob(ctx, createResponse.ResourceName, params.LoginCustomerID); err != nil {
		return nil, err
	}

	partialFailureCode := 0
	if addResponse.PartialFailureError != nil {
		partialFailureCode = addResponse.PartialFailureError.Code
	}

	logrus.WithFields(logrus.Fields{
		"customer_id":  params.CustomerID,
		"user_list_id": params.UserListID,
		"operations":   len(operations),
		"remove":       params.Remove,
	}).Info("audiences: customer list membership job started")

	return &MembershipJob{
		JobResourceName:    createResponse.ResourceName,
		OperationCount:     len(operations),
		PartialFailureCode: partialFailureCode,
	}, nil
}

// buildMembershipOperations hashes each identifier into one job operation.
func buildMembershipOperations(emails, phoneNumbers []string, remove bool) []adsdomain.OfflineUserDataJobOperation {
	operations := []adsdomain.OfflineUserDataJobOperation{}

	appendOperation := func(identifier adsdomain.UserIdentifier) {
		userData := &adsdomain.UserData{
			UserIdentifiers: []adsdomain.UserIdentifier{identifier},
		}
		operation := adsdomain.OfflineUserDataJobOperation{}
		if remove {
			operation.Remove = userData
		} else {
			operation.Create = userData
		}
		operations = append(operations, operation)
	}

	for _, email := range emails {
		appendOperation(adsdomain.UserIdentifier{
			HashedEmail: NormalizeAndHash(email, true),
		})
	}
	for _, phoneNumber := range phoneNumbers {
		appendOperation(adsdomain.UserIdentifier{
			HashedPhoneNumber: NormalizeAndHash(phoneNumber, true),
		})
	}

	return operations
}

type UploadConversionParams struct {
	CustomerID         string
	ConversionActionID string
	Gclid              string
	ConversionDateTime string
	ConversionValue    float64
	CurrencyCode       string
	LoginCustomerID    string
}

// UploadOfflineConversion uploads a single click conversion with partial
// failure enabled and echoes the first result.
func (s *GoogleAdsIntegrator) UploadOfflineConversion(ctx context.Context, params UploadConversionParams) (*adsdomain.ClickConversionResult, error) {
	conversion := adsdomain.ClickConversion{
		ConversionAction:   conversionActionPath(params.CustomerID, params.ConversionActionID),
		Gclid:              params.Gclid,
		ConversionDateTime: params.ConversionDateTime,
		ConversionValue:    params.ConversionValue,
		CurrencyCode:       params.CurrencyCode,
	}

	req := &adsdomain.UploadClickConversionsRequest{
		Conversions:    []adsdomain.ClickConversion{conversion},
		PartialFailure: true,
	}

	response, err := s.Client.UploadClickConversions(ctx, params.CustomerID, req, params.LoginCustomerID)
	if err != nil {
		return nil, err
	}
	if response.PartialFailureError != nil {
		return nil, fmt.Errorf("conversion upload failed: %s", response.PartialFailureError.Message)
	}
	if len(response.Results) == 0 {
		return nil, fmt.Errorf("conversion upload returned no results")
	}

	return &response.Results[0], nil
}

type KeywordIdeasParams struct {
	CustomerID      string
	Keywords        []string
	PageURL         string
	LanguageID      string
	GeoTargetIDs    []string
	LoginCustomerID string
}

// KeywordIdea is one planner suggestion with its historical metrics.
type KeywordIdea struct {
	Text                   string `json:"text"`
	AvgMonthlySearches     int64  `json:"avg_monthly_searches"`
	Competition            string `json:"competition"`
	CompetitionIndex       int64  `json:"competition_index"`
	LowTopOfPageBidMicros  int64  `json:"low_top_of_page_bid_micros"`
	HighTopOfPageBidMicros int64  `json:"high_top_of_page_bid_micros"`
}

// GenerateKeywordIdeas asks the keyword planner for ideas from keyword
// and/or URL seeds on the search-and-partners network.
func (s *GoogleAdsIntegrator) GenerateKeywordIdeas(ctx context.Context, params KeywordIdeasParams) ([]KeywordIdea, error) {
	languageID := params.LanguageID
	if languageID == "" {
		languageID = "1000" // English
	}

	geoTargets := make([]string, 0, len(params.GeoTargetIDs))
	for _, targetID := range params.GeoTargetIDs {
		geoTargets = append(geoTargets, fmt.Sprintf("geoTargetConstants/%s", targetID))
	}

	req := &adsdomain.GenerateKeywordIdeasRequest{
		Language:           fmt.Sprintf("languageConstants/%s", languageID),
		GeoTargetConstants: geoTargets,
		KeywordPlanNetwork: "GOOGLE_SEARCH_AND_PARTNERS",
	}

	switch {
	case len(params.Keywords) > 0 && params.PageURL != "":
		req.KeywordAndURLSeed = &adsdomain.KeywordAndURLSeed{
			URL:      params.PageURL,
			Keywords: params.Keywords,
		}
	case len(params.Keywords) > 0:
		req.KeywordSeed = &adsdomain.KeywordSeed{Keywords: params.Keywords}
	default:
		req.URLSeed = &adsdomain.URLSeed{URL: params.PageURL}
	}

	response, err := s.Client.GenerateKeywordIdeas(ctx, params.CustomerID, req, params.LoginCustomerID)
	if err != nil {
		return nil, err
	}

	ideas := make([]KeywordIdea, 0, len(response.Results))
	for _, result := range response.Results {
		idea := KeywordIdea{Text: result.Text}
		if metrics := result.KeywordIdeaMetrics; metrics != nil {
			idea.AvgMonthlySearches = parseMetric(metrics.AvgMonthlySearches)
			idea.Competition = metrics.Competition
			idea.CompetitionIndex = parseMetric(metrics.CompetitionIndex)
			idea.LowTopOfPageBidMicros = parseMetric(metrics.LowTopOfPageBidMicros)
			idea.HighTopOfPageBidMicros = parseMetric(metrics.HighTopOfPageBidMicros)
		}
		ideas = append(ideas, idea)
	}

	return ideas, nil
}

// parseMetric reads the int64-as-string values the REST surface produces.
func parseMetric(value string) int64 {
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}
