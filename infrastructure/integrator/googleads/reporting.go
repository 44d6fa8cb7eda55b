package googleads

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads/domain"
)

// ListAccessibleAccounts returns the customer ids the authenticated user
// can use as login_customer_id.
func (s *GoogleAdsIntegrator) ListAccessibleAccounts(ctx context.Context) ([]string, error) {
	resourceNames, err := s.Client.ListAccessibleCustomers(ctx)
	if err != nil {
		logrus.WithError(err).Error("accounts: failed to list accessible customers")
		return nil, err
	}

	accounts := make([]string, 0, len(resourceNames))
	for _, resourceName := range resourceNames {
		accounts = append(accounts, lastPathSegment(resourceName))
	}

	return accounts, nil
}

// ExecuteGAQL runs a GAQL query through the streaming endpoint and returns
// the flattened rows plus the query that was actually sent.
func (s *GoogleAdsIntegrator) ExecuteGAQL(ctx context.Context, customerID, query, loginCustomerID string) ([]adsdomain.Row, string, error) {
	query = PreprocessGAQL(query)

	rows, err := s.Client.SearchStream(ctx, customerID, query, loginCustomerID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("reporting: GAQL query failed")
		return nil, query, err
	}

	return rows, query, nil
}

// ChangeEventsParams filters the change_event query.
type ChangeEventsParams struct {
	CustomerID      string
	StartDate       string
	EndDate         string
	ResourceType    string
	LoginCustomerID string
}

// ChangeEvent is one account change record.
type ChangeEvent struct {
	ResourceName            string `json:"resource_name"`
	ChangeDateTime          string `json:"change_date_time"`
	ChangeResourceType      string `json:"change_resource_type"`
	ChangeResourceName      string `json:"change_resource_name"`
	UserEmail               string `json:"user_email"`
	ClientType              string `json:"client_type"`
	ResourceChangeOperation string `json:"resource_change_operation"`
}

// GetChangeEvents queries the change_event resource over a date window.
// The window covers full days, 00:00:00 through 23:59:59.
func (s *GoogleAdsIntegrator) GetChangeEvents(ctx context.Context, params ChangeEventsParams) ([]ChangeEvent, error) {
	endDate := params.EndDate
	if endDate == "" {
		endDate = params.StartDate
	}

	whereClauses := []string{
		fmt.Sprintf(
			"change_event.change_date_time BETWEEN '%s 00:00:00' AND '%s 23:59:59'",
			params.StartDate, endDate,
		),
	}
	if params.ResourceType != "" {
		whereClauses = append(whereClauses,
			fmt.Sprintf("change_event.change_resource_type = %s", params.ResourceType))
	}

	query := "SELECT " +
		"change_event.resource_name, " +
		"change_event.change_date_time, " +
		"change_event.change_resource_type, " +
		"change_event.change_resource_name, " +
		"change_event.user_email, " +
		"change_event.client_type, " +
		"change_event.resource_change_operation " +
		"FROM change_event " +
		"WHERE " + strings.Join(whereClauses, " AND ") + " " +
		"ORDER BY change_event.change_date_time DESC " +
		"LIMIT 10000"

	rows, err := s.Client.Search(ctx, params.CustomerID, query, params.LoginCustomerID)
	if err != nil {
		return nil, err
	}

	events := make([]ChangeEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, ChangeEvent{
			ResourceName:            rowString(row, "change_event.resource_name"),
			ChangeDateTime:          rowString(row, "change_event.change_date_time"),
			ChangeResourceType:      rowString(row, "change_event.change_resource_type"),
			ChangeResourceName:      rowString(row, "change_event.change_resource_name"),
			UserEmail:               rowString(row, "change_event.user_email"),
			ClientType:              rowString(row, "change_event.client_type"),
			ResourceChangeOperation: rowString(row, "change_event.resource_change_operation"),
		})
	}

	return events, nil
}

// Recommendation is one optimization recommendation row.
type Recommendation struct {
	ResourceName     string `json:"resource_name"`
	RecommendationID string `json:"recommendation_id"`
	Type             string `json:"type"`
	Dismissed        bool   `json:"dismissed"`
	Campaign         string `json:"campaign"`
	AdGroup          string `json:"ad_group"`
}

// GetRecommendations lists recommendations, optionally filtered by type.
func (s *GoogleAdsIntegrator) GetRecommendations(ctx context.Context, customerID string, recommendationTypes []string, loginCustomerID string) ([]Recommendation, error) {
	query := "SELECT " +
		"recommendation.resource_name, " +
		"recommendation.type, " +
		"recommendation.dismissed, " +
		"recommendation.campaign, " +
		"recommendation.ad_group " +
		"FROM recommendation"
	if len(recommendationTypes) > 0 {
		query = fmt.Sprintf("%s WHERE recommendation.type IN (%s)", query, strings.Join(recommendationTypes, ", "))
	}

	rows, err := s.Client.Search(ctx, customerID, query, loginCustomerID)
	if err != nil {
		return nil, err
	}

	recommendations := make([]Recommendation, 0, len(rows))
	for _, row := range rows {
		resourceName := rowString(row, "recommendation.resource_name")
		recommendations = append(recommendations, Recommendation{
			ResourceName:     resourceName,
			RecommendationID: lastPathSegment(resourceName),
			Type:             rowString(row, "recommendation.type"),
			Dismissed:        rowBool(row, "recommendation.dismissed"),
			Campaign:         rowString(row, "recommendation.campaign"),
			AdGroup:          rowString(row, "recommendation.ad_group"),
		})
	}

	return recommendations, nil
}

// ApplyRecommendation applies one recommendation by id.
func (s *GoogleAdsIntegrator) ApplyRecommendation(ctx context.Context, customerID, recommendationID, loginCustomerID string) (string, error) {
	req := &adsdomain.ApplyRecommendationRequest{
		Operations: []adsdomain.ApplyRecommendationOperation{
			{ResourceName: recommendationPath(customerID, recommendationID)},
		},
	}

	response, err := s.Client.ApplyRecommendation(ctx, customerID, req, loginCustomerID)
	if err != nil {
		return "", err
	}
	if len(response.Results) == 0 {
		return "", fmt.Errorf("apply recommendation returned no results")
	}

	return response.Results[0].ResourceName, nil
}

// DismissRecommendation dismisses one recommendation by id.
func (s *GoogleAdsIntegrator) DismissRecommendation(ctx context.Context, customerID, recommendationID, loginCustomerID string) (string, error) {
	resourceName := recommendationPath(customerID, recommendationID)

	req := &adsdomain.DismissRecommendationRequest{
		Operations: []adsdomain.DismissRecommendationOperation{
			{ResourceName: resourceName},
		},
	}

	if _, err := s.Client.DismissRecommendation(ctx, customerID, req, loginCustomerID); err != nil {
		return "", err
	}

	return resourceName, nil
}
