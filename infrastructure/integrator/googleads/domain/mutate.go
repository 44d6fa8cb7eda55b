package adsdomain

// MutateOperation is one entry of a mutate request. Exactly one of the
// fields is set; the payloads are built as generic maps because the REST
// surface takes resource JSON directly.
type MutateOperation struct {
	Create     map[string]any `json:"create,omitempty"`
	Update     map[string]any `json:"update,omitempty"`
	Remove     string         `json:"remove,omitempty"`
	UpdateMask string         `json:"updateMask,omitempty"`
}

type MutateRequest struct {
	Operations []MutateOperation `json:"operations"`
}

type MutateResponse struct {
	Results             []MutateResult `json:"results"`
	PartialFailureError *ErrorStatus   `json:"partialFailureError,omitempty"`
}

type MutateResult struct {
	ResourceName string `json:"resourceName"`
}

// ClickConversion is one uploaded offline conversion.
type ClickConversion struct {
	ConversionAction   string  `json:"conversionAction"`
	Gclid              string  `json:"gclid"`
	ConversionDateTime string  `json:"conversionDateTime"`
	ConversionValue    float64 `json:"conversionValue,omitempty"`
	CurrencyCode       string  `json:"currencyCode,omitempty"`
}

type UploadClickConversionsRequest struct {
	Conversions    []ClickConversion `json:"conversions"`
	PartialFailure bool              `json:"partialFailure"`
}

type UploadClickConversionsResponse struct {
	Results             []ClickConversionResult `json:"results"`
	PartialFailureError *ErrorStatus            `json:"partialFailureError,omitempty"`
}

type ClickConversionResult struct {
	ConversionAction   string `json:"conversionAction"`
	ConversionDateTime string `json:"conversionDateTime"`
	Gclid              string `json:"gclid"`
}

// Offline user data job types for Customer Match membership changes.
type OfflineUserDataJob struct {
	Type                          string                         `json:"type"`
	CustomerMatchUserListMetadata *CustomerMatchUserListMetadata `json:"customerMatchUserListMetadata,omitempty"`
}

type CustomerMatchUserListMetadata struct {
	UserList string `json:"userList"`
}

type CreateOfflineUserDataJobRequest struct {
	Job OfflineUserDataJob `json:"job"`
}

type CreateOfflineUserDataJobResponse struct {
	ResourceName string `json:"resourceName"`
}

type UserIdentifier struct {
	HashedEmail       string `json:"hashedEmail,omitempty"`
	HashedPhoneNumber string `json:"hashedPhoneNumber,omitempty"`
}

type UserData struct {
	UserIdentifiers []UserIdentifier `json:"userIdentifiers"`
}

type OfflineUserDataJobOperation struct {
	Create *UserData `json:"create,omitempty"`
	Remove *UserData `json:"remove,omitempty"`
}

type AddOfflineUserDataJobOperationsRequest struct {
	Operations           []OfflineUserDataJobOperation `json:"operations"`
	EnablePartialFailure bool                          `json:"enablePartialFailure"`
}

type AddOfflineUserDataJobOperationsResponse struct {
	PartialFailureError *ErrorStatus `json:"partialFailureError,omitempty"`
}

// Recommendation operations.
type ApplyRecommendationOperation struct {
	ResourceName string `json:"resourceName"`
}

type ApplyRecommendationRequest struct {
	Operations []ApplyRecommendationOperation `json:"operations"`
}

type ApplyRecommendationResponse struct {
	Results []MutateResult `json:"results"`
}

type DismissRecommendationOperation struct {
	ResourceName string `json:"resourceName"`
}

type DismissRecommendationRequest struct {
	Operations []DismissRecommendationOperation `json:"operations"`
}

type DismissRecommendationResponse struct {
	Results []MutateResult `json:"results"`
}

// Keyword planner types.
type KeywordSeed struct {
	Keywords []string `json:"keywords"`
}

type URLSeed struct {
	URL string `json:"url"`
}

type KeywordAndURLSeed struct {
	URL      string   `json:"url"`
	Keywords []string `json:"keywords"`
}

type GenerateKeywordIdeasRequest struct {
	Language           string             `json:"language"`
	GeoTargetConstants []string           `json:"geoTargetConstants,omitempty"`
	KeywordPlanNetwork string             `json:"keywordPlanNetwork"`
	KeywordSeed        *KeywordSeed       `json:"keywordSeed,omitempty"`
	URLSeed            *URLSeed           `json:"urlSeed,omitempty"`
	KeywordAndURLSeed  *KeywordAndURLSeed `json:"keywordAndUrlSeed,omitempty"`
	PageToken          string             `json:"pageToken,omitempty"`
}

type GenerateKeywordIdeasResponse struct {
	Results       []KeywordIdea `json:"results"`
	NextPageToken string        `json:"nextPageToken,omitempty"`
}

type KeywordIdea struct {
	Text               string              `json:"text"`
	KeywordIdeaMetrics *KeywordIdeaMetrics `json:"keywordIdeaMetrics,omitempty"`
}

type KeywordIdeaMetrics struct {
	AvgMonthlySearches     string `json:"avgMonthlySearches,omitempty"`
	Competition            string `json:"competition,omitempty"`
	CompetitionIndex       string `json:"competitionIndex,omitempty"`
	LowTopOfPageBidMicros  string `json:"lowTopOfPageBidMicros,omitempty"`
	HighTopOfPageBidMicros string `json:"highTopOfPageBidMicros,omitempty"`
}
