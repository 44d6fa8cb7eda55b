package adsdomain

// Row is one flattened result of a GAQL query, keyed by the snake_case
// field-mask paths of the request (for example "metrics.clicks").
type Row map[string]any

// SearchStreamBatch is one element of the array a searchStream call returns.
type SearchStreamBatch struct {
	Results   []map[string]any `json:"results"`
	FieldMask string           `json:"fieldMask"`
	RequestID string           `json:"requestId"`
}

// SearchResponse is the paged response of the non-streaming search endpoint.
type SearchResponse struct {
	Results       []map[string]any `json:"results"`
	NextPageToken string           `json:"nextPageToken,omitempty"`
	FieldMask     string           `json:"fieldMask,omitempty"`
}

// ListAccessibleCustomersResponse lists customer resource names the
// authenticated user can act on directly.
type ListAccessibleCustomersResponse struct {
	ResourceNames []string `json:"resourceNames"`
}
