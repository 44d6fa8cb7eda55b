package adsdomain

import (
	"fmt"
	"net/http"
	"strings"
)

const failureTypeSuffix = "GoogleAdsFailure"

// ErrorResponse is the google.rpc.Status body the REST surface returns for
// failed requests.
type ErrorResponse struct {
	Error ErrorStatus `json:"error"`
}

type ErrorStatus struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Status  string          `json:"status"`
	Details []FailureDetail `json:"details,omitempty"`
}

// FailureDetail carries the GoogleAdsFailure embedded in the status details.
type FailureDetail struct {
	Type      string           `json:"@type"`
	Errors    []GoogleAdsError `json:"errors,omitempty"`
	RequestID string           `json:"requestId,omitempty"`
}

type GoogleAdsError struct {
	ErrorCode map[string]string `json:"errorCode,omitempty"`
	Message   string            `json:"message"`
	Trigger   map[string]any    `json:"trigger,omitempty"`
}

// IsTokenExpired reports whether the request failed authentication and a
// token refresh plus retry may fix it.
func (e *ErrorResponse) IsTokenExpired() bool {
	return e.Error.Code == http.StatusUnauthorized || e.Error.Status == "UNAUTHENTICATED"
}

// Messages flattens every GoogleAdsFailure error into one line each, so
// callers can join them into a single tool error.
func (e *ErrorResponse) Messages() []string {
	messages := []string{}
	for _, detail := range e.Error.Details {
		if !strings.HasSuffix(detail.Type, failureTypeSuffix) {
			continue
		}
		for _, adsErr := range detail.Errors {
			messages = append(messages, adsErr.String())
		}
	}

	if len(messages) == 0 && e.Error.Message != "" {
		messages = append(messages, e.Error.Message)
	}

	return messages
}

func (e GoogleAdsError) String() string {
	for field, value := range e.ErrorCode {
		return fmt.Sprintf("%s.%s: %s", field, value, e.Message)
	}
	return e.Message
}
