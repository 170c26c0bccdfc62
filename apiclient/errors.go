package apiclient

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// APIError is returned for responses with a status code above 201.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("TestRail API returned HTTP %d (%s)", e.StatusCode, e.Message)
}

func newAPIError(statusCode int, body []byte) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    errorMessage(body),
	}
}

// errorMessage prefers the "error" field of a JSON body, then the JSON body
// itself, then the raw body text.
func errorMessage(body []byte) string {
	var value ldvalue.Value
	if err := json.Unmarshal(body, &value); err != nil {
		return strings.TrimSpace(string(body))
	}

	if message := value.GetByKey("error"); message.Type() == ldvalue.StringType {
		return message.StringValue()
	}
	return value.JSONString()
}
