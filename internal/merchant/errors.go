package merchant

import (
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/oauth2"

	"shopping-samples/internal/entities"
)

// APIError is a non-2xx response from the API.
type APIError struct {
	Code    int
	Message string
	Errors  []entities.ErrorDetail
	Body    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("Error %d: %s", e.Code, e.Body)
	}
	return fmt.Sprintf("Error %d: %s", e.Code, e.Message)
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Code: status, Body: string(body)}
	var envelope struct {
		Error *entities.Errors `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		if envelope.Error.Code != 0 {
			apiErr.Code = envelope.Error.Code
		}
		apiErr.Message = envelope.Error.Message
		apiErr.Errors = envelope.Error.Errors
	}
	return apiErr
}

// IsAPIError reports whether err is, or wraps, an *APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsCredentialsExpired reports whether err was caused by the token endpoint
// rejecting a refresh, which happens when access was revoked or the refresh
// token expired.
func IsCredentialsExpired(err error) bool {
	var re *oauth2.RetrieveError
	return errors.As(err, &re)
}
