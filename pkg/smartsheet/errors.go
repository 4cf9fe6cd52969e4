package smartsheet

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a lookup by name or title matched nothing.
var ErrNotFound = errors.New("not found")

// ErrMissingToken indicates no access token was configured.
var ErrMissingToken = errors.New("access token is not set")

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// APIError is the error object the service returns in failed responses.
type APIError struct {
	Message   string `json:"message"`
	ErrorCode int    `json:"errorCode"`
	RefID     string `json:"refId,omitempty"`
}

func (e *APIError) Error() string {
	if e.RefID != "" {
		return fmt.Sprintf("error %d: %s (ref %s)", e.ErrorCode, e.Message, e.RefID)
	}
	return fmt.Sprintf("error %d: %s", e.ErrorCode, e.Message)
}

// RequestError represents a response with a 4xx or 5xx status.
//
// API is set when the body decoded as an APIError; otherwise Body holds
// the raw response text.
type RequestError struct {
	Method string
	URL    string
	Status int
	Reason string
	API    *APIError
	Body   string
}

func (e *RequestError) Error() string {
	switch {
	case e.API != nil:
		return fmt.Sprintf("%s: %v", e.Reason, e.API)
	case e.Body != "":
		return fmt.Sprintf("%s: %s", e.Reason, e.Body)
	default:
		return e.Reason
	}
}

func (e *RequestError) Unwrap() error {
	if e.API == nil {
		return nil
	}
	return e.API
}

// NewRequestError creates a RequestError with the reason text for status.
func NewRequestError(method, url string, status int, statusText string) *RequestError {
	kind := "Client Error"
	if status >= 500 {
		kind = "Server Error"
	}
	if statusText == "" {
		statusText = "Unknown"
	}
	return &RequestError{
		Method: method,
		URL:    url,
		Status: status,
		Reason: fmt.Sprintf("%d %s: %s for url: %s", status, kind, statusText, url),
	}
}

// IsStatus reports whether err is a RequestError with the given status.
func IsStatus(err error, status int) bool {
	var re *RequestError
	return errors.As(err, &re) && re.Status == status
}
