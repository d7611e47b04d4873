package notion

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// APIError is a structured Notion error response.
type APIError struct {
	StatusCode int    `json:"status"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("notion: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("notion: HTTP %d: %s", e.StatusCode, e.Message)
}

// NotFound reports whether the error denotes a missing page or database.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound || e.Code == "object_not_found"
}

// newAPIError decodes the error body, falling back to the HTTP status and
// raw body text when the payload is not the documented error shape.
func newAPIError(resp *resty.Response) *APIError {
	e := &APIError{}
	_ = json.Unmarshal(resp.Body(), e)
	if e.StatusCode == 0 {
		e.StatusCode = resp.StatusCode()
	}
	if e.Message == "" {
		e.Message = strings.TrimSpace(resp.String())
	}
	return e
}
