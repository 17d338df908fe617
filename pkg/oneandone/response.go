package oneandone

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is a fully-buffered API response
type Response struct {
	StatusCode int
	Body       []byte
}

// validResponseCodes are the status codes the CloudPanel API uses for
// successful requests
var validResponseCodes = map[int]bool{
	http.StatusOK:        true,
	http.StatusCreated:   true,
	http.StatusAccepted:  true,
	http.StatusNoContent: true,
}

// Success reports whether the response status is one of the accepted codes
func (r *Response) Success() bool {
	return validResponseCodes[r.StatusCode]
}

// Parse decodes the JSON body into v
func (r *Response) Parse(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// ParseError translates a failure response into a typed error. A 401 becomes
// an InvalidCredentialsError carrying the API message. Any other status
// becomes an APIError holding "<message> (code: <status>)" when the body
// carries a message field, or the raw decoded body otherwise. A body that is
// not valid JSON is a decode error, surfaced unchanged.
func (r *Response) ParseError() error {
	var body map[string]interface{}
	if err := json.Unmarshal(r.Body, &body); err != nil {
		return fmt.Errorf("failed to decode error response: %w", err)
	}

	if r.StatusCode == http.StatusUnauthorized {
		message, _ := body["message"].(string)
		return &InvalidCredentialsError{Message: message}
	}

	if message, ok := body["message"].(string); ok {
		return &APIError{
			StatusCode: r.StatusCode,
			Message:    fmt.Sprintf("%s (code: %d)", message, r.StatusCode),
		}
	}

	return &APIError{
		StatusCode: r.StatusCode,
		Message:    fmt.Sprintf("%v", body),
	}
}
