package oneandone

import "fmt"

// InvalidCredentialsError indicates a missing API token or a 401 from the API
type InvalidCredentialsError struct {
	Message string
}

func (e *InvalidCredentialsError) Error() string {
	return fmt.Sprintf("invalid credentials: %s", e.Message)
}

// UnsupportedVersionError indicates that no driver is registered for the
// requested API version
type UnsupportedVersionError struct {
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported API version: %s", e.Version)
}

// APIError is a non-401 failure response from the API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// NodeCreationError indicates the API reported a vendor-level failure in an
// otherwise successful create response
type NodeCreationError struct {
	Reason string
}

func (e *NodeCreationError) Error() string {
	return fmt.Sprintf("failed to create node: %s", e.Reason)
}

// MissingFieldError indicates a required field was absent from an API payload
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q in API response", e.Field)
}
