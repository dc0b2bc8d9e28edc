package accesssdk

import "fmt"

// APIError is a structured error returned by the access service. Check the
// Code against the error codes in the API documentation; the generic
// "invalid_invite" code on the redemption endpoint deliberately covers
// every failure cause.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("access api: %s: %s (http %d)", e.Code, e.Description, e.StatusCode)
	}
	return fmt.Sprintf("access api: %s (http %d)", e.Code, e.StatusCode)
}

// IsCode reports whether err is an APIError with the given code.
func IsCode(err error, code string) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Code == code
}
