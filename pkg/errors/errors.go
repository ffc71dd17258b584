package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ServiceError represents a failed round trip to the catalog service: either
// a non-2xx HTTP status (StatusCode set) or a transport-level failure such as
// a refused connection (Err set, StatusCode zero).
type ServiceError struct {
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	if e.StatusCode != 0 {
		if e.Message != "" {
			return fmt.Sprintf("catalog service error %d: %s", e.StatusCode, e.Message)
		}
		return fmt.Sprintf("catalog service error %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("catalog service unreachable: %v", e.Err)
}

// Unwrap returns the underlying transport error, if any
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// IsServiceError reports whether err is (or wraps) a ServiceError
func IsServiceError(err error) bool {
	var se *ServiceError
	return errors.As(err, &se)
}

// IsNotFound reports whether err is a ServiceError carrying HTTP 404, the
// status the service answers with for unknown providers or models
func IsNotFound(err error) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}
