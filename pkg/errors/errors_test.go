package errors

import (
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceErrorWithStatus(t *testing.T) {
	err := &ServiceError{StatusCode: 404, Message: "provider not found"}
	assert.Equal(t, "catalog service error 404: provider not found", err.Error())
}

func TestServiceErrorWithoutMessage(t *testing.T) {
	err := &ServiceError{StatusCode: 503}
	assert.Equal(t, "catalog service error 503: Service Unavailable", err.Error())
}

func TestServiceErrorTransport(t *testing.T) {
	cause := &net.OpError{Op: "dial", Err: fmt.Errorf("connection refused")}
	err := &ServiceError{Err: cause}
	assert.Contains(t, err.Error(), "unreachable")
	assert.Equal(t, cause, err.Unwrap())
}

func TestIsServiceError(t *testing.T) {
	assert.True(t, IsServiceError(&ServiceError{StatusCode: 500}))
	assert.True(t, IsServiceError(fmt.Errorf("wrapped: %w", &ServiceError{StatusCode: 500})))
	assert.False(t, IsServiceError(fmt.Errorf("plain error")))
	assert.False(t, IsServiceError(nil))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&ServiceError{StatusCode: 404}))
	assert.False(t, IsNotFound(&ServiceError{StatusCode: 500}))
	assert.False(t, IsNotFound(fmt.Errorf("plain error")))
}
