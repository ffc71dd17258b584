package catalog

import (
	"context"
	"math"
	"math/rand"
	"net/http"
	"time"

	"github.com/chat-api/modelcatalog/pkg/errors"
	"github.com/chat-api/modelcatalog/pkg/models"
)

// RetryConfig represents retry configuration
type RetryConfig struct {
	MaxRetries        int
	InitialDelay      time.Duration
	MaxDelay          time.Duration
	BackoffFactor     float64
	JitterFactor      float64
	RetryableStatuses map[int]bool
}

// DefaultRetryConfig returns default retry configuration
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:    3,
		InitialDelay:  1 * time.Second,
		MaxDelay:      30 * time.Second,
		BackoffFactor: 2.0,
		JitterFactor:  0.1,
		RetryableStatuses: map[int]bool{
			http.StatusRequestTimeout:     true,
			http.StatusTooManyRequests:    true,
			http.StatusBadGateway:         true,
			http.StatusServiceUnavailable: true,
		},
	}
}

// RetryClient wraps a Client with retry logic. The base Client never retries;
// callers who want more than one attempt per operation opt in here.
type RetryClient struct {
	*Client
	config *RetryConfig
}

// NewRetryClient creates a new retry client
func NewRetryClient(retryConfig *RetryConfig, opts ...Option) *RetryClient {
	if retryConfig == nil {
		retryConfig = DefaultRetryConfig()
	}

	return &RetryClient{
		Client: NewClient(opts...),
		config: retryConfig,
	}
}

// ListProviders lists providers with retry logic
func (r *RetryClient) ListProviders(ctx context.Context) ([]string, error) {
	return retryDo(ctx, r, func() ([]string, error) {
		return r.Client.ListProviders(ctx)
	})
}

// GetProviderModels fetches provider models with retry logic
func (r *RetryClient) GetProviderModels(ctx context.Context, provider string) (models.ProviderModels, error) {
	return retryDo(ctx, r, func() (models.ProviderModels, error) {
		return r.Client.GetProviderModels(ctx, provider)
	})
}

// GetCategorizedModels fetches the categorized catalog with retry logic
func (r *RetryClient) GetCategorizedModels(ctx context.Context, includeExperimental bool) (models.CategorizedCatalog, error) {
	return retryDo(ctx, r, func() (models.CategorizedCatalog, error) {
		return r.Client.GetCategorizedModels(ctx, includeExperimental)
	})
}

// GetModelCapabilities fetches model capabilities with retry logic
func (r *RetryClient) GetModelCapabilities(ctx context.Context, provider, model string) (models.ModelCapabilities, error) {
	return retryDo(ctx, r, func() (models.ModelCapabilities, error) {
		return r.Client.GetModelCapabilities(ctx, provider, model)
	})
}

// RegisterModel registers a model with retry logic. Registration is assumed
// idempotent on the service side for identical payloads.
func (r *RetryClient) RegisterModel(ctx context.Context, provider, model string, metadata map[string]any) (models.RegisterResponse, error) {
	return retryDo(ctx, r, func() (models.RegisterResponse, error) {
		return r.Client.RegisterModel(ctx, provider, model, metadata)
	})
}

// retryDo runs fn up to MaxRetries+1 times, backing off between attempts
func retryDo[T any](ctx context.Context, r *RetryClient, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := r.calculateDelay(attempt)
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !r.isRetryable(err) {
			return zero, err
		}
	}

	return zero, lastErr
}

// calculateDelay calculates the delay for a given attempt
func (r *RetryClient) calculateDelay(attempt int) time.Duration {
	// Exponential backoff
	delay := float64(r.config.InitialDelay) * math.Pow(r.config.BackoffFactor, float64(attempt-1))

	// Apply max delay
	if delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}

	// Apply jitter
	jitter := delay * r.config.JitterFactor * (2*rand.Float64() - 1)
	delay += jitter

	return time.Duration(delay)
}

// isRetryable checks if an error is retryable
func (r *RetryClient) isRetryable(err error) bool {
	se, ok := err.(*errors.ServiceError)
	if !ok {
		return false
	}

	// Transport failures (no status) are retryable
	if se.StatusCode == 0 {
		return true
	}

	return r.config.RetryableStatuses[se.StatusCode]
}
