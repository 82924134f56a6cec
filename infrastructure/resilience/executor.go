// Package resilience wraps re-aggregation callbacks in resilient
// execution patterns using fortify. Re-aggregation reaches back into
// the host application (and usually its data store), so zoom changes
// are protected by bulkhead, timeout, circuit breaker, and retry.
package resilience

import (
	"context"
	"time"

	"github.com/felixgeelhaar/fortify/bulkhead"
	"github.com/felixgeelhaar/fortify/circuitbreaker"
	"github.com/felixgeelhaar/fortify/retry"

	"github.com/felixgeelhaar/chartkit/domain/chart"
)

// Reaggregator produces a replacement chart specification for a chart
// at a new zoom level. Implementations typically re-query the host
// application's data store at the requested granularity.
type Reaggregator func(ctx context.Context, chartID string, zoom chart.ZoomLevel) (chart.Spec, error)

// Executor runs re-aggregation with resilience patterns applied.
type Executor struct {
	bulkhead bulkhead.Bulkhead[chart.Spec]
	breaker  circuitbreaker.CircuitBreaker[chart.Spec]
	retry    retry.Retry[chart.Spec]
	timeout  time.Duration
}

// ExecutorConfig configures the resilient executor.
type ExecutorConfig struct {
	// MaxConcurrent limits concurrent re-aggregations.
	MaxConcurrent int

	// CircuitBreakerThreshold is the number of failures before opening.
	CircuitBreakerThreshold int

	// CircuitBreakerTimeout is how long the circuit stays open.
	CircuitBreakerTimeout time.Duration

	// RetryMaxAttempts is the maximum number of retry attempts.
	RetryMaxAttempts int

	// RetryInitialDelay is the initial delay between retries.
	RetryInitialDelay time.Duration

	// RetryBackoffMultiplier is the exponential backoff multiplier.
	RetryBackoffMultiplier float64

	// DefaultTimeout is the default re-aggregation timeout.
	DefaultTimeout time.Duration
}

// DefaultExecutorConfig returns a configuration with sensible defaults.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		MaxConcurrent:           4,
		CircuitBreakerThreshold: 5,
		CircuitBreakerTimeout:   30 * time.Second,
		RetryMaxAttempts:        3,
		RetryInitialDelay:       100 * time.Millisecond,
		RetryBackoffMultiplier:  2.0,
		DefaultTimeout:          10 * time.Second,
	}
}

// NewExecutor creates a new resilient executor.
func NewExecutor(config ExecutorConfig) *Executor {
	maxConcurrent := config.MaxConcurrent
	if maxConcurrent < 0 {
		maxConcurrent = 4
	}
	threshold := config.CircuitBreakerThreshold
	if threshold < 0 {
		threshold = 5
	}

	return &Executor{
		bulkhead: bulkhead.New[chart.Spec](bulkhead.Config{
			MaxConcurrent: maxConcurrent,
		}),
		breaker: circuitbreaker.New[chart.Spec](circuitbreaker.Config{
			MaxRequests: uint32(maxConcurrent), // #nosec G115 -- bounds checked above
			Interval:    config.CircuitBreakerTimeout,
			Timeout:     config.CircuitBreakerTimeout,
			ReadyToTrip: func(counts circuitbreaker.Counts) bool {
				return counts.ConsecutiveFailures >= uint32(threshold) // #nosec G115 -- bounds checked above
			},
		}),
		retry: retry.New[chart.Spec](retry.Config{
			MaxAttempts:   config.RetryMaxAttempts,
			InitialDelay:  config.RetryInitialDelay,
			BackoffPolicy: retry.BackoffExponential,
			Multiplier:    config.RetryBackoffMultiplier,
		}),
		timeout: config.DefaultTimeout,
	}
}

// NewDefaultExecutor creates an executor with default configuration.
func NewDefaultExecutor() *Executor {
	return NewExecutor(DefaultExecutorConfig())
}

// Reaggregate runs the callback with resilience patterns applied.
// Composition order: Bulkhead, then Timeout, then Circuit Breaker,
// then Retry. Re-aggregation is a read, so retrying is safe.
func (e *Executor) Reaggregate(ctx context.Context, fn Reaggregator, chartID string, zoom chart.ZoomLevel) (chart.Spec, error) {
	return e.bulkhead.Execute(ctx, func(ctx context.Context) (chart.Spec, error) {
		ctx, cancel := context.WithTimeout(ctx, e.timeout)
		defer cancel()

		return e.breaker.Execute(ctx, func(ctx context.Context) (chart.Spec, error) {
			return e.retry.Do(ctx, func(ctx context.Context) (chart.Spec, error) {
				return fn(ctx, chartID, zoom)
			})
		})
	})
}

// ReaggregateWithTimeout runs the callback with a custom timeout.
func (e *Executor) ReaggregateWithTimeout(ctx context.Context, fn Reaggregator, chartID string, zoom chart.ZoomLevel, timeout time.Duration) (chart.Spec, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return e.Reaggregate(ctx, fn, chartID, zoom)
}

// CircuitBreakerState returns the current state of the circuit breaker.
func (e *Executor) CircuitBreakerState() circuitbreaker.State {
	return e.breaker.State()
}
