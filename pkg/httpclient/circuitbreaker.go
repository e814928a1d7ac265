package httpclient

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sony/gobreaker/v2"
)

// ErrCircuitOpen is returned when the breaker rejects a request.
var ErrCircuitOpen = gobreaker.ErrOpenState

var (
	circuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open).",
		},
		[]string{"name"},
	)

	circuitBreakerFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_fallback_total",
			Help: "Total number of fallback invocations per breaker.",
		},
		[]string{"name"},
	)
)

// CircuitBreakerConfig configures the breaker wrapped around a client.
type CircuitBreakerConfig struct {
	Name         string
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
	MinRequests  uint32
}

// DefaultCircuitBreakerConfig returns breaker defaults for the named downstream.
func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:         name,
		MaxRequests:  1,
		Interval:     60 * time.Second,
		Timeout:      30 * time.Second,
		FailureRatio: 0.5,
		MinRequests:  5,
	}
}

// Fallback produces a substitute response when the circuit is open.
type Fallback func(ctx context.Context, err error) (*http.Response, error)

// CircuitBreakerClient wraps a Client with a circuit breaker. Responses
// with 5xx status count as failures so a degraded downstream trips the
// breaker even when requests complete.
type CircuitBreakerClient struct {
	client   *Client
	breaker  *gobreaker.CircuitBreaker[*http.Response]
	fallback Fallback
	name     string
}

// NewCircuitBreakerClient wraps the client with a breaker using cfg.
func NewCircuitBreakerClient(client *Client, cfg CircuitBreakerConfig) *CircuitBreakerClient {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			circuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	}

	circuitBreakerState.WithLabelValues(cfg.Name).Set(stateToFloat(gobreaker.StateClosed))

	return &CircuitBreakerClient{
		client:  client,
		breaker: gobreaker.NewCircuitBreaker[*http.Response](settings),
		name:    cfg.Name,
	}
}

// WithFallback sets a fallback invoked when the breaker rejects or the
// request fails.
func (c *CircuitBreakerClient) WithFallback(fb Fallback) *CircuitBreakerClient {
	c.fallback = fb
	return c
}

// Do executes the request through the breaker.
func (c *CircuitBreakerClient) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, &downstreamStatusError{status: resp.StatusCode}
		}
		return resp, nil
	})

	if err != nil {
		var statusErr *downstreamStatusError
		if errors.As(err, &statusErr) && resp != nil {
			return resp, nil
		}
		if c.fallback != nil {
			circuitBreakerFallbacks.WithLabelValues(c.name).Inc()
			return c.fallback(req.Context(), err)
		}
		return nil, err
	}
	return resp, nil
}

// Get issues a GET through the breaker.
func (c *CircuitBreakerClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

// Post issues a JSON POST through the breaker.
func (c *CircuitBreakerClient) Post(ctx context.Context, url string, body []byte) (*http.Response, error) {
	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		resp, err := c.client.Post(ctx, url, body)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, &downstreamStatusError{status: resp.StatusCode}
		}
		return resp, nil
	})

	if err != nil {
		var statusErr *downstreamStatusError
		if errors.As(err, &statusErr) && resp != nil {
			return resp, nil
		}
		if c.fallback != nil {
			circuitBreakerFallbacks.WithLabelValues(c.name).Inc()
			return c.fallback(ctx, err)
		}
		return nil, err
	}
	return resp, nil
}

// State returns the current breaker state.
func (c *CircuitBreakerClient) State() gobreaker.State {
	return c.breaker.State()
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
