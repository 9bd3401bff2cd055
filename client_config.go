package store_go

import (
	"net/http"
	"time"

	"github.com/xsolla/store-go/api"
	"github.com/xsolla/store-go/logger"
	"github.com/xsolla/store-go/rate"
	"github.com/xsolla/store-go/retry"
)

type config struct {
	// baseUrl is the store API server
	// default: api.DefaultBaseUrl
	baseUrl string

	// transport specifies the HTTP transport mechanism
	// for making requests.
	// It's useful for mocking or if customers
	// want to add extra logging, headers, etc.
	// default: http.DefaultTransport
	transport http.RoundTripper

	// timeout bounds each individual request attempt;
	// a timed-out attempt is retried like any other failure
	// default: 10 seconds
	timeout time.Duration

	// logger provides logging functionality for all internal
	// store client operations
	// default: logger.Noop
	logger logger.Logger

	// policy is the default retry policy for all calls;
	// individual calls override it with api.WithPolicy
	// default: retry.NewNone()
	policy retry.Policy

	// maxInFlight bounds concurrent callback-mode calls
	// default: 10
	maxInFlight int

	// limiter throttles request attempts
	// default: rate.NoopLimiter
	limiter rate.Limiter

	// auth selects the Authorization header variant
	// default: api.NoAuth()
	auth api.Authorization
}

func defaultConfig() *config {
	return &config{
		baseUrl:     api.DefaultBaseUrl,
		transport:   http.DefaultTransport,
		timeout:     10 * time.Second,
		logger:      logger.Noop{},
		policy:      retry.NewNone(),
		maxInFlight: 10,
		limiter:     &rate.NoopLimiter{},
		auth:        api.NoAuth(),
	}
}

type ConfigOption func(c *config)

func WithBaseUrl(baseUrl string) ConfigOption {
	return func(c *config) {
		c.baseUrl = baseUrl
	}
}

func WithTransport(transport http.RoundTripper) ConfigOption {
	return func(c *config) {
		c.transport = transport
	}
}

func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *config) {
		c.timeout = timeout
	}
}

func WithLogger(logger logger.Logger) ConfigOption {
	return func(c *config) {
		c.logger = logger
	}
}

func WithRetryPolicy(policy retry.Policy) ConfigOption {
	return func(c *config) {
		c.policy = policy
	}
}

func WithMaxInFlight(n int) ConfigOption {
	return func(c *config) {
		c.maxInFlight = n
	}
}

func WithRateLimiter(limiter rate.Limiter) ConfigOption {
	return func(c *config) {
		c.limiter = limiter
	}
}

// WithUserToken authorizes requests with the user's JWT. Required by
// cart, order, promotion and entitlement endpoints.
func WithUserToken(userToken string) ConfigOption {
	return func(c *config) {
		c.auth = api.BearerAuth(userToken)
	}
}

// WithServerAuth authorizes server-to-server requests with the merchant
// id and API key pair.
func WithServerAuth(merchantId, apiKey string) ConfigOption {
	return func(c *config) {
		c.auth = api.BasicAuth(merchantId, apiKey)
	}
}
