package rosu

import (
	"fmt"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// WithClientID sets the OAuth client id.
func WithClientID(id uint64) Option {
	return func(c *Client) {
		c.clientID = id
	}
}

// WithClientSecret sets the OAuth client secret.
func WithClientSecret(secret string) Option {
	return func(c *Client) {
		c.clientSecret = secret
	}
}

type envCredentials struct {
	ClientID     uint64 `env:"OSU_CLIENT_ID"`
	ClientSecret string `env:"OSU_CLIENT_SECRET"`
}

// FromEnv reads the client id and secret from the OSU_CLIENT_ID and
// OSU_CLIENT_SECRET environment variables.
func FromEnv() Option {
	return func(c *Client) {
		var creds envCredentials
		if err := env.Parse(&creds); err != nil {
			c.cfgErr = fmt.Errorf("rosu: reading credentials from environment: %w", err)
			return
		}
		c.clientID = creds.ClientID
		c.clientSecret = creds.ClientSecret
	}
}

// WithAuthorization switches the client to the user authorization flow: the
// one-time code obtained through the redirect is exchanged for access and
// refresh tokens on construction, and refresh tokens are used from then on.
// Without this option the client authenticates with client credentials.
func WithAuthorization(redirectURI, code string) Option {
	return func(c *Client) {
		c.userAuth = &userAuthorization{redirectURI: redirectURI, code: code}
	}
}

// WithScope sets the scope requested in the client credentials flow.
// Defaults to ScopePublic.
func WithScope(scope Scope) Option {
	return func(c *Client) {
		c.scope = scope
	}
}

// WithTimeout sets the per-attempt request timeout. Defaults to 10s.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithMaxRetries sets how many times a timed-out attempt is retried.
// Defaults to 2, i.e. at most 3 attempts per request.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithRateLimit configures the token bucket gating all outbound requests:
// capacity bounds the burst, refillPerSec the steady rate. Defaults to 15/15.
func WithRateLimit(capacity int, refillPerSec float64) Option {
	return func(c *Client) {
		c.rateCapacity = capacity
		c.ratePerSec = refillPerSec
	}
}

// WithHTTPClient sets a custom HTTP client. Per-attempt timeouts are applied
// through the request context, so the client's own Timeout should stay zero.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.http = client
	}
}

// WithBaseURL overrides the API base URL (tests, proxies). Must end in "/".
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTokenURL overrides the OAuth token endpoint URL (tests, proxies).
func WithTokenURL(url string) Option {
	return func(c *Client) {
		c.tokenURL = url
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithoutCache disables the username→id cache; endpoints addressed by
// username then pay the lookup round-trip on every call.
func WithoutCache() Option {
	return func(c *Client) {
		c.cache = nil
	}
}

// WithMetrics enables Prometheus metrics collection on the default registerer.
func WithMetrics() Option {
	return func(c *Client) {
		c.metrics = NewMetricsCollector()
	}
}

// WithMetricsCollector sets a custom metrics collector.
func WithMetricsCollector(collector *MetricsCollector) Option {
	return func(c *Client) {
		c.metrics = collector
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithSimpleLogger enables logging with a simple console logger.
func WithSimpleLogger() Option {
	return func(c *Client) {
		c.logger = NewSimpleLogger()
	}
}

// WithZerolog routes the client's logging through a zerolog logger.
func WithZerolog(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = &zerologLogger{l: logger}
	}
}
