package rosu

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ev3nvy/rosu-v2/internal/bucket"
)

// Client is an authenticated osu! API v2 client. Construction acquires the
// initial token and starts the background refresh loop; it fails, producing
// no client, if the very first acquisition fails. A Client is safe for
// concurrent use and should be released with Close.
type Client struct {
	http         *http.Client
	clientID     uint64
	clientSecret string
	scope        Scope
	userAuth     *userAuthorization

	baseURL   string
	tokenURL  string
	userAgent string

	timeout    time.Duration
	maxRetries int

	rateCapacity int
	ratePerSec   float64
	limiter      *bucket.Bucket

	tokenMu sync.RWMutex
	token   Token

	cache   *nameCache
	metrics *MetricsCollector
	logger  Logger

	done      chan struct{}
	closeOnce sync.Once

	cfgErr error
}

// New constructs a Client using the provided functional options, blocking
// until the initial token acquisition succeeds. ctx bounds only that initial
// acquisition; the refresh loop runs until Close.
func New(ctx context.Context, options ...Option) (*Client, error) {
	c := &Client{
		http:         &http.Client{},
		scope:        ScopePublic,
		baseURL:      defaultBaseURL,
		tokenURL:     defaultTokenURL,
		userAgent:    defaultUserAgent,
		timeout:      10 * time.Second,
		maxRetries:   2,
		rateCapacity: 15,
		ratePerSec:   15,
		cache:        newNameCache(),
		done:         make(chan struct{}),
	}

	for _, option := range options {
		option(c)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	c.limiter = bucket.New(c.rateCapacity, c.ratePerSec)

	if err := c.refreshToken(ctx); err != nil {
		return nil, fmt.Errorf("rosu: acquiring initial token: %w", err)
	}

	go c.tokenLoop()

	return c, nil
}

func (c *Client) validate() error {
	if c.cfgErr != nil {
		return c.cfgErr
	}
	if c.clientID == 0 {
		return fmt.Errorf("rosu: client id must be set")
	}
	if c.clientSecret == "" {
		return fmt.Errorf("rosu: client secret must be set")
	}
	if c.timeout <= 0 {
		return fmt.Errorf("rosu: timeout must be positive, got %v", c.timeout)
	}
	if c.maxRetries < 0 {
		return fmt.Errorf("rosu: max retries must not be negative, got %d", c.maxRetries)
	}
	return nil
}

// Close stops the token refresh loop. It is fire-and-forget: the loop is
// signalled once and not waited for. In-flight requests are not cancelled
// and may outlive the client if the caller still drives them. Close is
// idempotent.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// Metrics returns the collector configured via WithMetrics, or nil.
func (c *Client) Metrics() *MetricsCollector {
	return c.metrics
}

// countRequest records one endpoint invocation; called by every builder on
// start.
func (c *Client) countRequest(endpoint string) {
	if c.metrics != nil {
		c.metrics.RecordRequest(endpoint)
	}
}

// cacheUserID resolves a UserID to its numeric id, consulting the username
// cache first and falling back to one user lookup round-trip. Concurrent
// identical lookups may each hit the network and insert twice; that race is
// tolerated, last write wins.
func (c *Client) cacheUserID(ctx context.Context, user UserID) (uint32, error) {
	if !user.IsName() {
		return user.ID, nil
	}

	// osu! usernames are ASCII-only.
	name := strings.ToLower(user.Name)

	if c.cache != nil {
		if id, ok := c.cache.Lookup(name); ok {
			return id, nil
		}
	}

	fetched, err := request[User](ctx, c, userRequest(user, nil))
	if err != nil {
		return 0, err
	}

	c.updateCache(fetched.UserID, fetched.Username)

	return fetched.UserID, nil
}

// updateCache stores a username→id mapping after a successful user fetch.
func (c *Client) updateCache(userID uint32, username string) {
	if c.cache == nil {
		return
	}
	c.cache.Insert(strings.ToLower(username), userID)
	if c.metrics != nil {
		c.metrics.RecordCacheInsert()
	}
}
