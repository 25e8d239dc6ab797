package rosu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const (
	applicationJSON = "application/json"
	xAPIVersion     = "x-api-version"
	apiVersion      = "20220705"
	defaultBaseURL  = "https://osu.ppy.sh/api/v2/"
	defaultTokenURL = "https://osu.ppy.sh/oauth/token"
)

var defaultUserAgent = fmt.Sprintf("rosu-v2 (github.com/ev3nvy/rosu-v2 %s)", Version)

// rawRequest is the universal shape every endpoint builder reduces to before
// reaching the engine. Constructed fresh per call; the transport rebuilds the
// network request from these bytes on every retry attempt.
type rawRequest struct {
	method string
	path   string
	query  url.Values
	body   []byte
}

// builtRequest carries everything needed to (re)construct a sendable
// *http.Request. Bodies are kept as bytes so retries never resend a
// half-consumed stream.
type builtRequest struct {
	method string
	url    string
	header http.Header
	body   []byte
}

// buildAPIRequest attaches the bearer token and the fixed API headers.
func (c *Client) buildAPIRequest(req rawRequest, token string) builtRequest {
	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	header := http.Header{}
	header.Set("Authorization", token)
	header.Set("User-Agent", c.userAgent)
	header.Set(xAPIVersion, apiVersion)
	header.Set("Accept", applicationJSON)
	if len(req.body) > 0 {
		header.Set("Content-Type", applicationJSON)
	}

	return builtRequest{
		method: req.method,
		url:    u,
		header: header,
		body:   req.body,
	}
}

// buildTokenRequest shapes the POST against the OAuth token endpoint.
func (c *Client) buildTokenRequest(body []byte) builtRequest {
	header := http.Header{}
	header.Set("User-Agent", c.userAgent)
	header.Set("Accept", applicationJSON)
	header.Set("Content-Type", applicationJSON)

	return builtRequest{
		method: http.MethodPost,
		url:    c.tokenURL,
		header: header,
		body:   body,
	}
}

// requestRaw runs the full pipeline for one API request and returns the
// success body bytes: token attach, rate-limit gate, send with retry, status
// classification.
func (c *Client) requestRaw(ctx context.Context, req rawRequest) ([]byte, error) {
	token := c.accessToken()
	if token == "" {
		return nil, ErrNoToken
	}

	built := c.buildAPIRequest(req, token)

	if c.logger != nil {
		c.logger.Debug("Request", "method", built.method, "url", built.url)
	}

	status, body, err := c.send(ctx, built)
	if err != nil {
		return nil, err
	}

	return c.classify(status, body)
}

// request runs requestRaw and decodes the success body into T.
func request[T any](ctx context.Context, c *Client, req rawRequest) (T, error) {
	var zero T

	body, err := c.requestRaw(ctx, req)
	if err != nil {
		return zero, err
	}

	return parseJSON[T](body)
}

func encodeJSON(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("rosu: encoding request body: %w", err)
	}
	return raw, nil
}
