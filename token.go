package rosu

import (
	"context"
	"fmt"
	"time"
)

// Token holds the current OAuth2 credentials. It starts empty, is populated
// by the first acquisition during New, and is subsequently replaced wholesale
// by the refresh loop, never partially mutated.
type Token struct {
	// Access is the full authorization header value ("Bearer ..."), empty
	// until the first acquisition succeeds.
	Access string
	// Refresh is only set for the user authorization flow.
	Refresh string
	// ExpiresIn is the lifetime the provider reported for Access.
	ExpiresIn time.Duration
}

type tokenResponse struct {
	TokenType    string `json:"token_type"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type tokenRequest struct {
	ClientID     uint64 `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	GrantType    string `json:"grant_type"`
	Scope        string `json:"scope,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	RedirectURI  string `json:"redirect_uri,omitempty"`
	Code         string `json:"code,omitempty"`
}

// authorizationKind selects the OAuth2 flow, fixed at construction.
// user == nil means client credentials with the configured scope.
type userAuthorization struct {
	redirectURI string
	code        string
}

// Token returns a copy of the currently held token.
func (c *Client) Token() Token {
	c.tokenMu.RLock()
	defer c.tokenMu.RUnlock()
	return c.token
}

// accessToken returns the current authorization header value, or "" if the
// client is in the window between expiry and renewal.
func (c *Client) accessToken() string {
	c.tokenMu.RLock()
	defer c.tokenMu.RUnlock()
	return c.token.Access
}

// requestToken performs one token endpoint exchange. The grant depends on the
// authorization kind: client credentials send the configured scope; the user
// flow sends the stored refresh token if one exists and falls back to the
// one-time authorization code. After the first successful exchange a refresh
// token is stored, so the code branch is never taken again.
func (c *Client) requestToken(ctx context.Context) (*tokenResponse, error) {
	body := tokenRequest{
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
	}

	if c.userAuth == nil {
		body.GrantType = "client_credentials"
		body.Scope = string(c.scope)
	} else if refresh := c.Token().Refresh; refresh != "" {
		body.GrantType = "refresh_token"
		body.RefreshToken = refresh
	} else {
		body.GrantType = "authorization_code"
		body.RedirectURI = c.userAuth.redirectURI
		body.Code = c.userAuth.code
		body.Scope = fmt.Sprintf("%s %s", ScopeIdentify, ScopePublic)
	}

	raw, err := encodeJSON(body)
	if err != nil {
		return nil, err
	}

	status, respBody, err := c.send(ctx, c.buildTokenRequest(raw))
	if err != nil {
		return nil, err
	}

	payload, err := c.classify(status, respBody)
	if err != nil {
		return nil, err
	}

	resp, err := parseJSON[tokenResponse](payload)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// refreshToken exchanges at the token endpoint and swaps the stored token
// atomically. Readers either see the previous token or the new one, never a
// partial state.
func (c *Client) refreshToken(ctx context.Context) error {
	resp, err := c.requestToken(ctx)
	if err != nil {
		return err
	}

	token := Token{
		Access:    fmt.Sprintf("%s %s", resp.TokenType, resp.AccessToken),
		Refresh:   resp.RefreshToken,
		ExpiresIn: time.Duration(resp.ExpiresIn) * time.Second,
	}

	c.tokenMu.Lock()
	c.token = token
	c.tokenMu.Unlock()

	if c.metrics != nil {
		c.metrics.RecordTokenRefresh()
	}
	if c.logger != nil {
		c.logger.Debug("Acquired token", "expiresIn", token.ExpiresIn)
	}

	return nil
}

// tokenLoop proactively renews the token before the reported expiry. A failed
// renewal is logged and retried on the next expiry-driven tick with the same
// cadence; provider outages longer than one token lifetime therefore surface
// as ErrNoToken-style authentication failures until the provider recovers.
// The loop exits when Close fires the done channel.
func (c *Client) tokenLoop() {
	for {
		wait := c.Token().ExpiresIn
		// Renew at 90% of the reported lifetime so in-flight requests
		// overlap the old, still-valid token.
		timer := time.NewTimer(wait / 10 * 9)

		select {
		case <-c.done:
			timer.Stop()
			return
		case <-timer.C:
		}

		if err := c.refreshToken(context.Background()); err != nil {
			if c.logger != nil {
				c.logger.Warn("Failed to refresh token", "error", err.Error())
			}
		}
	}
}
