// Package rosu is a client for the osu! API v2 with built-in reliability primitives:
//
//   - OAuth2 token acquisition and proactive background refresh
//     (client credentials and authorization code flows)
//   - Rate limiting (blocking token bucket shared by every outbound request)
//   - Timeout-bounded retries (timeouts retry, other transport failures do not)
//   - Typed responses with full error-body retention for diagnostics
//   - Lazily-started, at-most-once endpoint request builders
//   - Optional Prometheus metrics and a lightweight username→id cache
//
// Design goals:
//   - Small surface area: functional options configure everything
//   - Safe concurrent use of a single *Client instance
//   - No request is ever sent twice by the same builder, no matter how often Do is called
//
// Typical usage:
//
//	client, err := rosu.New(ctx,
//	    rosu.WithClientID(12345),
//	    rosu.WithClientSecret(secret),
//	    rosu.WithRateLimit(15, 15),
//	)
//	if err != nil {
//	    // the initial token acquisition failed; no client is produced
//	}
//	defer client.Close()
//
//	user, err := client.User(rosu.UserID{Name: "peppy"}).Mode(rosu.ModeOsu).Do(ctx)
//
// The library avoids opinionated logging: provide a Logger (e.g. via WithSimpleLogger
// or WithZerolog) to observe refresh-loop activity and retry decisions.
package rosu
