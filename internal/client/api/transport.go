package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// TokenSource yields the current access token, or "" when nobody is
// logged in. session.Store satisfies this.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// authTransport decorates every outgoing request: bearer token when one is
// persisted, plus a fresh request id for server-side correlation.
type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request.
	req = req.Clone(req.Context())

	req.Header.Set("X-Request-Id", uuid.NewString())

	if t.tokens != nil {
		token, err := t.tokens.Token(req.Context())
		if err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return t.base.RoundTrip(req)
}
