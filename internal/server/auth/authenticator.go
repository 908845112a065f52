package auth

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/newsroom/internal/common"
)

// TokenVerifier resolves a token to a user id.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// Authenticator resolves the bearer credential of a request to a user id.
// It holds no state besides the verifier and performs no I/O.
type Authenticator struct {
	tokens TokenVerifier
}

func NewAuthenticator(tokens TokenVerifier) *Authenticator {
	return &Authenticator{tokens: tokens}
}

// Authenticate returns common.ErrUnauthenticated when no well-formed bearer
// credential is present (no decode is attempted) and propagates the
// verifier's error otherwise.
func (a *Authenticator) Authenticate(h http.Header) (int64, error) {
	token, ok := BearerToken(h)
	if !ok {
		return 0, common.ErrUnauthenticated
	}
	return a.tokens.Verify(token)
}

// BearerToken extracts <token> from "Authorization: Bearer <token>". The
// prefix match is case-sensitive.
func BearerToken(h http.Header) (string, bool) {
	token, found := strings.CutPrefix(h.Get(common.AuthorizationHeaderName), common.BearerPrefix)
	if !found {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
