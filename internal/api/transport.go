package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ITSSBackToSchool/echipa2-frontend/internal/session"
)

// authPaths are reached before a token exists and must stay anonymous.
var authPaths = []string{"/api/auth/login", "/api/auth/register"}

func isAuthPath(path string) bool {
	for _, p := range authPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// bearerTransport attaches the session's bearer token to every outgoing
// request except the auth endpoints. It is a pure header transformation: no
// retries, no short-circuiting.
type bearerTransport struct {
	base  http.RoundTripper
	store *session.Store
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request.
	req = req.Clone(req.Context())

	req.Header.Set("X-Request-Id", uuid.NewString())

	if token := t.store.Token(); token != "" && !isAuthPath(req.URL.Path) {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return t.base.RoundTrip(req)
}
