package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"

	"github.com/ITSSBackToSchool/echipa2-frontend/internal/session"
)

// authResponse is the backend's shape for both login and register.
type authResponse struct {
	ID        int64  `json:"id"`
	Token     string `json:"token"`
	UserName  string `json:"userName"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// RegisterParams carries the registration form fields.
type RegisterParams struct {
	UserName  string `json:"userName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// AuthGateway performs login and register calls and commits the resulting
// session to the store. Both operations are single-shot; resubmission is the
// caller's decision.
type AuthGateway struct {
	client *Client
	store  *session.Store
}

// Login exchanges credentials for a session. A 401 is marked with
// ErrInvalidCredentials so the caller can show a tailored message.
func (g *AuthGateway) Login(ctx context.Context, email, password string) (*session.Session, error) {
	body := map[string]string{"email": email, "password": password}

	var resp authResponse
	if err := g.client.send(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusUnauthorized {
			return nil, errors.Mark(err, ErrInvalidCredentials)
		}
		return nil, err
	}

	sess := resp.toSession(email)
	if err := g.store.Set(sess); err != nil {
		return nil, err
	}

	log.Info().Int64("userID", sess.ID).Msg("logged in")

	return &sess, nil
}

// Register creates an account and logs it in. A conflict on email uniqueness
// is marked with ErrEmailTaken.
func (g *AuthGateway) Register(ctx context.Context, params RegisterParams) (*session.Session, error) {
	var resp authResponse
	if err := g.client.send(ctx, http.MethodPost, "/api/auth/register", params, &resp); err != nil {
		if isEmailConflict(err) {
			return nil, errors.Mark(err, ErrEmailTaken)
		}
		return nil, err
	}

	sess := resp.toSession(params.Email)
	// The backend may omit the names it was sent; keep the submitted values.
	if sess.FirstName == "" {
		sess.FirstName = params.FirstName
	}
	if sess.LastName == "" {
		sess.LastName = params.LastName
	}

	if err := g.store.Set(sess); err != nil {
		return nil, err
	}

	log.Info().Int64("userID", sess.ID).Msg("registered")

	return &sess, nil
}

// Logout clears the session store. Purely local; the backend keeps no
// server-side session state for this client.
func (g *AuthGateway) Logout() error {
	return g.store.Clear()
}

func (r authResponse) toSession(email string) session.Session {
	role := r.Role
	if role == "" {
		role = session.DefaultRole
	}
	return session.Session{
		ID:        r.ID,
		Name:      r.UserName,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     email,
		Role:      role,
		Token:     r.Token,
	}
}

// isEmailConflict recognizes the backend's duplicate-email rejection, which
// arrives either as a 409 or as a 400 with a telltale message.
func isEmailConflict(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	if se.Code == http.StatusConflict {
		return true
	}
	return se.Code == http.StatusBadRequest &&
		strings.Contains(strings.ToLower(se.Message), "already registered")
}
