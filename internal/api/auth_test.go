package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ITSSBackToSchool/echipa2-frontend/internal/session"
)

func TestLogin(t *testing.T) {
	t.Run("maps the response and commits the session", func(t *testing.T) {
		assert := require.New(t)

		var gotBody map[string]string
		client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal("/api/auth/login", r.URL.Path)
			assert.NoError(json.NewDecoder(r.Body).Decode(&gotBody))
			json.NewEncoder(w).Encode(map[string]any{
				"id":        7,
				"token":     "jwt-abc",
				"userName":  "Jane Doe",
				"firstName": "Jane",
				"lastName":  "Doe",
				"role":      "ADMIN",
			})
		}))

		sess, err := client.Auth.Login(t.Context(), "jane@example.com", "hunter2")
		assert.NoError(err)
		assert.Equal(map[string]string{"email": "jane@example.com", "password": "hunter2"}, gotBody)

		assert.Equal(int64(7), sess.ID)
		assert.Equal("Jane Doe", sess.Name)
		assert.Equal("Jane", sess.FirstName)
		assert.Equal("jane@example.com", sess.Email)
		assert.Equal("ADMIN", sess.Role)
		assert.Equal("jwt-abc", sess.Token)

		stored := store.Current()
		assert.NotNil(stored)
		assert.Equal("jwt-abc", stored.Token)
	})

	t.Run("missing role defaults", func(t *testing.T) {
		assert := require.New(t)

		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":7,"token":"jwt-abc","userName":"Jane Doe"}`))
		}))

		sess, err := client.Auth.Login(t.Context(), "jane@example.com", "hunter2")
		assert.NoError(err)
		assert.Equal(session.DefaultRole, sess.Role)
	})

	t.Run("401 is invalid credentials", func(t *testing.T) {
		assert := require.New(t)

		client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Invalid credentials"}`))
		}))

		_, err := client.Auth.Login(t.Context(), "jane@example.com", "wrong")
		assert.ErrorIs(err, ErrInvalidCredentials)
		assert.False(store.IsLoggedIn())
	})

	t.Run("unreachable backend", func(t *testing.T) {
		assert := require.New(t)

		store, err := session.NewStore(t.TempDir())
		assert.NoError(err)

		cfg := DefaultConfig()
		// nothing listens here
		cfg.BaseURL = "http://127.0.0.1:1"

		client, err := New(cfg, store, zerolog.Nop())
		assert.NoError(err)

		_, err = client.Auth.Login(t.Context(), "jane@example.com", "hunter2")
		assert.ErrorIs(err, ErrUnreachable)
	})
}

func TestRegister(t *testing.T) {
	t.Run("commits and keeps submitted names", func(t *testing.T) {
		assert := require.New(t)

		client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal("/api/auth/register", r.URL.Path)
			w.Write([]byte(`{"id":3,"token":"jwt-new","userName":"Jane Doe"}`))
		}))

		sess, err := client.Auth.Register(t.Context(), RegisterParams{
			UserName:  "Jane Doe",
			Email:     "jane@example.com",
			Password:  "hunter2",
			FirstName: "Jane",
			LastName:  "Doe",
		})
		assert.NoError(err)
		assert.Equal("Jane", sess.FirstName)
		assert.Equal("Doe", sess.LastName)
		assert.True(store.IsLoggedIn())
	})

	t.Run("409 is email taken", func(t *testing.T) {
		assert := require.New(t)

		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))

		_, err := client.Auth.Register(t.Context(), RegisterParams{Email: "jane@example.com"})
		assert.ErrorIs(err, ErrEmailTaken)
	})

	t.Run("400 with telltale message is email taken", func(t *testing.T) {
		assert := require.New(t)

		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"Email already registered"}`))
		}))

		_, err := client.Auth.Register(t.Context(), RegisterParams{Email: "jane@example.com"})
		assert.ErrorIs(err, ErrEmailTaken)
	})

	t.Run("other 400s pass through", func(t *testing.T) {
		assert := require.New(t)

		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"password too short"}`))
		}))

		_, err := client.Auth.Register(t.Context(), RegisterParams{Email: "jane@example.com"})
		assert.NotErrorIs(err, ErrEmailTaken)

		var se *StatusError
		assert.True(errors.As(err, &se))
		assert.Equal("password too short", se.Message)
	})
}

func TestLogout(t *testing.T) {
	assert := require.New(t)

	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	assert.NoError(store.Set(session.Session{ID: 1, Token: "tok"}))

	assert.NoError(client.Auth.Logout())
	assert.False(store.IsLoggedIn())
}
