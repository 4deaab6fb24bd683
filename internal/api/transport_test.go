package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ITSSBackToSchool/echipa2-frontend/internal/session"
)

func TestBearerTransport(t *testing.T) {
	t.Run("attaches exactly one token to api requests", func(t *testing.T) {
		assert := require.New(t)

		var auth []string
		client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Values("Authorization")
			w.Write([]byte("[]"))
		}))
		assert.NoError(store.Set(session.Session{ID: 1, Token: "tok-1"}))

		_, err := client.Locations.Buildings(t.Context())
		assert.NoError(err)
		assert.Equal([]string{"Bearer tok-1"}, auth)
	})

	t.Run("auth endpoints stay anonymous", func(t *testing.T) {
		for _, path := range []string{"/api/auth/login", "/api/auth/register"} {
			t.Run(path, func(t *testing.T) {
				assert := require.New(t)

				var auth []string
				client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					auth = r.Header.Values("Authorization")
					w.Write([]byte(`{"id":1,"token":"t"}`))
				}))
				assert.NoError(store.Set(session.Session{ID: 1, Token: "stale"}))

				err := client.send(t.Context(), http.MethodPost, path, map[string]string{}, nil)
				assert.NoError(err)
				assert.Empty(auth)
			})
		}
	})

	t.Run("no token means no header", func(t *testing.T) {
		assert := require.New(t)

		var auth []string
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Values("Authorization")
			w.Write([]byte("[]"))
		}))

		_, err := client.Locations.Buildings(t.Context())
		assert.NoError(err)
		assert.Empty(auth)
	})

	t.Run("sets a request id", func(t *testing.T) {
		assert := require.New(t)

		var requestID string
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID = r.Header.Get("X-Request-Id")
			w.Write([]byte("[]"))
		}))

		_, err := client.Locations.Buildings(t.Context())
		assert.NoError(err)
		assert.NotEmpty(requestID)
	})
}
