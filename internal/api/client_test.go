package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ITSSBackToSchool/echipa2-frontend/internal/session"
)

// newTestClient wires a client and a fresh session store against a fake
// backend.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Store) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := session.NewStore(t.TempDir())
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.BaseURL = server.URL

	client, err := New(cfg, store, zerolog.Nop())
	require.NoError(t, err)

	return client, store
}

func TestNewRejectsBadURL(t *testing.T) {
	assert := require.New(t)

	store, err := session.NewStore(t.TempDir())
	assert.NoError(err)

	cfg := DefaultConfig()
	cfg.BaseURL = "http://bad url"

	_, err = New(cfg, store, zerolog.Nop())
	assert.Error(err)
}

func TestStatusErrorEnvelope(t *testing.T) {
	t.Run("message field", func(t *testing.T) {
		assert := require.New(t)

		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"bad input"}`))
		}))

		err := client.get(t.Context(), "/api/buildings", nil, nil)
		var se *StatusError
		assert.ErrorAs(err, &se)
		assert.Equal(http.StatusBadRequest, se.Code)
		assert.Equal("bad input", se.Message)
	})

	t.Run("error field", func(t *testing.T) {
		assert := require.New(t)

		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"boom"}`))
		}))

		err := client.get(t.Context(), "/api/buildings", nil, nil)
		var se *StatusError
		assert.ErrorAs(err, &se)
		assert.Equal("boom", se.Message)
	})

	t.Run("undecodable body keeps the status", func(t *testing.T) {
		assert := require.New(t)

		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>not json</html>"))
		}))

		err := client.get(t.Context(), "/api/buildings", nil, nil)
		var se *StatusError
		assert.ErrorAs(err, &se)
		assert.Equal(http.StatusBadGateway, se.Code)
		assert.Empty(se.Message)
	})
}
