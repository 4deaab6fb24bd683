package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	assert := require.New(t)

	dir := t.TempDir()
	store, err := NewStore(dir)
	assert.NoError(err)
	assert.Nil(store.Current())
	assert.False(store.IsLoggedIn())

	sess := Session{
		ID:        42,
		Name:      "Jane Doe",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Role:      "EMPLOYEE",
		Token:     "token-123",
	}
	assert.NoError(store.Set(sess))
	assert.True(store.IsLoggedIn())
	assert.Equal("token-123", store.Token())

	// a fresh store must read back the same session from disk
	reopened, err := NewStore(dir)
	assert.NoError(err)
	got := reopened.Current()
	assert.NotNil(got)
	assert.Empty(cmp.Diff(sess, *got))
}

func TestStoreLoad(t *testing.T) {
	t.Run("record without token is no session", func(t *testing.T) {
		assert := require.New(t)

		dir := t.TempDir()
		err := os.WriteFile(filepath.Join(dir, "user.json"),
			[]byte(`{"id":1,"name":"Jane","email":"jane@example.com"}`), 0600)
		assert.NoError(err)

		store, err := NewStore(dir)
		assert.NoError(err)
		assert.Nil(store.Current())
		assert.False(store.IsLoggedIn())
	})

	t.Run("malformed entry is no session", func(t *testing.T) {
		assert := require.New(t)

		dir := t.TempDir()
		err := os.WriteFile(filepath.Join(dir, "user.json"), []byte("{not json"), 0600)
		assert.NoError(err)

		store, err := NewStore(dir)
		assert.NoError(err)
		assert.Nil(store.Current())
	})
}

func TestStoreClear(t *testing.T) {
	assert := require.New(t)

	dir := t.TempDir()
	store, err := NewStore(dir)
	assert.NoError(err)

	assert.NoError(store.Set(Session{ID: 1, Token: "tok"}))
	assert.NoError(store.Clear())

	assert.False(store.IsLoggedIn())
	assert.Empty(store.Token())
	_, err = os.Stat(filepath.Join(dir, "user.json"))
	assert.True(os.IsNotExist(err))

	// clearing twice is fine
	assert.NoError(store.Clear())
}

func TestStoreRole(t *testing.T) {
	assert := require.New(t)

	store, err := NewStore(t.TempDir())
	assert.NoError(err)
	assert.Equal(DefaultRole, store.Role())

	assert.NoError(store.Set(Session{ID: 1, Token: "tok", Role: "ADMIN"}))
	assert.Equal("ADMIN", store.Role())

	assert.NoError(store.Set(Session{ID: 1, Token: "tok"}))
	assert.Equal(DefaultRole, store.Role())
}

func TestStoreSubscribe(t *testing.T) {
	assert := require.New(t)

	store, err := NewStore(t.TempDir())
	assert.NoError(err)

	var seen []*Session
	store.Subscribe(func(sess *Session) {
		seen = append(seen, sess)
	})

	assert.NoError(store.Set(Session{ID: 7, Token: "tok"}))
	assert.NoError(store.Clear())

	assert.Len(seen, 2)
	assert.NotNil(seen[0])
	assert.Equal(int64(7), seen[0].ID)
	assert.Nil(seen[1])
}

func TestSidebarCollapsed(t *testing.T) {
	assert := require.New(t)

	dir := t.TempDir()
	store, err := NewStore(dir)
	assert.NoError(err)
	assert.False(store.SidebarCollapsed())

	assert.NoError(store.SetSidebarCollapsed(true))
	assert.True(store.SidebarCollapsed())

	// stored as a text literal, not JSON
	data, err := os.ReadFile(filepath.Join(dir, "sidebarCollapsed"))
	assert.NoError(err)
	assert.Equal("true", string(data))

	assert.NoError(store.SetSidebarCollapsed(false))
	assert.False(store.SidebarCollapsed())
}

func TestDisplayName(t *testing.T) {
	assert := require.New(t)

	assert.Equal("Jane", (&Session{FirstName: "Jane", Name: "Jane Doe"}).DisplayName())
	assert.Equal("Jane", (&Session{Name: "Jane Doe"}).DisplayName())
	assert.Equal("User", (&Session{}).DisplayName())
}
