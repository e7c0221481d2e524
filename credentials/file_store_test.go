package credentials_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/silvercloudhq/silvercloud-cli/credentials"
)

func testStore(t *testing.T) *credentials.FileStore {
	t.Helper()
	return credentials.NewFileStore(filepath.Join(t.TempDir(), "silvercloud", "credentials.json"))
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := testStore(t)
	saved := credentials.Credentials{AccessToken: "AT1", RefreshToken: "RT1"}

	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, saved, *loaded)

	require.NoError(t, store.Clear())

	loaded, err = store.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestFileStoreLoadWhenAbsent(t *testing.T) {
	store := testStore(t)

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestFileStoreIncompletePairIsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"access_token":"AT1"}`), 0o600))

	loaded, err := credentials.NewFileStore(path).Load()
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestFileStoreLastWriterWins(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.Save(credentials.Credentials{AccessToken: "AT1", RefreshToken: "RT1"}))
	require.NoError(t, store.Save(credentials.Credentials{AccessToken: "AT2", RefreshToken: "RT2"}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, "AT2", loaded.AccessToken)
	require.Equal(t, "RT2", loaded.RefreshToken)
}

func TestFileStoreClearIsIdempotent(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}
