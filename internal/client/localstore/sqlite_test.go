package localstore

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestGet_MissingKeyIsNotAnError(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))

	v, err := s.Get(context.Background(), "token")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSetGet_RoundTrip(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "token", []byte("jwt-abc")))

	v, err := s.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, []byte("jwt-abc"), v)
}

func TestSet_OverwritesExistingValue(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "token", []byte("old")))
	require.NoError(t, s.Set(ctx, "token", []byte("new")))

	v, err := s.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestDelete_ThenGetReturnsNil(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "user", []byte(`{}`)))
	require.NoError(t, s.Delete(ctx, "user"))

	v, err := s.Get(ctx, "user")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestClear_RemovesEverything(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "token", []byte("a")))
	require.NoError(t, s.Set(ctx, "user", []byte("b")))
	require.NoError(t, s.Clear(ctx))

	for _, key := range []string{"token", "user"} {
		v, err := s.Get(ctx, key)
		require.NoError(t, err)
		require.Nil(t, v)
	}
}
