package metadata

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every pooled connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "auth_token", []byte("t1")))

	v, err := r.Get(ctx, "auth_token")
	require.NoError(t, err)
	require.Equal(t, []byte("t1"), v)
}

func TestGet_NotExists_ReturnsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "preferred_language", []byte("en")))
	require.NoError(t, r.Set(ctx, "preferred_language", []byte("ru")))

	v, err := r.Get(ctx, "preferred_language")
	require.NoError(t, err)
	require.Equal(t, []byte("ru"), v)
}

func TestSetMany_WritesAllPairs(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "auth_token", []byte("old")))
	require.NoError(t, r.SetMany(ctx, map[string][]byte{
		"auth_token":    []byte("t2"),
		"last_username": []byte("alice"),
	}))

	for k, want := range map[string][]byte{
		"auth_token":    []byte("t2"),
		"last_username": []byte("alice"),
	} {
		v, err := r.Get(ctx, k)
		require.NoError(t, err)
		assert.Equal(t, want, v, k)
	}
}

func TestSetMany_InsideCallerTx(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	txRepo := NewSQLiteRepository(tx)
	require.NoError(t, txRepo.SetMany(ctx, map[string][]byte{"a": {1}}))
	require.NoError(t, tx.Rollback())

	v, err := NewSQLiteRepository(db).Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, v, "rolled back with the caller's transaction")
}

func TestSetMany_RollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("disk full")
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO metadata").
		WithArgs("auth_token", []byte("t1")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO metadata").
		WithArgs("last_username", []byte("alice")).
		WillReturnError(boom)
	mock.ExpectRollback()

	r := NewSQLiteRepository(db)
	err = r.SetMany(context.Background(), map[string][]byte{
		"last_username": []byte("alice"),
		"auth_token":    []byte("t1"),
	})

	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "failed to set metadata[last_username]")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_BinaryValuesRoundTrip(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte{0xAA}))
	require.NoError(t, r.Set(ctx, "b", []byte{0xBB, 0xCC}))

	a, err := r.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA}, a)

	b, err := r.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xBB, 0xCC}, b)
}

func TestDelete_RemovesKey_AndIsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "auth_token", []byte("t1")))
	require.NoError(t, r.Delete(ctx, "auth_token"))

	v, err := r.Get(ctx, "auth_token")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, r.Delete(ctx, "auth_token"))
}

func TestClosedDB_ErrorsAreWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get metadata[k]")

	err = r.Set(ctx, "k", []byte("v"))
	require.ErrorContains(t, err, "failed to set metadata[k]")

	err = r.Delete(ctx, "k")
	require.ErrorContains(t, err, "failed to delete metadata[k]")

	err = r.SetMany(ctx, map[string][]byte{"k": []byte("v")})
	require.ErrorContains(t, err, "begin tx")
}
