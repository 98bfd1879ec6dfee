package repository

import (
	"database/sql"
	"testing"

	"github.com/MatiasFerreyra/Journal_Api/internal/database"
	"github.com/MatiasFerreyra/Journal_Api/internal/storage"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.EnsureSchema(db))
	return storage.NewStore(db)
}
