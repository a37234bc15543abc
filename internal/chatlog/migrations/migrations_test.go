package migrations_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/chronois/avrora/internal/chatlog/migrations"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad_OrderedFromOne(t *testing.T) {
	steps, err := migrations.Load()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(steps), 2)

	require.Equal(t, 1, steps[0].Version)
	require.Equal(t, "chat_messages", steps[0].Name)
	for i := 1; i < len(steps); i++ {
		require.Greater(t, steps[i].Version, steps[i-1].Version)
	}
}

func TestRun_FreshDatabase(t *testing.T) {
	db := openMemory(t)

	v, err := migrations.CurrentVersion(db)
	require.NoError(t, err)
	require.Zero(t, v)

	require.NoError(t, migrations.Run(db))

	var name string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='chat_messages'").Scan(&name)
	require.NoError(t, err)

	latest, err := migrations.Latest()
	require.NoError(t, err)
	var pragma int
	require.NoError(t, db.QueryRow("PRAGMA user_version").Scan(&pragma))
	require.Equal(t, latest, pragma)
}

func TestRun_Idempotent(t *testing.T) {
	db := openMemory(t)

	require.NoError(t, migrations.Run(db))
	first, err := migrations.CurrentVersion(db)
	require.NoError(t, err)

	require.NoError(t, migrations.Run(db))
	second, err := migrations.CurrentVersion(db)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestSchema_RejectsUnknownRole(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, migrations.Run(db))

	_, err := db.Exec(`INSERT INTO chat_messages (role, text, created_at) VALUES ('robot', 'hi', '2026-01-01T00:00:00Z')`)
	require.Error(t, err)

	_, err = db.Exec(`INSERT INTO chat_messages (role, text, created_at) VALUES ('user', 'аврора привіт', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)
}
