// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/chronois/avrora/internal/chatlog"
	"github.com/chronois/avrora/internal/chatlog/migrations"
	"github.com/chronois/avrora/internal/domain"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(db)
	require.NoError(t, err, "failed to run migrations")

	return db
}

// NewTestChat returns a chat log over NewTestDB.
func NewTestChat(t *testing.T) *chatlog.Store {
	t.Helper()
	return chatlog.NewWithDB(NewTestDB(t))
}

// SeedMessages appends messages to chat in order.
func SeedMessages(t *testing.T, chat domain.ChatLog, messages []domain.ChatMessage) {
	t.Helper()

	for _, msg := range messages {
		_, err := chat.Append(context.Background(), msg.Role, msg.Text)
		require.NoError(t, err, "failed to seed message: %+v", msg)
	}
}
