// Package chatlog keeps the conversation between the user and the
// assistant in SQLite.
package chatlog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/chronois/avrora/internal/chatlog/migrations"
	"github.com/chronois/avrora/internal/domain"
)

const memoryPath = ":memory:"

// Store is the chat history. Appends are serialised so messages posted by
// deferred actions and the main loop keep their order.
type Store struct {
	mu   sync.Mutex
	db   *sql.DB
	path string
	now  func() time.Time
}

// New opens the database at path and runs pending migrations.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path, now: time.Now}, nil
}

// OpenMemory returns a store that lives only as long as the process.
// Used when chat saving is turned off.
func OpenMemory() (*Store, error) {
	return New(memoryPath)
}

// NewWithDB wraps an already migrated connection.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Persistent reports whether history survives a restart.
func (s *Store) Persistent() bool {
	return s.path != "" && s.path != memoryPath
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func setDBPermissions(path string) {
	if path == memoryPath {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Append stores a message and returns it with its id.
func (s *Store) Append(ctx context.Context, role domain.Role, text string) (domain.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := domain.ChatMessage{Role: role, Text: text, CreatedAt: s.now().UTC().Truncate(time.Second)}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_messages (role, text, created_at) VALUES (?, ?, ?)`,
		string(msg.Role), msg.Text, msg.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return domain.ChatMessage{}, fmt.Errorf("append message: %w", err)
	}

	msg.ID, err = res.LastInsertId()
	if err != nil {
		return domain.ChatMessage{}, fmt.Errorf("append message: %w", err)
	}
	return msg, nil
}

// History returns the newest limit messages, oldest first. limit <= 0
// returns everything.
func (s *Store) History(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	query := `
		SELECT id, role, text, created_at FROM (
			SELECT id, role, text, created_at
			FROM chat_messages
			ORDER BY id DESC
			LIMIT ?
		) ORDER BY id ASC
	`
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.ChatMessage
	for rows.Next() {
		var (
			m    domain.ChatMessage
			role string
			ts   string
		)
		if err := rows.Scan(&m.ID, &role, &m.Text, &ts); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", m.ID, err)
		}
		m.Role = domain.Role(role)
		m.CreatedAt = t
		out = append(out, m)
	}
	return out, rows.Err()
}

// Clear deletes every message.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM chat_messages`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

var _ domain.ChatLog = (*Store)(nil)
