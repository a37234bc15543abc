// Package migrations holds the chat database schema as numbered SQL files.
// The applied version is kept in SQLite's user_version pragma.
package migrations

import (
	"cmp"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// Step is one numbered schema change.
type Step struct {
	Version int
	Name    string
	SQL     string
}

// Load returns the embedded steps ordered by version.
func Load() ([]Step, error) {
	names, err := fs.Glob(sqlFiles, "sql/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list schema files: %w", err)
	}

	steps := make([]Step, 0, len(names))
	for _, path := range names {
		step, err := readStep(path)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}

	slices.SortFunc(steps, func(a, b Step) int { return cmp.Compare(a.Version, b.Version) })

	for i := 1; i < len(steps); i++ {
		if steps[i].Version == steps[i-1].Version {
			return nil, fmt.Errorf("schema version %d used by %s and %s", steps[i].Version, steps[i-1].Name, steps[i].Name)
		}
	}
	return steps, nil
}

// readStep loads "sql/NN_name.sql".
func readStep(path string) (Step, error) {
	base := strings.TrimSuffix(strings.TrimPrefix(path, "sql/"), ".sql")
	num, name, ok := strings.Cut(base, "_")
	if !ok || name == "" {
		return Step{}, fmt.Errorf("schema file %s: want NN_name.sql", path)
	}

	version, err := strconv.Atoi(num)
	if err != nil || version <= 0 {
		return Step{}, fmt.Errorf("schema file %s: bad version %q", path, num)
	}

	body, err := sqlFiles.ReadFile(path)
	if err != nil {
		return Step{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Step{Version: version, Name: name, SQL: string(body)}, nil
}

// Run brings db up to the newest embedded version. Each step and its
// version bump commit together.
func Run(db *sql.DB) error {
	steps, err := Load()
	if err != nil {
		return err
	}

	current, err := CurrentVersion(db)
	if err != nil {
		return err
	}

	for _, step := range steps {
		if step.Version <= current {
			continue
		}
		if err := apply(db, step); err != nil {
			return fmt.Errorf("schema %02d_%s: %w", step.Version, step.Name, err)
		}
	}
	return nil
}

func apply(db *sql.DB, step Step) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(step.SQL); err != nil {
		return err
	}
	// PRAGMA does not accept bound parameters.
	if _, err = tx.Exec("PRAGMA user_version = " + strconv.Itoa(step.Version)); err != nil {
		return fmt.Errorf("set version: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// CurrentVersion reports the schema version db is at. A fresh database is 0.
func CurrentVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

// Latest returns the version the embedded files migrate to.
func Latest() (int, error) {
	steps, err := Load()
	if err != nil || len(steps) == 0 {
		return 0, err
	}
	return steps[len(steps)-1].Version, nil
}
