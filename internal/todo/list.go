// Package todo stores the to-do list, one task per line.
package todo

import (
	"fmt"
	"strings"

	"github.com/chronois/avrora/internal/config"
	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/usage"
)

// List is the to-do file.
type List struct {
	file *config.File
}

// New returns a list stored at path. The file is created on first use.
func New(path string) *List {
	return &List{file: config.NewFile(path)}
}

// Tasks returns the non-empty, trimmed lines in file order.
func (l *List) Tasks() ([]string, error) {
	var tasks []string
	err := l.file.WithLock(func() error {
		var err error
		tasks, err = l.read()
		return err
	})
	return tasks, err
}

// Add appends task unless it is already on the list. Tasks are compared
// without regard to case and stored as given.
func (l *List) Add(task string) (bool, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return false, usage.MissingArgument("task")
	}

	added := false
	err := l.file.WithLock(func() error {
		tasks, err := l.read()
		if err != nil {
			return err
		}
		if contains(tasks, task) {
			return nil
		}
		added = true
		return l.write(append(tasks, task))
	})
	return added, err
}

// Remove deletes every line equal to task, ignoring case.
func (l *List) Remove(task string) (bool, error) {
	task = strings.TrimSpace(task)

	removed := false
	err := l.file.WithLock(func() error {
		tasks, err := l.read()
		if err != nil {
			return err
		}
		if !contains(tasks, task) {
			return nil
		}

		kept := tasks[:0]
		for _, t := range tasks {
			if !strings.EqualFold(t, task) {
				kept = append(kept, t)
			}
		}
		removed = true
		return l.write(kept)
	})
	return removed, err
}

// Clear empties the list.
func (l *List) Clear() error {
	return l.file.WithLock(func() error {
		return l.write(nil)
	})
}

func (l *List) read() ([]string, error) {
	lines, err := l.file.ReadLines()
	if err != nil {
		return nil, fmt.Errorf("read to-do list: %w", err)
	}

	var tasks []string
	for _, line := range lines {
		if t := strings.TrimSpace(line); t != "" {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (l *List) write(tasks []string) error {
	if err := l.file.WriteLines(tasks); err != nil {
		return fmt.Errorf("write to-do list: %w", err)
	}
	return nil
}

func contains(tasks []string, task string) bool {
	for _, t := range tasks {
		if strings.EqualFold(t, task) {
			return true
		}
	}
	return false
}

var _ domain.TodoList = (*List)(nil)
