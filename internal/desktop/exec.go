// Package desktop drives the local machine through its command-line tools:
// xdg-open, xdotool, pactl or amixer, and systemctl.
package desktop

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/log"
)

// ExecFunc runs a program and returns its combined output.
type ExecFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// StartFunc starts a program without waiting for it.
type StartFunc func(name string, args ...string) error

// runCommand is the default ExecFunc.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.Bytes(), err
}

// startCommand is the default StartFunc. The child is reaped in the
// background.
func startCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// Option configures the desktop tools.
type Option func(*tools)

type tools struct {
	exec  ExecFunc
	start StartFunc
	spawn SpawnFunc
	log   domain.Logger
}

// WithExec replaces the command runner. Used by tests.
func WithExec(fn ExecFunc) Option {
	return func(t *tools) {
		t.exec = fn
	}
}

// WithStart replaces the detached process starter. Used by tests.
func WithStart(fn StartFunc) Option {
	return func(t *tools) {
		t.start = fn
	}
}

// WithSpawn replaces the process starter used by Shell. Used by tests.
func WithSpawn(fn SpawnFunc) Option {
	return func(t *tools) {
		t.spawn = fn
	}
}

// WithLogger sets the logger.
func WithLogger(l domain.Logger) Option {
	return func(t *tools) {
		t.log = log.Named(l, "desktop")
	}
}

func newTools(opts []Option) tools {
	t := tools{exec: runCommand, start: startCommand, spawn: spawnCommand, log: log.NopLogger{}}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// run executes name and folds its output into the error.
func (t tools) run(ctx context.Context, name string, args ...string) error {
	out, err := t.exec(ctx, name, args...)
	if err != nil {
		t.log.Debug("command failed: %s %s: %v", name, strings.Join(args, " "), err)
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// exitCode extracts the exit status from an exec error.
func exitCode(err error) (int, bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return 0, false
}
