package desktop

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/chronois/avrora/internal/domain"
)

// Launcher starts programs and opens files and URLs with the desktop's
// default handlers.
type Launcher struct {
	tools
}

// NewLauncher returns a launcher.
func NewLauncher(opts ...Option) *Launcher {
	return &Launcher{tools: newTools(opts)}
}

// openCommand is the platform's "open with default application" tool.
func openCommand() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	default:
		return "xdg-open"
	}
}

// Launch implements domain.Launcher. Desktop entries go through gio,
// executables are started directly and anything else is opened.
func (l *Launcher) Launch(_ context.Context, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("launch: empty path")
	}

	var err error
	switch {
	case filepath.Ext(path) == ".desktop":
		err = l.start("gio", "launch", path)
	case isExecutable(path):
		err = l.start(path)
	default:
		err = l.start(openCommand(), path)
	}
	if err != nil {
		return fmt.Errorf("launch %s: %w", path, err)
	}

	l.log.Info("launched %s", path)
	return nil
}

// OpenURL implements domain.Browser.
func (l *Launcher) OpenURL(_ context.Context, url string) error {
	if err := l.start(openCommand(), url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	l.log.Info("opened %s", url)
	return nil
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}

var (
	_ domain.Launcher = (*Launcher)(nil)
	_ domain.Browser  = (*Launcher)(nil)
)
