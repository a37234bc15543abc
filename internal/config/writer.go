package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteLines replaces the file content through a temp file and a rename,
// so readers never see half a settings file.
func (f *File) WriteLines(lines []string) (err error) {
	dir := filepath.Dir(f.path)
	if err = os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	var body strings.Builder
	for _, line := range lines {
		body.WriteString(line)
		body.WriteByte('\n')
	}

	if err = tmp.Chmod(0600); err != nil {
		return err
	}
	if _, err = tmp.WriteString(body.String()); err != nil {
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}
