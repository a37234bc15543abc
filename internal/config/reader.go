package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/chronois/avrora/internal/log"
)

// File is a line-oriented key=value document on disk. Settings and custom
// commands are both stored this way.
type File struct {
	path string
	seed func() []string
}

// FileOption configures a File.
type FileOption func(*File)

// WithSeed sets the content written when the file is missing or empty.
func WithSeed(fn func() []string) FileOption {
	return func(f *File) {
		f.seed = fn
	}
}

// NewFile returns a File stored at path.
func NewFile(path string, opts ...FileOption) *File {
	f := &File{path: path}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Path returns the location of the file.
func (f *File) Path() string {
	return f.path
}

// ReadLines returns the raw lines of the file, creating it if needed.
func (f *File) ReadLines() ([]string, error) {
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return nil, err
	}

	// Check if file exists and has content
	info, err := os.Stat(f.path)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	// Ensure correct permissions if file already existed
	if err := os.Chmod(f.path, 0600); err != nil {
		log.Warn("config: could not set permissions on %s: %v", f.path, err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()
		line = strings.TrimSuffix(line, "\r") // Windows CRLF
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 && f.seed != nil {
		lines = f.seed()
		if err := f.WriteLines(lines); err != nil {
			log.Warn("config: could not write initial %s: %v", f.path, err)
		}
	}

	return lines, nil
}
