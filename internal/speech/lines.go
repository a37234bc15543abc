// Package speech holds the text stand-ins for the microphone and the
// voice: typed lines are recognised speech, espeak-ng is the voice.
package speech

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/chronois/avrora/internal/domain"
)

// Lines is a recognizer fed with typed lines. Submit may be called from
// any goroutine; Recognize returns io.EOF once the source is closed and
// drained.
type Lines struct {
	ch   chan string
	done chan struct{}
	once sync.Once
}

// NewLines returns an empty line recognizer.
func NewLines() *Lines {
	return &Lines{ch: make(chan string, 16), done: make(chan struct{})}
}

// NewConsole returns a recognizer reading lines from r until EOF.
func NewConsole(r io.Reader) *Lines {
	l := NewLines()
	go func() {
		defer l.Close()
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if !l.Submit(scanner.Text()) {
				return
			}
		}
	}()
	return l
}

// Submit queues a line. It returns false after Close.
func (l *Lines) Submit(text string) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.ch <- text:
		return true
	case <-l.done:
		return false
	}
}

// Close ends the input. Lines already queued are still delivered.
func (l *Lines) Close() {
	l.once.Do(func() { close(l.done) })
}

// Recognize implements domain.Recognizer. The text is trimmed; its case is
// kept for names, notes and typed text.
func (l *Lines) Recognize(ctx context.Context) (string, error) {
	select {
	case text := <-l.ch:
		return normalize(text), nil
	default:
	}

	select {
	case text := <-l.ch:
		return normalize(text), nil
	case <-l.done:
		select {
		case text := <-l.ch:
			return normalize(text), nil
		default:
			return "", io.EOF
		}
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func normalize(text string) string {
	return strings.TrimSpace(text)
}

var _ domain.Recognizer = (*Lines)(nil)
