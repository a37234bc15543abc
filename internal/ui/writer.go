package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/log"
	"github.com/chronois/avrora/internal/ui/style"
)

// Writer is the plain line front-end: one line per chat message, used when
// stdout is not a terminal or --plain is given.
type Writer struct {
	mu     sync.Mutex
	out    io.Writer
	prompt bool
	log    domain.Logger

	pagerDisabled bool
	pagerOverride string
	envGetter     func(string) string
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPrompt prints "> " whenever the assistant starts listening.
func WithPrompt() WriterOption {
	return func(w *Writer) {
		w.prompt = true
	}
}

// WithPagerDisabled disables the pager.
func WithPagerDisabled() WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = true
	}
}

// WithPagerOverride sets a pager command override.
func WithPagerOverride(cmd string) WriterOption {
	return func(w *Writer) {
		w.pagerOverride = cmd
	}
}

// WithEnvGetter sets the environment variable getter function.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) {
		w.envGetter = fn
	}
}

// WithWriterLogger sets the logger.
func WithWriterLogger(l domain.Logger) WriterOption {
	return func(w *Writer) {
		w.log = log.Named(l, "writer")
	}
}

// NewWriter creates a new Writer that writes to stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo creates a new Writer that writes to the specified writer.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:       out,
		log:       log.NopLogger{},
		envGetter: os.Getenv,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w, args...)
}

// Notify prints one chat message.
func (w *Writer) Notify(_ context.Context, text string, role domain.Role) {
	if text == "" {
		return
	}
	var line string
	switch role {
	case domain.RoleUser:
		line = style.Role(role, "ви: "+text)
	case domain.RoleSystem:
		line = style.Role(role, "! "+text)
	default:
		line = style.Accent("AVRORA: ") + text
	}
	_, _ = w.Println(line)
}

// ShowHistory prints earlier messages, oldest first.
func (w *Writer) ShowHistory(history []domain.ChatMessage) {
	for _, msg := range history {
		w.Notify(context.Background(), msg.Text, msg.Role)
	}
	if len(history) > 0 {
		_, _ = w.Println(style.Muted("---"))
	}
}

func (w *Writer) SetStatus(a domain.Activity) {
	if w.prompt && a == domain.ActivityListening {
		_, _ = w.Printf("%s", style.Muted("> "))
	}
}

func (w *Writer) MinimizeSelf(context.Context) error { return nil }
func (w *Writer) FocusSelf(context.Context) error    { return nil }

func (w *Writer) ClearChat(context.Context) error {
	_, err := w.Println(style.Muted("--- чат очищено ---"))
	return err
}

func (w *Writer) UpdateSetting(_ context.Context, key, value string) error {
	style.Update(key, value)
	return nil
}

// Pager displays content through a pager if appropriate.
func (w *Writer) Pager(content string) {
	// 1. Pager disabled
	if w.pagerDisabled {
		_, _ = fmt.Fprint(w, content)
		return
	}

	// 2. Not a TTY (check if output supports Fd())
	f, ok := w.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		_, _ = fmt.Fprint(w, content)
		return
	}

	// 3. Pager override flag
	if w.pagerOverride != "" {
		w.runPagerCmd(w.pagerOverride, content)
		return
	}

	// 4. $PAGER environment variable
	if envPager := w.envGetter("PAGER"); envPager != "" {
		w.runPagerCmd(envPager, content)
		return
	}

	// 5. Default: less with standard flags
	w.runPager("less", []string{"-FRSX"}, content)
}

func (w *Writer) runPagerCmd(pagerCmd string, content string) {
	parts := strings.Fields(pagerCmd)
	if len(parts) == 0 || parts[0] == "cat" {
		_, _ = fmt.Fprint(w, content)
		return
	}
	w.runPager(parts[0], parts[1:], content)
}

func (w *Writer) runPager(pager string, args []string, content string) {
	cmd := exec.Command(pager, args...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		w.log.Debug("pager %s failed: %v", pager, err)
		_, _ = fmt.Fprint(w, content)
	}
}

var _ Frontend = (*Writer)(nil)
