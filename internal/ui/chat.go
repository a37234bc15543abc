// Package ui provides the console front-ends of the assistant: a Bubble Tea
// chat window and a plain line writer for pipes and dumb terminals.
package ui

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/log"
	"github.com/chronois/avrora/internal/ui/style"
)

// Frontend is what the assistant needs from a console front-end.
type Frontend interface {
	domain.Window
	domain.Notifier
	SetStatus(domain.Activity)
}

// ChatDeps are the collaborators of the chat window.
type ChatDeps struct {
	// History is shown before the first new message.
	History []domain.ChatMessage

	// Submit receives every line the user enters.
	Submit func(string)

	Logger domain.Logger
	Input  io.Reader
	Output io.Writer
}

// Chat is the full-screen chat window. Its methods may be called from any
// goroutine; they are delivered to the Bubble Tea loop as messages.
type Chat struct {
	program *tea.Program
	log     domain.Logger
}

// NewChat creates the chat window. Call Run to show it.
func NewChat(deps ChatDeps) *Chat {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if deps.Input != nil {
		opts = append(opts, tea.WithInput(deps.Input))
	}
	if deps.Output != nil {
		opts = append(opts, tea.WithOutput(deps.Output))
	}

	m := newChatModel(deps.History, deps.Submit)
	return &Chat{
		program: tea.NewProgram(m, opts...),
		log:     log.Named(deps.Logger, "chat"),
	}
}

// Run shows the window until the user quits or ctx ends.
func (c *Chat) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		c.program.Quit()
	}()
	_, err := c.program.Run()
	return err
}

// Quit closes the window.
func (c *Chat) Quit() {
	c.program.Quit()
}

func (c *Chat) Notify(_ context.Context, text string, role domain.Role) {
	c.program.Send(postMsg{role: role, text: text})
}

func (c *Chat) SetStatus(a domain.Activity) {
	c.program.Send(statusMsg(a))
}

// MinimizeSelf is a no-op: a terminal cannot hide itself.
func (c *Chat) MinimizeSelf(context.Context) error {
	c.log.Debug("minimize requested")
	return nil
}

func (c *Chat) FocusSelf(context.Context) error {
	c.log.Debug("focus requested")
	return nil
}

func (c *Chat) ClearChat(context.Context) error {
	c.program.Send(clearMsg{})
	return nil
}

// UpdateSetting restyles the window after a theme or accent change.
func (c *Chat) UpdateSetting(_ context.Context, key, value string) error {
	style.Update(key, value)
	c.program.Send(settingMsg{key: key, value: value})
	return nil
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

var _ Frontend = (*Chat)(nil)
