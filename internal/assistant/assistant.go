// Package assistant runs the listen, dispatch and reply loop.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"runtime/debug"
	"strings"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/log"
	"github.com/chronois/avrora/internal/phrases"
)

var (
	// ErrExit is returned when the user asked the assistant to quit.
	ErrExit = errors.New("exit requested")

	// ErrRestart is returned when the user asked the assistant to restart.
	ErrRestart = errors.New("restart requested")
)

// Dispatcher handles the text after the wake word.
type Dispatcher interface {
	Dispatch(ctx context.Context, remainder string) domain.Result
}

// Deps holds the collaborators of an Assistant.
type Deps struct {
	App        *domain.Application
	Dispatcher Dispatcher

	// OnStatus is told about Listening, Thinking and None. Optional.
	OnStatus domain.StatusFunc

	// Pick chooses an index below n for the generic affirmative. Optional.
	Pick func(n int) int
}

// Assistant is the top-level loop.
type Assistant struct {
	app        *domain.Application
	dispatcher Dispatcher
	log        domain.Logger
	status     domain.StatusFunc
	pick       func(n int) int
}

// New returns an assistant.
func New(deps Deps) *Assistant {
	a := &Assistant{
		app:        deps.App,
		dispatcher: deps.Dispatcher,
		log:        log.Named(deps.App.Logger, "assistant"),
		status:     deps.OnStatus,
		pick:       deps.Pick,
	}
	if a.status == nil {
		a.status = func(domain.Activity) {}
	}
	if a.pick == nil {
		a.pick = rand.Intn
	}
	return a
}

// IsAddressed reports whether text starts with the wake word, in any case.
func IsAddressed(text string) bool {
	_, ok := phrases.CutPrefixFold(strings.TrimSpace(text), phrases.WakeWord)
	return ok
}

// Handle runs one cycle on recognised text that starts with the wake word.
// Every reply is spoken before Handle returns. It returns ErrExit or
// ErrRestart when the cycle asks for it; a panic is returned as an error.
func (a *Assistant) Handle(ctx context.Context, text string) (res domain.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("panic handling %q: %v\n%s", text, r, debug.Stack())
			res, err = domain.Result{}, fmt.Errorf("panic: %v", r)
		}
	}()

	text = strings.TrimSpace(text)
	name := a.settings().Name

	if strings.EqualFold(text, phrases.WakeWord) {
		if err := a.app.Window.FocusSelf(ctx); err != nil {
			a.log.Warn("focus window: %v", err)
		}
		return a.reply(ctx, domain.StatusSuccess, phrases.T(phrases.Present, name)), nil
	}

	sep := phrases.WakeWord + " "
	idx := phrases.LastIndexFold(text, sep)
	if idx < 0 {
		a.log.Warn("no command after wake word: %q", text)
		return a.reply(ctx, domain.StatusClarify, phrases.T(phrases.UnknownAfterWakeWord, name)), nil
	}

	remainder := strings.TrimSpace(text[idx+len(sep):])
	a.log.Debug("dispatching %q", remainder)
	res = a.dispatcher.Dispatch(ctx, remainder)

	switch res.Status {
	case domain.StatusClarify:
		if res.Message == "" {
			res.Message = phrases.T(phrases.Clarify)
			a.speak(ctx, res.Message)
		}
	case domain.StatusStandard:
		res.Message = fmt.Sprintf(phrases.Affirmatives[a.pick(len(phrases.Affirmatives))], name)
		a.speak(ctx, res.Message)
	case domain.StatusExit:
		return res, ErrExit
	case domain.StatusRestart:
		return res, ErrRestart
	}
	return res, nil
}

// Greet runs the startup cycle and posts its reply.
func (a *Assistant) Greet(ctx context.Context) error {
	res, err := a.Handle(ctx, phrases.StartupCommand)
	a.post(ctx, res.Message, domain.RoleProgram)
	return err
}

// Run greets the user and then listens until the user exits or restarts,
// or ctx ends. Failures inside a cycle are posted and the loop continues.
func (a *Assistant) Run(ctx context.Context) error {
	if err := a.Greet(ctx); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.status(domain.ActivityListening)
		text, err := a.recognize(ctx)
		if err != nil {
			a.status(domain.ActivityNone)
			if errors.Is(err, io.EOF) {
				a.log.Info("input closed")
				return ErrExit
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			a.log.Warn("recognize: %v", err)
			continue
		}
		if text == "" || !IsAddressed(text) {
			a.status(domain.ActivityNone)
			continue
		}

		if err := a.cycle(ctx, text); err != nil {
			return err
		}
	}
}

// cycle handles one addressed utterance. Only ErrExit and ErrRestart end
// the loop.
func (a *Assistant) cycle(ctx context.Context, text string) error {
	a.log.Info("recognised %q", text)
	a.post(ctx, text, domain.RoleUser)

	a.status(domain.ActivityThinking)
	defer a.status(domain.ActivityNone)

	res, err := a.Handle(ctx, text)
	a.post(ctx, res.Message, domain.RoleProgram)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrExit), errors.Is(err, ErrRestart):
		a.log.Info("%v", err)
		return err
	default:
		a.log.Error("cycle %q: %v", text, err)
		a.post(ctx, phrases.T(phrases.Fatal, err), domain.RoleSystem)
		return nil
	}
}

func (a *Assistant) recognize(ctx context.Context) (string, error) {
	var text string
	listen := func(ctx context.Context) error {
		var err error
		text, err = a.app.Recognizer.Recognize(ctx)
		return err
	}

	var err error
	if a.app.Workers != nil {
		err = a.app.Workers.Do(ctx, listen)
	} else {
		err = listen(ctx)
	}
	return text, err
}

func (a *Assistant) reply(ctx context.Context, status domain.Status, msg string) domain.Result {
	a.speak(ctx, msg)
	return domain.Result{Status: status, Message: msg}
}

func (a *Assistant) speak(ctx context.Context, text string) {
	if err := a.app.Speaker.Speak(ctx, text); err != nil {
		a.log.Error("speak: %v", err)
	}
}

func (a *Assistant) post(ctx context.Context, text string, role domain.Role) {
	if a.app.Notifier != nil && text != "" {
		a.app.Notifier.Notify(ctx, text, role)
	}
}

func (a *Assistant) settings() domain.Settings {
	if a.app.Config == nil {
		return domain.DefaultSettings()
	}
	all, err := a.app.Config.GetAll()
	if err != nil {
		a.log.Error("load settings: %v", err)
		return domain.DefaultSettings()
	}
	return domain.SettingsFromMap(all)
}

