package dispatchers

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/log"
	"github.com/chronois/avrora/internal/matcher"
	"github.com/chronois/avrora/internal/phrases"
)

const defaultSuggestionsCount = 3

// Dispatcher turns the text after the wake word into one result. Custom
// commands are tried first, then the builtin table.
type Dispatcher struct {
	app   *domain.Application
	table *Table
	log   domain.Logger
	now   func() time.Time

	// custom command launches still running
	inflight sync.WaitGroup
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithTable replaces the builtin table.
func WithTable(t *Table) Option {
	return func(d *Dispatcher) {
		d.table = t
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		d.now = now
	}
}

// New returns a dispatcher over app.
func New(app *domain.Application, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		app:   app,
		table: BuildTable(),
		log:   log.Named(app.Logger, "dispatch"),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Table returns the builtin table in use.
func (d *Dispatcher) Table() *Table {
	return d.table
}

// Wait blocks until every launched custom command has exited or failed
// to start.
func (d *Dispatcher) Wait() {
	d.inflight.Wait()
}

// Dispatch handles one remainder. Every non-empty reply is spoken before
// Dispatch returns.
func (d *Dispatcher) Dispatch(ctx context.Context, remainder string) domain.Result {
	settings := d.settings()

	res := d.dispatch(ctx, remainder, settings)
	if text := res.Spoken(); text != "" {
		d.speak(ctx, text)
	}
	return res
}

func (d *Dispatcher) dispatch(ctx context.Context, remainder string, settings domain.Settings) domain.Result {
	if res, ok := d.custom(ctx, remainder, settings); ok {
		return res
	}

	rule, trigger, ok := d.table.Lookup(remainder)
	if !ok {
		d.log.Warn("command not recognised: %q", remainder)
		return unknownCommand(remainder, settings, FindSimilarTriggers(remainder, d.table.Triggers(), defaultSuggestionsCount))
	}

	d.log.Info("executing %s", rule.Name)
	req := &Request{
		Text:     remainder,
		Trigger:  trigger,
		Args:     argsAfter(remainder, trigger),
		Settings: settings,
		Now:      d.now(),
		App:      d.app,
		log:      log.Named(d.log, rule.Name),
		speak:    d.speak,
	}
	return rule.Handle(ctx, req)
}

// argsAfter returns remainder without its trigger, keeping the case the
// user gave.
func argsAfter(remainder, trigger string) string {
	rest, _ := phrases.CutPrefixFold(remainder, trigger)
	return strings.TrimSpace(rest)
}

// unknownCommand echoes the remainder verbatim. Near-miss triggers are
// added to the chat text only; the spoken reply stays the bare echo.
func unknownCommand(remainder string, settings domain.Settings, suggestions []string) domain.Result {
	echo := phrases.T(phrases.UnknownCommand, remainder, settings.Name)
	res := domain.Result{Status: domain.StatusClarify, Message: echo, Suggestions: suggestions}
	if len(suggestions) > 0 {
		res.Message = echo + "\n" + phrases.T(phrases.DidYouMean, strings.Join(suggestions, ", "))
		res.Speech = echo
	}
	return res
}

// custom runs the first matching user-defined command. ok is false when
// no custom command matched.
func (d *Dispatcher) custom(ctx context.Context, remainder string, settings domain.Settings) (domain.Result, bool) {
	if d.app.Commands == nil {
		return domain.Result{}, false
	}

	entries, err := d.app.Commands.Entries()
	if err != nil {
		d.log.Error("load custom commands: %v", err)
		return domain.Result{}, false
	}

	m := matcher.Match(remainder, entries)
	switch m.Kind {
	case matcher.BadNumber:
		d.log.Error("custom command %q: %v", m.Entry.Pattern, m.Err)
		return clarify(phrases.T(phrases.CustomError, settings.Name)), true

	case matcher.Matched:
		d.log.Info("custom command %q: %s", m.Entry.Pattern, m.Action)
		d.launch(ctx, m.Action)
		return success(phrases.T(phrases.CustomExecuting, settings.Name)), true
	}
	return domain.Result{}, false
}

// launch starts action without waiting for it. Only the start holds a
// worker slot; the running program does not.
func (d *Dispatcher) launch(ctx context.Context, action string) {
	d.inflight.Add(1)
	var once sync.Once
	done := func() { once.Do(d.inflight.Done) }

	exited := func(code int, err error) {
		defer done()
		switch {
		case err != nil:
			d.log.Error("custom command %q: %v", action, err)
		case code != 0:
			d.log.Warn("custom command exited with %d: %s", code, action)
		}
	}
	start := func(ctx context.Context) error {
		return d.app.Shell.Start(ctx, action, exited)
	}

	go func() {
		var err error
		if d.app.Workers != nil {
			err = d.app.Workers.Do(ctx, start)
		} else {
			err = start(ctx)
		}
		if err != nil {
			d.log.Error("start custom command %q: %v", action, err)
			done()
		}
	}()
}

func (d *Dispatcher) speak(ctx context.Context, text string) {
	say := func(ctx context.Context) error {
		return d.app.Speaker.Speak(ctx, text)
	}

	var err error
	if d.app.Workers != nil {
		err = d.app.Workers.Do(ctx, say)
	} else {
		err = say(ctx)
	}
	if err != nil {
		d.log.Error("speak: %v", err)
	}
}

func (d *Dispatcher) settings() domain.Settings {
	if d.app.Config == nil {
		return domain.DefaultSettings()
	}
	all, err := d.app.Config.GetAll()
	if err != nil {
		d.log.Error("load settings: %v", err)
		return domain.DefaultSettings()
	}
	return domain.SettingsFromMap(all)
}
