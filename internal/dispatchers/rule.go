package dispatchers

import (
	"context"
	"time"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/phrases"
)

// HandlerFunc executes a builtin command. It returns exactly one result and
// never panics on bad user input.
type HandlerFunc func(ctx context.Context, req *Request) domain.Result

// Rule is one entry of the builtin table.
type Rule struct {
	Name     string
	Summary  string
	Category CommandCategory
	Triggers []string
	Handle   HandlerFunc
}

// Matches returns the trigger text starts with.
func (r Rule) Matches(text string) (string, bool) {
	return phrases.HasPrefixAny(text, r.Triggers)
}

// Request is what a handler sees of one dispatch cycle. It is not shared
// between cycles.
type Request struct {
	Text     string // remainder after the wake word
	Trigger  string
	Args     string // Text without the trigger, trimmed
	Settings domain.Settings
	Now      time.Time
	App      *domain.Application

	log   domain.Logger
	speak func(ctx context.Context, text string)
}

// Name is the user's name from settings.
func (r *Request) Name() string {
	return r.Settings.Name
}

// Say speaks an interim phrase before the handler finishes.
func (r *Request) Say(ctx context.Context, text string) {
	if r.speak != nil {
		r.speak(ctx, text)
	}
}

// Do runs a blocking collaborator call on the worker pool and waits.
func (r *Request) Do(ctx context.Context, fn func(context.Context) error) error {
	if r.App.Workers == nil {
		return fn(ctx)
	}
	return r.App.Workers.Do(ctx, fn)
}

func success(msg string) domain.Result {
	return domain.Result{Status: domain.StatusSuccess, Message: msg}
}

func clarify(msg string) domain.Result {
	return domain.Result{Status: domain.StatusClarify, Message: msg}
}
