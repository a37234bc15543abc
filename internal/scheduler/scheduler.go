// Package scheduler fires reminders and alarms after a delay. Pending
// actions live in memory only and are abandoned when the context ends.
package scheduler

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/log"
	"github.com/chronois/avrora/internal/phrases"
	"github.com/chronois/avrora/internal/usage"
)

// minDelay keeps an alarm that is due right now from firing synchronously.
const minDelay = 100 * time.Millisecond

// Clock is the time source. Tests replace it.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) Now() time.Time                         { return time.Now() }
func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Deps holds the collaborators a fired action talks to.
type Deps struct {
	Speaker  domain.Speaker
	Notifier domain.Notifier
	Logger   domain.Logger
	Clock    Clock
}

// Scheduler starts one goroutine per deferred action.
type Scheduler struct {
	deps Deps
	log  domain.Logger
	wg   sync.WaitGroup
}

// New returns a scheduler.
func New(deps Deps) *Scheduler {
	if deps.Clock == nil {
		deps.Clock = realClock{}
	}
	return &Scheduler{deps: deps, log: log.Named(deps.Logger, "scheduler")}
}

// ScheduleReminder speaks "Нагадую, {name}: {text}" after delay.
func (s *Scheduler) ScheduleReminder(ctx context.Context, delay time.Duration, text string, settings domain.Settings) domain.DeferredAction {
	action := domain.DeferredAction{
		ID:     uuid.NewString(),
		Kind:   domain.DeferredReminder,
		FireAt: s.deps.Clock.Now().Add(delay),
		Text:   text,
	}
	message := phrases.T(phrases.ReminderFired, settings.Name, text)

	s.start(ctx, action, delay, message)
	return action
}

// ScheduleAlarm rings at the given moment.
func (s *Scheduler) ScheduleAlarm(ctx context.Context, at time.Time, settings domain.Settings) domain.DeferredAction {
	action := domain.DeferredAction{
		ID:     uuid.NewString(),
		Kind:   domain.DeferredAlarm,
		FireAt: at,
		Text:   at.Format("15:04"),
	}
	message := phrases.T(phrases.AlarmFired, settings.Name, action.Text)

	delay := at.Sub(s.deps.Clock.Now())
	if delay < minDelay {
		delay = minDelay
	}

	s.start(ctx, action, delay, message)
	return action
}

// Wait blocks until every started action has fired or been abandoned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) start(ctx context.Context, action domain.DeferredAction, delay time.Duration, message string) {
	s.log.Info("%s %s scheduled in %s", action.Kind, action.ID, delay.Round(time.Millisecond))

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		select {
		case <-ctx.Done():
			s.log.Debug("%s %s abandoned", action.Kind, action.ID)
			return
		case <-s.deps.Clock.After(delay):
		}

		s.fire(ctx, action, message)
	}()
}

func (s *Scheduler) fire(ctx context.Context, action domain.DeferredAction, message string) {
	s.log.Info("%s %s fired", action.Kind, action.ID)

	if err := s.deps.Speaker.Speak(ctx, message); err != nil {
		s.log.Error("speak %s %s: %v", action.Kind, action.ID, err)
		s.notify(ctx, phrases.T(phrases.AlarmPlaybackFailed, err.Error()))
		return
	}
	s.notify(ctx, message)
}

func (s *Scheduler) notify(ctx context.Context, text string) {
	if s.deps.Notifier != nil {
		s.deps.Notifier.Notify(ctx, text, domain.RoleProgram)
	}
}

// ParseClock parses "HH:MM" into hour and minute.
func ParseClock(text string) (hour, minute int, err error) {
	h, m, ok := strings.Cut(strings.TrimSpace(text), ":")
	if !ok {
		return 0, 0, usage.BadTime(text, "expected HH:MM")
	}

	hour, err = strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return 0, 0, usage.BadTime(text, "hour is not a number")
	}
	minute, err = strconv.Atoi(strings.TrimSpace(m))
	if err != nil {
		return 0, 0, usage.BadTime(text, "minute is not a number")
	}
	return hour, minute, nil
}

// NextAlarmTime returns the next moment after now that shows hour:minute.
// A time of day that is not in the future today rolls over to tomorrow.
func NextAlarmTime(now time.Time, hour, minute int) (time.Time, error) {
	if hour < 0 || hour > 23 {
		return time.Time{}, usage.OutOfRange("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return time.Time{}, usage.OutOfRange("minute", minute, 0, 59)
	}

	at := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !at.After(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at, nil
}

var _ domain.Scheduler = (*Scheduler)(nil)
