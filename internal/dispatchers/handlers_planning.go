package dispatchers

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/phrases"
	"github.com/chronois/avrora/internal/scheduler"
	"github.com/chronois/avrora/internal/usage"
)

// Reminder is a parsed "нагадай про X через N <unit>" request.
type Reminder struct {
	Text   string
	Amount int
	Unit   string // as spoken
	Delay  time.Duration
}

// ParseReminder splits text on single spaces. Everything between the
// trigger and "через" is the reminder text; the two words after it are
// the amount and the unit.
func ParseReminder(text string) (Reminder, error) {
	parts := strings.Split(text, " ")

	sep := -1
	for i, p := range parts {
		if strings.EqualFold(p, phrases.ReminderSeparator) {
			sep = i
			break
		}
	}
	if sep < 0 || sep+2 >= len(parts) {
		return Reminder{}, usage.MissingArgument("reminder time")
	}

	amountText, unit := parts[sep+1], strings.ToLower(parts[sep+2])
	amount, err := strconv.Atoi(amountText)
	if err != nil {
		return Reminder{}, usage.BadNumber(amountText)
	}

	var scale time.Duration
	switch {
	case containsAny(unit, phrases.UnitsSeconds):
		scale = time.Second
	case containsAny(unit, phrases.UnitsMinutes):
		scale = time.Minute
	case containsAny(unit, phrases.UnitsHours):
		scale = time.Hour
	default:
		return Reminder{}, usage.BadUnit(unit)
	}

	var what string
	if sep > 2 {
		what = strings.Join(parts[2:sep], " ")
	}

	return Reminder{
		Text:   what,
		Amount: amount,
		Unit:   unit,
		Delay:  time.Duration(amount) * scale,
	}, nil
}

// handleReminder schedules nothing when the request cannot be parsed.
func handleReminder(ctx context.Context, req *Request) domain.Result {
	r, err := ParseReminder(req.Text)
	if err != nil {
		req.log.Warn("reminder %q: %v", req.Text, err)
		return domain.Result{Status: domain.StatusClarify}
	}

	action := req.App.Scheduler.ScheduleReminder(ctx, r.Delay, r.Text, req.Settings)
	req.log.Info("reminder %s at %s", action.ID, action.FireAt.Format(time.RFC3339))

	return success(phrases.T(phrases.ReminderSet, r.Text, r.Amount, r.Unit, req.Name()))
}

func handleAlarm(ctx context.Context, req *Request) domain.Result {
	hour, minute, err := scheduler.ParseClock(req.Args)
	var at time.Time
	if err == nil {
		at, err = scheduler.NextAlarmTime(req.Now, hour, minute)
	}
	if err != nil {
		req.log.Warn("alarm %q: %v", req.Args, err)
		return clarify(phrases.T(phrases.AlarmBadFormat, req.Name(), err))
	}

	action := req.App.Scheduler.ScheduleAlarm(ctx, at, req.Settings)
	req.log.Info("alarm %s at %s", action.ID, action.FireAt.Format(time.RFC3339))

	return success(phrases.T(phrases.AlarmSet, action.Text, req.Name()))
}

func handleTodoShow(_ context.Context, req *Request) domain.Result {
	tasks, err := req.App.Todo.Tasks()
	if err != nil {
		req.log.Error("read todo: %v", err)
		return success(phrases.T(phrases.TodoFailed, req.Name()))
	}
	if len(tasks) == 0 {
		return success(phrases.T(phrases.TodoEmpty, req.Name()))
	}
	return success(phrases.T(phrases.TodoShow, req.Name(), strings.Join(tasks, "\n")))
}

func handleTodoClear(_ context.Context, req *Request) domain.Result {
	if err := req.App.Todo.Clear(); err != nil {
		req.log.Error("clear todo: %v", err)
		return success(phrases.T(phrases.TodoFailed, req.Name()))
	}
	return success(phrases.T(phrases.TodoCleared, req.Name()))
}

func handleTodoAdd(_ context.Context, req *Request) domain.Result {
	task := req.Args
	if task == "" {
		return domain.Result{Status: domain.StatusClarify}
	}

	added, err := req.App.Todo.Add(task)
	if err != nil {
		req.log.Error("add todo %q: %v", task, err)
		return success(phrases.T(phrases.TodoFailed, req.Name()))
	}
	if !added {
		return success(phrases.T(phrases.TodoExists, task))
	}
	return success(phrases.T(phrases.TodoAdded, task, req.Name()))
}

func handleTodoRemove(_ context.Context, req *Request) domain.Result {
	task := req.Args
	if task == "" {
		return domain.Result{Status: domain.StatusClarify}
	}

	removed, err := req.App.Todo.Remove(task)
	if err != nil {
		req.log.Error("remove todo %q: %v", task, err)
		return success(phrases.T(phrases.TodoFailed, req.Name()))
	}
	if !removed {
		return success(phrases.T(phrases.TodoNotFound, task))
	}
	return success(phrases.T(phrases.TodoRemoved, req.Name()))
}
