package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/log"
	"github.com/chronois/avrora/internal/usage"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	delays []time.Duration
	fire   chan time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now, fire: make(chan time.Time)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.delays = append(c.delays, d)
	return c.fire
}

func (c *fakeClock) Delays() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.delays...)
}

type fakeSpeaker struct {
	mu     sync.Mutex
	spoken []string
	err    error
}

func (s *fakeSpeaker) Speak(_ context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spoken = append(s.spoken, text)
	return s.err
}

type notification struct {
	text string
	role domain.Role
}

type fakeNotifier struct {
	mu    sync.Mutex
	posts []notification
}

func (n *fakeNotifier) Notify(_ context.Context, text string, role domain.Role) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.posts = append(n.posts, notification{text, role})
}

func newTestScheduler(clock *fakeClock, speaker *fakeSpeaker, notifier *fakeNotifier) *Scheduler {
	return New(Deps{Speaker: speaker, Notifier: notifier, Logger: log.NopLogger{}, Clock: clock})
}

var evening = time.Date(2026, 3, 14, 23, 50, 0, 0, time.UTC)

func TestNextAlarmTime(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		hour   int
		minute int
		want   time.Time
	}{
		{"later today", evening, 23, 55, time.Date(2026, 3, 14, 23, 55, 0, 0, time.UTC)},
		{"already passed rolls over", evening, 23, 40, time.Date(2026, 3, 15, 23, 40, 0, 0, time.UTC)},
		{"exactly now rolls over", evening, 23, 50, time.Date(2026, 3, 15, 23, 50, 0, 0, time.UTC)},
		{"midnight", evening, 0, 0, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"end of month", time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC), 7, 30, time.Date(2026, 4, 1, 7, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextAlarmTime(tt.now, tt.hour, tt.minute)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNextAlarmTime_OutOfRange(t *testing.T) {
	for _, hm := range [][2]int{{24, 0}, {-1, 0}, {12, 60}, {12, -5}} {
		_, err := NextAlarmTime(evening, hm[0], hm[1])
		require.Error(t, err)
		require.Equal(t, usage.ErrOutOfRange, usage.KindOf(err))
	}
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock(" 7:05 ")
	require.NoError(t, err)
	require.Equal(t, 7, h)
	require.Equal(t, 5, m)

	for _, bad := range []string{"", "7", "сім:нуль", "7:xx", "7.30"} {
		_, _, err := ParseClock(bad)
		require.Error(t, err, bad)
		require.Equal(t, usage.ErrBadTime, usage.KindOf(err), bad)
	}
}

func TestScheduleReminder_FiresOnce(t *testing.T) {
	clock := newFakeClock(evening)
	speaker := &fakeSpeaker{}
	notifier := &fakeNotifier{}
	s := newTestScheduler(clock, speaker, notifier)

	action := s.ScheduleReminder(context.Background(), 5*time.Minute, "подзвонити мамі", domain.Settings{Name: "Олег"})
	require.Equal(t, domain.DeferredReminder, action.Kind)
	require.NotEmpty(t, action.ID)
	require.Equal(t, evening.Add(5*time.Minute), action.FireAt)

	clock.fire <- evening.Add(5 * time.Minute)
	s.Wait()

	require.Equal(t, []time.Duration{5 * time.Minute}, clock.Delays())
	require.Equal(t, []string{"Нагадую, Олег: подзвонити мамі"}, speaker.spoken)
	require.Equal(t, []notification{{"Нагадую, Олег: подзвонити мамі", domain.RoleProgram}}, notifier.posts)
}

func TestScheduleAlarm_Fires(t *testing.T) {
	clock := newFakeClock(evening)
	speaker := &fakeSpeaker{}
	notifier := &fakeNotifier{}
	s := newTestScheduler(clock, speaker, notifier)

	at, err := NextAlarmTime(evening, 23, 40)
	require.NoError(t, err)

	action := s.ScheduleAlarm(context.Background(), at, domain.Settings{Name: "Олег"})
	require.Equal(t, domain.DeferredAlarm, action.Kind)
	require.Equal(t, "23:40", action.Text)

	clock.fire <- at
	s.Wait()

	require.Equal(t, []time.Duration{at.Sub(evening)}, clock.Delays())
	require.Equal(t, []string{"Будильник! Олег, зараз 23:40."}, speaker.spoken)
	require.Len(t, notifier.posts, 1)
}

func TestScheduleAlarm_PlaybackFailureIsReported(t *testing.T) {
	clock := newFakeClock(evening)
	speaker := &fakeSpeaker{err: errors.New("no audio device")}
	notifier := &fakeNotifier{}
	s := newTestScheduler(clock, speaker, notifier)

	s.ScheduleAlarm(context.Background(), evening.Add(time.Hour), domain.Settings{})
	clock.fire <- evening.Add(time.Hour)
	s.Wait()

	require.Equal(t, []notification{{
		"Будильник спрацював, але виникла помилка відтворення звуку: no audio device",
		domain.RoleProgram,
	}}, notifier.posts)
}

func TestSchedule_IndependentActions(t *testing.T) {
	clock := newFakeClock(evening)
	speaker := &fakeSpeaker{}
	notifier := &fakeNotifier{}
	s := newTestScheduler(clock, speaker, notifier)

	a := s.ScheduleReminder(context.Background(), time.Second, "один", domain.Settings{})
	b := s.ScheduleReminder(context.Background(), time.Second, "два", domain.Settings{})
	require.NotEqual(t, a.ID, b.ID)

	clock.fire <- evening
	clock.fire <- evening
	s.Wait()

	require.ElementsMatch(t, []string{"Нагадую, : один", "Нагадую, : два"}, speaker.spoken)
}

func TestSchedule_AbandonedOnCancel(t *testing.T) {
	clock := newFakeClock(evening)
	speaker := &fakeSpeaker{}
	notifier := &fakeNotifier{}
	s := newTestScheduler(clock, speaker, notifier)

	ctx, cancel := context.WithCancel(context.Background())
	s.ScheduleReminder(ctx, time.Hour, "ніколи", domain.Settings{})
	cancel()
	s.Wait()

	require.Empty(t, speaker.spoken)
	require.Empty(t, notifier.posts)
}

func TestScheduleAlarm_DueNowGetsMinimumDelay(t *testing.T) {
	clock := newFakeClock(evening)
	s := newTestScheduler(clock, &fakeSpeaker{}, &fakeNotifier{})

	s.ScheduleAlarm(context.Background(), evening, domain.Settings{})
	clock.fire <- evening
	s.Wait()

	require.Equal(t, []time.Duration{minDelay}, clock.Delays())
}
