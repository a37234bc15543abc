package dispatchers

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/chronois/avrora/internal/chatlog"
	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/testutil"
	"github.com/chronois/avrora/internal/todo"
)

var errFake = errors.New("fake failure")

type fakeSpeaker struct {
	mu     sync.Mutex
	spoken []string
}

func (f *fakeSpeaker) Speak(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spoken = append(f.spoken, text)
	return nil
}

func (f *fakeSpeaker) Spoken() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.spoken...)
}

type fakeConfig struct {
	values map[string]string
	setErr error
}

func (f *fakeConfig) Get(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeConfig) GetAll() (map[string]string, error) {
	return maps.Clone(f.values), nil
}

func (f *fakeConfig) Set(key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	return nil
}

func (f *fakeConfig) Unset(key string) error {
	delete(f.values, key)
	return nil
}

type fakeCommands struct {
	entries []domain.CommandEntry
}

func (f *fakeCommands) Entries() ([]domain.CommandEntry, error) { return f.entries, nil }
func (f *fakeCommands) Set(pattern, action string) error {
	f.entries = append(f.entries, domain.CommandEntry{Pattern: pattern, Action: action})
	return nil
}
func (f *fakeCommands) Delete(string) (bool, error) { return false, nil }

// fakeShell records started commands. With hold set the programs keep
// running until release is called.
type fakeShell struct {
	mu       sync.Mutex
	commands []string
	hold     bool
	running  []func(int, error)
}

func (f *fakeShell) Start(_ context.Context, command string, exited func(int, error)) error {
	f.mu.Lock()
	f.commands = append(f.commands, command)
	if f.hold {
		f.running = append(f.running, exited)
		f.mu.Unlock()
		return nil
	}
	f.mu.Unlock()

	go exited(0, nil)
	return nil
}

func (f *fakeShell) Commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.commands...)
}

func (f *fakeShell) release() {
	f.mu.Lock()
	running := f.running
	f.running = nil
	f.mu.Unlock()

	for _, exited := range running {
		exited(0, nil)
	}
}

type fakeBrowser struct {
	opened []string
	err    error
}

func (f *fakeBrowser) OpenURL(_ context.Context, url string) error {
	if f.err != nil {
		return f.err
	}
	f.opened = append(f.opened, url)
	return nil
}

type fakeLauncher struct {
	launched []string
}

func (f *fakeLauncher) Launch(_ context.Context, path string) error {
	f.launched = append(f.launched, path)
	return nil
}

// fakeInput records every call as a short string.
type fakeInput struct {
	calls []string
}

func (f *fakeInput) record(format string, args ...any) error {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
	return nil
}

func (f *fakeInput) Hotkey(_ context.Context, keys ...string) error { return f.record("hotkey %v", keys) }
func (f *fakeInput) Press(_ context.Context, key string) error      { return f.record("press %s", key) }
func (f *fakeInput) Type(_ context.Context, text string) error      { return f.record("type %s", text) }
func (f *fakeInput) MoveCursor(_ context.Context, dx, dy int) error { return f.record("move %d %d", dx, dy) }
func (f *fakeInput) Click(context.Context) error                    { return f.record("click") }
func (f *fakeInput) DoubleClick(context.Context) error              { return f.record("double click") }
func (f *fakeInput) Scroll(_ context.Context, amount int) error     { return f.record("scroll %d", amount) }

type fakeStats struct {
	cpu float64
	mem domain.MemoryStats
	err error
}

func (f *fakeStats) CPUPercent(context.Context) (float64, error)        { return f.cpu, f.err }
func (f *fakeStats) Memory(context.Context) (domain.MemoryStats, error) { return f.mem, f.err }

type fakeNews struct {
	headlines []string
	err       error
}

func (f *fakeNews) Headlines(context.Context, string, string) ([]string, error) {
	return f.headlines, f.err
}

type fakeWeather struct {
	cities []string
	err    error
}

func (f *fakeWeather) Weather(_ context.Context, city string) (domain.Weather, error) {
	f.cities = append(f.cities, city)
	if f.err != nil {
		return domain.Weather{}, f.err
	}
	return domain.Weather{City: city, Temperature: 12, FeelsLike: 10, Description: "хмарно"}, nil
}

type fakeLocator struct {
	loc domain.Location
	err error
}

func (f *fakeLocator) Locate(context.Context) (domain.Location, error) { return f.loc, f.err }

type fakeSongs struct {
	url   string
	found bool
	err   error
}

func (f *fakeSongs) ResolveSong(context.Context, string) (string, bool, error) {
	return f.url, f.found, f.err
}

type fakeVolume struct {
	levels []float64
}

func (f *fakeVolume) SetVolume(_ context.Context, level float64) error {
	f.levels = append(f.levels, level)
	return nil
}

type fakePower struct {
	shutdowns, restarts int
}

func (f *fakePower) Shutdown(context.Context) error { f.shutdowns++; return nil }
func (f *fakePower) Restart(context.Context) error  { f.restarts++; return nil }

type fakePrograms struct {
	programs    []domain.Program
	invalidated int
}

func (f *fakePrograms) Programs(context.Context) ([]domain.Program, error) { return f.programs, nil }
func (f *fakePrograms) Invalidate()                                        { f.invalidated++ }

type fakeWindow struct {
	minimized int
	cleared   int
	updates   map[string]string
}

func (f *fakeWindow) MinimizeSelf(context.Context) error { f.minimized++; return nil }
func (f *fakeWindow) FocusSelf(context.Context) error    { return nil }
func (f *fakeWindow) ClearChat(context.Context) error    { f.cleared++; return nil }
func (f *fakeWindow) UpdateSetting(_ context.Context, key, value string) error {
	f.updates[key] = value
	return nil
}

type scheduled struct {
	kind  domain.DeferredKind
	delay time.Duration
	at    time.Time
	text  string
}

type fakeScheduler struct {
	actions []scheduled
}

func (f *fakeScheduler) ScheduleReminder(_ context.Context, delay time.Duration, text string, _ domain.Settings) domain.DeferredAction {
	f.actions = append(f.actions, scheduled{kind: domain.DeferredReminder, delay: delay, text: text})
	return domain.DeferredAction{ID: "reminder", Kind: domain.DeferredReminder, Text: text}
}

func (f *fakeScheduler) ScheduleAlarm(_ context.Context, at time.Time, _ domain.Settings) domain.DeferredAction {
	f.actions = append(f.actions, scheduled{kind: domain.DeferredAlarm, at: at})
	return domain.DeferredAction{ID: "alarm", Kind: domain.DeferredAlarm, FireAt: at, Text: at.Format("15:04")}
}

// plainStyler leaves text untouched.
type plainStyler struct{}

func (plainStyler) Enabled() bool              { return false }
func (plainStyler) Success(text string) string { return text }
func (plainStyler) Warning(text string) string { return text }
func (plainStyler) Error(text string) string   { return text }
func (plainStyler) Info(text string) string    { return text }
func (plainStyler) Muted(text string) string   { return text }
func (plainStyler) Header(text string) string  { return text }
func (plainStyler) Accent(text string) string  { return text }

// testEnv is an Application made of fakes.
type testEnv struct {
	app *domain.Application

	speaker   *fakeSpeaker
	config    *fakeConfig
	commands  *fakeCommands
	shell     *fakeShell
	browser   *fakeBrowser
	launcher  *fakeLauncher
	input     *fakeInput
	stats     *fakeStats
	news      *fakeNews
	weather   *fakeWeather
	locator   *fakeLocator
	songs     *fakeSongs
	volume    *fakeVolume
	power     *fakePower
	programs  *fakePrograms
	window    *fakeWindow
	chat      *chatlog.Store
	scheduler *fakeScheduler
}

var testNow = time.Date(2026, time.October, 17, 23, 50, 0, 0, time.UTC)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	e := &testEnv{
		speaker:   &fakeSpeaker{},
		config:    &fakeConfig{values: map[string]string{domain.KeyName: "Олег"}},
		commands:  &fakeCommands{},
		shell:     &fakeShell{},
		browser:   &fakeBrowser{},
		launcher:  &fakeLauncher{},
		input:     &fakeInput{},
		stats:     &fakeStats{},
		news:      &fakeNews{},
		weather:   &fakeWeather{},
		locator:   &fakeLocator{},
		songs:     &fakeSongs{},
		volume:    &fakeVolume{},
		power:     &fakePower{},
		programs:  &fakePrograms{},
		window:    &fakeWindow{updates: map[string]string{}},
		chat:      testutil.NewTestChat(t),
		scheduler: &fakeScheduler{},
	}

	e.app = &domain.Application{
		Config:    e.config,
		Commands:  e.commands,
		Todo:      todo.New(filepath.Join(t.TempDir(), "todoList.txt")),
		Chat:      e.chat,
		Speaker:   e.speaker,
		Shell:     e.shell,
		Launcher:  e.launcher,
		Browser:   e.browser,
		Stats:     e.stats,
		Weather:   e.weather,
		Locator:   e.locator,
		News:      e.news,
		Songs:     e.songs,
		Volume:    e.volume,
		Input:     e.input,
		Power:     e.power,
		Programs:  e.programs,
		Window:    e.window,
		Scheduler: e.scheduler,
	}
	return e
}

func (e *testEnv) dispatcher() *Dispatcher {
	return New(e.app, WithClock(func() time.Time { return testNow }))
}
