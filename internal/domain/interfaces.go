package domain

import (
	"context"
	"time"
)

// Recognizer turns captured speech into lower-cased text.
// An empty string with a nil error means nothing was heard.
type Recognizer interface {
	Recognize(ctx context.Context) (string, error)
}

// Speaker voices a response.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// Shell starts an opaque command line without waiting for it. Start returns
// once the process is running. exited, if not nil, is called later with the
// exit code; it is never called when Start returns an error.
type Shell interface {
	Start(ctx context.Context, command string, exited func(code int, err error)) error
}

// Launcher starts an installed application or opens a file.
type Launcher interface {
	Launch(ctx context.Context, path string) error
}

// Browser opens a URL in the default browser.
type Browser interface {
	OpenURL(ctx context.Context, url string) error
}

// SystemStats reports machine load.
type SystemStats interface {
	// CPUPercent samples the CPU load over a short interval.
	CPUPercent(ctx context.Context) (float64, error)

	// Memory returns physical memory usage.
	Memory(ctx context.Context) (MemoryStats, error)
}

// WeatherProvider fetches the current weather for a city.
type WeatherProvider interface {
	Weather(ctx context.Context, city string) (Weather, error)
}

// Locator resolves the current city by IP.
type Locator interface {
	Locate(ctx context.Context) (Location, error)
}

// NewsProvider scrapes headline texts from a news page.
type NewsProvider interface {
	Headlines(ctx context.Context, url, class string) ([]string, error)
}

// SongResolver finds a playable URL for a song query.
// ok is false when nothing was found.
type SongResolver interface {
	ResolveSong(ctx context.Context, query string) (url string, ok bool, err error)
}

// VolumeControl sets the master output volume (0.0-1.0).
type VolumeControl interface {
	SetVolume(ctx context.Context, level float64) error
}

// Input injects keyboard and mouse events.
type Input interface {
	Hotkey(ctx context.Context, keys ...string) error
	Press(ctx context.Context, key string) error
	Type(ctx context.Context, text string) error
	MoveCursor(ctx context.Context, dx, dy int) error
	Click(ctx context.Context) error
	DoubleClick(ctx context.Context) error
	Scroll(ctx context.Context, amount int) error
}

// Power shuts down or restarts the machine.
type Power interface {
	Shutdown(ctx context.Context) error
	Restart(ctx context.Context) error
}

// ProgramIndex owns the cached list of installed programs.
type ProgramIndex interface {
	// Programs returns the cached index, scanning on first use.
	Programs(ctx context.Context) ([]Program, error)

	// Invalidate drops the cache so the next call rescans.
	Invalidate()
}

// Window is the part of the front-end the assistant can drive.
type Window interface {
	MinimizeSelf(ctx context.Context) error
	FocusSelf(ctx context.Context) error
	ClearChat(ctx context.Context) error

	// UpdateSetting reflects a persisted setting change (theme, accent, ...).
	UpdateSetting(ctx context.Context, key, value string) error
}

// Notifier posts a message into the chat from outside a dispatch cycle.
type Notifier interface {
	Notify(ctx context.Context, text string, role Role)
}

// StatusFunc receives activity changes of the assistant.
type StatusFunc func(Activity)

// Scheduler starts reminders and alarms.
type Scheduler interface {
	ScheduleReminder(ctx context.Context, delay time.Duration, text string, s Settings) DeferredAction
	ScheduleAlarm(ctx context.Context, at time.Time, s Settings) DeferredAction
}

// Runner executes blocking work on a bounded pool and waits for it.
type Runner interface {
	Do(ctx context.Context, fn func(context.Context) error) error
}

// CommandStore holds user-defined commands in declaration order.
type CommandStore interface {
	Entries() ([]CommandEntry, error)
	Set(pattern, action string) error
	Delete(pattern string) (bool, error)
}

// TodoList is a line-oriented task list.
type TodoList interface {
	Tasks() ([]string, error)

	// Add returns false when the task is already present.
	Add(task string) (bool, error)

	// Remove returns false when the task is not present.
	Remove(task string) (bool, error)

	Clear() error
}

// ChatLog is the shared, persisted chat history.
type ChatLog interface {
	Append(ctx context.Context, role Role, text string) (ChatMessage, error)
	History(ctx context.Context, limit int) ([]ChatMessage, error)
	Clear(ctx context.Context) error
	Close() error
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set validates and persists a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string

	// Accent styles text with the configured accent colour.
	Accent(text string) string
}

// Application represents the main application context with all dependencies.
type Application struct {
	Config   ConfigProvider
	Commands CommandStore
	Todo     TodoList
	Chat     ChatLog
	Logger   Logger
	Styler   Styler

	Recognizer Recognizer
	Speaker    Speaker
	Shell      Shell
	Launcher   Launcher
	Browser    Browser
	Stats      SystemStats
	Weather    WeatherProvider
	Locator    Locator
	News       NewsProvider
	Songs      SongResolver
	Volume     VolumeControl
	Input      Input
	Power      Power
	Programs   ProgramIndex
	Window     Window
	Notifier   Notifier
	Scheduler  Scheduler
	Workers    Runner
}
