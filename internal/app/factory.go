// Package app wires every collaborator into a runnable assistant.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/chronois/avrora/internal/assistant"
	"github.com/chronois/avrora/internal/chatlog"
	"github.com/chronois/avrora/internal/commands"
	"github.com/chronois/avrora/internal/config"
	"github.com/chronois/avrora/internal/desktop"
	"github.com/chronois/avrora/internal/dispatchers"
	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/log"
	"github.com/chronois/avrora/internal/notify"
	"github.com/chronois/avrora/internal/paths"
	"github.com/chronois/avrora/internal/providers"
	"github.com/chronois/avrora/internal/scheduler"
	"github.com/chronois/avrora/internal/speech"
	"github.com/chronois/avrora/internal/sysinfo"
	"github.com/chronois/avrora/internal/todo"
	"github.com/chronois/avrora/internal/ui"
	"github.com/chronois/avrora/internal/ui/style"
	"github.com/chronois/avrora/internal/workers"
)

// historyLimit is how many saved messages are shown at startup.
const historyLimit = 200

// Options configures the application factory.
type Options struct {
	// LogLevel overrides the log_level setting when non-empty.
	LogLevel string

	// Silent never speaks, whatever silentmode says.
	Silent bool

	// StyleEnabled turns on colours.
	StyleEnabled bool

	// Notifications shows reminders and alarms as desktop notifications.
	Notifications bool

	// Input is read line by line as recognised speech. When nil, lines are
	// submitted through App.Lines by the chat window.
	Input io.Reader

	// Speaker replaces espeak-ng. Used by tests.
	Speaker domain.Speaker
}

// DefaultOptions returns the default application options.
func DefaultOptions() Options {
	return Options{
		StyleEnabled:  true,
		Notifications: true,
	}
}

// App is the wired application.
type App struct {
	*domain.Application

	Config     *config.Provider
	Lines      *speech.Lines
	Feed       *chatlog.Feed
	Dispatcher *dispatchers.Dispatcher
	Scheduler  *scheduler.Scheduler

	frontend ui.Frontend
}

// New creates a new App with all dependencies wired up.
func New(opts Options) (*App, error) {
	cfg := config.NewProvider(paths.SettingsFilePath(), nil)
	settings, err := cfg.Settings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	level := settings.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	var logger domain.Logger
	l, err := log.New(paths.LogFilePath(), log.ParseLevel(level))
	if err != nil {
		// Fall back to NopLogger on error
		logger = log.NopLogger{}
	} else {
		logger = l
		log.SetDefault(l)
	}
	cfg = config.NewProvider(paths.SettingsFilePath(), logger)

	chat, err := openChat(settings.SaveChat)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	style.Init(opts.StyleEnabled, settings.Theme, settings.AccentColor)

	a := &App{Config: cfg}

	var lines *speech.Lines
	if opts.Input != nil {
		lines = speech.NewConsole(opts.Input)
	} else {
		lines = speech.NewLines()
	}
	a.Lines = lines

	speaker := opts.Speaker
	if speaker == nil {
		speaker = speech.NewEspeak(speech.DefaultVoice)
	}
	voice := speech.NewVoice(speech.VoiceDeps{
		Speaker: speaker,
		Silent: func() bool {
			if opts.Silent {
				return true
			}
			v, _ := cfg.Get(domain.KeySilentMode)
			return v == "true"
		},
		OnStatus: a.SetStatus,
		Logger:   logger,
	})

	a.Feed = chatlog.NewFeed(chat, logger)
	a.Scheduler = scheduler.New(scheduler.Deps{
		Speaker:  voice,
		Notifier: notify.New(a.Feed, opts.Notifications, logger),
		Logger:   logger,
	})

	client := providers.NewClient(providers.WithLogger(logger))
	songs, err := providers.NewSongs(client, "")
	if err != nil {
		_ = chat.Close()
		_ = logger.Close()
		return nil, err
	}

	launcher := desktop.NewLauncher(desktop.WithLogger(logger))
	a.Application = &domain.Application{
		Config:   cfg,
		Commands: commands.NewStore(paths.CommandsFilePath(), logger),
		Todo:     todo.New(paths.TodoFilePath()),
		Chat:     chat,
		Logger:   logger,
		Styler:   style.NewStyler(),

		Recognizer: lines,
		Speaker:    voice,
		Shell:      desktop.NewShell(desktop.WithLogger(logger)),
		Launcher:   launcher,
		Browser:    launcher,
		Stats:      sysinfo.New(sysinfo.DefaultSampleInterval),
		Weather:    providers.NewWeather(client, ""),
		Locator:    providers.NewLocator(client, ""),
		News:       providers.NewNews(client),
		Songs:      songs,
		Volume:     desktop.NewVolume(desktop.WithLogger(logger)),
		Input:      desktop.NewInput(desktop.WithLogger(logger)),
		Power:      desktop.NewPower(desktop.WithLogger(logger)),
		Programs:   desktop.NewProgramIndex(logger, desktop.ApplicationDirs()...),
		Notifier:   a.Feed,
		Scheduler:  a.Scheduler,
		Workers:    workers.New(workers.DefaultSize, logger),
	}
	a.Dispatcher = dispatchers.New(a.Application)

	return a, nil
}

func openChat(persist bool) (domain.ChatLog, error) {
	if !persist {
		mem, err := chatlog.OpenMemory()
		if err != nil {
			return nil, fmt.Errorf("open chat history: %w", err)
		}
		return mem, nil
	}
	chat, err := chatlog.New(paths.ChatDBPath())
	if err != nil {
		return nil, fmt.Errorf("open chat history: %w", err)
	}
	return chat, nil
}

// Attach connects a console front-end. Call it once, before Run.
func (a *App) Attach(fe ui.Frontend) {
	a.frontend = fe
	a.Window = fe
	a.Feed.AddDisplay(fe)
}

// SetStatus forwards an activity change to the front-end.
func (a *App) SetStatus(act domain.Activity) {
	if a.frontend != nil {
		a.frontend.SetStatus(act)
	}
}

// History returns the saved chat, oldest first.
func (a *App) History(ctx context.Context) []domain.ChatMessage {
	msgs, err := a.Chat.History(ctx, historyLimit)
	if err != nil {
		a.Logger.Error("load chat history: %v", err)
		return nil
	}
	return msgs
}

// Assistant returns the top-level loop over this app.
func (a *App) Assistant() *assistant.Assistant {
	return assistant.New(assistant.Deps{
		App:        a.Application,
		Dispatcher: a.Dispatcher,
		OnStatus:   a.SetStatus,
	})
}

// Close cleans up application resources.
func (a *App) Close() error {
	if a.Lines != nil {
		a.Lines.Close()
	}
	if a.Application == nil {
		return nil
	}
	var err error
	if a.Chat != nil {
		err = a.Chat.Close()
	}
	if a.Logger != nil {
		log.SetDefault(nil)
		_ = a.Logger.Close()
	}
	return err
}
