package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/chronois/avrora/internal/app"
	"github.com/chronois/avrora/internal/assistant"
	"github.com/chronois/avrora/internal/dispatchers"
	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/ui"
	"github.com/chronois/avrora/internal/usage"
)

// exitGrace lets the last reply finish before the process goes away.
const exitGrace = 500 * time.Millisecond

const usageText = `Usage: avrora [flags]
       avrora cc list | cc add <pattern> <action...> | cc rm <pattern>
       avrora config list | config get <key> | config set <key> <value> | config unset <key>

Flags:
  --plain            line-oriented output instead of the chat window
  --no-color         disable colours
  --silent           never speak
  --no-notify        no desktop notifications for reminders and alarms
  --log-level=LEVEL  debug, info, warn or error
  --commands         print the command catalogue and exit
  --pager=CMD        pager for --commands
  --no-pager         print --commands without a pager
  --help             show this text
`

var knownFlags = []dispatchers.FlagSpec{
	{Name: "--plain"},
	{Name: "--no-color"},
	{Name: "--silent"},
	{Name: "--no-notify"},
	{Name: "--log-level", Value: true},
	{Name: "--commands"},
	{Name: "--pager", Value: true},
	{Name: "--no-pager"},
	{Name: "--help"},
	{Name: "-h"},
}

// errRestart asks main to start a fresh process.
var errRestart = errors.New("restart")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()

	if errors.Is(err, errRestart) {
		os.Exit(restart())
	}
	os.Exit(exitCode(err, os.Stderr))
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var ue *usage.Error
	if errors.As(err, &ue) {
		_, _ = fmt.Fprintln(stderr, ue.Error())
		return ue.GetExitCode()
	}
	_, _ = fmt.Fprintln(stderr, err.Error())
	return 1
}

// restart runs the same binary again with the same arguments and reports
// its exit code.
func restart() int {
	self, err := os.Executable()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "restart:", err)
		return 1
	}
	cmd := exec.Command(self, os.Args[1:]...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		_, _ = fmt.Fprintln(os.Stderr, "restart:", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, args []string, stdin *os.File, stdout, stderr io.Writer) error {
	flags := dispatchers.NewParsedFlags(extractFlags(args))
	commands := extractCommands(args)

	if flags.Has("--help") || flags.Has("-h") {
		_, _ = fmt.Fprint(stdout, usageText)
		return nil
	}
	if err := flags.Check(knownFlags); err != nil {
		return err
	}
	if len(commands) > 0 {
		return runSubcommand(commands, stdout)
	}

	outFile, _ := stdout.(*os.File)
	tty := outFile != nil && ui.IsTerminal(outFile) && stdin != nil && ui.IsTerminal(stdin)

	opts := app.DefaultOptions()
	opts.StyleEnabled = outFile != nil && ui.IsTerminal(outFile) && !flags.Has("--no-color")
	opts.Silent = flags.Has("--silent")
	opts.Notifications = !flags.Has("--no-notify")
	opts.LogLevel = flags.String("--log-level", "")

	if flags.Has("--commands") {
		return printCatalogue(stdout, flags, opts)
	}

	if flags.Has("--plain") || !tty {
		opts.Input = os.Stdin
		if stdin != nil {
			opts.Input = stdin
		}
		return runPlain(ctx, stdout, opts, tty)
	}
	return runChat(ctx, opts)
}

func printCatalogue(stdout io.Writer, flags *dispatchers.ParsedFlags, opts app.Options) error {
	a, err := app.New(opts)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	custom, err := a.Commands.Entries()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := dispatchers.WriteCatalogue(&buf, a.Dispatcher.Table(), custom, a.Styler); err != nil {
		return err
	}

	var writerOpts []ui.WriterOption
	if flags.Has("--no-pager") {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if pager := flags.String("--pager", ""); pager != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(pager))
	}
	writerOpts = append(writerOpts, ui.WithWriterLogger(a.Logger))
	ui.NewWriterTo(stdout, writerOpts...).Pager(buf.String())
	return nil
}

func runPlain(ctx context.Context, stdout io.Writer, opts app.Options, prompt bool) error {
	a, err := app.New(opts)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	writerOpts := []ui.WriterOption{ui.WithWriterLogger(a.Logger)}
	if prompt {
		writerOpts = append(writerOpts, ui.WithPrompt())
	}
	w := ui.NewWriterTo(stdout, writerOpts...)
	w.ShowHistory(a.History(ctx))
	a.Attach(w)

	return finish(a.Logger, a.Assistant().Run(ctx))
}

func runChat(ctx context.Context, opts app.Options) error {
	a, err := app.New(opts)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	chat := ui.NewChat(ui.ChatDeps{
		History: a.History(ctx),
		Submit:  func(text string) { a.Lines.Submit(text) },
		Logger:  a.Logger,
	})
	a.Attach(chat)

	done := make(chan error, 1)
	go func() {
		err := a.Assistant().Run(ctx)
		chat.Quit()
		done <- err
	}()

	if err := chat.Run(ctx); err != nil {
		a.Logger.Error("chat window: %v", err)
	}
	// the window is gone; end the loop if the user closed it
	a.Lines.Close()

	return finish(a.Logger, <-done)
}

// finish waits the exit grace delay when the loop ended on request and
// reports the process outcome.
func finish(logger domain.Logger, err error) error {
	res := outcome(err)
	if res == nil || errors.Is(res, errRestart) {
		logger.Info("loop ended: %v", err)
		time.Sleep(exitGrace)
	}
	return res
}

// outcome maps the loop result: restart, clean exit or failure.
func outcome(err error) error {
	switch {
	case errors.Is(err, assistant.ErrRestart):
		return errRestart
	case err == nil,
		errors.Is(err, assistant.ErrExit),
		errors.Is(err, context.Canceled):
		return nil
	default:
		return err
	}
}

func extractFlags(args []string) []string {
	var flags []string
	for _, a := range args {
		if len(a) > 0 && a[0] == '-' {
			flags = append(flags, a)
		}
	}
	return flags
}

func extractCommands(args []string) []string {
	var cmds []string
	for _, a := range args {
		if len(a) > 0 && a[0] != '-' {
			cmds = append(cmds, a)
		}
	}
	return cmds
}
