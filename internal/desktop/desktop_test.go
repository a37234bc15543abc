package desktop

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls [][]string
	fail  map[string]error
}

func (r *recorder) exec(_ context.Context, name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	if err := r.fail[name]; err != nil {
		return []byte("boom"), err
	}
	return nil, nil
}

func (r *recorder) start(name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.fail[name]
}

func (r *recorder) options() []Option {
	return []Option{WithExec(r.exec), WithStart(r.start)}
}

func TestInput_Commands(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		do   func(*Input) error
		want []string
	}{
		{"hotkey", func(in *Input) error { return in.Hotkey(ctx, "super", "Down") }, []string{"xdotool", "key", "--clearmodifiers", "super+Down"}},
		{"press", func(in *Input) error { return in.Press(ctx, "space") }, []string{"xdotool", "key", "--clearmodifiers", "space"}},
		{"type", func(in *Input) error { return in.Type(ctx, "-rf") }, []string{"xdotool", "type", "--delay", "0", "--", "-rf"}},
		{"move", func(in *Input) error { return in.MoveCursor(ctx, -100, 0) }, []string{"xdotool", "mousemove_relative", "--", "-100", "0"}},
		{"click", func(in *Input) error { return in.Click(ctx) }, []string{"xdotool", "click", "1"}},
		{"double click", func(in *Input) error { return in.DoubleClick(ctx) }, []string{"xdotool", "click", "--repeat", "2", "1"}},
		{"scroll up", func(in *Input) error { return in.Scroll(ctx, 500) }, []string{"xdotool", "click", "--repeat", "5", "4"}},
		{"scroll down", func(in *Input) error { return in.Scroll(ctx, -500) }, []string{"xdotool", "click", "--repeat", "5", "5"}},
		{"small scroll", func(in *Input) error { return in.Scroll(ctx, 30) }, []string{"xdotool", "click", "--repeat", "1", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			require.NoError(t, tt.do(NewInput(rec.options()...)))
			require.Equal(t, [][]string{tt.want}, rec.calls)
		})
	}
}

func TestInput_FailureCarriesOutput(t *testing.T) {
	rec := &recorder{fail: map[string]error{"xdotool": errors.New("exit status 1")}}

	err := NewInput(rec.options()...).Click(context.Background())

	require.Error(t, err)
	require.Contains(t, err.Error(), "boom")
}

func TestVolume_FallsBackToAmixer(t *testing.T) {
	rec := &recorder{fail: map[string]error{"pactl": errors.New("no pulse")}}

	err := NewVolume(rec.options()...).SetVolume(context.Background(), 0.42)

	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"pactl", "set-sink-volume", "@DEFAULT_SINK@", "42%"},
		{"amixer", "-q", "sset", "Master", "42%"},
	}, rec.calls)
}

func TestVolume_Clamps(t *testing.T) {
	rec := &recorder{}

	require.NoError(t, NewVolume(rec.options()...).SetVolume(context.Background(), 1.7))
	require.Equal(t, "100%", rec.calls[0][3])
}

func TestPower(t *testing.T) {
	rec := &recorder{}
	p := NewPower(rec.options()...)

	require.NoError(t, p.Shutdown(context.Background()))
	require.NoError(t, p.Restart(context.Background()))
	require.Equal(t, [][]string{{"systemctl", "poweroff"}, {"systemctl", "reboot"}}, rec.calls)
}

func TestLauncher(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "telegram")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"), 0o755))
	doc := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(doc, []byte("x"), 0o644))

	rec := &recorder{}
	l := NewLauncher(rec.options()...)

	require.NoError(t, l.Launch(context.Background(), "/usr/share/applications/firefox.desktop"))
	require.NoError(t, l.Launch(context.Background(), script))
	require.NoError(t, l.Launch(context.Background(), doc))
	require.NoError(t, l.OpenURL(context.Background(), "https://youtube.com"))
	require.Error(t, l.Launch(context.Background(), "  "))

	require.Equal(t, []string{"gio", "launch", "/usr/share/applications/firefox.desktop"}, rec.calls[0])
	require.Equal(t, []string{script}, rec.calls[1])
	require.Equal(t, doc, rec.calls[2][1])
	require.Equal(t, "https://youtube.com", rec.calls[3][1])
}

func startAndWait(t *testing.T, sh *Shell, command string) int {
	t.Helper()
	type exit struct {
		code int
		err  error
	}
	exits := make(chan exit, 1)
	require.NoError(t, sh.Start(context.Background(), command, func(code int, err error) {
		exits <- exit{code, err}
	}))
	select {
	case e := <-exits:
		require.NoError(t, e.err)
		return e.code
	case <-time.After(2 * time.Second):
		t.Fatalf("%q did not report its exit", command)
		return -1
	}
}

func TestShell_ExitCodes(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	sh := NewShell()

	require.Equal(t, 3, startAndWait(t, sh, "exit 3"))
	require.Equal(t, 0, startAndWait(t, sh, "true"))
}

func TestShell_BackgroundedChildDoesNotHoldExit(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}

	began := time.Now()
	require.Equal(t, 0, startAndWait(t, NewShell(), "sleep 5 &"))
	require.Less(t, time.Since(began), 2*time.Second)
}

func TestShell_StartDoesNotWait(t *testing.T) {
	release := make(chan struct{})
	var got []string
	sh := NewShell(WithSpawn(func(name string, args ...string) (func() error, error) {
		got = append([]string{name}, args...)
		return func() error { <-release; return nil }, nil
	}))

	exited := make(chan int, 1)
	require.NoError(t, sh.Start(context.Background(), "firefox", func(code int, _ error) { exited <- code }))
	require.Equal(t, []string{"sh", "-c", "firefox"}, got)
	require.Empty(t, exited)

	close(release)
	require.Equal(t, 0, <-exited)
}

func TestShell_StartFailures(t *testing.T) {
	sh := NewShell(WithSpawn(func(string, ...string) (func() error, error) {
		return nil, errors.New("no sh")
	}))
	called := false
	require.Error(t, sh.Start(context.Background(), "true", func(int, error) { called = true }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, NewShell().Start(ctx, "true", nil), context.Canceled)
	require.False(t, called)
}

func writeEntry(t *testing.T, dir, file, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(strings.TrimSpace(body)+"\n"), 0o644))
}

func TestProgramIndex(t *testing.T) {
	user := filepath.Join(t.TempDir(), "applications")
	system := filepath.Join(t.TempDir(), "applications")

	writeEntry(t, user, "firefox.desktop", `
[Desktop Entry]
Type=Application
Name=Firefox
Exec=/opt/firefox/firefox %u`)
	writeEntry(t, system, "firefox.desktop", `
[Desktop Entry]
Type=Application
Name=Firefox`)
	writeEntry(t, filepath.Join(system, "kde"), "calc.desktop", `
[Desktop Entry]
Type=Application
Name=Калькулятор
[Desktop Action New]
Name=New window`)
	writeEntry(t, system, "hidden.desktop", `
[Desktop Entry]
Type=Application
Name=Hidden
NoDisplay=true`)
	writeEntry(t, system, "link.desktop", `
[Desktop Entry]
Type=Link
Name=Website`)
	writeEntry(t, system, "readme.txt", "Name=Not an entry")

	idx := NewProgramIndex(nil, user, system, filepath.Join(t.TempDir(), "missing"))

	programs, err := idx.Programs(context.Background())
	require.NoError(t, err)
	require.Len(t, programs, 2)
	require.Equal(t, "firefox", programs[0].Name)
	require.Equal(t, filepath.Join(user, "firefox.desktop"), programs[0].Path)
	require.Equal(t, "калькулятор", programs[1].Name)

	// cached until invalidated
	writeEntry(t, user, "gimp.desktop", "[Desktop Entry]\nType=Application\nName=GIMP")
	programs, err = idx.Programs(context.Background())
	require.NoError(t, err)
	require.Len(t, programs, 2)

	idx.Invalidate()
	programs, err = idx.Programs(context.Background())
	require.NoError(t, err)
	require.Len(t, programs, 3)
}

func TestApplicationDirs(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/home/u/.local/share")
	t.Setenv("XDG_DATA_DIRS", "/usr/share:/opt/share")

	require.Equal(t, []string{
		"/home/u/.local/share/applications",
		"/usr/share/applications",
		"/opt/share/applications",
	}, ApplicationDirs())
}
