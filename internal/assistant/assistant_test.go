package assistant

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chronois/avrora/internal/domain"
)

type fakeDispatcher struct {
	got    []string
	result domain.Result
	panics bool
}

func (f *fakeDispatcher) Dispatch(_ context.Context, remainder string) domain.Result {
	if f.panics {
		panic("boom")
	}
	f.got = append(f.got, remainder)
	return f.result
}

type fakeSpeaker struct {
	spoken []string
}

func (f *fakeSpeaker) Speak(_ context.Context, text string) error {
	f.spoken = append(f.spoken, text)
	return nil
}

type fakeWindow struct {
	focused int
}

func (f *fakeWindow) MinimizeSelf(context.Context) error                  { return nil }
func (f *fakeWindow) FocusSelf(context.Context) error                     { f.focused++; return nil }
func (f *fakeWindow) ClearChat(context.Context) error                     { return nil }
func (f *fakeWindow) UpdateSetting(context.Context, string, string) error { return nil }

type fakeConfig struct{}

func (fakeConfig) Get(string) (string, bool) { return "", false }
func (fakeConfig) GetAll() (map[string]string, error) {
	return map[string]string{domain.KeyName: "Олег"}, nil
}
func (fakeConfig) Set(string, string) error { return nil }
func (fakeConfig) Unset(string) error       { return nil }

type post struct {
	role domain.Role
	text string
}

type fakeNotifier struct {
	mu    sync.Mutex
	posts []post
}

func (f *fakeNotifier) Notify(_ context.Context, text string, role domain.Role) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts = append(f.posts, post{role: role, text: text})
}

// scriptedRecognizer returns its lines in order, then io.EOF.
type scriptedRecognizer struct {
	lines []string
}

func (s *scriptedRecognizer) Recognize(context.Context) (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

type env struct {
	assistant  *Assistant
	dispatcher *fakeDispatcher
	speaker    *fakeSpeaker
	window     *fakeWindow
	notifier   *fakeNotifier
	recognizer *scriptedRecognizer
	statuses   []domain.Activity
}

func newEnv(lines ...string) *env {
	e := &env{
		dispatcher: &fakeDispatcher{result: domain.Result{Status: domain.StatusSuccess, Message: "готово"}},
		speaker:    &fakeSpeaker{},
		window:     &fakeWindow{},
		notifier:   &fakeNotifier{},
		recognizer: &scriptedRecognizer{lines: lines},
	}
	app := &domain.Application{
		Config:     fakeConfig{},
		Speaker:    e.speaker,
		Window:     e.window,
		Notifier:   e.notifier,
		Recognizer: e.recognizer,
	}
	e.assistant = New(Deps{
		App:        app,
		Dispatcher: e.dispatcher,
		OnStatus:   func(a domain.Activity) { e.statuses = append(e.statuses, a) },
		Pick:       func(int) int { return 1 },
	})
	return e
}

func TestHandle_BareWakeWordBypassesTable(t *testing.T) {
	for _, text := range []string{"аврора", "Аврора", "  аврора "} {
		t.Run(text, func(t *testing.T) {
			e := newEnv()

			res, err := e.assistant.Handle(context.Background(), text)

			require.NoError(t, err)
			require.Equal(t, domain.StatusSuccess, res.Status)
			require.Equal(t, "Я тут, Олег", res.Message)
			require.Empty(t, e.dispatcher.got)
			require.Equal(t, 1, e.window.focused)
			require.Equal(t, []string{"Я тут, Олег"}, e.speaker.spoken)
		})
	}
}

func TestHandle_RemainderAfterLastWakeWord(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"аврора котра година", "котра година"},
		{"аврора аврора котра година", "котра година"},
		{"Аврора Відкрий Ютуб", "Відкрий Ютуб"},
		{"аврора називай мене Олег", "називай мене Олег"},
		{"аврора зроби щось аврора дата", "дата"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			e := newEnv()

			_, err := e.assistant.Handle(context.Background(), tt.text)

			require.NoError(t, err)
			require.Equal(t, []string{tt.want}, e.dispatcher.got)
		})
	}
}

func TestHandle_WakeWordWithoutCommand(t *testing.T) {
	e := newEnv()

	res, err := e.assistant.Handle(context.Background(), "авроро")

	require.NoError(t, err)
	require.Equal(t, domain.StatusClarify, res.Status)
	require.Equal(t, "Не розумію команду після кодового слова, Олег", res.Message)
	require.Empty(t, e.dispatcher.got)
}

func TestHandle_StatusInterpretation(t *testing.T) {
	tests := []struct {
		name    string
		result  domain.Result
		message string
		err     error
		spoken  []string
	}{
		{"success passes through", domain.Result{Status: domain.StatusSuccess, Message: "ok"}, "ok", nil, nil},
		{"clarify with message", domain.Result{Status: domain.StatusClarify, Message: "що?"}, "що?", nil, nil},
		{"clarify without message", domain.Result{Status: domain.StatusClarify}, "Не розумію, можете уточнити?", nil, []string{"Не розумію, можете уточнити?"}},
		{"standard picks an affirmative", domain.Result{Status: domain.StatusStandard}, "Зараз, Олег", nil, []string{"Зараз, Олег"}},
		{"exit", domain.Result{Status: domain.StatusExit, Message: "До побачення, Олег"}, "До побачення, Олег", ErrExit, nil},
		{"restart", domain.Result{Status: domain.StatusRestart, Message: "Перезавантажуюся, Олег"}, "Перезавантажуюся, Олег", ErrRestart, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv()
			e.dispatcher.result = tt.result

			res, err := e.assistant.Handle(context.Background(), "аврора щось")

			require.Equal(t, tt.message, res.Message)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.spoken, e.speaker.spoken)
		})
	}
}

func TestHandle_RecoversPanic(t *testing.T) {
	e := newEnv()
	e.dispatcher.panics = true

	_, err := e.assistant.Handle(context.Background(), "аврора котра година")

	require.Error(t, err)
	require.Contains(t, err.Error(), "boom")
}

func TestIsAddressed(t *testing.T) {
	require.True(t, IsAddressed("аврора котра година"))
	require.True(t, IsAddressed("Аврора"))
	require.False(t, IsAddressed("котра година аврора"))
	require.False(t, IsAddressed(""))
}

func TestRun_PostsAndStopsOnExit(t *testing.T) {
	e := newEnv("котра година", "аврора дата", "аврора до побачення", "аврора не дійде")
	results := []domain.Result{
		{Status: domain.StatusSuccess, Message: "Вітаю, Олег, все готово до роботи"},
		{Status: domain.StatusSuccess, Message: "Олег, сьогодні субота 17.10.2026"},
		{Status: domain.StatusExit, Message: "До побачення, Олег"},
	}
	e.assistant.dispatcher = dispatcherFunc(func(_ context.Context, remainder string) domain.Result {
		e.dispatcher.got = append(e.dispatcher.got, remainder)
		res := results[0]
		results = results[1:]
		return res
	})

	err := e.assistant.Run(context.Background())

	require.ErrorIs(t, err, ErrExit)
	require.Equal(t, []string{"вітаю", "дата", "до побачення"}, e.dispatcher.got)
	require.Equal(t, []post{
		{domain.RoleProgram, "Вітаю, Олег, все готово до роботи"},
		{domain.RoleUser, "аврора дата"},
		{domain.RoleProgram, "Олег, сьогодні субота 17.10.2026"},
		{domain.RoleUser, "аврора до побачення"},
		{domain.RoleProgram, "До побачення, Олег"},
	}, e.notifier.posts)
	require.Contains(t, e.statuses, domain.ActivityThinking)
	require.Equal(t, domain.ActivityNone, e.statuses[len(e.statuses)-1])
}

func TestRun_PanicIsPostedAndLoopContinues(t *testing.T) {
	e := newEnv("аврора зламайся")
	calls := 0
	e.assistant.dispatcher = dispatcherFunc(func(context.Context, string) domain.Result {
		calls++
		if calls == 2 {
			panic("boom")
		}
		return domain.Result{Status: domain.StatusSuccess, Message: "привіт"}
	})

	err := e.assistant.Run(context.Background())

	// the script ends with io.EOF after the failing cycle
	require.ErrorIs(t, err, ErrExit)
	last := e.notifier.posts[len(e.notifier.posts)-1]
	require.Equal(t, domain.RoleSystem, last.role)
	require.Equal(t, "Сталася помилка: panic: boom", last.text)
}

func TestRun_ContextCancelled(t *testing.T) {
	e := newEnv()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := e.assistant.Run(ctx)

	require.True(t, errors.Is(err, context.Canceled))
}

type dispatcherFunc func(ctx context.Context, remainder string) domain.Result

func (f dispatcherFunc) Dispatch(ctx context.Context, remainder string) domain.Result {
	return f(ctx, remainder)
}
