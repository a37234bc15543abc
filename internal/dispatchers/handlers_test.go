package dispatchers

import (
	"testing"
	"time"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/usage"
	"github.com/stretchr/testify/require"
)

func TestParseReminder(t *testing.T) {
	tests := []struct {
		text string
		want Reminder
	}{
		{"нагадай про чай через 5 хвилин", Reminder{Text: "чай", Amount: 5, Unit: "хвилин", Delay: 5 * time.Minute}},
		{"нагадай про дзвінок мамі через 1 годину", Reminder{Text: "дзвінок мамі", Amount: 1, Unit: "годину", Delay: time.Hour}},
		{"нагадай про піцу через 30 секунд", Reminder{Text: "піцу", Amount: 30, Unit: "секунд", Delay: 30 * time.Second}},
		{"нагадай про через 2 хвилини", Reminder{Text: "", Amount: 2, Unit: "хвилини", Delay: 2 * time.Minute}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseReminder(tt.text)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseReminder_Errors(t *testing.T) {
	tests := []struct {
		text string
		kind usage.ErrorKind
	}{
		{"нагадай про чай", usage.ErrMissingArgument},
		{"нагадай про чай через 5", usage.ErrMissingArgument},
		{"нагадай про чай через п'ять хвилин", usage.ErrBadNumber},
		{"нагадай про чай через 5 днів", usage.ErrBadUnit},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := ParseReminder(tt.text)
			require.Error(t, err)
			require.Equal(t, tt.kind, usage.KindOf(err))
		})
	}
}

func TestParseVolume(t *testing.T) {
	tests := []struct {
		text    string
		want    float64
		wantErr usage.ErrorKind
	}{
		{"0", 0, usage.ErrUnknown},
		{"35", 0.35, usage.ErrUnknown},
		{"100", 1, usage.ErrUnknown},
		{"101", 0, usage.ErrOutOfRange},
		{"-3", 0, usage.ErrOutOfRange},
		{"гучно", 0, usage.ErrBadNumber},
		{"", 0, usage.ErrBadNumber},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseVolume(tt.text)
			if tt.wantErr != usage.ErrUnknown {
				require.Equal(t, tt.wantErr, usage.KindOf(err))
				return
			}
			require.NoError(t, err)
			require.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestFindProgram(t *testing.T) {
	programs := []domain.Program{
		{Name: "firefox web browser", Path: "/a"},
		{Name: "libreoffice writer", Path: "/b"},
		{Name: "writer", Path: "/c"},
		{Name: "gnome calculator", Path: "/d"},
	}

	tests := []struct {
		target string
		want   string
		ok     bool
	}{
		{"writer", "/c", true},
		{"libre", "/b", true},
		{"firefox", "/a", true},
		{"calc", "/d", true},
		{"  Firefox ", "/a", true},
		{"gimp", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			got, ok := FindProgram(programs, tt.target)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got.Path)
		})
	}
}
