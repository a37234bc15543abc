package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chronois/avrora/internal/usage"
)

func TestParsedFlags_Has(t *testing.T) {
	tests := []struct {
		name     string
		flags    []string
		checkFor string
		want     bool
	}{
		{"flag present", []string{"--plain", "--silent"}, "--plain", true},
		{"flag not present", []string{"--plain"}, "--silent", false},
		{"empty flags", []string{}, "--plain", false},
		{"value flag is not a switch", []string{"--log-level=debug"}, "--log-level", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewParsedFlags(tt.flags).Has(tt.checkFor))
		})
	}
}

func TestParsedFlags_String(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		want  string
	}{
		{"value", []string{"--pager=less"}, "less"},
		{"missing gives default", []string{"--plain"}, "more"},
		{"empty value", []string{"--pager="}, ""},
		{"equals inside value", []string{"--pager=less -R --x=1"}, "less -R --x=1"},
		{"first wins", []string{"--pager=less", "--pager=cat"}, "less"},
		{"bare flag is not a value", []string{"--pager"}, "more"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewParsedFlags(tt.flags).String("--pager", "more"))
		})
	}
}

func TestParsedFlags_Check(t *testing.T) {
	known := []FlagSpec{
		{Name: "--plain"},
		{Name: "--log-level", Value: true},
	}

	tests := []struct {
		name    string
		flags   []string
		wantErr bool
	}{
		{"all known", []string{"--plain", "--log-level=warn"}, false},
		{"none", nil, false},
		{"unknown", []string{"--plain", "--wait"}, true},
		{"value on a switch", []string{"--plain=yes"}, true},
		{"value flag without value", []string{"--log-level"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewParsedFlags(tt.flags).Check(known)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.True(t, usage.IsUserInput(err))
		})
	}
}
