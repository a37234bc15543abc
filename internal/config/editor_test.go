package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	tests := []struct {
		name         string
		initialLines []string
		key          string
		value        string
		wantLines    []string
		wantUpdated  bool
	}{
		{
			name:         "add to empty",
			initialLines: []string{},
			key:          "name",
			value:        "Олег",
			wantLines:    []string{"name=Олег"},
		},
		{
			name:         "update existing key",
			initialLines: []string{"name=Олег", "city=Київ"},
			key:          "city",
			value:        "Одеса",
			wantLines:    []string{"name=Олег", "city=Одеса"},
			wantUpdated:  true,
		},
		{
			name:         "preserves comments and blank lines",
			initialLines: []string{"# Comment", "", "name=Олег"},
			key:          "city",
			value:        "Київ",
			wantLines:    []string{"# Comment", "", "name=Олег", "city=Київ"},
		},
		{
			name:         "handles whitespace in existing line",
			initialLines: []string{"  theme  =  dark  "},
			key:          "theme",
			value:        "light",
			wantLines:    []string{"theme=light"},
			wantUpdated:  true,
		},
		{
			name:         "does not touch commented-out key",
			initialLines: []string{"# city=Київ"},
			key:          "city",
			value:        "Львів",
			wantLines:    []string{"# city=Київ", "city=Львів"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, updated := Set(tt.initialLines, tt.key, tt.value)
			require.Equal(t, tt.wantLines, got)
			require.Equal(t, tt.wantUpdated, updated)
		})
	}
}

func TestUnset(t *testing.T) {
	tests := []struct {
		name         string
		initialLines []string
		key          string
		wantLines    []string
		wantRemoved  bool
	}{
		{
			name:         "remove existing key",
			initialLines: []string{"name=Олег", "city=Київ"},
			key:          "name",
			wantLines:    []string{"city=Київ"},
			wantRemoved:  true,
		},
		{
			name:         "missing key",
			initialLines: []string{"# header", "name=Олег"},
			key:          "city",
			wantLines:    []string{"# header", "name=Олег"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, removed := Unset(tt.initialLines, tt.key)
			require.Equal(t, tt.wantLines, got)
			require.Equal(t, tt.wantRemoved, removed)
		})
	}
}
