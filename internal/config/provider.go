package config

import (
	"fmt"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/log"
)

// Provider reads and writes the settings file and implements
// domain.ConfigProvider.
type Provider struct {
	file *File
	log  domain.Logger
}

// NewProvider creates a provider for the settings file at path.
func NewProvider(path string, logger domain.Logger) *Provider {
	return &Provider{
		file: NewFile(path, WithSeed(DefaultLines)),
		log:  log.Named(logger, "config"),
	}
}

// Path returns the settings file location.
func (p *Provider) Path() string {
	return p.file.Path()
}

// Get returns the value for a configuration key, falling back to its default.
func (p *Provider) Get(key string) (string, bool) {
	all, err := p.GetAll()
	if err == nil {
		if v, ok := all[key]; ok {
			return v, true
		}
	}
	return Default(key)
}

// GetAll returns the stored values merged over the defaults. A missing or
// corrupt file is repaired and rewritten; read errors fall back to defaults.
func (p *Provider) GetAll() (map[string]string, error) {
	result := make(map[string]string)
	for _, key := range domain.ConfigKeys {
		result[key.Name] = key.Default
	}

	cfg, err := p.load()
	if err != nil {
		p.log.Error("could not load %s, using defaults: %v", p.file.Path(), err)
		return result, nil
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}

// Settings returns a typed snapshot of the current settings.
func (p *Provider) Settings() (domain.Settings, error) {
	all, err := p.GetAll()
	if err != nil {
		return domain.DefaultSettings(), err
	}
	return domain.SettingsFromMap(all), nil
}

// Set validates and persists a configuration value.
func (p *Provider) Set(key, value string) error {
	if err := Validate(key, value); err != nil {
		return err
	}

	return p.file.WithLock(func() error {
		lines, err := p.file.ReadLines()
		if err != nil {
			return fmt.Errorf("read settings: %w", err)
		}

		lines, _ = Set(lines, key, value)
		if err := p.file.WriteLines(lines); err != nil {
			return fmt.Errorf("write settings: %w", err)
		}

		p.log.Info("%s set to %q", key, value)
		return nil
	})
}

// Unset removes a configuration value so its default applies again.
func (p *Provider) Unset(key string) error {
	return p.file.WithLock(func() error {
		lines, err := p.file.ReadLines()
		if err != nil {
			return err
		}

		lines, _ = Unset(lines, key)
		return p.file.WriteLines(lines)
	})
}

// Reset rewrites the settings file with the defaults.
func (p *Provider) Reset() error {
	return p.file.WithLock(func() error {
		return p.file.WriteLines(DefaultLines())
	})
}

func (p *Provider) load() (map[string]string, error) {
	lines, err := p.file.ReadLines()
	if err != nil {
		return nil, err
	}

	cfg, parseErr := Parse(lines)
	fixed, changed := repair(lines)
	if parseErr == nil && !changed {
		return cfg, nil
	}

	if parseErr != nil {
		p.log.Warn("%s is corrupt, repairing: %v", p.file.Path(), parseErr)
	} else {
		p.log.Info("%s is missing keys or has invalid values, rewriting", p.file.Path())
	}

	err = p.file.WithLock(func() error {
		return p.file.WriteLines(fixed)
	})
	if err != nil {
		p.log.Warn("could not rewrite %s: %v", p.file.Path(), err)
	}

	return Parse(fixed)
}

// Verify Provider implements domain.ConfigProvider
var _ domain.ConfigProvider = (*Provider)(nil)
