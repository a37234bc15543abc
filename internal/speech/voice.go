package speech

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/log"
)

// DefaultVoice is the espeak-ng voice used for replies.
const DefaultVoice = "uk"

// Espeak speaks through the espeak-ng command.
type Espeak struct {
	voice string
	run   func(ctx context.Context, name string, args ...string) error
}

// NewEspeak returns a speaker using voice.
func NewEspeak(voice string) *Espeak {
	if voice == "" {
		voice = DefaultVoice
	}
	return &Espeak{voice: voice, run: runQuiet}
}

func (e *Espeak) Speak(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if err := e.run(ctx, "espeak-ng", "-v", e.voice, "--", text); err != nil {
		return fmt.Errorf("espeak-ng: %w", err)
	}
	return nil
}

func runQuiet(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

// Voice wraps a speaker with silent mode and the speaking status.
type Voice struct {
	speaker  domain.Speaker
	silent   func() bool
	onStatus domain.StatusFunc
	log      domain.Logger
}

// VoiceDeps are the collaborators of a Voice. Silent is read before every
// utterance so a settings change applies immediately.
type VoiceDeps struct {
	Speaker  domain.Speaker
	Silent   func() bool
	OnStatus domain.StatusFunc
	Logger   domain.Logger
}

// NewVoice returns a silent-mode aware speaker.
func NewVoice(deps VoiceDeps) *Voice {
	v := &Voice{
		speaker:  deps.Speaker,
		silent:   deps.Silent,
		onStatus: deps.OnStatus,
		log:      log.Named(deps.Logger, "voice"),
	}
	if v.silent == nil {
		v.silent = func() bool { return false }
	}
	return v
}

// Speak implements domain.Speaker. In silent mode, or without a speaker,
// nothing is said.
func (v *Voice) Speak(ctx context.Context, text string) error {
	if v.speaker == nil || v.silent() || strings.TrimSpace(text) == "" {
		return nil
	}

	if v.onStatus != nil {
		v.onStatus(domain.ActivitySpeaking)
	}
	v.log.Debug("speaking %q", text)
	return v.speaker.Speak(ctx, text)
}

var (
	_ domain.Speaker = (*Espeak)(nil)
	_ domain.Speaker = (*Voice)(nil)
)
