package desktop

import (
	"context"
	"fmt"
	"math"

	"github.com/chronois/avrora/internal/domain"
)

// Volume sets the master volume with pactl, falling back to amixer.
type Volume struct {
	tools
}

// NewVolume returns a volume control.
func NewVolume(opts ...Option) *Volume {
	return &Volume{tools: newTools(opts)}
}

// SetVolume implements domain.VolumeControl. level is clamped to 0..1.
func (v *Volume) SetVolume(ctx context.Context, level float64) error {
	pct := percentArg(level)

	err := v.run(ctx, "pactl", "set-sink-volume", "@DEFAULT_SINK@", pct)
	if err == nil {
		return nil
	}
	v.log.Warn("pactl failed, trying amixer: %v", err)

	if err := v.run(ctx, "amixer", "-q", "sset", "Master", pct); err != nil {
		return fmt.Errorf("set volume %s: %w", pct, err)
	}
	return nil
}

func percentArg(level float64) string {
	level = math.Max(0, math.Min(1, level))
	return fmt.Sprintf("%d%%", int(math.Round(level*100)))
}

// Power shuts down or restarts the machine through systemd.
type Power struct {
	tools
}

// NewPower returns a power control.
func NewPower(opts ...Option) *Power {
	return &Power{tools: newTools(opts)}
}

func (p *Power) Shutdown(ctx context.Context) error {
	p.log.Info("shutting down")
	return p.run(ctx, "systemctl", "poweroff")
}

func (p *Power) Restart(ctx context.Context) error {
	p.log.Info("rebooting")
	return p.run(ctx, "systemctl", "reboot")
}

var (
	_ domain.VolumeControl = (*Volume)(nil)
	_ domain.Power         = (*Power)(nil)
)
