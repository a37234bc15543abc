package desktop

import (
	"context"
	"strconv"
	"strings"

	"github.com/chronois/avrora/internal/domain"
)

// scrollNotch is the scroll amount one wheel click represents.
const scrollNotch = 100

// Input injects keyboard and mouse events with xdotool.
type Input struct {
	tools
}

// NewInput returns an xdotool input driver.
func NewInput(opts ...Option) *Input {
	return &Input{tools: newTools(opts)}
}

// Hotkey presses keys together, e.g. super+Down.
func (in *Input) Hotkey(ctx context.Context, keys ...string) error {
	return in.run(ctx, "xdotool", "key", "--clearmodifiers", strings.Join(keys, "+"))
}

func (in *Input) Press(ctx context.Context, key string) error {
	return in.run(ctx, "xdotool", "key", "--clearmodifiers", key)
}

func (in *Input) Type(ctx context.Context, text string) error {
	return in.run(ctx, "xdotool", "type", "--delay", "0", "--", text)
}

// MoveCursor moves the pointer relative to its position. Positive dy is down.
func (in *Input) MoveCursor(ctx context.Context, dx, dy int) error {
	return in.run(ctx, "xdotool", "mousemove_relative", "--", strconv.Itoa(dx), strconv.Itoa(dy))
}

func (in *Input) Click(ctx context.Context) error {
	return in.run(ctx, "xdotool", "click", "1")
}

func (in *Input) DoubleClick(ctx context.Context) error {
	return in.run(ctx, "xdotool", "click", "--repeat", "2", "1")
}

// Scroll turns the wheel. Positive amounts scroll up.
func (in *Input) Scroll(ctx context.Context, amount int) error {
	button := "4"
	if amount < 0 {
		button, amount = "5", -amount
	}
	notches := max(1, amount/scrollNotch)
	return in.run(ctx, "xdotool", "click", "--repeat", strconv.Itoa(notches), button)
}

var _ domain.Input = (*Input)(nil)
