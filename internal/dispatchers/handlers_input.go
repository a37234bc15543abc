package dispatchers

import (
	"context"
	"strconv"
	"strings"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/phrases"
	"github.com/chronois/avrora/internal/usage"
)

const (
	cursorStep = 100
	scrollStep = 500

	maxVolume = 100
)

func handleCursor(ctx context.Context, req *Request) domain.Result {
	var dx, dy int
	switch strings.ToLower(req.Args) {
	case phrases.DirectionUp:
		dy = -cursorStep
	case phrases.DirectionDown:
		dy = cursorStep
	case phrases.DirectionLeft:
		dx = -cursorStep
	case phrases.DirectionRight:
		dx = cursorStep
	default:
		req.log.Warn("%v", usage.UnknownDirection(req.Args))
		return clarify(phrases.T(phrases.UnknownDirection, req.Name()))
	}

	if err := req.App.Input.MoveCursor(ctx, dx, dy); err != nil {
		req.log.Error("move cursor: %v", err)
		return success(phrases.T(phrases.ActionFailed, req.Name()))
	}
	return success(phrases.T(phrases.MovingCursor, req.Name()))
}

func handleClick(ctx context.Context, req *Request) domain.Result {
	if err := req.App.Input.Click(ctx); err != nil {
		req.log.Error("click: %v", err)
		return success(phrases.T(phrases.ActionFailed, req.Name()))
	}
	return success(phrases.T(phrases.Clicking, req.Name()))
}

func handleDoubleClick(ctx context.Context, req *Request) domain.Result {
	if err := req.App.Input.DoubleClick(ctx); err != nil {
		req.log.Error("double click: %v", err)
		return success(phrases.T(phrases.ActionFailed, req.Name()))
	}
	return success(phrases.T(phrases.Clicking, req.Name()))
}

// handleScroll scrolls by a fixed step; positive amounts scroll up.
func handleScroll(ctx context.Context, req *Request) domain.Result {
	var amount int
	switch strings.ToLower(req.Args) {
	case phrases.DirectionUp:
		amount = scrollStep
	case phrases.DirectionDown:
		amount = -scrollStep
	default:
		req.log.Warn("%v", usage.UnknownDirection(req.Args))
		return clarify(phrases.T(phrases.UnknownDirection, req.Name()))
	}

	if err := req.App.Input.Scroll(ctx, amount); err != nil {
		req.log.Error("scroll: %v", err)
		return success(phrases.T(phrases.ActionFailed, req.Name()))
	}
	return success(phrases.T(phrases.Scrolling, req.Name()))
}

// handleWrite types the text as if the keyboard were in the Latin layout,
// then presses Enter.
func handleWrite(ctx context.Context, req *Request) domain.Result {
	if req.Args == "" {
		return clarify(phrases.T(phrases.NothingToWrite, req.Name()))
	}

	err := req.App.Input.Type(ctx, phrases.ToLatinLayout(req.Args))
	if err == nil {
		err = req.App.Input.Press(ctx, phrases.KeyEnter)
	}
	if err != nil {
		req.log.Error("type text: %v", err)
		return success(phrases.T(phrases.ActionFailed, req.Name()))
	}
	return success(phrases.T(phrases.Written, req.Name()))
}

func handleVolume(ctx context.Context, req *Request) domain.Result {
	level, err := ParseVolume(req.Args)
	if err != nil {
		req.log.Warn("volume %q: %v", req.Args, err)
		return domain.Result{Status: domain.StatusClarify}
	}

	err = req.Do(ctx, func(ctx context.Context) error {
		return req.App.Volume.SetVolume(ctx, level)
	})
	if err != nil {
		req.log.Error("set volume %.2f: %v", level, err)
		return success(phrases.T(phrases.VolumeFailed, req.Name()))
	}
	return success(phrases.T(phrases.SettingVolume, req.Name()))
}

// ParseVolume converts "0".."100" into a level between 0 and 1.
func ParseVolume(text string) (float64, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, usage.BadNumber(text)
	}
	if n < 0 || n > maxVolume {
		return 0, usage.OutOfRange("volume", n, 0, maxVolume)
	}
	return float64(n) / maxVolume, nil
}
