package dispatchers

import (
	"context"
	"strconv"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/phrases"
	"github.com/chronois/avrora/internal/usage"
)

func handleShutdownPC(ctx context.Context, req *Request) domain.Result {
	return power(ctx, req, phrases.ShuttingDown, phrases.PowerShutdownWord, req.App.Power.Shutdown)
}

func handleRestartPC(ctx context.Context, req *Request) domain.Result {
	return power(ctx, req, phrases.RestartingPC, phrases.PowerRestartWord, req.App.Power.Restart)
}

// power announces the action before calling the OS, since the machine may
// be gone before the reply is spoken. Without the pcpower permission the
// OS is never called.
func power(ctx context.Context, req *Request, reply, word phrases.Key, do func(context.Context) error) domain.Result {
	if !req.Settings.PCPower {
		req.log.Warn("%s denied: pcpower is off", req.Trigger)
		return success(phrases.T(phrases.PowerDenied, phrases.T(word), req.Name()))
	}

	msg := phrases.T(reply, req.Name())
	req.Say(ctx, msg)

	if err := do(ctx); err != nil {
		req.log.Error("%s: %v", req.Trigger, err)
		return success(phrases.T(phrases.ActionFailed, req.Name()))
	}
	return domain.Result{Status: domain.StatusSuccess, Message: msg, Voiced: true}
}

func handleNameMe(ctx context.Context, req *Request) domain.Result {
	name := req.Args
	if name == "" {
		return domain.Result{Status: domain.StatusClarify}
	}
	if err := saveSetting(ctx, req, domain.KeyName, name); err != nil {
		return success(phrases.T(phrases.SettingsFailed, req.Name()))
	}
	return success(phrases.T(phrases.NewName, name))
}

func handleCity(ctx context.Context, req *Request) domain.Result {
	city := req.Args
	if city == "" {
		return domain.Result{Status: domain.StatusClarify}
	}
	if err := saveSetting(ctx, req, domain.KeyCity, city); err != nil {
		return success(phrases.T(phrases.SettingsFailed, req.Name()))
	}
	return success(phrases.T(phrases.Remembered, req.Name()))
}

func silentHandler(on bool) HandlerFunc {
	return func(ctx context.Context, req *Request) domain.Result {
		if err := saveSetting(ctx, req, domain.KeySilentMode, strconv.FormatBool(on)); err != nil {
			return success(phrases.T(phrases.SettingsFailed, req.Name()))
		}
		return success(phrases.T(phrases.SettingsChanged, req.Name()))
	}
}

func handleHeadlines(ctx context.Context, req *Request) domain.Result {
	n, err := strconv.Atoi(req.Args)
	if err != nil {
		req.log.Warn("headlines: %v", usage.BadNumber(req.Args))
		return domain.Result{Status: domain.StatusClarify}
	}
	if n < domain.MinHeadlines || n > domain.MaxHeadlines {
		req.log.Warn("headlines: %v", usage.OutOfRange("headlines", n, domain.MinHeadlines, domain.MaxHeadlines))
		return clarify(phrases.T(phrases.HeadlinesOutOfRange, req.Name()))
	}

	if err := saveSetting(ctx, req, domain.KeyHeadlines, strconv.Itoa(n)); err != nil {
		return success(phrases.T(phrases.SettingsFailed, req.Name()))
	}
	return success(phrases.T(phrases.SettingsChanged, req.Name()))
}

func handleTheme(ctx context.Context, req *Request) domain.Result {
	theme := domain.ThemeLight
	if req.Settings.Theme == domain.ThemeLight {
		theme = domain.ThemeDark
	}
	if err := saveSetting(ctx, req, domain.KeyTheme, theme); err != nil {
		return success(phrases.T(phrases.SettingsFailed, req.Name()))
	}
	return success(phrases.T(phrases.SettingsChanged, req.Name()))
}

func handleAccent(ctx context.Context, req *Request) domain.Result {
	color := domain.NextAccentColor(req.Settings.AccentColor)
	if err := saveSetting(ctx, req, domain.KeyAccentColor, color); err != nil {
		return success(phrases.T(phrases.SettingsFailed, req.Name()))
	}
	return success(phrases.T(phrases.SettingsChanged, req.Name()))
}

// saveSetting persists one value and lets the window reflect it.
func saveSetting(ctx context.Context, req *Request, key, value string) error {
	if err := req.App.Config.Set(key, value); err != nil {
		req.log.Error("set %s: %v", key, err)
		return err
	}
	if req.App.Window != nil {
		if err := req.App.Window.UpdateSetting(ctx, key, value); err != nil {
			req.log.Warn("window update %s: %v", key, err)
		}
	}
	return nil
}
