package dispatchers

import (
	"context"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/phrases"
)

func handleGreeting(_ context.Context, req *Request) domain.Result {
	return success(phrases.T(phrases.Greet, req.Name()))
}

func handleWhoAreYou(_ context.Context, req *Request) domain.Result {
	return success(phrases.T(phrases.WhoAmI, req.Name()))
}

func handleThanks(_ context.Context, req *Request) domain.Result {
	return success(phrases.T(phrases.YouAreWelcome, req.Name()))
}

func handleGoodbye(_ context.Context, req *Request) domain.Result {
	return domain.Result{Status: domain.StatusExit, Message: phrases.T(phrases.Bye, req.Name())}
}

func handleRestartApp(_ context.Context, req *Request) domain.Result {
	return domain.Result{Status: domain.StatusRestart, Message: phrases.T(phrases.RestartingApp, req.Name())}
}

func handleHideSelf(ctx context.Context, req *Request) domain.Result {
	if err := req.App.Window.MinimizeSelf(ctx); err != nil {
		req.log.Error("minimize self: %v", err)
		return success(phrases.T(phrases.ActionFailed, req.Name()))
	}
	return success(phrases.T(phrases.HidingSelf, req.Name()))
}

// handleClearChat empties the chat log and the visible chat. The reply is
// the generic affirmative.
func handleClearChat(ctx context.Context, req *Request) domain.Result {
	if req.App.Chat != nil {
		if err := req.App.Chat.Clear(ctx); err != nil {
			req.log.Error("clear chat log: %v", err)
			return success(phrases.T(phrases.ActionFailed, req.Name()))
		}
	}
	if err := req.App.Window.ClearChat(ctx); err != nil {
		req.log.Error("clear chat window: %v", err)
	}
	return domain.Result{Status: domain.StatusStandard}
}

// hotkeyHandler presses each key combination in turn and replies with key.
func hotkeyHandler(key phrases.Key, combos ...[]string) HandlerFunc {
	return func(ctx context.Context, req *Request) domain.Result {
		for _, combo := range combos {
			if err := req.App.Input.Hotkey(ctx, combo...); err != nil {
				req.log.Error("hotkey %v: %v", combo, err)
				return success(phrases.T(phrases.ActionFailed, req.Name()))
			}
		}
		return success(phrases.T(key, req.Name()))
	}
}

// keyHandler presses a single key and replies with reply.
func keyHandler(reply phrases.Key, key string) HandlerFunc {
	return func(ctx context.Context, req *Request) domain.Result {
		if err := req.App.Input.Press(ctx, key); err != nil {
			req.log.Error("press %s: %v", key, err)
			return success(phrases.T(phrases.ActionFailed, req.Name()))
		}
		return success(phrases.T(reply, req.Name()))
	}
}
