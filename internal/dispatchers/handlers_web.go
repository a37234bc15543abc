package dispatchers

import (
	"context"
	"net/url"
	"strings"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/phrases"
)

func handleSearch(ctx context.Context, req *Request) domain.Result {
	if req.Args == "" {
		return domain.Result{Status: domain.StatusClarify}
	}

	target := phrases.GoogleSearchURL + url.QueryEscape(req.Args)
	if err := req.App.Browser.OpenURL(ctx, target); err != nil {
		req.log.Error("open search %q: %v", req.Args, err)
		return success(phrases.T(phrases.ActionFailed, req.Name()))
	}
	return success(phrases.T(phrases.Searching, req.Name()))
}

// handleOpen opens a known site first and falls back to the program index.
func handleOpen(ctx context.Context, req *Request) domain.Result {
	target := strings.ToLower(req.Args)
	if target == "" {
		return domain.Result{Status: domain.StatusClarify}
	}

	if link, ok := siteFor(target, req.Settings); ok {
		if err := req.App.Browser.OpenURL(ctx, link); err != nil {
			req.log.Error("open %s: %v", link, err)
			return success(phrases.T(phrases.ActionFailed, req.Name()))
		}
		return success(phrases.T(phrases.Opening, req.Name()))
	}

	if containsAny(target, phrases.OpenTelegram) {
		if err := req.App.Launcher.Launch(ctx, req.Settings.TelegramPath); err != nil {
			req.log.Error("launch telegram %q: %v", req.Settings.TelegramPath, err)
			return success(phrases.T(phrases.ProgramFailed, "telegram"))
		}
		return success(phrases.T(phrases.Opening, req.Name()))
	}

	return openProgram(ctx, req, target)
}

// siteFor returns the link for targets that open in the browser.
func siteFor(target string, s domain.Settings) (string, bool) {
	switch {
	case containsAny(target, phrases.OpenYouTube):
		return phrases.YouTubeURL, true
	case containsAny(target, phrases.OpenTelegram):
		if s.TelegramOnline || s.TelegramPath == "" {
			return phrases.TelegramWebURL, true
		}
		return "", false
	case containsAny(target, phrases.OpenGemini):
		return phrases.GeminiURL, true
	case containsAny(target, phrases.OpenChatGPT):
		return phrases.ChatGPTURL, true
	case containsAny(target, phrases.OpenMusic):
		return s.MusicURL, true
	}
	return "", false
}

func openProgram(ctx context.Context, req *Request, target string) domain.Result {
	req.Say(ctx, phrases.T(phrases.SearchingProgram, req.Name()))

	var programs []domain.Program
	err := req.Do(ctx, func(ctx context.Context) error {
		var err error
		programs, err = req.App.Programs.Programs(ctx)
		return err
	})
	if err != nil {
		req.log.Error("scan programs: %v", err)
		return success(phrases.T(phrases.ProgramFailed, target))
	}

	program, ok := FindProgram(programs, target)
	if !ok {
		req.log.Warn("program not found: %q", target)
		return success(phrases.T(phrases.ProgramFailed, target))
	}

	if err := req.App.Launcher.Launch(ctx, program.Path); err != nil {
		req.log.Error("launch %s: %v", program.Path, err)
		req.App.Programs.Invalidate()
		return success(phrases.T(phrases.ProgramFailed, program.Name))
	}
	return success(phrases.T(phrases.OpeningProgram, program.Name))
}

// FindProgram picks the program whose name equals target, then one whose
// name starts with it, then one that contains it.
func FindProgram(programs []domain.Program, target string) (domain.Program, bool) {
	target = strings.ToLower(strings.TrimSpace(target))
	if target == "" {
		return domain.Program{}, false
	}

	matchers := []func(name string) bool{
		func(name string) bool { return name == target },
		func(name string) bool { return strings.HasPrefix(name, target) },
		func(name string) bool { return strings.Contains(name, target) },
	}
	for _, match := range matchers {
		for _, p := range programs {
			if match(strings.ToLower(p.Name)) {
				return p, true
			}
		}
	}
	return domain.Program{}, false
}

func handlePlayMusic(ctx context.Context, req *Request) domain.Result {
	if err := req.App.Browser.OpenURL(ctx, req.Settings.MusicURL); err != nil {
		req.log.Error("open music %s: %v", req.Settings.MusicURL, err)
		return success(phrases.T(phrases.ActionFailed, req.Name()))
	}
	return success(phrases.T(phrases.TurningOnMusic, req.Name()))
}

// handlePlaySong resolves the query to a playable link. A song that cannot
// be found is still a successful cycle.
func handlePlaySong(ctx context.Context, req *Request) domain.Result {
	query := req.Args
	if query == "" {
		return clarify(phrases.T(phrases.WhichSong))
	}

	var (
		link  string
		found bool
	)
	err := req.Do(ctx, func(ctx context.Context) error {
		var err error
		link, found, err = req.App.Songs.ResolveSong(ctx, query)
		return err
	})
	if err != nil {
		req.log.Error("resolve song %q: %v", query, err)
		return success(phrases.T(phrases.SongNotFound, query))
	}
	if !found {
		return success(phrases.T(phrases.SongNotFound, query))
	}

	if err := req.App.Browser.OpenURL(ctx, link); err != nil {
		req.log.Error("open song %s: %v", link, err)
		return success(phrases.T(phrases.ActionFailed, req.Name()))
	}
	return success(phrases.T(phrases.TurningOnSong, query, req.Name()))
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
