package dispatchers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chronois/avrora/internal/calc"
	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/phrases"
	"github.com/chronois/avrora/internal/usage"
)

const bytesPerGB = 1024 * 1024 * 1024

func handleCPU(ctx context.Context, req *Request) domain.Result {
	req.Say(ctx, phrases.T(phrases.MeasuringCPU, req.Name()))

	var pct float64
	err := req.Do(ctx, func(ctx context.Context) error {
		var err error
		pct, err = req.App.Stats.CPUPercent(ctx)
		return err
	})
	if err != nil {
		req.log.Error("cpu percent: %v", err)
		return success(phrases.T(phrases.StatsFailed, req.Name()))
	}
	return success(phrases.T(phrases.CPUResult, formatPercent(pct), req.Name()))
}

func handleRAM(ctx context.Context, req *Request) domain.Result {
	var mem domain.MemoryStats
	err := req.Do(ctx, func(ctx context.Context) error {
		var err error
		mem, err = req.App.Stats.Memory(ctx)
		return err
	})
	if err != nil {
		req.log.Error("memory: %v", err)
		return success(phrases.T(phrases.StatsFailed, req.Name()))
	}

	return success(phrases.T(phrases.RAMResult,
		formatPercent(mem.UsedPercent),
		float64(mem.Total)/bytesPerGB,
		float64(mem.Available)/bytesPerGB,
	))
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func handleTime(_ context.Context, req *Request) domain.Result {
	return success(phrases.T(phrases.CurrentTime, req.Name(), req.Now.Format("15:04:05")))
}

func handleDate(_ context.Context, req *Request) domain.Result {
	now := req.Now
	weekday := (int(now.Weekday()) + 6) % 7 // Monday first
	return success(phrases.T(phrases.CurrentDate, req.Name(), phrases.DaysOfWeek[weekday], now.Day(), int(now.Month()), now.Year()))
}

// handleNews reads at most num_headlines headlines. The chat copy carries
// the source link, the spoken copy does not.
func handleNews(ctx context.Context, req *Request) domain.Result {
	req.Say(ctx, phrases.T(phrases.SearchingNews, req.Name()))

	var headlines []string
	err := req.Do(ctx, func(ctx context.Context) error {
		var err error
		headlines, err = req.App.News.Headlines(ctx, phrases.NewsURL, phrases.NewsHeaderClass)
		return err
	})
	if err != nil {
		req.log.Error("fetch news: %v", err)
		return success(phrases.T(phrases.NewsFailed, req.Name()))
	}
	if len(headlines) == 0 {
		return success(phrases.T(phrases.NewsEmpty, req.Name()))
	}

	count := min(len(headlines), req.Settings.Headlines)

	var b strings.Builder
	b.WriteString(phrases.T(phrases.LatestNews, count))
	for i := 0; i < count; i++ {
		fmt.Fprintf(&b, "%d. %s. \n", i+1, headlines[i])
	}
	body := b.String()

	return domain.Result{
		Status:  domain.StatusSuccess,
		Message: body + phrases.T(phrases.NewsSourceChat, phrases.NewsURL),
		Speech:  body + phrases.T(phrases.NewsSourceSpoken),
	}
}

// handleWeather uses the configured city and falls back to geolocation.
func handleWeather(ctx context.Context, req *Request) domain.Result {
	city := strings.TrimSpace(req.Settings.City)
	if city == "" {
		loc, err := locate(ctx, req)
		if err != nil || loc.City == "" {
			req.log.Warn("weather without city: %v", err)
			return success(phrases.T(phrases.WeatherNoCity))
		}
		city = loc.City
	}

	var w domain.Weather
	err := req.Do(ctx, func(ctx context.Context) error {
		var err error
		w, err = req.App.Weather.Weather(ctx, city)
		return err
	})
	if err != nil {
		req.log.Error("weather for %q: %v", city, err)
		return success(phrases.T(phrases.WeatherFailed))
	}
	if w.City == "" {
		w.City = city
	}
	return success(phrases.T(phrases.WeatherCurrent, w.City, w.Temperature, w.FeelsLike, w.Description))
}

func handleLocation(ctx context.Context, req *Request) domain.Result {
	loc, err := locate(ctx, req)
	if err != nil || loc.City == "" {
		if err != nil {
			req.log.Error("locate: %v", err)
		}
		return success(phrases.T(phrases.LocationFailed))
	}
	return success(phrases.T(phrases.LocationResult, loc.City, loc.Country))
}

func locate(ctx context.Context, req *Request) (domain.Location, error) {
	var loc domain.Location
	err := req.Do(ctx, func(ctx context.Context) error {
		var err error
		loc, err = req.App.Locator.Locate(ctx)
		return err
	})
	return loc, err
}

// handleCalculate rejects anything outside the arithmetic alphabet before
// evaluating it.
func handleCalculate(_ context.Context, req *Request) domain.Result {
	result, err := calc.Calculate(req.Args)
	switch {
	case err == nil:
		return success(phrases.T(phrases.CalcResult, result))
	case usage.KindOf(err) == usage.ErrBadExpression:
		req.log.Warn("rejected expression %q", req.Args)
		return clarify(phrases.T(phrases.CalcInvalid, req.Name()))
	case errors.Is(err, calc.ErrEmpty):
		return domain.Result{Status: domain.StatusClarify}
	default:
		req.log.Error("calculate %q: %v", req.Args, err)
		return success(phrases.T(phrases.CalcFailed, err))
	}
}
