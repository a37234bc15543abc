package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/chronois/avrora/internal/domain"
)

// DefaultWeatherURL is the wttr.in endpoint. The city is appended.
const DefaultWeatherURL = "https://wttr.in/"

// Weather reads the current conditions from wttr.in.
type Weather struct {
	client  *Client
	baseURL string
}

// NewWeather returns a weather provider. An empty baseURL means wttr.in.
func NewWeather(client *Client, baseURL string) *Weather {
	if baseURL == "" {
		baseURL = DefaultWeatherURL
	}
	return &Weather{client: client, baseURL: baseURL}
}

type wttrResponse struct {
	CurrentCondition []struct {
		TempC       string `json:"temp_C"`
		FeelsLikeC  string `json:"FeelsLikeC"`
		WeatherDesc []struct {
			Value string `json:"value"`
		} `json:"weatherDesc"`
		LangUK []struct {
			Value string `json:"value"`
		} `json:"lang_uk"`
	} `json:"current_condition"`
}

// Weather implements domain.WeatherProvider.
func (w *Weather) Weather(ctx context.Context, city string) (domain.Weather, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return domain.Weather{}, errors.New("weather: empty city")
	}

	target := w.baseURL + url.PathEscape(city) + "?format=j1&lang=uk"
	body, err := w.client.get(ctx, target)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("weather: %w", err)
	}

	var resp wttrResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Weather{}, fmt.Errorf("weather: decode: %w", err)
	}
	if len(resp.CurrentCondition) == 0 {
		return domain.Weather{}, errors.New("weather: no current conditions")
	}

	cur := resp.CurrentCondition[0]
	temp, err := strconv.Atoi(cur.TempC)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("weather: temperature %q: %w", cur.TempC, err)
	}
	feels, err := strconv.Atoi(cur.FeelsLikeC)
	if err != nil {
		feels = temp
	}

	var desc string
	switch {
	case len(cur.LangUK) > 0:
		desc = cur.LangUK[0].Value
	case len(cur.WeatherDesc) > 0:
		desc = cur.WeatherDesc[0].Value
	}

	return domain.Weather{
		City:        city,
		Temperature: temp,
		FeelsLike:   feels,
		Description: strings.ToLower(strings.TrimSpace(desc)),
	}, nil
}

var _ domain.WeatherProvider = (*Weather)(nil)
