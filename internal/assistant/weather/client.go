// Package weather wraps the external weather and geocoding services. Every
// call degrades to a sentinel snapshot on failure; nothing here ever raises
// into the chat session.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/agrimitra-poc/server/internal/assistant/model"
	errx "github.com/agrimitra-poc/server/internal/core/error"
	logx "github.com/agrimitra-poc/server/pkg/logger"
)

type Config struct {
	APIKey      string `envconfig:"WEATHER_API_KEY" required:"true"`
	BaseURL     string `envconfig:"WEATHER_BASE_URL" default:"https://api.openweathermap.org"`
	DefaultCity string `envconfig:"WEATHER_DEFAULT_CITY" default:"Bengaluru"`
	Timeout     int    `envconfig:"WEATHER_TIMEOUT" default:"10"`
}

// Client talks to an OpenWeatherMap-shaped service.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second},
	}
}

// owmCurrent is the subset of the current-weather response the assistant
// consumes.
type owmCurrent struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		TempMax  float64 `json:"temp_max"`
		TempMin  float64 `json:"temp_min"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Rain map[string]float64 `json:"rain"`
}

// ByCity fetches the current weather for a city. On any failure the returned
// snapshot is the unavailable sentinel and the error describes what happened;
// callers are free to ignore it.
func (c *Client) ByCity(ctx context.Context, city string) (model.WeatherSnapshot, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("units", "metric")
	q.Set("appid", c.cfg.APIKey)

	var cur owmCurrent
	if err := c.getJSON(ctx, "/data/2.5/weather", q, &cur); err != nil {
		logx.Warn().Err(err).Str("city", city).Msg("weather fetch failed")
		return model.WeatherSnapshot{}, errx.New(err, http.StatusBadGateway, errx.WeatherErrorMessage)
	}
	if cur.Name == "" {
		err := fmt.Errorf("city %q not found", city)
		logx.Warn().Err(err).Msg("weather fetch failed")
		return model.WeatherSnapshot{}, errx.New(err, http.StatusNotFound, errx.WeatherErrorMessage)
	}

	snap := model.WeatherSnapshot{
		Temperature: cur.Main.Temp,
		Humidity:    cur.Main.Humidity,
		Rainfall:    cur.Rain["1h"], // absent rain block reads as 0
		City:        cur.Name,
	}
	logx.Debug().
		Str("city", snap.City).
		Float64("dew_point", DewPoint(snap.Temperature, snap.Humidity)).
		Float64("evapotranspiration", Evapotranspiration(cur.Main.Temp, cur.Main.TempMax, cur.Main.TempMin)).
		Str("soil_moisture", SoilMoistureBand(snap.Humidity)).
		Msg("weather snapshot fetched")
	return snap, nil
}

// ReverseGeocode resolves coordinates to a city name.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	q.Set("limit", "1")
	q.Set("appid", c.cfg.APIKey)

	var places []struct {
		Name string `json:"name"`
	}
	if err := c.getJSON(ctx, "/geo/1.0/reverse", q, &places); err != nil {
		return "", errx.New(err, http.StatusBadGateway, errx.GeocodeErrorMessage)
	}
	if len(places) == 0 || places[0].Name == "" {
		return "", errx.New(fmt.Errorf("no place at %f,%f", lat, lon), http.StatusNotFound, errx.GeocodeErrorMessage)
	}
	return places[0].Name, nil
}

// ByLocation resolves the locator's coordinates to a city and fetches its
// weather, falling back to the configured default city when geolocation or
// geocoding fails.
func (c *Client) ByLocation(ctx context.Context, loc Locator) (model.WeatherSnapshot, error) {
	city := c.cfg.DefaultCity
	if loc != nil {
		if lat, lon, err := loc.Locate(ctx); err == nil {
			if name, gerr := c.ReverseGeocode(ctx, lat, lon); gerr == nil {
				city = name
			} else {
				logx.Warn().Err(gerr).Msg("reverse geocoding failed, using default city")
			}
		} else {
			logx.Warn().Err(err).Msg("geolocation failed, using default city")
		}
	}
	return c.ByCity(ctx, city)
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
