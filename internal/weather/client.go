// Package weather fetches current conditions from Open-Meteo and a place
// name from the BigDataCloud reverse geocoder. Both services are external;
// failures degrade to an unavailable report instead of an error.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"dayboard/internal/cache"
	"dayboard/internal/log"
)

// Report is the dashboard weather payload. Available is false when either
// upstream call failed; the remaining fields are then zero.
type Report struct {
	Available   bool    `json:"available"`
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Place       string  `json:"place"`
}

// Client queries the two upstream services and caches reports per rounded
// coordinate pair.
type Client struct {
	httpClient     *http.Client
	weatherBaseURL string
	geocodeBaseURL string
	cache          *cache.LRU[Report]
	logger         *log.Logger
}

func NewClient(weatherBaseURL, geocodeBaseURL string, logger *log.Logger) *Client {
	return &Client{
		httpClient:     &http.Client{Timeout: 10 * time.Second},
		weatherBaseURL: weatherBaseURL,
		geocodeBaseURL: geocodeBaseURL,
		cache:          cache.NewLRU[Report](64, 10*time.Minute),
		logger:         logger.WithComponent(log.ComponentWeather),
	}
}

// Cache exposes the report cache for cleanup registration.
func (c *Client) Cache() *cache.LRU[Report] { return c.cache }

// Current returns the weather report for the given coordinates. Upstream
// failures are logged and reported as unavailable; callers never see an
// error status for them.
func (c *Client) Current(ctx context.Context, lat, lon float64) Report {
	key := fmt.Sprintf("%.2f,%.2f", lat, lon)
	if cached, ok := c.cache.Get(key); ok {
		return cached
	}

	report, err := c.fetch(ctx, lat, lon)
	if err != nil {
		c.logger.WarnContext(ctx, "Weather lookup failed",
			"lat", lat,
			"lon", lon,
			log.FieldError, err.Error())
		return Report{}
	}

	c.cache.Set(key, report)
	return report
}

type meteoResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    int     `json:"relative_humidity_2m"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
}

type geocodeResponse struct {
	City     string `json:"city"`
	Locality string `json:"locality"`
}

func (c *Client) fetch(ctx context.Context, lat, lon float64) (Report, error) {
	var meteo meteoResponse
	url := fmt.Sprintf(
		"%s/v1/forecast?latitude=%.4f&longitude=%.4f&current=temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code",
		c.weatherBaseURL, lat, lon)
	if err := c.getJSON(ctx, url, &meteo); err != nil {
		return Report{}, fmt.Errorf("open-meteo: %w", err)
	}

	report := Report{
		Available:   true,
		Temperature: meteo.Current.Temperature,
		Condition:   Condition(meteo.Current.WeatherCode),
		Humidity:    meteo.Current.Humidity,
		WindSpeed:   meteo.Current.WindSpeed,
	}

	var geo geocodeResponse
	url = fmt.Sprintf("%s/data/reverse-geocode-client?latitude=%.4f&longitude=%.4f", c.geocodeBaseURL, lat, lon)
	if err := c.getJSON(ctx, url, &geo); err != nil {
		return Report{}, fmt.Errorf("reverse geocode: %w", err)
	}
	report.Place = geo.City
	if report.Place == "" {
		report.Place = geo.Locality
	}

	return report, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Condition buckets a WMO weather code into a coarse label.
func Condition(code int) string {
	switch {
	case code >= 61 && code <= 67:
		return "Rainy"
	case code >= 51 && code <= 57:
		return "Drizzle"
	case code >= 71 && code <= 77:
		return "Snowy"
	case code >= 80 && code <= 82:
		return "Showers"
	case code >= 1 && code <= 3:
		return "Cloudy"
	default:
		return "Clear"
	}
}
