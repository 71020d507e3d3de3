// ABOUTME: OpenWeather current-temperature client behind the Source interface.
// ABOUTME: Failures are returned to the caller, which falls back to a neutral 20°C.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
)

// Source answers "what is the current temperature in this city".
// Implementations may fail freely; callers must treat any error as
// "use the default temperature" rather than failing their command.
type Source interface {
	CurrentTempC(ctx context.Context, city string) (float64, error)
}

// ErrNoAPIKey is returned when the client was built without credentials.
var ErrNoAPIKey = errors.New("weather: no API key configured")

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Client queries the OpenWeather current-weather endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *log.Logger
}

// NewClient creates an OpenWeather client with a bounded request timeout.
func NewClient(apiKey string, logger *log.Logger) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger,
	}
}

type weatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// CurrentTempC returns the current temperature for the city in Celsius.
func (c *Client) CurrentTempC(ctx context.Context, city string) (float64, error) {
	if c.apiKey == "" {
		return 0, ErrNoAPIKey
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("weather lookup failed", "city", city, "status", resp.StatusCode)
		return 0, fmt.Errorf("weather: unexpected status %s", resp.Status)
	}

	var wr weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&wr); err != nil {
		return 0, fmt.Errorf("weather: decode response: %w", err)
	}

	c.log.Debug("weather lookup", "city", city, "temp_c", wr.Main.Temp)
	return wr.Main.Temp, nil
}
