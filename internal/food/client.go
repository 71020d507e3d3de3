// ABOUTME: OpenFoodFacts search client implementing the Source interface.
// ABOUTME: Prefers kcal/100g, converts kJ when that is all a product reports.
package food

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
)

const defaultBaseURL = "https://world.openfoodfacts.org/cgi/search.pl"

// kJ per kcal; used when a product only reports energy_100g in joules.
const kjPerKcal = 4.184

// ErrNotFound is returned when the search yields no usable product.
var ErrNotFound = errors.New("food: no product with usable energy data")

// Client searches OpenFoodFacts by free-text name. An optional badger
// cache keeps recent answers warm so repeated logs of the same food
// skip the network.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *Cache
	log        *log.Logger
}

// NewClient creates an OpenFoodFacts client. cache may be nil.
func NewClient(logger *log.Logger, cache *Cache) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		cache:      cache,
		log:        logger,
	}
}

type searchResponse struct {
	Products []struct {
		ProductName string `json:"product_name"`
		Nutriments  struct {
			EnergyKcal100g float64 `json:"energy-kcal_100g"`
			Energy100g     float64 `json:"energy_100g"`
		} `json:"nutriments"`
	} `json:"products"`
}

// Lookup returns the first search result carrying usable energy data.
func (c *Client) Lookup(ctx context.Context, name string) (Product, error) {
	if p, ok := c.cache.Get(name); ok {
		c.log.Debug("food cache hit", "name", name)
		return p, nil
	}

	q := url.Values{}
	q.Set("action", "process")
	q.Set("search_terms", name)
	q.Set("json", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Product{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("food lookup failed", "name", name, "err", err)
		return Product{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("food lookup failed", "name", name, "status", resp.StatusCode)
		return Product{}, fmt.Errorf("food: unexpected status %s", resp.Status)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return Product{}, fmt.Errorf("food: decode response: %w", err)
	}
	if len(sr.Products) == 0 {
		return Product{}, ErrNotFound
	}

	first := sr.Products[0]
	kcal := int(first.Nutriments.EnergyKcal100g)
	if kcal <= 0 && first.Nutriments.Energy100g > 0 {
		kcal = int(math.Round(first.Nutriments.Energy100g / kjPerKcal))
	}
	if kcal <= 0 {
		return Product{}, ErrNotFound
	}

	display := first.ProductName
	if display == "" {
		display = Capitalize(name)
	}

	p := Product{Name: display, KcalPer100g: kcal}
	c.cache.Set(name, p)
	return p, nil
}
