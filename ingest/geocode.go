package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Geocoder resolves a street address to coordinates through the Google
// Geocoding API.
type Geocoder struct {
	HTTPClient *http.Client
	APIKey     string
	// BaseURL is overridable so tests can point at a local server.
	BaseURL string
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func NewGeocoder(client *http.Client, apiKey string) *Geocoder {
	return &Geocoder{
		HTTPClient: client,
		APIKey:     apiKey,
		BaseURL:    "https://maps.googleapis.com/maps/api/geocode/json",
	}
}

func (g *Geocoder) Geocode(ctx context.Context, address string) (float64, float64, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", g.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, 0, err
	}

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocoding API returned status %d", resp.StatusCode)
	}

	var parsed geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, 0, err
	}

	if parsed.Status != "OK" || len(parsed.Results) == 0 {
		return 0, 0, fmt.Errorf("no geocoding result for %q (status %s)", address, parsed.Status)
	}

	location := parsed.Results[0].Geometry.Location
	return location.Lat, location.Lng, nil
}
