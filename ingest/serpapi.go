package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// SerpAPISource pulls local events from the SerpAPI google_events engine
// and reshapes the response into event drafts.
type SerpAPISource struct {
	HTTPClient *http.Client
	APIKey     string
	Query      string
	// BaseURL is overridable so tests can point at a local server.
	BaseURL string
}

type serpAPIResponse struct {
	EventsResults []struct {
		Title string `json:"title"`
		Date  struct {
			StartDate string `json:"start_date"`
			When      string `json:"when"`
		} `json:"date"`
		Address     []string `json:"address"`
		Description string   `json:"description"`
		Link        string   `json:"link"`
		Thumbnail   string   `json:"thumbnail"`
		Venue       struct {
			Name string `json:"name"`
		} `json:"venue"`
		EventLocationMap struct {
			Link string `json:"link"`
		} `json:"event_location_map"`
	} `json:"events_results"`
}

func NewSerpAPISource(client *http.Client, apiKey, query string) *SerpAPISource {
	if query == "" {
		query = "events in Arcata CA"
	}
	return &SerpAPISource{
		HTTPClient: client,
		APIKey:     apiKey,
		Query:      query,
		BaseURL:    "https://serpapi.com/search.json",
	}
}

func (s *SerpAPISource) Fetch(ctx context.Context) ([]EventDraft, error) {
	params := url.Values{}
	params.Set("engine", "google_events")
	params.Set("q", s.Query)
	params.Set("api_key", s.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi returned status %d", resp.StatusCode)
	}

	var parsed serpAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	var drafts []EventDraft
	for _, result := range parsed.EventsResults {
		if result.Title == "" {
			continue
		}

		draft := EventDraft{
			Name:        result.Title,
			Description: result.Description,
			Location:    strings.Join(result.Address, ", "),
			Date:        result.Date.StartDate,
			Time:        result.Date.When,
			Organizer:   result.Venue.Name,
		}

		if result.Link != "" {
			draft.Description += "\n\nMore info: " + result.Link
		}
		if result.Thumbnail != "" {
			draft.PhotoURLs = append(draft.PhotoURLs, result.Thumbnail)
		}

		drafts = append(drafts, draft)
	}

	return drafts, nil
}
