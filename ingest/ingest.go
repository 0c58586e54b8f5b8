// Package ingest runs the scheduled scrapers that pull events from an RSS
// feed and from the SerpAPI events engine, normalize them into the shape
// the add-event endpoint takes, and replay them through that endpoint.
// The jobs share no state with the request handlers; the HTTP contract is
// the only coupling.
package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"
)

// EventDraft is the normalized activity shape, mirroring the JSON body of
// POST /api/activities/events.
type EventDraft struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Organizer   string   `json:"organizer"`
	Tags        []string `json:"tags"`
	PhotoURLs   []string `json:"photoUrls"`
}

// Source produces normalized event drafts from some external feed.
type Source interface {
	Fetch(ctx context.Context) ([]EventDraft, error)
}

type Runner struct {
	HTTPClient   *http.Client
	BaseURL      string
	ServiceToken string
	Interval     time.Duration
	Sources      []Source
	Geocoder     *Geocoder
}

func NewRunnerFromEnv(baseURL string) *Runner {
	client := &http.Client{Timeout: 30 * time.Second}

	interval := 6 * time.Hour
	if hours, err := strconv.Atoi(os.Getenv("INGEST_INTERVAL_HOURS")); err == nil && hours > 0 {
		interval = time.Duration(hours) * time.Hour
	}

	var sources []Source
	if feedURL := os.Getenv("INGEST_RSS_FEED_URL"); feedURL != "" {
		sources = append(sources, NewRSSSource(feedURL))
	}
	if apiKey := os.Getenv("SERPAPI_KEY"); apiKey != "" {
		sources = append(sources, NewSerpAPISource(client, apiKey, os.Getenv("SERPAPI_QUERY")))
	}

	var geocoder *Geocoder
	if apiKey := os.Getenv("GEOCODING_API_KEY"); apiKey != "" {
		geocoder = NewGeocoder(client, apiKey)
	}

	return &Runner{
		HTTPClient:   client,
		BaseURL:      baseURL,
		ServiceToken: os.Getenv("INGEST_SERVICE_TOKEN"),
		Interval:     interval,
		Sources:      sources,
		Geocoder:     geocoder,
	}
}

// Start runs an ingestion pass immediately, then on every tick until the
// context is cancelled.
func (r *Runner) Start(ctx context.Context) {
	r.RunOnce(ctx)

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.RunOnce(ctx)
		}
	}
}

// RunOnce pulls every source and submits each draft. One bad draft or one
// unreachable source never aborts the rest of the pass.
func (r *Runner) RunOnce(ctx context.Context) {
	for _, source := range r.Sources {
		drafts, err := source.Fetch(ctx)
		if err != nil {
			log.Printf("ingest: source fetch failed: %v", err)
			continue
		}

		for _, draft := range drafts {
			if draft.Latitude == 0 && draft.Longitude == 0 && r.Geocoder != nil && draft.Location != "" {
				lat, lng, err := r.Geocoder.Geocode(ctx, draft.Location)
				if err != nil {
					log.Printf("ingest: geocoding %q failed: %v", draft.Location, err)
				} else {
					draft.Latitude = lat
					draft.Longitude = lng
				}
			}

			if err := r.SubmitEvent(ctx, draft); err != nil {
				log.Printf("ingest: submitting %q failed: %v", draft.Name, err)
			}
		}
	}
}

// SubmitEvent replays a draft through the add-event endpoint using the
// configured service account token.
func (r *Runner) SubmitEvent(ctx context.Context, draft EventDraft) error {
	body, err := json.Marshal(draft)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.BaseURL+"/api/activities/events", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.ServiceToken)

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("add-event endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
