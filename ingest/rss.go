package ingest

import (
	"context"

	"github.com/mmcdole/gofeed"
)

// RSSSource scrapes a community events RSS feed.
type RSSSource struct {
	Parser  *gofeed.Parser
	FeedURL string
}

func NewRSSSource(feedURL string) *RSSSource {
	return &RSSSource{
		Parser:  gofeed.NewParser(),
		FeedURL: feedURL,
	}
}

func (s *RSSSource) Fetch(ctx context.Context) ([]EventDraft, error) {
	feed, err := s.Parser.ParseURLWithContext(s.FeedURL, ctx)
	if err != nil {
		return nil, err
	}

	var drafts []EventDraft
	for _, item := range feed.Items {
		if item.Title == "" {
			continue
		}

		draft := EventDraft{
			Name:        item.Title,
			Description: item.Description,
			Organizer:   feed.Title,
			Tags:        item.Categories,
		}

		if item.PublishedParsed != nil {
			draft.Date = item.PublishedParsed.Format("2006-01-02")
			draft.Time = item.PublishedParsed.Format("15:04")
		}

		if item.Link != "" {
			draft.Description += "\n\nMore info: " + item.Link
		}

		if item.Image != nil && item.Image.URL != "" {
			draft.PhotoURLs = append(draft.PhotoURLs, item.Image.URL)
		}

		drafts = append(drafts, draft)
	}

	return drafts, nil
}
