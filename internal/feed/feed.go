// Package feed ingests RSS/Atom feeds into FeedItems.
package feed

import (
	"context"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"

	"github.com/sells-group/scout-cli/internal/config"
	"github.com/sells-group/scout-cli/internal/model"
)

// Ingester fetches and parses configured feeds.
type Ingester struct {
	parser   *gofeed.Parser
	maxItems int
}

// NewIngester creates an Ingester that keeps at most maxItems entries per feed.
func NewIngester(maxItems int, userAgent string) *Ingester {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	return &Ingester{parser: parser, maxItems: maxItems}
}

// FetchAll fetches every configured feed in order. A feed that fails to parse
// is logged and skipped; it never aborts the other feeds.
func (i *Ingester) FetchAll(ctx context.Context, feeds []config.FeedConfig) []model.FeedItem {
	var all []model.FeedItem
	for _, fc := range feeds {
		items := i.fetchFeed(ctx, fc)
		all = append(all, items...)
	}
	zap.L().Info("feed: ingestion complete",
		zap.Int("feeds", len(feeds)),
		zap.Int("items", len(all)),
	)
	return all
}

func (i *Ingester) fetchFeed(ctx context.Context, fc config.FeedConfig) []model.FeedItem {
	parsed, err := i.parser.ParseURLWithContext(fc.URL, ctx)
	if err != nil {
		zap.L().Warn("feed: fetch failed",
			zap.String("feed", fc.Name),
			zap.String("url", fc.URL),
			zap.Error(err),
		)
		return nil
	}

	entries := parsed.Items
	if i.maxItems > 0 && len(entries) > i.maxItems {
		entries = entries[:i.maxItems]
	}

	items := make([]model.FeedItem, 0, len(entries))
	for _, entry := range entries {
		guid := entry.GUID
		if guid == "" {
			guid = entry.Link
		}
		if guid == "" {
			guid = entry.Title
		}
		items = append(items, model.FeedItem{
			Title:       entry.Title,
			Link:        entry.Link,
			Published:   entry.PublishedParsed,
			Description: entry.Description,
			FeedName:    fc.Name,
			GUID:        guid,
		})
	}

	zap.L().Info("feed: fetched",
		zap.String("feed", fc.Name),
		zap.Int("items", len(items)),
	)
	return items
}
