package model

import "time"

// FeedItem is a single entry from an RSS/Atom feed. Link is the identity used
// for deduplication; GUID is the fallback when a feed omits links.
type FeedItem struct {
	Title       string     `json:"title"`
	Link        string     `json:"link"`
	Published   *time.Time `json:"published,omitempty"`
	Description string     `json:"description,omitempty"`
	FeedName    string     `json:"feed_name"`
	GUID        string     `json:"guid"`
}

// DedupKey returns the identifier used by the seen-URL store.
func (f FeedItem) DedupKey() string {
	if f.Link != "" {
		return f.Link
	}
	return f.GUID
}
