package model

import "time"

// Article is the fetched and cleaned content of a feed item's page.
// Immutable after creation; identity is URL.
type Article struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	RawText     string    `json:"raw_text"`
	CleanedText string    `json:"cleaned_text"`
	ExtractedAt time.Time `json:"extracted_at"`
}

// ArticleRelevance is the oracle's verdict on whether an article is worth
// mining for outreach candidates.
type ArticleRelevance struct {
	IsRelevant bool    `json:"is_relevant"`
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"`
}
