package model

import "time"

// CompanyMention is the oracle's raw description of a company found in an
// article.
type CompanyMention struct {
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	TeamPageURL      string `json:"team_page_url,omitempty"`
	MentionedContext string `json:"mentioned_context,omitempty"`
}

// CompanyExtraction is the container the oracle fills when extracting
// companies from an article.
type CompanyExtraction struct {
	Companies []CompanyMention `json:"companies"`
}

// Company is a company mention tied to its source article. There is no
// cross-run or cross-article company identity: the same real company found in
// two articles is two Company values.
type Company struct {
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	TeamPageURL      string    `json:"team_page_url,omitempty"`
	SourceArticleURL string    `json:"source_article_url"`
	ExtractedAt      time.Time `json:"extracted_at"`
}

// CompanyWebsite is the oracle's guess at a company's website, used by the
// team-URL cascade. The guess is only trusted above 0.5 confidence.
type CompanyWebsite struct {
	WebsiteURL string  `json:"website_url"`
	Confidence float64 `json:"confidence"`
}
