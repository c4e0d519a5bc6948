package model

import "time"

// PersonExtraction is a raw, unvetted person pulled from an article or a team
// page by the oracle.
type PersonExtraction struct {
	FullName    string `json:"full_name"`
	Title       string `json:"title,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
	Email       string `json:"email,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

// PersonList is the container the oracle fills when extracting people.
type PersonList struct {
	People []PersonExtraction `json:"people"`
}

// PersonVetting is the oracle's inference of a person's attributes against the
// configured preferences. Best-effort; any field may be empty.
type PersonVetting struct {
	School             string   `json:"school,omitempty"`
	RoleCategory       string   `json:"role_category,omitempty"`
	SeniorityLevel     string   `json:"seniority_level,omitempty"`
	Location           string   `json:"location,omitempty"`
	IndustryExperience []string `json:"industry_experience,omitempty"`
	MatchesCriteria    bool     `json:"matches_criteria"`
	Reasoning          string   `json:"reasoning"`
}

// Candidate joins an extracted person to the company they were found
// through, before vetting. InNews marks people found in the article text
// itself rather than on a team page.
type Candidate struct {
	Person      PersonExtraction
	Company     Company
	InNews      bool
	TeamPageURL string
}

// ScoredPerson is the terminal record for a candidate that passed both gates.
// Never mutated after creation.
type ScoredPerson struct {
	FullName           string    `json:"full_name"`
	Title              string    `json:"title,omitempty"`
	LinkedInURL        string    `json:"linkedin_url,omitempty"`
	Email              string    `json:"email,omitempty"`
	CompanyName        string    `json:"company_name"`
	CompanyURL         string    `json:"company_url,omitempty"`
	School             string    `json:"school,omitempty"`
	RoleCategory       string    `json:"role_category,omitempty"`
	SeniorityLevel     string    `json:"seniority_level,omitempty"`
	Location           string    `json:"location,omitempty"`
	IndustryExperience []string  `json:"industry_experience,omitempty"`
	FitScore           float64   `json:"fit_score"`
	ResponseScore      float64   `json:"response_score"`
	TotalScore         float64   `json:"total_score"`
	FitReasons         string    `json:"fit_reasons"`
	ResponseReasons    string    `json:"response_reasons"`
	SourceArticleURL   string    `json:"source_article_url"`
	SourceProfileURLs  []string  `json:"source_profile_urls,omitempty"`
	ExtractedAt        time.Time `json:"extracted_at"`
}
