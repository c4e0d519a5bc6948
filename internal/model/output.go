package model

import "strings"

// OutputColumns is the fixed column order for CSV and XLSX sinks.
var OutputColumns = []string{
	"name",
	"title",
	"company",
	"fit_score",
	"response_score",
	"total_score",
	"fit_reasons",
	"response_reasons",
	"source_article_url",
	"source_profile_urls",
	"linkedin_url",
	"email",
	"school",
	"role",
	"seniority",
	"location",
	"industries",
	"discovered_date",
}

// OutputRow is one flattened row of the output sheet.
type OutputRow struct {
	Name              string
	Title             string
	Company           string
	FitScore          float64
	ResponseScore     float64
	TotalScore        float64
	FitReasons        string
	ResponseReasons   string
	SourceArticleURL  string
	SourceProfileURLs string
	LinkedInURL       string
	Email             string
	School            string
	Role              string
	Seniority         string
	Location          string
	Industries        string
	DiscoveredDate    string
}

// NewOutputRow flattens a ScoredPerson into the output schema.
func NewOutputRow(p ScoredPerson) OutputRow {
	return OutputRow{
		Name:              p.FullName,
		Title:             p.Title,
		Company:           p.CompanyName,
		FitScore:          p.FitScore,
		ResponseScore:     p.ResponseScore,
		TotalScore:        p.TotalScore,
		FitReasons:        p.FitReasons,
		ResponseReasons:   p.ResponseReasons,
		SourceArticleURL:  p.SourceArticleURL,
		SourceProfileURLs: strings.Join(p.SourceProfileURLs, ", "),
		LinkedInURL:       p.LinkedInURL,
		Email:             p.Email,
		School:            p.School,
		Role:              p.RoleCategory,
		Seniority:         p.SeniorityLevel,
		Location:          p.Location,
		Industries:        strings.Join(p.IndustryExperience, ", "),
		DiscoveredDate:    p.ExtractedAt.Format("2006-01-02"),
	}
}
