package extract

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/scout-cli/internal/model"
)

// Engine runs the full person discovery cascade for a company: people named
// directly in the source article, then people scraped from the company's
// candidate team pages.
type Engine struct {
	people    *PeopleExtractor
	teamURLs  *TeamURLFinder
	maxPeople int
}

// NewEngine creates an Engine capped at maxPeople candidates per company.
func NewEngine(people *PeopleExtractor, teamURLs *TeamURLFinder, maxPeople int) *Engine {
	return &Engine{people: people, teamURLs: teamURLs, maxPeople: maxPeople}
}

// People returns deduplicated candidates for the company, article-sourced
// people first. Individual page failures are absorbed; the cascade keeps
// going with whatever it has.
func (e *Engine) People(ctx context.Context, article model.Article, company model.Company) []model.Candidate {
	var candidates []model.Candidate

	for _, p := range e.people.FromArticle(ctx, article, company.Name) {
		candidates = append(candidates, model.Candidate{
			Person:  p,
			Company: company,
			InNews:  true,
		})
	}

	for _, pageURL := range e.teamURLs.Candidates(ctx, company, article.CleanedText) {
		for _, p := range e.people.FromTeamPage(ctx, pageURL, company.Name) {
			candidates = append(candidates, model.Candidate{
				Person:      p,
				Company:     company,
				TeamPageURL: pageURL,
			})
		}
	}

	deduped := DedupeCandidates(candidates)
	if e.maxPeople > 0 && len(deduped) > e.maxPeople {
		deduped = deduped[:e.maxPeople]
	}

	zap.L().Info("extract: candidates gathered",
		zap.String("company", company.Name),
		zap.Int("raw", len(candidates)),
		zap.Int("kept", len(deduped)),
	)
	return deduped
}

// DedupeCandidates removes duplicate people, first occurrence winning and
// order preserved. Identity is the LinkedIn URL when present, the full name
// otherwise, both lowercased and trimmed.
func DedupeCandidates(candidates []model.Candidate) []model.Candidate {
	seen := make(map[string]bool, len(candidates))
	out := make([]model.Candidate, 0, len(candidates))
	for _, c := range candidates {
		key := strings.ToLower(strings.TrimSpace(c.Person.LinkedInURL))
		if key == "" {
			key = strings.ToLower(strings.TrimSpace(c.Person.FullName))
		}
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}
