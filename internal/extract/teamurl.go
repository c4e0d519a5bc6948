package extract

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/scout-cli/internal/fetch"
	"github.com/sells-group/scout-cli/internal/model"
	"github.com/sells-group/scout-cli/pkg/llm"
)

// teamPagePaths are probed in order under a company's website root.
var teamPagePaths = []string{
	"/team",
	"/about",
	"/about-us",
	"/company",
	"/leadership",
	"/people",
	"/our-team",
	"/careers",
	"/about/team",
}

const maxTeamPageCandidates = 5

// TeamURLFinder resolves a company to candidate team page URLs. The website
// itself comes from a cascade: a team page URL already attached to the
// company, then an oracle inference, then a heuristic built from the company
// name.
type TeamURLFinder struct {
	llm      llm.Client
	fetcher  *fetch.Fetcher
	throttle *fetch.Throttle
}

// NewTeamURLFinder creates a TeamURLFinder.
func NewTeamURLFinder(client llm.Client, fetcher *fetch.Fetcher, throttle *fetch.Throttle) *TeamURLFinder {
	return &TeamURLFinder{llm: client, fetcher: fetcher, throttle: throttle}
}

// Candidates returns up to maxTeamPageCandidates team page URLs for the
// company, first-seen order preserved. articleText is the source article the
// company was found in, used for website inference. An empty slice means no
// strategy produced a usable website.
func (f *TeamURLFinder) Candidates(ctx context.Context, company model.Company, articleText string) []string {
	if u := strings.TrimSpace(company.TeamPageURL); u != "" {
		return []string{u}
	}

	var website string
	for _, strategy := range f.websiteStrategies() {
		if website = strategy(ctx, company, articleText); website != "" {
			break
		}
	}
	if website == "" {
		zap.L().Debug("teamurl: no website resolved", zap.String("company", company.Name))
		return nil
	}
	website = strings.TrimRight(website, "/")

	seen := make(map[string]bool)
	var candidates []string
	add := func(u string) {
		if u == "" || seen[u] {
			return
		}
		seen[u] = true
		candidates = append(candidates, u)
	}

	for _, p := range teamPagePaths {
		add(website + p)
	}
	for _, u := range f.homepageTeamLinks(ctx, website) {
		add(u)
	}

	if len(candidates) > maxTeamPageCandidates {
		candidates = candidates[:maxTeamPageCandidates]
	}
	return candidates
}

// websiteStrategy attempts to resolve a company website; "" means the next
// strategy gets a turn.
type websiteStrategy func(ctx context.Context, company model.Company, articleText string) string

func (f *TeamURLFinder) websiteStrategies() []websiteStrategy {
	return []websiteStrategy{
		f.inferWebsite,
		func(_ context.Context, company model.Company, _ string) string {
			return heuristicWebsite(company.Name)
		},
	}
}

// inferWebsite asks the oracle for the company's website, accepting the
// answer only above a confidence floor. Failures fall through to the name
// heuristic.
func (f *TeamURLFinder) inferWebsite(ctx context.Context, company model.Company, articleText string) string {
	if err := f.throttle.Wait(ctx); err != nil {
		return ""
	}

	prompt := fmt.Sprintf(websitePrompt, company.Name, truncate(articleText, 3000), company.Name)

	var result model.CompanyWebsite
	if err := f.llm.GenerateStructured(ctx, prompt, &result); err != nil {
		zap.L().Debug("teamurl: website inference failed",
			zap.String("company", company.Name),
			zap.Error(err),
		)
		return ""
	}
	if result.Confidence <= 0.5 {
		return ""
	}
	return strings.TrimSpace(result.WebsiteURL)
}

// homepageTeamLinks fetches the website root and scans it for links that look
// like team or about pages.
func (f *TeamURLFinder) homepageTeamLinks(ctx context.Context, website string) []string {
	if err := f.throttle.Wait(ctx); err != nil {
		return nil
	}
	body, err := f.fetcher.Get(ctx, website)
	if err != nil {
		zap.L().Debug("teamurl: homepage fetch failed",
			zap.String("url", website),
			zap.Error(err),
		)
		return nil
	}
	links, err := fetch.TeamLinks(body, website)
	if err != nil {
		return nil
	}
	return links
}

// heuristicWebsite guesses https://{name}.com from the company name. Legal
// suffixes are stripped, spaces and separators removed; names that end up
// empty, non-alphanumeric, or longer than 20 characters are rejected.
func heuristicWebsite(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, suffix := range []string{" inc.", " inc", " llc", " ltd", " corporation", " corp"} {
		n = strings.TrimSuffix(n, suffix)
	}
	n = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(n)
	if n == "" || len(n) > 20 {
		return ""
	}
	for _, r := range n {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return "https://" + n + ".com"
}
