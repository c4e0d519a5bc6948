package scoring

import (
	"fmt"
	"strings"
	"time"

	"github.com/sells-group/scout-cli/internal/config"
	"github.com/sells-group/scout-cli/internal/model"
)

const responseBase = 0.5

// Scorer turns a vetted candidate into a scored person. Fit measures how
// well the person matches the configured preferences; response estimates
// how likely they are to answer a cold outreach.
type Scorer struct {
	weights config.ScoringWeights
	prefs   config.Preferences
}

// NewScorer creates a Scorer.
func NewScorer(weights config.ScoringWeights, prefs config.Preferences) *Scorer {
	return &Scorer{weights: weights, prefs: prefs}
}

// Score assembles the terminal record for a candidate that passed vetting.
func (s *Scorer) Score(candidate model.Candidate, vetting model.PersonVetting) model.ScoredPerson {
	fit, fitReasons := s.FitScore(vetting)
	response, responseReasons := s.ResponseScore(candidate, vetting)

	var profiles []string
	if u := strings.TrimSpace(candidate.Person.LinkedInURL); u != "" {
		profiles = append(profiles, u)
	}
	if u := strings.TrimSpace(candidate.TeamPageURL); u != "" {
		profiles = append(profiles, u)
	}

	companyURL := candidate.Company.TeamPageURL
	if companyURL == "" {
		companyURL = candidate.TeamPageURL
	}

	return model.ScoredPerson{
		FullName:           candidate.Person.FullName,
		Title:              candidate.Person.Title,
		LinkedInURL:        candidate.Person.LinkedInURL,
		Email:              candidate.Person.Email,
		CompanyName:        candidate.Company.Name,
		CompanyURL:         companyURL,
		School:             vetting.School,
		RoleCategory:       vetting.RoleCategory,
		SeniorityLevel:     vetting.SeniorityLevel,
		Location:           vetting.Location,
		IndustryExperience: vetting.IndustryExperience,
		FitScore:           fit,
		ResponseScore:      response,
		TotalScore:         fit + response,
		FitReasons:         fitReasonsText(fitReasons, vetting.Reasoning),
		ResponseReasons:    responseReasonsText(responseReasons),
		SourceArticleURL:   candidate.Company.SourceArticleURL,
		SourceProfileURLs:  profiles,
		ExtractedAt:        time.Now().UTC(),
	}
}

// FitScore sums the weights of every preference the vetted profile matches.
// Industry experience is counted per matching tag.
func (s *Scorer) FitScore(vetting model.PersonVetting) (float64, []string) {
	var score float64
	var reasons []string

	if matchesAny(vetting.School, s.prefs.Schools) {
		score += s.weights.School
		reasons = append(reasons, fmt.Sprintf("School match: %s", vetting.School))
	}
	if matchesAny(vetting.RoleCategory, s.prefs.Roles) {
		score += s.weights.Role
		reasons = append(reasons, fmt.Sprintf("Role match: %s", vetting.RoleCategory))
	}
	for _, industry := range vetting.IndustryExperience {
		if matchesEither(industry, s.prefs.Industries) {
			score += s.weights.Industry
			reasons = append(reasons, fmt.Sprintf("Industry match: %s", industry))
		}
	}
	if matchesAny(vetting.SeniorityLevel, s.prefs.SeniorityLevels) {
		score += s.weights.Seniority
		reasons = append(reasons, fmt.Sprintf("Seniority match: %s", vetting.SeniorityLevel))
	}
	if matchesEither(vetting.Location, s.prefs.Locations) {
		score += s.weights.Location
		reasons = append(reasons, fmt.Sprintf("Location match: %s", vetting.Location))
	}

	return score, reasons
}

// ResponseScore estimates outreach response likelihood from the vetted
// seniority and role strings plus how the company was discovered. The
// seniority adjustment applies the first matching tier only; role
// adjustments stack independently.
func (s *Scorer) ResponseScore(candidate model.Candidate, vetting model.PersonVetting) (float64, []string) {
	score := responseBase
	var reasons []string

	seniority := strings.ToLower(vetting.SeniorityLevel)

	switch {
	case containsAny(seniority, "ceo", "cto", "cfo", "c-level"):
		score -= 0.2
		reasons = append(reasons, "C-level executives are harder to reach")
	case containsAny(seniority, "vp", "director"):
		score -= 0.1
		reasons = append(reasons, "Senior executives are busy")
	case containsAny(seniority, "senior", "lead", "staff"):
		score += 0.1
		reasons = append(reasons, "Senior ICs often respond well")
	}

	if candidate.Company.SourceArticleURL != "" {
		score += 0.2
		reasons = append(reasons, "Recently in the news, likely open to networking")
	}

	role := strings.ToLower(vetting.RoleCategory)

	if containsAny(role, "recruiting", "hr", "people") {
		score += 0.2
		reasons = append(reasons, "People/recruiting roles respond to outreach")
	}
	if containsAny(role, "business development", "bd", "sales") {
		score += 0.15
		reasons = append(reasons, "Business development roles are outreach-friendly")
	}

	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score, reasons
}

func fitReasonsText(reasons []string, vettingReasoning string) string {
	if len(reasons) > 0 {
		return strings.Join(reasons, "; ")
	}
	if r := strings.TrimSpace(vettingReasoning); r != "" {
		return r
	}
	return "No specific matches found"
}

func responseReasonsText(reasons []string) string {
	if len(reasons) > 0 {
		return strings.Join(reasons, "; ")
	}
	return "Standard response likelihood"
}

// matchesAny reports whether the vetted value contains any preference,
// case-insensitive. Empty values never match.
func matchesAny(value string, prefs []string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return false
	}
	for _, p := range prefs {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" && strings.Contains(v, p) {
			return true
		}
	}
	return false
}

// matchesEither is matchesAny in both directions, for fields where either
// side may be the more specific phrasing (industries, locations).
func matchesEither(value string, prefs []string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return false
	}
	for _, p := range prefs {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if strings.Contains(v, p) || strings.Contains(p, v) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
