package extract

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sells-group/scout-cli/internal/fetch"
	"github.com/sells-group/scout-cli/internal/model"
	"github.com/sells-group/scout-cli/pkg/llm"
)

// PeopleExtractor finds people in article text and on company team pages.
type PeopleExtractor struct {
	llm      llm.Client
	fetcher  *fetch.Fetcher
	throttle *fetch.Throttle
}

// NewPeopleExtractor creates a PeopleExtractor. The fetcher is used for team
// page retrieval only.
func NewPeopleExtractor(client llm.Client, fetcher *fetch.Fetcher, throttle *fetch.Throttle) *PeopleExtractor {
	return &PeopleExtractor{llm: client, fetcher: fetcher, throttle: throttle}
}

// FromArticle extracts people affiliated with the named company directly from
// the article text. Oracle failure yields an empty slice.
func (e *PeopleExtractor) FromArticle(ctx context.Context, article model.Article, companyName string) []model.PersonExtraction {
	if err := e.throttle.Wait(ctx); err != nil {
		return nil
	}

	prompt := fmt.Sprintf(articlePeoplePrompt,
		article.Title,
		truncate(article.CleanedText, 5000),
		companyName, companyName, companyName,
	)

	var result model.PersonList
	if err := e.llm.GenerateStructured(ctx, prompt, &result); err != nil {
		zap.L().Warn("people: article extraction failed",
			zap.String("company", companyName),
			zap.String("url", article.URL),
			zap.Error(err),
		)
		return nil
	}
	return result.People
}

// FromTeamPage fetches pageURL, strips it to text, and asks the oracle for
// the people listed on it. Fetch or oracle failure yields an empty slice so
// the remaining candidate pages still get a chance.
func (e *PeopleExtractor) FromTeamPage(ctx context.Context, pageURL, companyName string) []model.PersonExtraction {
	if err := e.throttle.Wait(ctx); err != nil {
		return nil
	}

	body, err := e.fetcher.Get(ctx, pageURL)
	if err != nil {
		zap.L().Debug("people: team page fetch failed",
			zap.String("url", pageURL),
			zap.Error(err),
		)
		return nil
	}

	text := fetch.StripHTML(string(body))
	if text == "" {
		return nil
	}

	if err := e.throttle.Wait(ctx); err != nil {
		return nil
	}

	prompt := fmt.Sprintf(teamPagePrompt, companyName, truncate(text, 8000))

	var result model.PersonList
	if err := e.llm.GenerateStructured(ctx, prompt, &result); err != nil {
		zap.L().Warn("people: team page extraction failed",
			zap.String("company", companyName),
			zap.String("url", pageURL),
			zap.Error(err),
		)
		return nil
	}

	if len(result.People) > 0 {
		zap.L().Info("people: team page yielded candidates",
			zap.String("company", companyName),
			zap.String("url", pageURL),
			zap.Int("people", len(result.People)),
		)
	}
	return result.People
}
