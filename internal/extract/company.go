package extract

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/scout-cli/internal/fetch"
	"github.com/sells-group/scout-cli/internal/model"
	"github.com/sells-group/scout-cli/pkg/llm"
)

// CompanyExtractor pulls company mentions out of article text via the oracle.
type CompanyExtractor struct {
	llm          llm.Client
	throttle     *fetch.Throttle
	maxCompanies int
}

// NewCompanyExtractor creates a CompanyExtractor capped at maxCompanies
// mentions per article.
func NewCompanyExtractor(client llm.Client, throttle *fetch.Throttle, maxCompanies int) *CompanyExtractor {
	return &CompanyExtractor{llm: client, throttle: throttle, maxCompanies: maxCompanies}
}

// Extract returns up to maxCompanies companies found in the article, in
// oracle-returned order. Oracle failure yields an empty slice, never an error:
// one bad article must not abort its siblings.
func (e *CompanyExtractor) Extract(ctx context.Context, article model.Article) []model.Company {
	if err := e.throttle.Wait(ctx); err != nil {
		return nil
	}

	prompt := fmt.Sprintf(companyPrompt, truncate(article.CleanedText, 4000))

	var result model.CompanyExtraction
	if err := e.llm.GenerateStructured(ctx, prompt, &result); err != nil {
		zap.L().Warn("company: extraction failed",
			zap.String("url", article.URL),
			zap.Error(err),
		)
		return nil
	}

	mentions := result.Companies
	if e.maxCompanies > 0 && len(mentions) > e.maxCompanies {
		mentions = mentions[:e.maxCompanies]
	}

	companies := make([]model.Company, 0, len(mentions))
	for _, m := range mentions {
		companies = append(companies, model.Company{
			Name:             m.Name,
			Description:      m.Description,
			TeamPageURL:      m.TeamPageURL,
			SourceArticleURL: article.URL,
			ExtractedAt:      time.Now().UTC(),
		})
	}

	zap.L().Info("company: extracted",
		zap.String("url", article.URL),
		zap.Int("companies", len(companies)),
	)
	return companies
}
