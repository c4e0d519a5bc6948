package extract

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/scout-cli/internal/config"
	"github.com/sells-group/scout-cli/internal/fetch"
	"github.com/sells-group/scout-cli/internal/model"
	"github.com/sells-group/scout-cli/pkg/llm"
)

// RelevanceFilter asks the oracle whether an article is worth mining. The
// verdict is advisory: an oracle failure includes the article (fail-open) so
// transient errors never lose candidates.
type RelevanceFilter struct {
	llm      llm.Client
	keywords config.KeywordsConfig
	throttle *fetch.Throttle
}

// NewRelevanceFilter creates a RelevanceFilter.
func NewRelevanceFilter(client llm.Client, keywords config.KeywordsConfig, throttle *fetch.Throttle) *RelevanceFilter {
	return &RelevanceFilter{llm: client, keywords: keywords, throttle: throttle}
}

// IsRelevant classifies one article.
func (r *RelevanceFilter) IsRelevant(ctx context.Context, article model.Article) bool {
	if err := r.throttle.Wait(ctx); err != nil {
		return true
	}

	prompt := fmt.Sprintf(relevancePrompt,
		article.Title,
		truncate(article.CleanedText, 2000),
		strings.Join(r.keywords.Include, ", "),
		strings.Join(r.keywords.Exclude, ", "),
	)

	var verdict model.ArticleRelevance
	if err := r.llm.GenerateStructured(ctx, prompt, &verdict); err != nil {
		zap.L().Warn("relevance: oracle failed, including article",
			zap.String("url", article.URL),
			zap.Error(err),
		)
		return true
	}

	zap.L().Debug("relevance: checked",
		zap.String("url", article.URL),
		zap.Bool("relevant", verdict.IsRelevant),
		zap.Float64("confidence", verdict.Confidence),
	)
	return verdict.IsRelevant
}
