package fetch

import (
	"bytes"
	"context"
	"net/url"
	"time"

	readability "codeberg.org/readeck/go-readability/v2"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/scout-cli/internal/model"
)

// minCleanedLength is the cutoff below which readability output is considered
// a failed extraction and the whole page is stripped instead.
const minCleanedLength = 200

// Article fetches a URL and extracts readable article text. Title from the
// feed takes precedence over the page <title>.
func (f *Fetcher) Article(ctx context.Context, pageURL, title string) (*model.Article, error) {
	body, err := f.Get(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	cleaned := readableText(body, pageURL)

	// Readability can come up nearly empty on sparse or unusual markup; fall
	// back to stripping the full page.
	if len(cleaned) < minCleanedLength {
		cleaned = StripHTML(string(body))
	}

	if title == "" {
		title = ExtractTitle(body)
	}

	article := &model.Article{
		URL:         pageURL,
		Title:       title,
		RawText:     string(body),
		CleanedText: cleaned,
		ExtractedAt: time.Now().UTC(),
	}

	zap.L().Debug("fetch: article extracted",
		zap.String("url", pageURL),
		zap.Int("cleaned_chars", len(cleaned)),
	)
	return article, nil
}

// readableText runs readability over the page body. Returns "" when parsing
// fails; the caller falls back to StripHTML.
func readableText(body []byte, pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}

	article, err := readability.FromReader(bytes.NewReader(body), parsed)
	if err != nil {
		zap.L().Debug("fetch: readability parse failed",
			zap.String("url", pageURL),
			zap.Error(eris.Wrap(err, "readability")),
		)
		return ""
	}

	var rendered bytes.Buffer
	if err := article.RenderText(&rendered); err != nil {
		return ""
	}
	return rendered.String()
}
