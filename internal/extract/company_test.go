package extract

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/scout-cli/internal/fetch"
	"github.com/sells-group/scout-cli/internal/model"
)

func TestExtractCompanies(t *testing.T) {
	m := &mockLLM{}
	m.On("GenerateStructured", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*model.CompanyExtraction)
			out.Companies = []model.CompanyMention{
				{Name: "Acme", Description: "fintech", TeamPageURL: "https://acme.com/team"},
				{Name: "Globex", Description: "robotics"},
			}
		}).
		Return(nil)

	e := NewCompanyExtractor(m, fetch.NewThrottle(0), 10)
	companies := e.Extract(context.Background(), testArticle())

	require.Len(t, companies, 2)
	assert.Equal(t, "Acme", companies[0].Name)
	assert.Equal(t, "https://acme.com/team", companies[0].TeamPageURL)
	assert.Equal(t, "https://news.example.com/acme", companies[0].SourceArticleURL)
	assert.False(t, companies[0].ExtractedAt.IsZero())
	assert.Equal(t, "Globex", companies[1].Name)
}

func TestExtractCompaniesCapped(t *testing.T) {
	m := &mockLLM{}
	m.On("GenerateStructured", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*model.CompanyExtraction)
			out.Companies = []model.CompanyMention{
				{Name: "First"}, {Name: "Second"}, {Name: "Third"},
			}
		}).
		Return(nil)

	e := NewCompanyExtractor(m, fetch.NewThrottle(0), 2)
	companies := e.Extract(context.Background(), testArticle())

	// Oracle order decides which mentions survive the cap.
	require.Len(t, companies, 2)
	assert.Equal(t, "First", companies[0].Name)
	assert.Equal(t, "Second", companies[1].Name)
}

func TestExtractCompaniesOracleFailure(t *testing.T) {
	m := &mockLLM{}
	m.On("GenerateStructured", mock.Anything, mock.Anything, mock.Anything).
		Return(eris.New("oracle down"))

	e := NewCompanyExtractor(m, fetch.NewThrottle(0), 10)
	assert.Empty(t, e.Extract(context.Background(), testArticle()))
}
