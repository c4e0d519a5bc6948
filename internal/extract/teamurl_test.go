package extract

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/scout-cli/internal/fetch"
	"github.com/sells-group/scout-cli/internal/model"
)

func TestHeuristicWebsite(t *testing.T) {
	tests := []struct {
		name    string
		company string
		want    string
	}{
		{"simple", "Acme", "https://acme.com"},
		{"strips inc", "Acme Inc", "https://acme.com"},
		{"strips inc dot", "Acme Inc.", "https://acme.com"},
		{"strips llc", "Acme LLC", "https://acme.com"},
		{"strips corp", "Acme Corp", "https://acme.com"},
		{"strips corporation", "Acme Corporation", "https://acme.com"},
		{"removes spaces", "Blue Bottle", "https://bluebottle.com"},
		{"removes hyphens", "data-dog", "https://datadog.com"},
		{"too long", "A Very Long Company Name Indeed", ""},
		{"non alphanumeric", "Acme & Sons", ""},
		{"empty", "  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, heuristicWebsite(tt.company))
		})
	}
}

func TestCandidatesKnownTeamPageShortCircuits(t *testing.T) {
	m := &mockLLM{}

	f := NewTeamURLFinder(m, nil, fetch.NewThrottle(0))
	company := model.Company{Name: "Acme", TeamPageURL: "https://acme.com/our-people"}

	got := f.Candidates(context.Background(), company, "article text")
	assert.Equal(t, []string{"https://acme.com/our-people"}, got)

	// No oracle call when the URL is already known.
	m.AssertNotCalled(t, "GenerateStructured", mock.Anything, mock.Anything, mock.Anything)
}

func TestCandidatesFromInferredWebsite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body></body></html>")
	}))
	defer srv.Close()

	m := &mockLLM{}
	m.On("GenerateStructured", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*model.CompanyWebsite)
			out.WebsiteURL = srv.URL + "/"
			out.Confidence = 0.9
		}).
		Return(nil)

	f := NewTeamURLFinder(m, fetch.NewFetcher(time.Second, "test"), fetch.NewThrottle(0))
	company := model.Company{Name: "Some Unusable & Name"}

	got := f.Candidates(context.Background(), company, "article text")

	require.Len(t, got, maxTeamPageCandidates)
	assert.Equal(t, srv.URL+"/team", got[0])
	assert.Equal(t, srv.URL+"/about", got[1])
}

// The homepage is always scanned for team links; the merged list is capped
// after the scan, not before.
func TestCandidatesScansHomepage(t *testing.T) {
	homepageHits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			homepageHits++
			fmt.Fprint(w, `<html><body><a href="/meet-the-team">Our Team</a></body></html>`)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	m := &mockLLM{}
	m.On("GenerateStructured", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*model.CompanyWebsite)
			out.WebsiteURL = srv.URL
			out.Confidence = 0.9
		}).
		Return(nil)

	f := NewTeamURLFinder(m, fetch.NewFetcher(time.Second, "test"), fetch.NewThrottle(0))
	company := model.Company{Name: "Some Unusable & Name"}

	got := f.Candidates(context.Background(), company, "article text")

	assert.Equal(t, 1, homepageHits)
	require.Len(t, got, maxTeamPageCandidates)
	assert.Equal(t, srv.URL+"/team", got[0])
	assert.NotContains(t, got, srv.URL+"/meet-the-team")
}

func TestCandidatesLowConfidenceFallsBackToHeuristic(t *testing.T) {
	m := &mockLLM{}
	m.On("GenerateStructured", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*model.CompanyWebsite)
			out.WebsiteURL = "https://wrong.example.com"
			out.Confidence = 0.3
		}).
		Return(nil)

	// Short timeout: the homepage scan against the guessed domain fails fast
	// and contributes nothing.
	f := NewTeamURLFinder(m, fetch.NewFetcher(50*time.Millisecond, "test"), fetch.NewThrottle(0))
	company := model.Company{Name: "Acme Inc"}

	got := f.Candidates(context.Background(), company, "article text")
	require.NotEmpty(t, got)
	assert.Equal(t, "https://acme.com/team", got[0])
}

func TestCandidatesNoWebsite(t *testing.T) {
	m := &mockLLM{}
	m.On("GenerateStructured", mock.Anything, mock.Anything, mock.Anything).
		Return(eris.New("oracle down"))

	f := NewTeamURLFinder(m, fetch.NewFetcher(time.Second, "test"), fetch.NewThrottle(0))
	company := model.Company{Name: "Unresolvable & Co KG Holdings International"}

	assert.Empty(t, f.Candidates(context.Background(), company, "article text"))
}
