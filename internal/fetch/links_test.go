package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamLinks(t *testing.T) {
	html := `<html><body>
<a href="/team">Our Team</a>
<a href="/about-us">About</a>
<a href="/pricing">Pricing</a>
<a href="https://other.example.com/leadership">Leadership</a>
<a href="/blog">Meet the people behind Acme</a>
<a href="/team">Team (again)</a>
</body></html>`

	links, err := TeamLinks([]byte(html), "https://acme.com")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://acme.com/team",
		"https://acme.com/about-us",
		"https://other.example.com/leadership",
		"https://acme.com/blog", // matched on anchor text
	}, links)
}

func TestTeamLinksNoMatches(t *testing.T) {
	html := `<html><body><a href="/pricing">Pricing</a><a href="/docs">Docs</a></body></html>`
	links, err := TeamLinks([]byte(html), "https://acme.com")
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestTeamLinksBadBaseURL(t *testing.T) {
	_, err := TeamLinks([]byte("<html></html>"), "://not-a-url")
	assert.Error(t, err)
}
