package fetch

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
)

// teamKeywords are the substrings that mark a homepage link as team-related,
// matched against both the href and the anchor text.
var teamKeywords = []string{"team", "about", "leadership", "people", "company", "our-team"}

// TeamLinks scans homepage HTML for links that look like team/about pages.
// Relative hrefs are resolved against baseURL. Order of first appearance is
// preserved; duplicates are dropped.
func TeamLinks(body []byte, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, eris.Wrap(err, "fetch: parse base url")
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "fetch: parse homepage html")
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		text := strings.ToLower(strings.TrimSpace(sel.Text()))
		hrefLower := strings.ToLower(href)

		matched := false
		for _, kw := range teamKeywords {
			if strings.Contains(hrefLower, kw) || strings.Contains(text, kw) {
				matched = true
				break
			}
		}
		if !matched {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		full := base.ResolveReference(ref).String()
		if !seen[full] {
			seen[full] = true
			links = append(links, full)
		}
	})

	return links, nil
}
