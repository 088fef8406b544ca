package extractor_test

import (
	"fmt"
	"net/url"
	"strings"
	"testing"
)

func mustBaseURL(t *testing.T) url.URL {
	t.Helper()
	u, err := url.Parse("https://www.nps.gov")
	if err != nil {
		t.Fatalf("parse base url: %v", err)
	}
	return *u
}

const homePage = `<!DOCTYPE html>
<html><body>
<div class="SearchBar">
  <ul class="dropdown-menu SearchBar-keywordSearch">
    <li><a href="/state/al/index.htm">Alabama</a></li>
    <li><a href="/state/mi/index.htm"> Michigan </a></li>
    <li><a href="/state/dc/index.htm">District of Columbia</a></li>
  </ul>
</div>
</body></html>`

// detailPage renders a park detail page. Any field passed as "" is left out
// of the markup entirely.
func detailPage(name, category, city, state, zip, phone string) string {
	var b strings.Builder
	b.WriteString("<html><body><div class=\"Hero\">")
	if name != "" {
		fmt.Fprintf(&b, `<a class="Hero-title" href="/">%s</a>`, name)
	}
	if category != "" {
		fmt.Fprintf(&b, `<span class="Hero-designation">%s</span>`, category)
	}
	b.WriteString(`</div><div itemprop="address">`)
	if city != "" {
		fmt.Fprintf(&b, `<span itemprop="addressLocality">%s</span>, `, city)
	}
	if state != "" {
		fmt.Fprintf(&b, `<span itemprop="addressRegion">%s</span> `, state)
	}
	if zip != "" {
		fmt.Fprintf(&b, `<span itemprop="postalCode">  %s  </span>`, zip)
	}
	b.WriteString("</div>")
	if phone != "" {
		fmt.Fprintf(&b, `<span class="tel">%s</span>`, phone)
	}
	b.WriteString("</body></html>")
	return b.String()
}

// listingPage renders a state page whose park list links to each href.
func listingPage(hrefs ...string) string {
	var b strings.Builder
	b.WriteString(`<html><body><ul id="list_parks">`)
	for i, href := range hrefs {
		fmt.Fprintf(&b, `<li class="clearfix"><h4>Type</h4><h3><a href="%s">Park %d</a></h3><p>desc</p></li>`, href, i+1)
	}
	b.WriteString(`</ul></body></html>`)
	return b.String()
}
