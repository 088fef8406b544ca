package extractor

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rohmanhakim/park-finder/internal/metadata"
	"github.com/rohmanhakim/park-finder/internal/site"
	"github.com/rohmanhakim/park-finder/pkg/urlutil"
	"golang.org/x/net/html"
)

/*
Responsibilities
- Parse HTML into a DOM tree
- Read the state navigation menu into a name to URL index
- Read a park detail page into a site.Site
- Read a state page into the ordered list of park detail URLs

Failure Rules
- Navigation and listing containers are structural: when missing, the
  whole operation fails with an ExtractionError.
- Detail fields are independent: each missing field falls back to its
  placeholder and never affects the others.
*/

type DomExtractor struct {
	metadataSink metadata.MetadataSink
}

func NewDomExtractor(
	metadataSink metadata.MetadataSink,
) *DomExtractor {
	return &DomExtractor{
		metadataSink: metadataSink,
	}
}

// ExtractStateIndex maps each lowercased state name in the navigation menu
// to its absolute listing URL.
func (d *DomExtractor) ExtractStateIndex(htmlText string, baseURL url.URL) (map[string]string, error) {
	index, err := d.extractStateIndex(htmlText, baseURL)
	if err != nil {
		d.recordError("DomExtractor.ExtractStateIndex", baseURL.String(), err)
		return nil, err
	}
	return index, nil
}

func (d *DomExtractor) extractStateIndex(htmlText string, baseURL url.URL) (map[string]string, *ExtractionError) {
	doc, err := parse(htmlText)
	if err != nil {
		return nil, err
	}

	nav := doc.Find(stateNavSelector).First()
	if nav.Length() == 0 {
		return nil, &ExtractionError{
			Message: fmt.Sprintf("selector %q matched nothing", stateNavSelector),
			Cause:   ErrCauseNoStateNavigation,
		}
	}

	index := make(map[string]string)
	var linkErr *ExtractionError
	nav.Find("li").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		name := strings.ToLower(strings.TrimSpace(item.Text()))
		href, ok := item.Find(linkSelector).First().Attr("href")
		if name == "" || !ok {
			return true
		}
		resolved, resolveErr := urlutil.Resolve(baseURL, href)
		if resolveErr != nil {
			linkErr = &ExtractionError{
				Message: fmt.Sprintf("state %q: %v", name, resolveErr),
				Cause:   ErrCauseBadLink,
			}
			return false
		}
		index[name] = resolved
		return true
	})
	if linkErr != nil {
		return nil, linkErr
	}
	return index, nil
}

// ExtractSite reads a park detail page. It never fails: unparseable input
// yields a Site made entirely of placeholders.
func (d *DomExtractor) ExtractSite(htmlText string) site.Site {
	doc, err := parse(htmlText)
	if err != nil {
		doc = goquery.NewDocumentFromNode(&html.Node{Type: html.DocumentNode})
	}

	name := d.field(doc, fieldName)
	category := d.field(doc, fieldCategory)
	city := d.field(doc, fieldCity)
	state := d.field(doc, fieldState)
	zipcode := d.field(doc, fieldZipcode)
	phone := d.field(doc, fieldPhone)

	return site.NewSite(name, category, city+", "+state, zipcode, phone)
}

// field returns the trimmed text of the first node matching f.selector, or
// f.placeholder when there is none.
func (d *DomExtractor) field(doc *goquery.Document, f siteField) string {
	match := doc.Find(f.selector).First()
	if match.Length() == 0 {
		return f.placeholder
	}
	return strings.TrimSpace(match.Text())
}

// ExtractListing returns the absolute landing-page URL of every park on a
// state page, in document order.
func (d *DomExtractor) ExtractListing(htmlText string, baseURL url.URL) ([]string, error) {
	links, err := d.extractListing(htmlText, baseURL)
	if err != nil {
		d.recordError("DomExtractor.ExtractListing", baseURL.String(), err)
		return nil, err
	}
	return links, nil
}

func (d *DomExtractor) extractListing(htmlText string, baseURL url.URL) ([]string, *ExtractionError) {
	doc, err := parse(htmlText)
	if err != nil {
		return nil, err
	}

	list := doc.Find(parkListSelector).First()
	if list.Length() == 0 {
		return nil, &ExtractionError{
			Message: fmt.Sprintf("selector %q matched nothing", parkListSelector),
			Cause:   ErrCauseNoParkListing,
		}
	}

	var links []string
	var entryErr *ExtractionError
	list.Find(parkEntrySelector).EachWithBreak(func(i int, entry *goquery.Selection) bool {
		href, ok := entry.Find(linkSelector).First().Attr("href")
		if !ok {
			entryErr = &ExtractionError{
				Message: fmt.Sprintf("entry %d (%q) has no link", i+1, strings.TrimSpace(entry.Text())),
				Cause:   ErrCauseMalformedListing,
			}
			return false
		}
		resolved, resolveErr := urlutil.ResolveWithSuffix(baseURL, href, listingSuffix)
		if resolveErr != nil {
			entryErr = &ExtractionError{
				Message: fmt.Sprintf("entry %d: %v", i+1, resolveErr),
				Cause:   ErrCauseMalformedListing,
			}
			return false
		}
		links = append(links, resolved)
		return true
	})
	if entryErr != nil {
		return nil, entryErr
	}
	return links, nil
}

func (d *DomExtractor) recordError(action string, pageUrl string, err *ExtractionError) {
	d.metadataSink.RecordError(
		time.Now(),
		"extractor",
		action,
		mapExtractionErrorToMetadataCause(err),
		err.Error(),
		[]metadata.Attribute{
			metadata.NewAttr(metadata.AttrURL, pageUrl),
		},
	)
}

func parse(htmlText string) (*goquery.Document, *ExtractionError) {
	root, err := html.Parse(strings.NewReader(htmlText))
	if err != nil {
		return nil, &ExtractionError{
			Message: fmt.Sprintf("failed to parse HTML: %v", err),
			Cause:   ErrCauseNotHTML,
		}
	}
	return goquery.NewDocumentFromNode(root), nil
}
