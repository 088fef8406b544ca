package extractor

import "github.com/rohmanhakim/park-finder/internal/site"

// Anchors on nps.gov pages. The site renders these server-side, so they
// are stable across state and park pages.
const (
	stateNavSelector  = "ul.dropdown-menu.SearchBar-keywordSearch"
	parkListSelector  = "ul#list_parks"
	parkEntrySelector = "h3"
	linkSelector      = "a[href]"

	// listingSuffix turns a park's directory link into its landing page.
	listingSuffix = "index.htm"
)

// siteField is one independently extracted field of a detail page.
type siteField struct {
	name        string
	selector    string
	placeholder string
}

//nolint:gochecknoglobals // static lookup table
var (
	fieldName     = siteField{name: "name", selector: "a.Hero-title", placeholder: site.NoName}
	fieldCategory = siteField{name: "category", selector: "span.Hero-designation", placeholder: site.NoCategory}
	fieldCity     = siteField{name: "city", selector: "span[itemprop='addressLocality']", placeholder: site.NoCity}
	fieldState    = siteField{name: "state", selector: "span[itemprop='addressRegion']", placeholder: site.NoState}
	fieldZipcode  = siteField{name: "zipcode", selector: "span[itemprop='postalCode']", placeholder: site.NoZipcode}
	fieldPhone    = siteField{name: "phone", selector: "span.tel", placeholder: site.NoPhone}
)
