package places

import "strings"

// SearchResponse is the subset of the radius search response this tool reads.
type SearchResponse struct {
	Origin        Origin         `json:"origin"`
	SearchResults []searchResult `json:"searchResults"`
}

type Origin struct {
	PostalCode string `json:"postalCode"`
}

type searchResult struct {
	Name   string       `json:"name"`
	Fields resultFields `json:"fields"`
}

type resultFields struct {
	Category string `json:"group_sic_code_name_ext"`
	Address  string `json:"address"`
	City     string `json:"city"`
}

// Placeholders for result fields the API left empty.
const (
	NoName     = "no name"
	NoCategory = "no category"
	NoAddress  = "no address"
	NoCity     = "no city"
)

// PlaceResult is one nearby point of interest with every field filled.
type PlaceResult struct {
	Name     string
	Category string
	Address  string
	City     string
}

// Places returns the search results in API order with empty fields
// replaced by their placeholders.
func (r SearchResponse) Places() []PlaceResult {
	results := make([]PlaceResult, 0, len(r.SearchResults))
	for _, res := range r.SearchResults {
		results = append(results, PlaceResult{
			Name:     orPlaceholder(res.Name, NoName),
			Category: orPlaceholder(res.Fields.Category, NoCategory),
			Address:  orPlaceholder(res.Fields.Address, NoAddress),
			City:     orPlaceholder(res.Fields.City, NoCity),
		})
	}
	return results
}

// orPlaceholder trims value and treats the literal "None" as empty; the API
// emits it for some unset fields.
func orPlaceholder(value string, placeholder string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || trimmed == "None" {
		return placeholder
	}
	return trimmed
}
