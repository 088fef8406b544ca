package places

import (
	"context"
	"time"

	"github.com/rohmanhakim/park-finder/internal/metadata"
	"github.com/rohmanhakim/park-finder/internal/site"
)

/*
Lookup

Responsibilities:
- Answer "what is near this site" from the memo when it already holds the
  site's postal code
- Otherwise run a live search and make its response the memoized one

A search response replaces the memo only after it decodes, so a malformed
reply never evicts the previous result.
*/
type Lookup struct {
	metadataSink metadata.MetadataSink
	searcher     Searcher
	memo         *Memo
}

func NewLookup(metadataSink metadata.MetadataSink, searcher Searcher, memo *Memo) *Lookup {
	return &Lookup{
		metadataSink: metadataSink,
		searcher:     searcher,
		memo:         memo,
	}
}

func (l *Lookup) Nearby(ctx context.Context, s site.Site) (SearchResponse, error) {
	postalCode := s.Zipcode()

	if resp, ok := l.memo.Load(); ok && resp.Origin.PostalCode == postalCode {
		l.metadataSink.RecordCacheLookup("places", postalCode, true)
		return resp, nil
	}
	l.metadataSink.RecordCacheLookup("places", postalCode, false)

	raw, err := l.searcher.Search(ctx, postalCode)
	if err != nil {
		return SearchResponse{}, err
	}

	resp, ok := decodeResponse(raw)
	if !ok {
		placesErr := &PlacesError{
			Message: "search response does not have the expected shape",
			Cause:   ErrCauseUndecodable,
		}
		l.metadataSink.RecordError(
			time.Now(),
			"places",
			"Lookup.Nearby",
			metadata.CauseContentInvalid,
			placesErr.Error(),
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrPostalCode, postalCode),
			},
		)
		return SearchResponse{}, placesErr
	}

	if err := l.memo.Replace(raw); err != nil {
		return SearchResponse{}, &PlacesError{
			Message: err.Error(),
			Cause:   ErrCauseMemoWriteError,
		}
	}
	return resp, nil
}
