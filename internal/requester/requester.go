package requester

import (
	"context"
	"time"

	"github.com/rohmanhakim/park-finder/internal/fetcher"
	"github.com/rohmanhakim/park-finder/internal/metadata"
)

/*
CachedRequester

Responsibilities:
- Serve a page from the cache when its exact URL was fetched before
- Otherwise fetch it, store it, and return it

The request URL is the cache key as given. No normalization is applied,
so two spellings of the same resource are two entries.
A hit performs no network I/O and pays no delay.
*/
type CachedRequester struct {
	metadataSink metadata.MetadataSink
	cache        Cache
	fetcher      fetcher.RawFetcher
}

func NewCachedRequester(
	metadataSink metadata.MetadataSink,
	cache Cache,
	rawFetcher fetcher.RawFetcher,
) *CachedRequester {
	return &CachedRequester{
		metadataSink: metadataSink,
		cache:        cache,
		fetcher:      rawFetcher,
	}
}

// FetchCached returns the body for fetchUrl, from the cache if present.
// On a miss the fetched body is stored before it is returned; a failure to
// persist it is returned together with the body.
func (r *CachedRequester) FetchCached(ctx context.Context, fetchUrl string) (string, error) {
	if body, found := r.cache.Get(fetchUrl); found {
		r.metadataSink.RecordCacheLookup("pages", fetchUrl, true)
		return body, nil
	}
	r.metadataSink.RecordCacheLookup("pages", fetchUrl, false)

	body, err := r.fetcher.GetRaw(ctx, fetchUrl)
	if err != nil {
		return "", err
	}

	if err := r.cache.Put(fetchUrl, body); err != nil {
		r.metadataSink.RecordError(
			time.Now(),
			"requester",
			"CachedRequester.FetchCached",
			metadata.CauseStorageFailure,
			err.Error(),
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrURL, fetchUrl),
			},
		)
		return body, err
	}
	return body, nil
}
