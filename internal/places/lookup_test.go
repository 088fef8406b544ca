package places_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rohmanhakim/park-finder/internal/fetcher"
	"github.com/rohmanhakim/park-finder/internal/metadata"
	"github.com/rohmanhakim/park-finder/internal/places"
	"github.com/rohmanhakim/park-finder/internal/site"
	"github.com/rohmanhakim/park-finder/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type searcherMock struct {
	mock.Mock
}

func (s *searcherMock) Search(ctx context.Context, postalCode string) ([]byte, error) {
	args := s.Called(ctx, postalCode)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Error(1)
}

func responseFor(postalCode string, names ...string) []byte {
	results := make([]map[string]any, 0, len(names))
	for _, n := range names {
		results = append(results, map[string]any{
			"name":   n,
			"fields": map[string]any{"group_sic_code_name_ext": "Parks", "address": "1 Main St", "city": "Town"},
		})
	}
	raw, _ := json.Marshal(map[string]any{
		"origin":        map[string]any{"postalCode": postalCode},
		"searchResults": results,
	})
	return raw
}

func newMemo(t *testing.T) (*places.Memo, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "places.json")
	store := storage.NewFileStore[json.RawMessage](path, metadata.ArtifactPlacesCache, &metadata.NoopSink{})
	return places.NewMemo(store), path
}

func memoPostalCode(memo *places.Memo) string {
	resp, ok := memo.Load()
	if !ok {
		return ""
	}
	return resp.Origin.PostalCode
}

func siteWithZip(zip string) site.Site {
	return site.NewSite("Park "+zip, "National Park", "City, ST", zip, "555")
}

func TestNearby_SameSiteTwiceCallsAPIOnce(t *testing.T) {
	memo, _ := newMemo(t)
	searcher := &searcherMock{}
	searcher.On("Search", mock.Anything, "49931").Return(responseFor("49931", "Cafe"), nil).Once()

	lookup := places.NewLookup(&metadata.NoopSink{}, searcher, memo)
	s := siteWithZip("49931")

	first, err := lookup.Nearby(context.Background(), s)
	require.NoError(t, err)
	second, err := lookup.Nearby(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	searcher.AssertNumberOfCalls(t, "Search", 1)
}

func TestNearby_DifferentSitesEvictEachOther(t *testing.T) {
	memo, path := newMemo(t)
	searcher := &searcherMock{}
	searcher.On("Search", mock.Anything, "49931").Return(responseFor("49931", "Cafe"), nil).Once()
	searcher.On("Search", mock.Anything, "49913").Return(responseFor("49913", "Museum"), nil).Once()

	lookup := places.NewLookup(&metadata.NoopSink{}, searcher, memo)

	_, err := lookup.Nearby(context.Background(), siteWithZip("49931"))
	require.NoError(t, err)
	second, err := lookup.Nearby(context.Background(), siteWithZip("49913"))
	require.NoError(t, err)

	searcher.AssertNumberOfCalls(t, "Search", 2)
	assert.Equal(t, "49913", memoPostalCode(memo))
	assert.Equal(t, "Museum", second.Places()[0].Name)

	// the file holds one response, not a keyed mapping
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk places.SearchResponse
	require.NoError(t, json.Unmarshal(content, &onDisk))
	assert.Equal(t, "49913", onDisk.Origin.PostalCode)
}

func TestNearby_ReturningToFirstSiteCallsAgain(t *testing.T) {
	memo, _ := newMemo(t)
	searcher := &searcherMock{}
	searcher.On("Search", mock.Anything, "49931").Return(responseFor("49931"), nil).Twice()
	searcher.On("Search", mock.Anything, "49913").Return(responseFor("49913"), nil).Once()

	lookup := places.NewLookup(&metadata.NoopSink{}, searcher, memo)
	for _, zip := range []string{"49931", "49913", "49931"} {
		_, err := lookup.Nearby(context.Background(), siteWithZip(zip))
		require.NoError(t, err)
	}

	searcher.AssertExpectations(t)
}

func TestNearby_MemoSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "places.json")
	open := func() *places.Memo {
		return places.NewMemo(storage.NewFileStore[json.RawMessage](path, metadata.ArtifactPlacesCache, &metadata.NoopSink{}))
	}

	first := &searcherMock{}
	first.On("Search", mock.Anything, "49931").Return(responseFor("49931", "Cafe"), nil).Once()
	_, err := places.NewLookup(&metadata.NoopSink{}, first, open()).Nearby(context.Background(), siteWithZip("49931"))
	require.NoError(t, err)

	idle := &searcherMock{}
	resp, err := places.NewLookup(&metadata.NoopSink{}, idle, open()).Nearby(context.Background(), siteWithZip("49931"))
	require.NoError(t, err)
	assert.Equal(t, "Cafe", resp.Places()[0].Name)
	idle.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestNearby_SearchErrorLeavesMemoUntouched(t *testing.T) {
	memo, _ := newMemo(t)
	searcher := &searcherMock{}
	searcher.On("Search", mock.Anything, "49931").Return(responseFor("49931"), nil).Once()
	searcher.On("Search", mock.Anything, "49913").Return(nil, errors.New("boom")).Once()

	lookup := places.NewLookup(&metadata.NoopSink{}, searcher, memo)
	_, err := lookup.Nearby(context.Background(), siteWithZip("49931"))
	require.NoError(t, err)
	_, err = lookup.Nearby(context.Background(), siteWithZip("49913"))
	require.Error(t, err)

	assert.Equal(t, "49931", memoPostalCode(memo))
}

func TestNearby_UnexpectedShape(t *testing.T) {
	memo, _ := newMemo(t)
	searcher := &searcherMock{}
	searcher.On("Search", mock.Anything, "49931").Return([]byte(`["not","an","object"]`), nil).Once()

	_, err := places.NewLookup(&metadata.NoopSink{}, searcher, memo).Nearby(context.Background(), siteWithZip("49931"))

	var placesErr *places.PlacesError
	require.ErrorAs(t, err, &placesErr)
	assert.Equal(t, places.ErrCauseUndecodable, placesErr.Cause)
}

func TestNearby_MalformedReplyKeepsPreviousResult(t *testing.T) {
	memo, _ := newMemo(t)
	searcher := &searcherMock{}
	searcher.On("Search", mock.Anything, "49931").Return(responseFor("49931", "Cafe"), nil).Once()
	searcher.On("Search", mock.Anything, "49913").Return([]byte(`["x"]`), nil).Once()

	lookup := places.NewLookup(&metadata.NoopSink{}, searcher, memo)
	_, err := lookup.Nearby(context.Background(), siteWithZip("49931"))
	require.NoError(t, err)

	_, err = lookup.Nearby(context.Background(), siteWithZip("49913"))
	var placesErr *places.PlacesError
	require.ErrorAs(t, err, &placesErr)
	assert.Equal(t, places.ErrCauseUndecodable, placesErr.Cause)
	assert.Equal(t, "49931", memoPostalCode(memo))

	resp, err := lookup.Nearby(context.Background(), siteWithZip("49931"))
	require.NoError(t, err)
	assert.Equal(t, "Cafe", resp.Places()[0].Name)
	searcher.AssertNumberOfCalls(t, "Search", 2)
}

func TestNearby_ReplyWithoutOriginIsRejected(t *testing.T) {
	memo, path := newMemo(t)
	searcher := &searcherMock{}
	searcher.On("Search", mock.Anything, "49931").Return([]byte(`{"info":{"statuscode":400}}`), nil).Once()

	_, err := places.NewLookup(&metadata.NoopSink{}, searcher, memo).Nearby(context.Background(), siteWithZip("49931"))

	var placesErr *places.PlacesError
	require.ErrorAs(t, err, &placesErr)
	assert.Equal(t, places.ErrCauseUndecodable, placesErr.Cause)
	assert.NoFileExists(t, path)
}

func TestNearby_OriginlessMemoIsNotAHit(t *testing.T) {
	for _, content := range []string{`{}`, `null`, `{"info":{"statuscode":400}}`} {
		t.Run(content, func(t *testing.T) {
			memo, path := newMemo(t)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			_, ok := memo.Load()
			assert.False(t, ok)

			searcher := &searcherMock{}
			searcher.On("Search", mock.Anything, "").Return(nil, errors.New("offline")).Once()

			_, err := places.NewLookup(&metadata.NoopSink{}, searcher, memo).Nearby(context.Background(), siteWithZip(""))
			require.Error(t, err)
			searcher.AssertNumberOfCalls(t, "Search", 1)
		})
	}
}

func TestClient_SearchSendsRadiusParameters(t *testing.T) {
	var got url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		fmt.Fprint(w, `{"origin":{"postalCode":"49931"},"searchResults":[]}`)
	}))
	defer server.Close()

	getter := fetcher.NewJSONFetcher(&metadata.NoopSink{}, fetcher.NewIdentity("test", ""), 5*time.Second)
	client := places.NewClient(getter, server.URL, "k3y", places.DefaultRadius, places.DefaultMaxMatches)

	raw, err := client.Search(context.Background(), "49931")
	require.NoError(t, err)
	assert.JSONEq(t, `{"origin":{"postalCode":"49931"},"searchResults":[]}`, string(raw))

	assert.Equal(t, "k3y", got.Get("key"))
	assert.Equal(t, "49931", got.Get("origin"))
	assert.Equal(t, "10", got.Get("radius"))
	assert.Equal(t, "10", got.Get("maxMatches"))
	assert.Equal(t, "ignore", got.Get("ambiguities"))
	assert.Equal(t, "json", got.Get("outFormat"))
}

func TestClient_SearchWithoutKey(t *testing.T) {
	client := places.NewClient(nil, places.DefaultEndpoint, "", places.DefaultRadius, places.DefaultMaxMatches)

	_, err := client.Search(context.Background(), "49931")

	var placesErr *places.PlacesError
	require.ErrorAs(t, err, &placesErr)
	assert.Equal(t, places.ErrCauseNoAPIKey, placesErr.Cause)
}
