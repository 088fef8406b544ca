package places

import (
	"encoding/json"

	"github.com/rohmanhakim/park-finder/internal/storage"
)

// Memo holds exactly one search response: the most recent one. It is keyed
// by the response's own origin postal code, so storing a response for a new
// postal code replaces the previous one. It is not a multi-entry cache.
type Memo struct {
	store *storage.FileStore[json.RawMessage]
}

func NewMemo(store *storage.FileStore[json.RawMessage]) *Memo {
	return &Memo{
		store: store,
	}
}

// Load returns the memoized response and true, or false when the slot is
// empty, undecodable, or holds a response without an origin postal code.
func (m *Memo) Load() (SearchResponse, bool) {
	return decodeResponse(m.store.Load())
}

// Replace overwrites the slot with raw.
func (m *Memo) Replace(raw []byte) error {
	return m.store.Save(json.RawMessage(raw))
}

// decodeResponse accepts only a JSON object that names its origin postal
// code. Anything else cannot serve as a memo entry.
func decodeResponse(raw []byte) (SearchResponse, bool) {
	if len(raw) == 0 {
		return SearchResponse{}, false
	}
	var resp SearchResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return SearchResponse{}, false
	}
	if resp.Origin.PostalCode == "" {
		return SearchResponse{}, false
	}
	return resp, true
}
