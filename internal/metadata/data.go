package metadata

/*
	ErrorCause is a closed, canonical classification used exclusively for
	observability (logging, reporting).

	Rules:
	 - ErrorCause MUST NOT influence control flow.
	 - Pipeline packages MAY map their local errors to ErrorCause,
	   but MUST NOT invent new meanings.

If a failure does not clearly match a defined cause, CauseUnknown MUST be used.
*/
type ErrorCause int

/*
Canonical ErrorCause Table

# CauseUnknown
  - The failure does not map cleanly to any known category.

# CauseNetworkFailure
  - Transport errors, non-2xx responses, cancelled requests.

# CauseContentInvalid
  - Content was fetched but could not be processed meaningfully.
  - Missing navigation list or park listing container, undecodable API body.

# CauseStorageFailure
  - Failure while persisting a cache file (disk full, permissions, rename).

# CauseCacheUnavailable
  - A cache file was missing or unreadable and was treated as empty.
*/
const (
	CauseUnknown ErrorCause = iota
	CauseNetworkFailure
	CauseContentInvalid
	CauseStorageFailure
	CauseCacheUnavailable
)

func (c ErrorCause) String() string {
	switch c {
	case CauseNetworkFailure:
		return "network_failure"
	case CauseContentInvalid:
		return "content_invalid"
	case CauseStorageFailure:
		return "storage_failure"
	case CauseCacheUnavailable:
		return "cache_unavailable"
	default:
		return "unknown"
	}
}

type Attribute struct {
	Key   AttributeKey
	Value string
}

func NewAttr(key AttributeKey, val string) Attribute {
	return Attribute{
		Key:   key,
		Value: val,
	}
}

type AttributeKey string

const (
	AttrURL        AttributeKey = "url"
	AttrPath       AttributeKey = "path"
	AttrField      AttributeKey = "field"
	AttrHTTPStatus AttributeKey = "http_status"
	AttrWritePath  AttributeKey = "write_path"
	AttrPostalCode AttributeKey = "postal_code"
	AttrMessage    AttributeKey = "message"
)

type ArtifactKind string

const (
	ArtifactPageCache   ArtifactKind = "page_cache"
	ArtifactPlacesCache ArtifactKind = "places_cache"
)
