package requester

// Cache is the port the requester reads and writes responses through.
// Keys are compared as exact strings. Implementations own persistence:
// when Put returns, the entry is durable or an error says why it is not.
type Cache interface {
	// Get returns the stored value and true, or "" and false when key is absent.
	Get(key string) (string, bool)

	// Put stores value under key, overwriting any previous value.
	Put(key string, value string) error
}
