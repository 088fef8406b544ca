package fetcher

// Identity is the set of headers that identifies this client to the
// origin on every request.
type Identity struct {
	userAgent string
	from      string
}

func NewIdentity(userAgent string, from string) Identity {
	return Identity{
		userAgent: userAgent,
		from:      from,
	}
}

func (i Identity) headers(accept string) map[string]string {
	headers := map[string]string{
		"Accept": accept,
	}
	if i.userAgent != "" {
		headers["User-Agent"] = i.userAgent
	}
	if i.from != "" {
		headers["From"] = i.from
	}
	return headers
}

const (
	acceptHTML = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	acceptJSON = "application/json"
)
