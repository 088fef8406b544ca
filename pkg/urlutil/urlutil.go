package urlutil

import (
	"fmt"
	"net/url"
	"strings"
)

// Resolve turns an href found on a page into an absolute URL string,
// using base as the reference. Absolute hrefs are returned unchanged.
//
// No canonicalization is applied: the result is used verbatim as a cache key,
// so two spellings of the same location stay two keys.
func Resolve(base url.URL, href string) (string, error) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", fmt.Errorf("empty href")
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("parse href %q: %w", href, err)
	}
	return base.ResolveReference(ref).String(), nil
}

// ResolveWithSuffix resolves href against base and appends suffix to the
// resulting path, e.g. "/isro/" + "index.htm".
func ResolveWithSuffix(base url.URL, href string, suffix string) (string, error) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", fmt.Errorf("empty href")
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("parse href %q: %w", href, err)
	}
	resolved := base.ResolveReference(ref)
	resolved.Path += suffix
	if resolved.RawPath != "" {
		resolved.RawPath += suffix
	}
	return resolved.String(), nil
}
