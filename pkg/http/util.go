package http

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildURL joins baseURL with path and encodes query. Any path already on
// baseURL is kept as a prefix.
func BuildURL(baseURL, path string, query url.Values) (string, error) {
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("error parsing base URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("base URL must be absolute: %q", baseURL)
	}

	parsedURL.Path = strings.TrimSuffix(parsedURL.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	parsedURL.RawQuery = query.Encode()

	return parsedURL.String(), nil
}

// redactQuery drops the query string so log lines never carry search terms
// or record ids supplied by tenants.
func redactQuery(rawURL string) string {
	if i := strings.IndexByte(rawURL, '?'); i >= 0 {
		return rawURL[:i]
	}
	return rawURL
}
