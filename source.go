package jaundice

import (
	"net/url"
	"strings"
)

// Source identifies a news site by the host portion of its article URLs.
// It is used purely as a routing key into the extractor registry.
type Source string

// SourceFromURL derives a Source from a raw article URL. The host is
// lowercased with any port and leading "www." stripped, so
// "https://WWW.Inosmi.ru:443/x" and "https://inosmi.ru/y" route the same.
func SourceFromURL(rawURL string) (Source, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if host == "" {
		return "", Errorf(EINVALID, "URL %q has no host", rawURL)
	}

	return Source(host), nil
}
