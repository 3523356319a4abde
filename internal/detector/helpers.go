package detector

import "net/url"

// hostOf extracts the hostname from a URL, or returns an empty string
// when the URL does not parse.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
