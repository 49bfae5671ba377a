package sanitizer

import (
	"net/url"
	"strings"
)

// NormalizeImageURL canonicalizes session and captain image URLs: HTTPS
// enforced, host lowercased, tracking query parameters stripped. Invalid
// URLs normalize to the empty string; images are optional everywhere.
func NormalizeImageURL(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return ""
	}

	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		s = "https://" + s
	}
	s = strings.Replace(s, "http://", "https://", 1)

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return ""
	}

	u.Host = strings.ToLower(u.Host)
	u.Path = strings.TrimSuffix(u.Path, "/")

	q := u.Query()
	cleaned := url.Values{}
	for key, values := range q {
		if strings.HasPrefix(strings.ToLower(key), "utm_") {
			continue
		}
		for _, v := range values {
			if v != "" {
				cleaned.Add(key, v)
			}
		}
	}
	u.RawQuery = cleaned.Encode()

	return u.String()
}
