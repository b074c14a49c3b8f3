package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// WithCredential injects the store access key as the password of the
// connection URL, keeping any user already present.
func WithCredential(baseURL, key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("store access key must be non-empty")
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid store URL: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("invalid store URL scheme %q", u.Scheme)
	}

	user := "postgres"
	if u.User != nil && u.User.Username() != "" {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, key)

	return u.String(), nil
}

// RedactURL hides the password of a connection URL for logging.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	return u.Redacted()
}
