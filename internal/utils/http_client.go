package utils

import (
	"net/http"
	"net/http/cookiejar"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance with a
// default-configured underlying resty.Client and an in-memory cookie jar.
// The jar carries the backend's refresh/session and CSRF cookies across
// requests, the equivalent of a browser's credentials:include mode.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and cookie state.
func NewHTTPClient() *HTTPClient {
	client := resty.New()

	// resty installs no jar by default; without one the refresh-token
	// cookie set by login would be dropped between calls.
	if jar, err := cookiejar.New(nil); err == nil {
		client.SetCookieJar(jar)
	}

	return &HTTPClient{Client: client}
}

// Cookie returns the value of the named cookie currently stored in the
// client's jar for rawURL, or "" if the jar holds no such cookie.
func (c *HTTPClient) Cookie(rawURL, name string) string {
	jar := c.GetClient().Jar
	if jar == nil {
		return ""
	}

	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return ""
	}

	for _, ck := range jar.Cookies(req.URL) {
		if ck.Name == name {
			return ck.Value
		}
	}
	return ""
}
