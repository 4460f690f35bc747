package sitecrawl

import "context"

// SessionProfile carries the request-identity signals assigned to a static
// fetch session: baseline headers, a browser user agent, and an optional
// proxy endpoint. A fresh profile is generated per session.
type SessionProfile struct {
	UserAgent string
	Headers   map[string]string

	// Proxy is the assigned proxy endpoint, empty when no proxies are
	// configured.
	Proxy string
}

// Viewport is a browser window size.
type Viewport struct {
	Width  int
	Height int
}

// RenderProfile carries the identity signals for a headless-browser session.
// Transport (proxying) is handled by the browser itself, so there is no
// proxy field.
type RenderProfile struct {
	UserAgent string
	Viewport  Viewport
	Headers   map[string]string
}

// ProfileProvider generates evasion profiles and paces requests.
type ProfileProvider interface {
	// SessionProfile assembles a profile for a static HTTP session.
	SessionProfile() SessionProfile

	// RenderProfile assembles a profile for a headless-browser session.
	RenderProfile() RenderProfile

	// MarkProxyFailed records a proxy endpoint as unusable for the rest of
	// the run. Unknown endpoints are ignored.
	MarkProxyFailed(endpoint string)

	// Delay pauses for a random politeness interval before the next
	// request. It returns immediately when delays are disabled and returns
	// the context error if canceled mid-wait.
	Delay(ctx context.Context) error
}
