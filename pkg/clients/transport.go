package clients

import (
	"net"
	"net/http"
	"time"
)

// DefaultTransport returns a configured HTTP transport with connection
// limits. Both upstream APIs this job talks to are called strictly in
// sequence, so the limits mostly matter when a retry storm and a slow
// remote coincide.
func DefaultTransport() *http.Transport {
	return &http.Transport{
		// Cap concurrent connections to any single host
		MaxConnsPerHost: 10,

		// Keep a couple of connections warm across paginated queries
		MaxIdleConnsPerHost: 2,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,

		// Connection establishment timeouts
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,

		TLSHandshakeTimeout: 10 * time.Second,
	}
}
