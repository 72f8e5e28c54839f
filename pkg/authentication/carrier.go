// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net"
	"net/http"
)

// HTTPCarrier reads credentials off an *http.Request.
type HTTPCarrier struct {
	r *http.Request
}

func (c *HTTPCarrier) Header(name string) string {
	return c.r.Header.Get(name)
}

func (c *HTTPCarrier) Cookie(name string) (string, bool) {
	cookie, err := c.r.Cookie(name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// RemoteAddr is the client address without the port, as set by chi's
// RealIP middleware when running behind a proxy.
func (c *HTTPCarrier) RemoteAddr() string {
	host, _, err := net.SplitHostPort(c.r.RemoteAddr)
	if err != nil {
		return c.r.RemoteAddr
	}
	return host
}

func NewHTTPCarrier(r *http.Request) *HTTPCarrier {
	return &HTTPCarrier{r: r}
}
