// Package httpserver constructs the process's HTTP server so every binary
// serves with the same timeout settings.
package httpserver

import (
	"net/http"
	"time"
)

// New returns an http.Server for addr. ReadHeaderTimeout bounds slow-header
// clients; per-request deadlines are the middleware chain's job.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
