// Package web holds the HTML templates served by cmd/server.
package web

import "embed"

// Templates contains layout.html and the page templates rendered inside it.
//
//go:embed templates/*.html
var Templates embed.FS
