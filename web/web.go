// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package web holds the landing page and its static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed index.html public
var content embed.FS

// IndexHTML returns the landing page.
func IndexHTML() ([]byte, error) {
	return content.ReadFile("index.html")
}

// Public is the asset tree served under the site root.
func Public() fs.FS {
	sub, err := fs.Sub(content, "public")
	if err != nil {
		panic(err)
	}
	return sub
}
