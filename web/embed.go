// Package web embeds the HTML templates and static assets served by the site.
package web

import "embed"

// Templates holds templates/*.html. Each file is parsed under its base name.
//
//go:embed templates/*.html
var Templates embed.FS

// Static holds the files served under /static/.
//
//go:embed static
var Static embed.FS
