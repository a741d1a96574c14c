// Package web holds the embedded HTML templates. Static assets are served
// from disk so the download-assets command can drop the Leaflet bundle in
// without a rebuild.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
