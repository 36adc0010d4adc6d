// Package summitsweb provides the embedded templates and static assets.
package summitsweb

import (
	"embed"
	"io/fs"
)

//go:embed all:web/templates
var templateFS embed.FS

//go:embed all:web/static
var staticFS embed.FS

// Templates returns the page templates rooted at web/templates.
func Templates() fs.FS {
	sub, err := fs.Sub(templateFS, "web/templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Static returns the static assets rooted at web/static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "web/static")
	if err != nil {
		panic(err)
	}
	return sub
}
