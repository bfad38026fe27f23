// Package web embeds static assets for the DeskRemote UI.
package web

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed static
var embeddedFS embed.FS

// Required lists the files every asset directory must provide.
var Required = []string{"index.html", "manifest.json", "script.js"}

// StaticFS returns the embedded static asset filesystem.
func StaticFS() (fs.FS, error) {
	return fs.Sub(embeddedFS, "static")
}

// Verify reports the first required asset missing from fsys.
func Verify(fsys fs.FS) error {
	for _, name := range Required {
		if _, err := fs.Stat(fsys, name); err != nil {
			return fmt.Errorf("static asset %s: %w", name, err)
		}
	}
	return nil
}
