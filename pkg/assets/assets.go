// Package assets embeds the static files every page references from its head.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"mime"
	"path"
)

const (
	Favicon    = "favicon.ico"
	Stylesheet = "globals.css"
)

//go:embed static/favicon.ico static/globals.css
var staticFS embed.FS

// FS returns the asset root, with files at top level (favicon.ico, globals.css).
func FS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static/ is compiled in, so Sub cannot fail.
		panic(err)
	}
	return sub
}

// Names lists the embedded asset file names.
func Names() []string {
	return []string{Favicon, Stylesheet}
}

// Read returns the bytes of the named asset.
func Read(name string) ([]byte, error) {
	data, err := fs.ReadFile(FS(), name)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset %s: %w", name, err)
	}
	return data, nil
}

// ContentType returns the MIME type served for the named asset.
func ContentType(name string) string {
	switch path.Ext(name) {
	case ".ico":
		return "image/x-icon"
	case ".css":
		return "text/css; charset=utf-8"
	}
	if t := mime.TypeByExtension(path.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}
