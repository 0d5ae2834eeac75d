// Package pages loads page body fragments produced by an external renderer.
package pages

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	g "maragu.dev/gomponents"
)

const fragmentExt = ".html"

// ErrDuplicateRoute is returned when two fragments resolve to the same route.
var ErrDuplicateRoute = errors.New("duplicate page route")

// Page is one routable body fragment.
type Page struct {
	Route  string // e.g. "/", "/about", "/docs/intro"
	Source string // path of the fragment file
	Raw    []byte // fragment bytes as produced
}

// Body returns the fragment as a node that renders its bytes verbatim.
func (p Page) Body() g.Node {
	return g.Raw(string(p.Raw))
}

// Load reads every *.html fragment under dir, sorted by route.
// Two fragments mapping to one route (about.html and about/index.html) is an error.
func Load(dir string) ([]Page, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open pages directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("pages path %s is not a directory", dir)
	}

	var result []Page
	sources := make(map[string]string)
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(p) != fragmentExt {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		route := RouteFor(filepath.ToSlash(rel))
		if prev, ok := sources[route]; ok {
			return fmt.Errorf("%w: %s and %s both map to %s", ErrDuplicateRoute, prev, p, route)
		}
		sources[route] = p

		raw, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read fragment %s: %w", p, err)
		}
		result = append(result, Page{
			Route:  route,
			Source: p,
			Raw:    raw,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Route < result[j].Route })
	return result, nil
}

// LoadFile reads a single fragment and routes it as "/".
func LoadFile(p string) (Page, error) {
	raw, err := os.ReadFile(p)
	if err != nil {
		return Page{}, fmt.Errorf("failed to read fragment: %w", err)
	}
	return Page{Route: "/", Source: p, Raw: raw}, nil
}

// RouteFor maps a slash-separated fragment path relative to the pages root
// to its route: index.html -> "/", docs/index.html -> "/docs", about.html -> "/about".
func RouteFor(rel string) string {
	rel = strings.TrimSuffix(rel, fragmentExt)
	if rel == "index" {
		return "/"
	}
	rel = strings.TrimSuffix(rel, "/index")
	return path.Clean("/" + rel)
}

// OutputPath is where a route's document lands under an output directory.
func OutputPath(outputDir, route string) string {
	if route == "/" {
		return filepath.Join(outputDir, "index.html")
	}
	return filepath.Join(outputDir, filepath.FromSlash(strings.TrimPrefix(route, "/")), "index.html")
}

// Index maps routes to pages.
func Index(list []Page) map[string]Page {
	m := make(map[string]Page, len(list))
	for _, p := range list {
		m[p.Route] = p
	}
	return m
}
