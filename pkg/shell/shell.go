// Package shell renders the outermost HTML document that wraps every page.
package shell

import (
	"bytes"
	"io"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive,staticcheck

	"github.com/dtnitsch/skillshell/models"
)

// Layout wraps children in the site document using meta for the head.
// Children are placed in the body in order, without any wrapper element.
func Layout(meta models.PageMetadata, children ...g.Node) g.Node {
	return Doctype(
		HTML(Lang(models.Lang), Class(models.RootClass),
			Head(
				Meta(Charset("utf-8")),
				TitleEl(g.Text(meta.Title)),
				metaTag("description", meta.Description),
				metaTag("keywords", meta.KeywordList()),
				g.Map(meta.Authors, func(a models.Author) g.Node {
					return metaTag("author", a.Name)
				}),
				metaTag("viewport", meta.Viewport),
				Link(Rel("stylesheet"), Href(models.StyleHref)),
				Link(Rel("icon"), Href(models.IconHref)),
				Meta(Name("theme-color"), Content(models.ThemeColor)),
			),
			Body(Class(models.BodyClass),
				g.Group(children),
			),
		),
	)
}

// RootLayout is Layout with the default site metadata.
func RootLayout(children ...g.Node) g.Node {
	return Layout(models.DefaultMetadata(), children...)
}

// Render writes the document for children to w.
func Render(w io.Writer, meta models.PageMetadata, children ...g.Node) error {
	return Layout(meta, children...).Render(w)
}

// Bytes renders the document into memory.
func Bytes(meta models.PageMetadata, children ...g.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, meta, children...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// metaTag omits empty values so an unset field does not produce an empty tag.
func metaTag(name, value string) g.Node {
	if value == "" {
		return nil
	}
	return Meta(Name(name), Content(value))
}
