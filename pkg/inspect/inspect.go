// Package inspect reads a rendered document back and reports its shell properties.
package inspect

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"github.com/dtnitsch/skillshell/models"
)

// Report describes a document as a browser would see it.
type Report struct {
	URL        string   `yaml:"url,omitempty"`
	Lang       string   `yaml:"lang"`
	RootClass  string   `yaml:"root_class,omitempty"`
	BodyClass  string   `yaml:"body_class,omitempty"`
	ThemeColor string   `yaml:"theme_color"`
	Icon       string   `yaml:"icon"`
	Stylesheet string   `yaml:"stylesheet,omitempty"`
	Title      string   `yaml:"title"`
	Desc       string   `yaml:"description,omitempty"`
	Keywords   []string `yaml:"keywords,omitempty"`
	Authors    []string `yaml:"authors,omitempty"`
	Viewport   string   `yaml:"viewport,omitempty"`

	BodyNodes int    `yaml:"body_nodes"`
	BodyText  string `yaml:"body_text,omitempty"`
	BodyHTML  string `yaml:"-"`

	// Reader-mode view (go-readability)
	ReaderExcerpt string `yaml:"reader_excerpt,omitempty"`
	ReaderFavicon string `yaml:"reader_favicon,omitempty"`
	ReaderError   string `yaml:"reader_error,omitempty"`
}

// Document parses r and builds a Report. pageURL resolves relative links for
// the reader-mode view; when empty, links resolve against http://localhost/.
func Document(r io.Reader, pageURL string) (*Report, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	rep := FromDocument(doc)
	rep.URL = pageURL
	rep.readerView(raw, pageURL)
	return rep, nil
}

// FromDocument builds a Report from an already parsed document, without the reader view.
func FromDocument(doc *goquery.Document) *Report {
	rep := &Report{}

	root := doc.Find("html").First()
	rep.Lang, _ = root.Attr("lang")
	rep.RootClass, _ = root.Attr("class")

	head := doc.Find("head")
	rep.ThemeColor = metaContent(head, "theme-color")
	rep.Desc = metaContent(head, "description")
	rep.Viewport = metaContent(head, "viewport")
	if kw := metaContent(head, "keywords"); kw != "" {
		for _, k := range strings.Split(kw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				rep.Keywords = append(rep.Keywords, k)
			}
		}
	}
	head.Find(`meta[name="author"]`).Each(func(i int, s *goquery.Selection) {
		if v, ok := s.Attr("content"); ok {
			rep.Authors = append(rep.Authors, v)
		}
	})
	rep.Icon, _ = head.Find(`link[rel="icon"]`).First().Attr("href")
	rep.Stylesheet, _ = head.Find(`link[rel="stylesheet"]`).First().Attr("href")
	rep.Title = normalizeText(head.Find("title").First().Text())

	body := doc.Find("body").First()
	rep.BodyClass, _ = body.Attr("class")
	rep.BodyNodes = body.Contents().Length()
	rep.BodyText = normalizeText(body.Text())
	rep.BodyHTML, _ = body.Html()

	return rep
}

// readerView records what a reader-mode client extracts. Failures are reported, not returned.
func (rep *Report) readerView(raw []byte, pageURL string) {
	parsedURL := &url.URL{Scheme: "http", Host: "localhost", Path: "/"}
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil {
			rep.ReaderError = err.Error()
			return
		}
		parsedURL = u
	}

	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(raw), parsedURL)
	if err != nil {
		rep.ReaderError = err.Error()
		return
	}
	rep.ReaderExcerpt = normalizeText(article.Excerpt)
	rep.ReaderFavicon = article.Favicon
}

// Problems lists every way the document deviates from the site shell.
func (rep *Report) Problems() []string {
	var problems []string
	if rep.Lang != models.Lang {
		problems = append(problems, fmt.Sprintf("lang is %q, want %q", rep.Lang, models.Lang))
	}
	if !strings.EqualFold(rep.ThemeColor, models.ThemeColor) {
		problems = append(problems, fmt.Sprintf("theme-color is %q, want %q", rep.ThemeColor, models.ThemeColor))
	}
	if rep.Icon != models.IconHref {
		problems = append(problems, fmt.Sprintf("icon is %q, want %q", rep.Icon, models.IconHref))
	}
	if rep.Title == "" {
		problems = append(problems, "title is empty")
	}
	return problems
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}

func metaContent(head *goquery.Selection, name string) string {
	v, _ := head.Find(`meta[name="` + name + `"]`).First().Attr("content")
	return v
}
