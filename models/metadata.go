// Package models defines the page metadata record, shell constants and configuration.
package models

import "strings"

// Shell-wide constants applied to every document.
const (
	Lang       = "en"
	RootClass  = "scroll-smooth"
	BodyClass  = "antialiased"
	IconHref   = "/favicon.ico"
	ThemeColor = "#FF4444"
	StyleHref  = "/globals.css"
)

// Author names a person or team credited for the site.
type Author struct {
	Name string `json:"name" yaml:"name"`
}

// PageMetadata is the descriptive data attached to every page.
// Values are passed by copy; use Clone when handing slices to other code.
type PageMetadata struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
	Authors     []Author `json:"authors" yaml:"authors"`
	Viewport    string   `json:"viewport" yaml:"viewport"`
}

var defaultMetadata = PageMetadata{
	Title:       "Anoma Skills - Decentralized Skill Exchange",
	Description: "Connect with peers to teach and learn skills through Anoma's intent-based matching system. Decentralized, secure, and powered by blockchain technology.",
	Keywords:    []string{"anoma", "skills", "blockchain", "decentralized", "learning", "teaching", "web3"},
	Authors:     []Author{{Name: "Anoma Skills Team"}},
	Viewport:    "width=device-width, initial-scale=1",
}

// DefaultMetadata returns the site metadata record.
// Each call returns an independent copy, so callers cannot alter the shared value.
func DefaultMetadata() PageMetadata {
	return defaultMetadata.Clone()
}

// Clone returns a deep copy of m.
func (m PageMetadata) Clone() PageMetadata {
	out := m
	if m.Keywords != nil {
		out.Keywords = append([]string(nil), m.Keywords...)
	}
	if m.Authors != nil {
		out.Authors = append([]Author(nil), m.Authors...)
	}
	return out
}

// Merge returns a copy of m with every non-empty field of override applied.
func (m PageMetadata) Merge(override PageMetadata) PageMetadata {
	out := m.Clone()
	if s := strings.TrimSpace(override.Title); s != "" {
		out.Title = s
	}
	if s := strings.TrimSpace(override.Description); s != "" {
		out.Description = s
	}
	if len(override.Keywords) > 0 {
		out.Keywords = append([]string(nil), override.Keywords...)
	}
	if len(override.Authors) > 0 {
		out.Authors = append([]Author(nil), override.Authors...)
	}
	if s := strings.TrimSpace(override.Viewport); s != "" {
		out.Viewport = s
	}
	return out
}

// Equal reports whether m and other hold the same values.
func (m PageMetadata) Equal(other PageMetadata) bool {
	if m.Title != other.Title || m.Description != other.Description || m.Viewport != other.Viewport {
		return false
	}
	if len(m.Keywords) != len(other.Keywords) || len(m.Authors) != len(other.Authors) {
		return false
	}
	for i := range m.Keywords {
		if m.Keywords[i] != other.Keywords[i] {
			return false
		}
	}
	for i := range m.Authors {
		if m.Authors[i] != other.Authors[i] {
			return false
		}
	}
	return true
}

// KeywordList joins the keywords in order, the way they appear in the keywords meta tag.
func (m PageMetadata) KeywordList() string {
	return strings.Join(m.Keywords, ",")
}
