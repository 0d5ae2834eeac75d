// Package language detects the natural language of page content so builds can
// flag pages whose text does not match the document's fixed lang attribute.
package language

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pemistahl/lingua-go"
)

// minTextLen is the shortest text worth classifying; shorter input reports "".
const minTextLen = 20

var supported = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Japanese,
	lingua.Chinese,
}

// Detector is safe for concurrent use.
type Detector struct {
	detector lingua.LanguageDetector
}

func NewDetector() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(supported...).
			WithMinimumRelativeDistance(0.1).
			Build(),
	}
}

// Detect returns the lower-case ISO 639-1 code of text, or "" when the text is
// too short or no language is confidently detected.
func (d *Detector) Detect(text string) string {
	text = strings.TrimSpace(text)
	if len(text) < minTextLen {
		return ""
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}

// DetectHTML detects the language of the visible text in an HTML fragment.
func (d *Detector) DetectHTML(fragment []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("failed to parse fragment: %w", err)
	}
	doc.Find("script,style").Remove()
	return d.Detect(doc.Text()), nil
}

// Matches reports whether detected agrees with lang. Undetected text always matches.
func Matches(detected, lang string) bool {
	return detected == "" || strings.EqualFold(detected, lang)
}
