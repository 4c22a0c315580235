package parser

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Noise passes run in order. Later passes catch ancestors that only became
// empty once their noisy children were removed.
var noisePasses = []string{
	"pre,code,#Quick_Links,div.bc-data,div.hidden,table.standard-table,h2,a,li:empty,p:empty",
	"li:empty,p:empty",
	"ul:empty",
}

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// textEscaper re-escapes only what would otherwise read as markup. Quotes and
// apostrophes stay raw.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// rawTextElements hold text that is never entity-escaped.
var rawTextElements = map[string]bool{
	"iframe": true, "noembed": true, "noframes": true, "noscript": true,
	"plaintext": true, "script": true, "style": true, "xmp": true,
}

// Parser turns document markup into the plain text fed to language detection.
type Parser struct {
	extra []string
}

// NewParser returns a Parser that also removes the extra CSS selectors in its
// first pass. An extra selector that does not compile is an error.
func NewParser(extra ...string) (*Parser, error) {
	p := &Parser{}
	for _, sel := range extra {
		sel = strings.TrimSpace(sel)
		if sel == "" {
			continue
		}
		if _, err := cascadia.ParseGroup(sel); err != nil {
			return nil, fmt.Errorf("invalid noise selector %q: %w", sel, err)
		}
		p.extra = append(p.extra, sel)
	}
	return p, nil
}

// PlainText strips noise elements and markup from markup. The whole parsed
// document is kept, so stray closing tags lose nothing. "&", "<" and ">" come
// out escaped, quotes raw, and the result is trimmed.
func (p *Parser) PlainText(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("failed to parse markup: %w", err)
	}

	for i, selector := range noisePasses {
		doc.Find(selector).Remove()
		if i == 0 {
			for _, sel := range p.extra {
				doc.Find(sel).Remove()
			}
		}
	}

	var b strings.Builder
	for _, n := range doc.Nodes {
		writeText(&b, n)
	}
	return strings.TrimSpace(tagPattern.ReplaceAllString(b.String(), "")), nil
}

// writeText appends the text nodes under n in document order.
func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if n.Parent != nil && n.Parent.Type == html.ElementNode && rawTextElements[n.Parent.Data] {
			b.WriteString(n.Data)
		} else {
			b.WriteString(textEscaper.Replace(n.Data))
		}
		return
	case html.CommentNode, html.DoctypeNode:
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
}

// LongEnough reports whether text carries at least min characters.
func LongEnough(text string, min int) bool {
	return utf8.RuneCountInString(text) >= min
}
