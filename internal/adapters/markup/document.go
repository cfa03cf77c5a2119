// Package markup holds every assumption about the polling site's HTML. The
// browser adapter feeds it page snapshots and element attributes; nothing
// outside this package knows what a poll looks like.
package markup

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bnema/webclicker/internal/domain"
)

type Document struct {
	doc       *goquery.Document
	selectors domain.Selectors
}

func Parse(html string, selectors domain.Selectors) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse page html: %w", err)
	}

	return &Document{doc: doc, selectors: selectors.WithDefaults()}, nil
}

// PollActive reports whether the page shows a poll. The no-poll indicator
// wins over any answer elements left in the DOM.
func (d *Document) PollActive() bool {
	if d.ShowsNoPoll() {
		return false
	}
	return d.ChoiceCount() > 0
}

func (d *Document) ShowsNoPoll() bool {
	needle := strings.TrimSpace(d.selectors.NoPollText)
	if needle == "" {
		return false
	}

	found := false
	d.doc.Find("body, body *").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		switch goquery.NodeName(s) {
		case "script", "style", "noscript", "template":
			return true
		}
		s.Contents().EachWithBreak(func(_ int, c *goquery.Selection) bool {
			if goquery.NodeName(c) == "#text" && strings.Contains(c.Text(), needle) {
				found = true
				return false
			}
			return true
		})
		return !found
	})

	return found
}

func (d *Document) ChoiceCount() int {
	if n := d.doc.Find(ChoiceSelector(d.selectors)).Length(); n > 0 {
		return n
	}

	count := 0
	d.doc.Find("button").Each(func(_ int, s *goquery.Selection) {
		if d.selectors.IsChoiceLabel(strings.TrimSpace(s.Text())) {
			count++
		}
	})
	return count
}

// HasLoginForm looks for a password input anywhere on the page, or an input
// whose name mentions a password.
func (d *Document) HasLoginForm() bool {
	if d.doc.Find(`input[type="password"]`).Length() > 0 {
		return true
	}

	found := false
	d.doc.Find("input").EachWithBreak(func(_ int, in *goquery.Selection) bool {
		if name, ok := in.Attr("name"); ok && strings.Contains(strings.ToLower(name), "password") {
			found = true
			return false
		}
		return true
	})
	return found
}

func ChoiceSelector(selectors domain.Selectors) string {
	return strings.Join(selectors.WithDefaults().ChoiceCSS, ", ")
}
