// Package goquery implements the vitrine extraction engine using CSS
// selectors. Selector chains are plain data walked by a single generic
// locator function; the extractor classifies each page and dispatches
// to the single-product or listing strategy.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rmaia/vitrine"
)

// locate evaluates a chain against scope in order and returns the first
// locator yielding a non-empty match, together with the element it
// matched. Locators that fail to evaluate or resolve to empty values
// are skipped; no match returns ok=false.
func locate(scope *goquery.Selection, chain vitrine.Chain) (sel *goquery.Selection, loc vitrine.Locator, ok bool) {
	for _, l := range chain {
		match := scope.Find(l.Selector).First()
		if match.Length() == 0 {
			continue
		}

		var value string
		if l.Kind == vitrine.LocatorAttr {
			value, _ = match.Attr(l.Attr)
		} else {
			value = match.Text()
		}
		if strings.TrimSpace(value) == "" {
			continue
		}
		return match, l, true
	}
	return nil, vitrine.Locator{}, false
}

// resolveRef resolves a possibly relative reference against the source
// URL. Unparseable references pass through unchanged.
func resolveRef(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || base == nil {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}

// hostOf extracts the host from a raw URL, empty if unparseable.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
