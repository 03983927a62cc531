package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rmaia/vitrine"
)

// Ensure Classifier implements vitrine.Classifier at compile time.
var _ vitrine.Classifier = (*Classifier)(nil)

// Classifier decides whether a page is a single-product or listing
// layout. The decision policy, first match wins:
//
//  1. the URL path contains the profile's single-product marker segment,
//  2. the document contains a marker element unique to product layouts,
//  3. otherwise the page is a listing.
//
// This is a heuristic: a wrong pick degrades to an empty result set in
// the extractor, never a failure.
type Classifier struct {
	profiles vitrine.ProfileRegistry
}

// NewClassifier creates a Classifier resolving profiles from the registry.
func NewClassifier(profiles vitrine.ProfileRegistry) *Classifier {
	return &Classifier{profiles: profiles}
}

// Classify returns the page type for the (sourceURL, html) pair.
// Deterministic and stateless: identical inputs always classify the same.
func (c *Classifier) Classify(sourceURL string, html string) vitrine.PageType {
	profile := c.profiles.Get(hostOf(sourceURL))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return vitrine.PageListing
	}
	return classify(sourceURL, doc, profile)
}

// classify applies the decision policy to an already parsed document.
func classify(sourceURL string, doc *goquery.Document, profile *vitrine.Profile) vitrine.PageType {
	if hasPathSegment(sourceURL, profile.ProductPathMarker) {
		return vitrine.PageProduct
	}
	for _, marker := range profile.ProductMarkers {
		if doc.Find(marker).Length() > 0 {
			return vitrine.PageProduct
		}
	}
	return vitrine.PageListing
}

// hasPathSegment reports whether the URL path contains segment exactly.
func hasPathSegment(rawURL, segment string) bool {
	if segment == "" {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	for _, s := range strings.Split(u.Path, "/") {
		if s == segment {
			return true
		}
	}
	return false
}
