package vitrine

// LocatorKind selects what a locator reads from a matched element.
type LocatorKind string

// Locator kinds.
const (
	// LocatorText reads the element's text content.
	LocatorText LocatorKind = "text"

	// LocatorAttr reads a named attribute value.
	LocatorAttr LocatorKind = "attr"

	// LocatorHTML reads the element's inner HTML. Extractors convert
	// it to markdown before normalization when a Converter is wired.
	LocatorHTML LocatorKind = "html"
)

// Locator is a single rule for resolving one semantic field: a CSS
// selector plus what to read from the first matched element. Applied to
// a document or fragment it yields zero or one string value.
type Locator struct {
	Selector string
	Kind     LocatorKind
	Attr     string // attribute name, only when Kind is LocatorAttr
}

// Text returns a text-content locator for the selector.
func Text(selector string) Locator {
	return Locator{Selector: selector, Kind: LocatorText}
}

// Attr returns an attribute locator for the selector.
func Attr(selector, name string) Locator {
	return Locator{Selector: selector, Kind: LocatorAttr, Attr: name}
}

// HTML returns an inner-HTML locator for the selector.
func HTML(selector string) Locator {
	return Locator{Selector: selector, Kind: LocatorHTML}
}

// Chain is an ordered list of locators for one semantic field.
// Order encodes preference: earlier entries target newer or more
// specific markup, later entries are broad legacy fallbacks.
// Evaluation is short-circuiting: the first locator that yields a
// non-empty value wins, and partial matches are never merged across
// locators.
type Chain []Locator

// FieldChains holds one chain per product field for a single page type.
type FieldChains struct {
	Name        Chain
	Price       Chain
	Code        Chain
	Description Chain
	Image       Chain
	Link        Chain
}

// Profile describes how one storefront lays out its pages: which URL
// and markup markers identify a single-product page, which selectors
// enumerate listing item fragments, and the per-field locator chains
// for both page types.
//
// Profiles are plain data consumed fresh on every extraction; the
// engine holds no state between documents.
type Profile struct {
	// Name identifies the profile in logs.
	Name string

	// Host is the storefront host this profile targets, empty for the
	// generic fallback.
	Host string

	// Currency is the symbol prefixed to normalized prices.
	Currency string

	// ProductPathMarker is a URL path segment that marks single product
	// pages, following the storefront's path convention.
	ProductPathMarker string

	// ProductMarkers are selectors unique to single-product layouts,
	// checked when the URL is inconclusive.
	ProductMarkers []string

	// ItemContainers enumerate listing item fragments. Candidates are
	// evaluated in priority order and the first one matching at least
	// one fragment wins; candidates are never unioned.
	ItemContainers []string

	// Product holds the field chains for single-product pages,
	// evaluated against the whole document.
	Product FieldChains

	// Listing holds the field chains for listing pages, evaluated
	// against each item fragment.
	Listing FieldChains
}

// ProfileRegistry resolves the selector profile for a storefront host,
// falling back to a generic profile for unknown hosts.
type ProfileRegistry interface {
	// Get returns the profile for the host. Never returns nil.
	Get(host string) *Profile

	// Register adds or replaces the profile for its Host.
	Register(profile *Profile)
}

// DefaultProfile returns the selector profile for Magento-style
// storefronts. Chains are ordered newest markup first with broad
// legacy fallbacks last.
func DefaultProfile() *Profile {
	return &Profile{
		Name:              "magento",
		Currency:          "R$",
		ProductPathMarker: "p",
		ProductMarkers: []string{
			".product-info-main",
			".catalog-product-view",
		},
		ItemContainers: []string{
			"li.item.product.product-item",
			".products-grid .product-item",
			"ol.products.list.items > li",
		},
		Product: FieldChains{
			Name: Chain{
				Text(".page-title .base"),
				Text("h1.page-title"),
				Text(".product-info-main h1"),
			},
			Price: Chain{
				Text(".product-info-main [data-price-type='finalPrice'] .price"),
				Text(".product-info-price .price"),
				Text(".price"),
			},
			Code: Chain{
				Text(".product.attribute.sku .value"),
				Text(".product-info-main [itemprop='sku']"),
				Attr("[data-product-id]", "data-product-id"),
			},
			Description: Chain{
				HTML(".product.attribute.description .value"),
				HTML(".product-info-main .overview"),
				Text("#description"),
			},
			Image: Chain{
				Attr(".gallery-placeholder img", "src"),
				Attr("img.fotorama__img", "src"),
				Attr("meta[property='og:image']", "content"),
			},
			Link: Chain{
				Attr("link[rel='canonical']", "href"),
				Attr("meta[property='og:url']", "content"),
			},
		},
		Listing: FieldChains{
			Name: Chain{
				Text(".product-item-link"),
				Text(".product-item-name a"),
				Text(".product-name a"),
			},
			Price: Chain{
				Text("[data-price-type='finalPrice'] .price"),
				Text(".price-box .price"),
				Text(".price"),
			},
			Code: Chain{
				Attr("[data-product-id]", "data-product-id"),
				Attr(".price-box", "data-product-id"),
			},
			Description: Chain{
				Text(".product-item-description"),
				Text(".product-item-details .description"),
			},
			Image: Chain{
				Attr("img.product-image-photo", "src"),
				Attr(".product-image-wrapper img", "src"),
				Attr("img", "data-src"),
			},
			Link: Chain{
				Attr("a.product-item-link", "href"),
				Attr("a.product-item-photo", "href"),
			},
		},
	}
}
