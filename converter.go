package vitrine

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown. Used for
	// fields whose locators read inner HTML, such as rich product
	// descriptions.
	Convert(html string) (string, error)
}
