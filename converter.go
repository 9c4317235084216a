package studydoc

// Converter turns the main content of a web page into Markdown, which is
// then flattened to the plain text that gets chunked.
type Converter interface {
	// Convert transforms clean HTML into Markdown.
	// Returns EINVALID for empty input.
	Convert(html string) (string, error)
}
