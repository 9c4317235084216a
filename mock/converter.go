package mock

import "github.com/vvduth/studydoc"

var _ studydoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of studydoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
