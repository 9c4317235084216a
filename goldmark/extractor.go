// Package goldmark renders Markdown documents to plain text.
package goldmark

import (
	"bytes"
	"context"
	"os"
	"strings"

	"github.com/vvduth/studydoc"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var _ studydoc.Extractor = (*Extractor)(nil)

// Extractor implements studydoc.Extractor for Markdown files.
type Extractor struct {
	md goldmark.Markdown
}

// NewExtractor creates a new Extractor parsing GitHub Flavored Markdown.
func NewExtractor() *Extractor {
	return &Extractor{md: newMarkdown()}
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(goldmark.WithExtensions(extension.GFM))
}

// Extract reads the Markdown file at path and returns its plain text.
// The first heading becomes the title.
func (e *Extractor) Extract(ctx context.Context, path, contentType string) (*studydoc.Extraction, error) {
	if contentType != studydoc.ContentTypeMarkdown {
		return nil, studydoc.Errorf(studydoc.EINVALID, "markdown extractor cannot read %s", contentType)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	plain, title, err := render(e.md, src)
	if err != nil {
		return nil, err
	}

	return &studydoc.Extraction{Text: plain, Title: title, NumPages: 1}, nil
}

// Plain renders markdown as plain text, one block per line.
func Plain(markdown string) string {
	plain, _, err := render(newMarkdown(), []byte(markdown))
	if err != nil {
		return markdown
	}
	return plain
}

// plainWriter accumulates text, keeping one line per block.
type plainWriter struct {
	buf strings.Builder
}

func (w *plainWriter) write(b []byte) {
	w.buf.Write(b)
}

func (w *plainWriter) endBlock() {
	s := w.buf.String()
	if s != "" && !strings.HasSuffix(s, "\n") {
		w.buf.WriteByte('\n')
	}
}

func render(md goldmark.Markdown, src []byte) (string, string, error) {
	doc := md.Parser().Parse(text.NewReader(src))

	var w plainWriter
	var title string
	headingStart := -1

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				w.write(node.Segment.Value(src))
				switch {
				case node.HardLineBreak():
					w.endBlock()
				case node.SoftLineBreak():
					w.write([]byte(" "))
				}
			}
		case *ast.String:
			if entering {
				w.write(node.Value)
			}
		case *ast.AutoLink:
			if entering {
				w.write(node.Label(src))
			}
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			if entering {
				lines := n.Lines()
				for i := 0; i < lines.Len(); i++ {
					seg := lines.At(i)
					w.write(bytes.TrimRight(seg.Value(src), "\r\n"))
					w.endBlock()
				}
			}
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Heading:
			if entering {
				w.endBlock()
				headingStart = w.buf.Len()
				return ast.WalkContinue, nil
			}
			if title == "" && headingStart >= 0 {
				title = strings.TrimSpace(w.buf.String()[headingStart:])
			}
			w.endBlock()
		case *ast.Paragraph, *ast.TextBlock, *east.TableRow, *east.TableHeader:
			if !entering {
				w.endBlock()
			}
		case *east.TableCell:
			if !entering {
				w.write([]byte(" "))
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", "", err
	}

	return strings.TrimSpace(w.buf.String()), title, nil
}
