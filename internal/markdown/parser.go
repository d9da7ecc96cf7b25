package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"go.abhg.dev/goldmark/frontmatter"
)

// Document is a rendered markdown file and its frontmatter.
type Document struct {
	HTML []byte
	Meta Meta
}

type Meta map[string]any

func (m Meta) String(key string) (string, bool) {
	v, ok := m[key].(string)
	return v, ok && v != ""
}

// Int accepts both YAML integers and floats.
func (m Meta) Int(key string) (int, bool) {
	switch v := m[key].(type) {
	case int:
		return v, true
	case uint64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

type Parser struct {
	md goldmark.Markdown
}

func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			&frontmatter.Extender{},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithXHTML(),
		),
	)

	return &Parser{md: md}
}

// Parse renders source to HTML. Missing or malformed frontmatter yields
// empty Meta rather than an error.
func (p *Parser) Parse(source []byte) (Document, error) {
	ctx := parser.NewContext()
	var buf bytes.Buffer

	err := p.md.Convert(source, &buf, parser.WithContext(ctx))
	if err != nil {
		return Document{}, err
	}

	meta := Meta{}
	if data := frontmatter.Get(ctx); data != nil {
		if err := data.Decode(&meta); err != nil {
			meta = Meta{}
		}
	}

	return Document{HTML: buf.Bytes(), Meta: meta}, nil
}
