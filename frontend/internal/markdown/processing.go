package markdown

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/util"
)

// TextProcessor turns review text into safe HTML. Only paragraphs, code,
// emphasis and strikethrough are recognised; raw HTML is escaped.
type TextProcessor struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *TextProcessor {
	p := parser.NewParser(
		// Headings, lists, quotes and raw HTML blocks stay plain text in a review
		parser.WithBlockParsers(
			util.Prioritized(parser.NewFencedCodeBlockParser(), 700),
			util.Prioritized(parser.NewParagraphParser(), 1000),
		),
		// No link or autolink parsers: reviews cannot carry links
		parser.WithInlineParsers(
			util.Prioritized(parser.NewCodeSpanParser(), 100),
			util.Prioritized(parser.NewEmphasisParser(), 500),
		),
	)

	// Default renderer escapes raw HTML, unlike the unsafe mode
	md := goldmark.New(
		goldmark.WithParser(p),
		goldmark.WithExtensions(extension.Strikethrough),
	)

	// Allow exactly what the parsers above can emit
	policy := bluemonday.NewPolicy()
	policy.AllowElements("p", "br", "em", "strong", "del", "code", "pre")

	return &TextProcessor{md: md, policy: policy}
}

// ProcessReview renders text. On a render failure the escaped plain text
// is returned.
func (tp *TextProcessor) ProcessReview(text string) template.HTML {
	// Render md and escape html
	rendered, err := tp.renderText(text)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	// Sanitize html
	return template.HTML(tp.policy.Sanitize(rendered))
}

func (tp *TextProcessor) renderText(text string) (string, error) {
	var buf bytes.Buffer
	if err := tp.md.Convert([]byte(text), &buf); err != nil {
		return text, err
	}
	return strings.TrimSpace(buf.String()), nil
}
