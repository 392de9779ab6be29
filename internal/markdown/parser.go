package markdown

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"go.abhg.dev/goldmark/frontmatter"
)

// Parser renders Markdown to HTML. Raw HTML in the source is allowed through
// goldmark and then scrubbed by the sanitizer policy.
//
// Only ParseWithFrontmatter reads a leading YAML block. Parse treats a
// leading --- as a thematic break, which is what Notion dividers become.
type Parser struct {
	md     goldmark.Markdown
	withFM goldmark.Markdown
	policy *bluemonday.Policy
}

func NewParser() *Parser {
	return &Parser{
		md:     newMarkdown(),
		withFM: newMarkdown(&frontmatter.Extender{}),
		policy: newPolicy(),
	}
}

func newMarkdown(extra ...goldmark.Extender) goldmark.Markdown {
	extensions := append([]goldmark.Extender{
		extension.GFM,
		extension.Footnote,
		extension.Typographer,
	}, extra...)

	return goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
			goldmarkhtml.WithXHTML(),
			goldmarkhtml.WithUnsafe(),
		),
	)
}

func newPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	// Code fences carry language-* classes
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "span", "div")
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	policy.AllowElements("details", "summary")
	policy.AllowAttrs("checked", "disabled", "type").OnElements("input")
	return policy
}

func (p *Parser) Parse(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	err := p.md.Convert(source, &buf)
	if err != nil {
		return nil, err
	}
	return p.policy.SanitizeBytes(buf.Bytes()), nil
}

func (p *Parser) ParseWithFrontmatter(source []byte) (content []byte, meta map[string]any, err error) {
	context := parser.NewContext()
	var buf bytes.Buffer

	err = p.withFM.Convert(source, &buf, parser.WithContext(context))
	if err != nil {
		return nil, nil, err
	}

	data := frontmatter.Get(context)
	if data == nil {
		meta = make(map[string]any)
	} else {
		err = data.Decode(&meta)
		if err != nil {
			meta = make(map[string]any)
		}
	}

	return p.policy.SanitizeBytes(buf.Bytes()), meta, nil
}
