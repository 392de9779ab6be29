package notion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(s string) []RichText {
	return []RichText{{Type: "text", PlainText: s}}
}

func block(id, typ string, content BlockContent, children ...Block) Block {
	return Block{ID: id, Type: typ, HasChildren: len(children) > 0, Content: content, Children: children}
}

func TestBlocksToMarkdown_Basics(t *testing.T) {
	blocks := []Block{
		block("1", "heading_1", BlockContent{RichText: text("Title")}),
		block("2", "paragraph", BlockContent{RichText: text("Intro")}),
		block("3", "bulleted_list_item", BlockContent{RichText: text("a")}),
		block("4", "bulleted_list_item", BlockContent{RichText: text("b")}),
		block("5", "divider", BlockContent{}),
		block("6", "code", BlockContent{RichText: text("fmt.Println()"), Language: "go"}),
		block("7", "quote", BlockContent{RichText: text("wise")}),
	}

	want := "# Title\n\nIntro\n\n- a\n- b\n\n---\n\n```go\nfmt.Println()\n```\n\n> wise"
	assert.Equal(t, want, BlocksToMarkdown(blocks))
}

func TestBlocksToMarkdown_NumberedListRestartsPerRun(t *testing.T) {
	blocks := []Block{
		block("1", "numbered_list_item", BlockContent{RichText: text("one")}),
		block("2", "numbered_list_item", BlockContent{RichText: text("two")}),
		block("3", "paragraph", BlockContent{RichText: text("break")}),
		block("4", "numbered_list_item", BlockContent{RichText: text("again")}),
	}

	assert.Equal(t, "1. one\n2. two\n\nbreak\n\n1. again", BlocksToMarkdown(blocks))
}

func TestBlocksToMarkdown_NestedChildrenAreIndented(t *testing.T) {
	blocks := []Block{
		block("1", "bulleted_list_item", BlockContent{RichText: text("parent")},
			block("2", "bulleted_list_item", BlockContent{RichText: text("child")}),
		),
		block("3", "to_do", BlockContent{RichText: text("done"), Checked: true}),
	}

	assert.Equal(t, "- parent\n    - child\n- [x] done", BlocksToMarkdown(blocks))
}

func TestBlocksToMarkdown_EmptyParagraphIsSkipped(t *testing.T) {
	blocks := []Block{
		block("1", "paragraph", BlockContent{RichText: text("a")}),
		block("2", "paragraph", BlockContent{}),
		block("3", "unsupported", BlockContent{}),
		block("4", "paragraph", BlockContent{RichText: text("b")}),
	}

	assert.Equal(t, "a\n\nb", BlocksToMarkdown(blocks))
}

func TestBlocksToMarkdown_MediaAndLinks(t *testing.T) {
	blocks := []Block{
		block("1", "image", BlockContent{FileType: "external", External: &ExternalFile{URL: "https://img/x.png"}, Caption: text("diagram")}),
		block("2", "bookmark", BlockContent{URL: "https://go.dev"}),
		block("3", "child_page", BlockContent{Title: "Sub"}),
	}

	want := "![diagram](https://img/x.png)\n\n[https://go.dev](https://go.dev)\n\n[Sub](https://www.notion.so/3)"
	assert.Equal(t, want, BlocksToMarkdown(blocks))
}

func TestBlocksToMarkdown_Table(t *testing.T) {
	table := block("t", "table", BlockContent{TableWidth: 2, HasColumnHeader: true},
		block("r1", "table_row", BlockContent{Cells: [][]RichText{text("name"), text("value")}}),
		block("r2", "table_row", BlockContent{Cells: [][]RichText{text("a|b"), text("1")}}),
	)

	want := "| name | value |\n| --- | --- |\n| a\\|b | 1 |"
	assert.Equal(t, want, BlocksToMarkdown([]Block{table}))
}

func TestBlocksToMarkdown_ToggleAndCallout(t *testing.T) {
	blocks := []Block{
		block("1", "toggle", BlockContent{RichText: text("more <info>")},
			block("2", "paragraph", BlockContent{RichText: text("hidden")}),
		),
		block("3", "callout", BlockContent{RichText: text("note"), Icon: &Icon{Type: "emoji", Emoji: "💡"}}),
	}

	want := "<details>\n<summary>more &lt;info&gt;</summary>\n\nhidden\n\n</details>\n\n> 💡 note"
	assert.Equal(t, want, BlocksToMarkdown(blocks))
}

func TestRichTextToMarkdown_Annotations(t *testing.T) {
	href := "https://example.com"
	rts := []RichText{
		{Type: "text", PlainText: "plain "},
		{Type: "text", PlainText: "bold ", Annotations: Annotations{Bold: true}},
		{Type: "text", PlainText: "it", Annotations: Annotations{Italic: true}},
		{Type: "text", PlainText: " "},
		{Type: "text", PlainText: "x()", Annotations: Annotations{Code: true}},
		{Type: "text", PlainText: " "},
		{Type: "text", PlainText: "gone", Annotations: Annotations{Strikethrough: true}},
		{Type: "text", PlainText: " link", Href: &href},
		{Type: "equation", PlainText: "E=mc^2", Equation: &Equation{Expression: "E=mc^2"}},
	}

	want := "plain **bold** _it_ `x()` ~~gone~~ [link](https://example.com)$E=mc^2$"
	assert.Equal(t, want, RichTextToMarkdown(rts))
}

type fakeBlockSource struct {
	children map[string][]Block
	calls    []string
	err      error
}

func (f *fakeBlockSource) BlockChildren(ctx context.Context, blockID string) ([]Block, error) {
	f.calls = append(f.calls, blockID)
	if f.err != nil {
		return nil, f.err
	}
	return f.children[blockID], nil
}

func TestMarkdownConverter_LoadsNestedChildren(t *testing.T) {
	source := &fakeBlockSource{children: map[string][]Block{
		"page": {
			{ID: "list", Type: "bulleted_list_item", HasChildren: true, Content: BlockContent{RichText: text("top")}},
			{ID: "sub", Type: "child_page", HasChildren: true, Content: BlockContent{Title: "Sub"}},
		},
		"list": {
			{ID: "nested", Type: "bulleted_list_item", Content: BlockContent{RichText: text("nested")}},
		},
	}}

	md, err := NewMarkdownConverter(source).PageToMarkdown(t.Context(), "page")

	require.NoError(t, err)
	assert.Equal(t, "- top\n    - nested\n\n[Sub](https://www.notion.so/sub)", md)
	assert.Equal(t, []string{"page", "list"}, source.calls)
}

func TestMarkdownConverter_PropagatesErrors(t *testing.T) {
	source := &fakeBlockSource{err: errors.New("boom")}

	_, err := NewMarkdownConverter(source).PageToMarkdown(t.Context(), "page")

	require.Error(t, err)
	assert.ErrorContains(t, err, "boom")
}
