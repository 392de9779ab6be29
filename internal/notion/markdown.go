package notion

import (
	"context"
	"fmt"
	"html"
	"strings"
)

const maxBlockDepth = 8

// BlockSource loads the direct children of a block. *Client implements it.
type BlockSource interface {
	BlockChildren(ctx context.Context, blockID string) ([]Block, error)
}

// MarkdownConverter turns a page's block tree into Markdown.
type MarkdownConverter struct {
	source BlockSource
}

func NewMarkdownConverter(source BlockSource) *MarkdownConverter {
	return &MarkdownConverter{source: source}
}

// PageToMarkdown loads the full block tree of a page and renders it.
func (c *MarkdownConverter) PageToMarkdown(ctx context.Context, pageID string) (string, error) {
	blocks, err := c.loadTree(ctx, pageID, 0)
	if err != nil {
		return "", fmt.Errorf("failed to load blocks of %s: %w", pageID, err)
	}
	return BlocksToMarkdown(blocks), nil
}

func (c *MarkdownConverter) loadTree(ctx context.Context, blockID string, depth int) ([]Block, error) {
	blocks, err := c.source.BlockChildren(ctx, blockID)
	if err != nil {
		return nil, err
	}

	for i := range blocks {
		block := &blocks[i]
		if !block.HasChildren || depth+1 >= maxBlockDepth {
			continue
		}
		// Sub pages are linked, not inlined.
		if block.Type == "child_page" || block.Type == "child_database" {
			continue
		}
		block.Children, err = c.loadTree(ctx, block.ID, depth+1)
		if err != nil {
			return nil, err
		}
	}
	return blocks, nil
}

// BlocksToMarkdown renders already loaded blocks. Consecutive list items form
// one list; every other block is separated by a blank line.
func BlocksToMarkdown(blocks []Block) string {
	var b strings.Builder
	number := 0
	prevList := false

	for _, block := range blocks {
		if block.Type == "numbered_list_item" {
			number++
		} else {
			number = 0
		}

		md := renderBlock(block, number)
		if md == "" {
			continue
		}

		list := isListItem(block.Type)
		if b.Len() > 0 {
			if list && prevList {
				b.WriteString("\n")
			} else {
				b.WriteString("\n\n")
			}
		}
		b.WriteString(md)
		prevList = list
	}
	return b.String()
}

func isListItem(blockType string) bool {
	switch blockType {
	case "bulleted_list_item", "numbered_list_item", "to_do":
		return true
	}
	return false
}

func renderBlock(block Block, number int) string {
	c := block.Content
	text := RichTextToMarkdown(c.RichText)
	children := BlocksToMarkdown(block.Children)

	switch block.Type {
	case "paragraph":
		if text == "" {
			return children
		}
		return joinNested(text, indent(children))
	case "heading_1":
		return joinBlocks("# "+text, children)
	case "heading_2":
		return joinBlocks("## "+text, children)
	case "heading_3":
		return joinBlocks("### "+text, children)
	case "bulleted_list_item":
		return joinNested("- "+text, indent(children))
	case "numbered_list_item":
		return joinNested(fmt.Sprintf("%d. %s", number, text), indent(children))
	case "to_do":
		box := "[ ]"
		if c.Checked {
			box = "[x]"
		}
		return joinNested("- "+box+" "+text, indent(children))
	case "quote":
		return quote(joinBlocks(text, children))
	case "callout":
		if c.Icon != nil && c.Icon.Emoji != "" {
			text = c.Icon.Emoji + " " + text
		}
		return quote(joinBlocks(text, children))
	case "toggle":
		summary := html.EscapeString(PlainText(c.RichText))
		return "<details>\n<summary>" + summary + "</summary>\n\n" + children + "\n\n</details>"
	case "code":
		lang := c.Language
		if lang == "plain text" {
			lang = ""
		}
		return "```" + lang + "\n" + PlainText(c.RichText) + "\n```"
	case "divider":
		return "---"
	case "equation":
		return "$$\n" + c.Expression + "\n$$"
	case "image":
		return fmt.Sprintf("![%s](%s)", PlainText(c.Caption), c.FileURL())
	case "video", "file", "pdf", "audio":
		label := firstNonEmpty(PlainText(c.Caption), c.Name, block.Type)
		return fmt.Sprintf("[%s](%s)", label, c.FileURL())
	case "bookmark", "embed", "link_preview":
		if c.URL == "" {
			return ""
		}
		return fmt.Sprintf("[%s](%s)", firstNonEmpty(PlainText(c.Caption), c.URL), c.URL)
	case "child_page", "child_database":
		return fmt.Sprintf("[%s](https://www.notion.so/%s)", c.Title, strings.ReplaceAll(block.ID, "-", ""))
	case "table":
		return renderTable(block)
	case "column_list", "column", "synced_block", "template":
		return children
	default:
		return ""
	}
}

func renderTable(table Block) string {
	var rows [][]string
	width := table.Content.TableWidth
	for _, row := range table.Children {
		if row.Type != "table_row" {
			continue
		}
		cells := make([]string, 0, len(row.Content.Cells))
		for _, cell := range row.Content.Cells {
			cells = append(cells, strings.ReplaceAll(RichTextToMarkdown(cell), "|", `\|`))
		}
		if len(cells) > width {
			width = len(cells)
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 || width == 0 {
		return ""
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for i := 0; i < width; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(" " + cell + " |")
		}
	}

	// GFM needs a header row; the first row always plays that role.
	writeRow(rows[0])
	b.WriteString("\n|")
	for i := 0; i < width; i++ {
		b.WriteString(" --- |")
	}
	for _, row := range rows[1:] {
		b.WriteString("\n")
		writeRow(row)
	}
	return b.String()
}

// RichTextToMarkdown renders rich text segments with their annotations.
func RichTextToMarkdown(rts []RichText) string {
	var b strings.Builder
	for _, rt := range rts {
		b.WriteString(annotate(rt))
	}
	return b.String()
}

func annotate(rt RichText) string {
	if rt.Type == "equation" && rt.Equation != nil {
		return "$" + rt.Equation.Expression + "$"
	}

	// Markers must hug the text, so surrounding spaces stay outside.
	text := rt.PlainText
	core := strings.TrimSpace(text)
	if core == "" {
		return text
	}
	start := strings.Index(text, core)
	lead, trail := text[:start], text[start+len(core):]

	a := rt.Annotations
	if a.Code {
		core = "`" + core + "`"
	}
	if a.Bold {
		core = "**" + core + "**"
	}
	if a.Italic {
		core = "_" + core + "_"
	}
	if a.Strikethrough {
		core = "~~" + core + "~~"
	}
	if rt.Href != nil && *rt.Href != "" {
		core = "[" + core + "](" + *rt.Href + ")"
	}
	return lead + core + trail
}

func joinBlocks(head, body string) string {
	if body == "" {
		return head
	}
	return head + "\n\n" + body
}

func joinNested(head, body string) string {
	if body == "" {
		return head
	}
	if head == "" {
		return body
	}
	return head + "\n" + body
}

func indent(s string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "    " + line
		}
	}
	return strings.Join(lines, "\n")
}

func quote(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = ">"
		} else {
			lines[i] = "> " + line
		}
	}
	return strings.Join(lines, "\n")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
