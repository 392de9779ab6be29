package notion

import "encoding/json"

// Block is a node of a page's content tree. The type specific payload is
// decoded into Content; Children is filled by MarkdownConverter when the tree
// is loaded.
type Block struct {
	Object      string
	ID          string
	Type        string
	HasChildren bool
	Content     BlockContent
	Children    []Block
}

// BlockContent is the union of the payload fields used by the block types we
// render. Fields that do not apply to a block's type stay zero.
type BlockContent struct {
	RichText     []RichText `json:"rich_text"`
	Color        string     `json:"color"`
	Checked      bool       `json:"checked"`
	Language     string     `json:"language"`
	Caption      []RichText `json:"caption"`
	Icon         *Icon      `json:"icon"`
	IsToggleable bool       `json:"is_toggleable"`

	// image, video, file, pdf
	FileType string        `json:"type"`
	External *ExternalFile `json:"external"`
	File     *HostedFile   `json:"file"`
	Name     string        `json:"name"`

	// bookmark, embed, link_preview
	URL string `json:"url"`

	// equation
	Expression string `json:"expression"`

	// child_page, child_database
	Title string `json:"title"`

	// table, table_row
	TableWidth      int          `json:"table_width"`
	HasColumnHeader bool         `json:"has_column_header"`
	HasRowHeader    bool         `json:"has_row_header"`
	Cells           [][]RichText `json:"cells"`
}

type Icon struct {
	Type  string `json:"type"`
	Emoji string `json:"emoji"`
}

// FileURL resolves the media location of file-like blocks.
func (c BlockContent) FileURL() string {
	f := &File{Type: c.FileType, External: c.External, File: c.File}
	return f.URL()
}

func (b *Block) UnmarshalJSON(data []byte) error {
	var head struct {
		Object      string `json:"object"`
		ID          string `json:"id"`
		Type        string `json:"type"`
		HasChildren bool   `json:"has_children"`
	}
	err := json.Unmarshal(data, &head)
	if err != nil {
		return err
	}

	*b = Block{
		Object:      head.Object,
		ID:          head.ID,
		Type:        head.Type,
		HasChildren: head.HasChildren,
	}
	if head.Type == "" {
		return nil
	}

	var raw map[string]json.RawMessage
	err = json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	payload, ok := raw[head.Type]
	if !ok {
		return nil
	}
	// A payload we cannot decode renders as an empty block.
	var content BlockContent
	if json.Unmarshal(payload, &content) == nil {
		b.Content = content
	}
	return nil
}
