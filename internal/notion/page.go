package notion

import (
	"encoding/json"
	"errors"
	"strings"
)

type Page struct {
	Object         string     `json:"object"`
	ID             string     `json:"id"`
	CreatedTime    string     `json:"created_time"`
	LastEditedTime string     `json:"last_edited_time"`
	Archived       bool       `json:"archived"`
	InTrash        bool       `json:"in_trash"`
	URL            string     `json:"url"`
	Parent         Parent     `json:"parent"`
	Cover          *File      `json:"cover"`
	Properties     Properties `json:"properties"`
}

type Parent struct {
	Type       string `json:"type"`
	DatabaseID string `json:"database_id,omitempty"`
	PageID     string `json:"page_id,omitempty"`
}

// UnmarshalJSON decodes each field on its own. A field of the wrong shape is
// left at its zero value so one odd cover or parent does not reject the page.
// Only input that is not a JSON object is an error.
func (p *Page) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	if raw == nil {
		return errNotObject
	}

	var page Page
	decodeField(raw, "object", &page.Object)
	decodeField(raw, "id", &page.ID)
	decodeField(raw, "created_time", &page.CreatedTime)
	decodeField(raw, "last_edited_time", &page.LastEditedTime)
	decodeField(raw, "archived", &page.Archived)
	decodeField(raw, "in_trash", &page.InTrash)
	decodeField(raw, "url", &page.URL)
	decodeField(raw, "parent", &page.Parent)
	decodeField(raw, "cover", &page.Cover)
	decodeField(raw, "properties", &page.Properties)
	*p = page
	return nil
}

var errNotObject = errors.New("page is not a JSON object")

// decodeField decodes raw[key] into dst, resetting dst on failure.
func decodeField[T any](raw map[string]json.RawMessage, key string, dst *T) {
	msg, ok := raw[key]
	if !ok {
		return
	}
	err := json.Unmarshal(msg, dst)
	if err != nil {
		var zero T
		*dst = zero
	}
}

// HasProperties reports whether the response carried a properties object.
// Partial page objects only contain object and id.
func (p Page) HasProperties() bool {
	return p.Properties != nil
}

// File is a cover, icon or media payload: either hosted by Notion or an
// external link.
type File struct {
	Type     string        `json:"type"`
	External *ExternalFile `json:"external,omitempty"`
	File     *HostedFile   `json:"file,omitempty"`
}

type ExternalFile struct {
	URL string `json:"url"`
}

type HostedFile struct {
	URL        string `json:"url"`
	ExpiryTime string `json:"expiry_time"`
}

// URL resolves the file location, empty for unknown variants.
func (f *File) URL() string {
	if f == nil {
		return ""
	}
	switch f.Type {
	case "external":
		if f.External != nil {
			return f.External.URL
		}
	case "file":
		if f.File != nil {
			return f.File.URL
		}
	}
	return ""
}

type RichText struct {
	Type        string      `json:"type"`
	PlainText   string      `json:"plain_text"`
	Href        *string     `json:"href"`
	Annotations Annotations `json:"annotations"`
	Equation    *Equation   `json:"equation,omitempty"`
}

type Annotations struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Code          bool   `json:"code"`
	Color         string `json:"color"`
}

type Equation struct {
	Expression string `json:"expression"`
}

// PlainText concatenates the plain text of every segment.
func PlainText(rts []RichText) string {
	var b strings.Builder
	for _, rt := range rts {
		b.WriteString(rt.PlainText)
	}
	return b.String()
}

type SelectOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type User struct {
	Object    string          `json:"object"`
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Name      string          `json:"name"`
	AvatarURL string          `json:"avatar_url"`
	Person    *Person         `json:"person,omitempty"`
	Bot       json.RawMessage `json:"bot,omitempty"`
}

type Person struct {
	Email string `json:"email"`
}

func (u User) IsBot() bool {
	return u.Type == "bot"
}

type DateValue struct {
	Start    string  `json:"start"`
	End      *string `json:"end"`
	TimeZone *string `json:"time_zone"`
}
