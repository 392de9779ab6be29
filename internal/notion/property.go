package notion

import "encoding/json"

// Property is one typed page property. The concrete value is one of
// *TitleProperty, *RichTextProperty, *SelectProperty, *StatusProperty,
// *MultiSelectProperty, *PeopleProperty, *DateProperty or *UnknownProperty.
type Property interface {
	Type() string
}

type TitleProperty struct {
	ID    string     `json:"id"`
	Title []RichText `json:"title"`
}

type RichTextProperty struct {
	ID       string     `json:"id"`
	RichText []RichText `json:"rich_text"`
}

type SelectProperty struct {
	ID     string        `json:"id"`
	Select *SelectOption `json:"select"`
}

type StatusProperty struct {
	ID     string        `json:"id"`
	Status *SelectOption `json:"status"`
}

type MultiSelectProperty struct {
	ID          string         `json:"id"`
	MultiSelect []SelectOption `json:"multi_select"`
}

type PeopleProperty struct {
	ID     string `json:"id"`
	People []User `json:"people"`
}

type DateProperty struct {
	ID   string     `json:"id"`
	Date *DateValue `json:"date"`
}

// UnknownProperty holds any property kind this package does not model, and
// properties whose payload did not match their declared type.
type UnknownProperty struct {
	ID       string
	Declared string
	Raw      json.RawMessage
}

func (*TitleProperty) Type() string       { return "title" }
func (*RichTextProperty) Type() string    { return "rich_text" }
func (*SelectProperty) Type() string      { return "select" }
func (*StatusProperty) Type() string      { return "status" }
func (*MultiSelectProperty) Type() string { return "multi_select" }
func (*PeopleProperty) Type() string      { return "people" }
func (*DateProperty) Type() string        { return "date" }
func (p *UnknownProperty) Type() string   { return p.Declared }

// Properties maps property names to their typed values. A nil map means the
// page object had no properties at all.
type Properties map[string]Property

func (p *Properties) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	if raw == nil {
		*p = nil
		return nil
	}

	props := make(Properties, len(raw))
	for name, msg := range raw {
		props[name] = decodeProperty(msg)
	}
	*p = props
	return nil
}

// decodeProperty never fails: anything it cannot decode becomes an
// UnknownProperty.
func decodeProperty(msg json.RawMessage) Property {
	var head struct {
		ID   string `json:"id"`
		Type string `json:"type"`
	}
	err := json.Unmarshal(msg, &head)
	if err != nil {
		return &UnknownProperty{Raw: msg}
	}

	var prop Property
	switch head.Type {
	case "title":
		prop = &TitleProperty{}
	case "rich_text":
		prop = &RichTextProperty{}
	case "select":
		prop = &SelectProperty{}
	case "status":
		prop = &StatusProperty{}
	case "multi_select":
		prop = &MultiSelectProperty{}
	case "people":
		prop = &PeopleProperty{}
	case "date":
		prop = &DateProperty{}
	default:
		return &UnknownProperty{ID: head.ID, Declared: head.Type, Raw: msg}
	}

	err = json.Unmarshal(msg, prop)
	if err != nil {
		return &UnknownProperty{ID: head.ID, Declared: head.Type, Raw: msg}
	}
	return prop
}
