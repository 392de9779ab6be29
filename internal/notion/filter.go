package notion

// Filter is a database query filter. It is implemented by PropertyFilter and
// CompoundFilter.
type Filter interface {
	isFilter()
}

// PropertyFilter matches a single property. Exactly one condition should be set
// and it must match the property's type.
type PropertyFilter struct {
	Property    string                `json:"property"`
	Select      *SelectCondition      `json:"select,omitempty"`
	Status      *SelectCondition      `json:"status,omitempty"`
	RichText    *TextCondition        `json:"rich_text,omitempty"`
	MultiSelect *MultiSelectCondition `json:"multi_select,omitempty"`
}

type SelectCondition struct {
	Equals string `json:"equals,omitempty"`
}

type TextCondition struct {
	Equals   string `json:"equals,omitempty"`
	Contains string `json:"contains,omitempty"`
}

type MultiSelectCondition struct {
	Contains string `json:"contains,omitempty"`
}

// CompoundFilter combines filters with and/or.
type CompoundFilter struct {
	And []Filter `json:"and,omitempty"`
	Or  []Filter `json:"or,omitempty"`
}

func (PropertyFilter) isFilter() {}
func (CompoundFilter) isFilter() {}

type SortDirection string

const (
	Ascending  SortDirection = "ascending"
	Descending SortDirection = "descending"
)

type Sort struct {
	Property  string        `json:"property,omitempty"`
	Timestamp string        `json:"timestamp,omitempty"`
	Direction SortDirection `json:"direction"`
}
