package model

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	AllTagID   = "all"
	AllTagName = "전체"
)

// TagLanguage drives the collation order of tag names.
var TagLanguage = language.Korean

type TagFilterItem struct {
	ID    string
	Name  string
	Count int
}

// IsAllTag reports whether tag means "no tag filter".
func IsAllTag(tag string) bool {
	return tag == "" || tag == AllTagID || tag == AllTagName
}

// ComputeTags counts tag occurrences across posts. The synthetic "all" entry
// comes first with the number of posts; the remaining tags follow in
// collation order.
func ComputeTags(posts []Post) []TagFilterItem {
	counts := make(map[string]int)
	var names []string
	for _, post := range posts {
		for _, tag := range post.Tags {
			if _, seen := counts[tag]; !seen {
				names = append(names, tag)
			}
			counts[tag]++
		}
	}

	rest := make([]TagFilterItem, 0, len(names))
	for _, name := range names {
		rest = append(rest, TagFilterItem{ID: name, Name: name, Count: counts[name]})
	}

	// Collators keep scratch buffers, so each call gets its own.
	c := collate.New(TagLanguage)
	slices.SortStableFunc(rest, func(a, b TagFilterItem) int {
		return c.CompareString(a.Name, b.Name)
	})

	tags := make([]TagFilterItem, 0, len(rest)+1)
	tags = append(tags, TagFilterItem{ID: AllTagID, Name: AllTagName, Count: len(posts)})
	return append(tags, rest...)
}
