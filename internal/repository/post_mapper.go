package repository

import (
	"github.com/templui/notionblog/internal/model"
	"github.com/templui/notionblog/internal/notion"
)

// Database property names.
const (
	propTitle       = "Title"
	propDescription = "Description"
	propTags        = "Tags"
	propAuthor      = "Author"
	propDate        = "Date"
	propSlug        = "Slug"
	propStatus      = "Status"

	statusPublished = "Published"
)

// PageToPost maps a database page onto a Post. It never fails: a missing
// property, or one of an unexpected type, leaves the field empty.
func PageToPost(page notion.Page) model.Post {
	props := page.Properties

	post := model.Post{
		ID:           page.ID,
		Title:        titleText(props[propTitle]),
		Description:  richText(props[propDescription]),
		CoverImage:   page.Cover.URL(),
		Tags:         multiSelect(props[propTags]),
		Author:       firstPerson(props[propAuthor]),
		Date:         dateStart(props[propDate]),
		ModifiedDate: page.LastEditedTime,
		Slug:         richText(props[propSlug]),
	}
	if post.Slug == "" {
		post.Slug = page.ID
	}
	return post
}

func titleText(prop notion.Property) string {
	switch p := prop.(type) {
	case *notion.TitleProperty:
		return notion.PlainText(p.Title)
	default:
		return ""
	}
}

func richText(prop notion.Property) string {
	switch p := prop.(type) {
	case *notion.RichTextProperty:
		return notion.PlainText(p.RichText)
	default:
		return ""
	}
}

func multiSelect(prop notion.Property) []string {
	switch p := prop.(type) {
	case *notion.MultiSelectProperty:
		if len(p.MultiSelect) == 0 {
			return nil
		}
		names := make([]string, 0, len(p.MultiSelect))
		for _, option := range p.MultiSelect {
			names = append(names, option.Name)
		}
		return names
	default:
		return nil
	}
}

func firstPerson(prop notion.Property) string {
	switch p := prop.(type) {
	case *notion.PeopleProperty:
		if len(p.People) == 0 || p.People[0].IsBot() {
			return ""
		}
		return p.People[0].Name
	default:
		return ""
	}
}

func dateStart(prop notion.Property) string {
	switch p := prop.(type) {
	case *notion.DateProperty:
		if p.Date == nil {
			return ""
		}
		return p.Date.Start
	default:
		return ""
	}
}

// isPublished matches publishedFilter: Status must be a select property.
func isPublished(page notion.Page) bool {
	p, ok := page.Properties[propStatus].(*notion.SelectProperty)
	return ok && p.Select != nil && p.Select.Name == statusPublished
}
