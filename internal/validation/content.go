package validation

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Notion limits select option names to 100 characters; slugs are plain rich
// text and only bounded to keep queries small.
const (
	maxSlugLength = 200
	maxTagLength  = 100
)

// ValidateSlug validates a post slug taken from the URL
func ValidateSlug(slug string) error {
	if strings.TrimSpace(slug) == "" {
		return errors.New("slug is required")
	}

	if utf8.RuneCountInString(slug) > maxSlugLength {
		return errors.New("slug is too long (max 200 characters)")
	}

	if strings.ContainsFunc(slug, unicode.IsControl) {
		return errors.New("slug contains control characters")
	}

	return nil
}

// ValidateTag validates a tag filter. The empty tag means no filter and is
// valid.
func ValidateTag(tag string) error {
	if utf8.RuneCountInString(tag) > maxTagLength {
		return errors.New("tag is too long (max 100 characters)")
	}

	if strings.Contains(tag, ",") {
		return errors.New("tag cannot contain commas")
	}

	if strings.ContainsFunc(tag, unicode.IsControl) {
		return errors.New("tag contains control characters")
	}

	return nil
}
