package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		wantErr bool
	}{
		{"plain", "hello-world", false},
		{"korean", "첫-번째-글", false},
		{"page id", "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", strings.Repeat("a", 201), true},
		{"control", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlug(tt.slug)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTag(t *testing.T) {
	assert.NoError(t, ValidateTag(""))
	assert.NoError(t, ValidateTag("전체"))
	assert.NoError(t, ValidateTag("Go 언어"))
	assert.NoError(t, ValidateTag(strings.Repeat("가", 100)))

	assert.Error(t, ValidateTag(strings.Repeat("가", 101)))
	assert.Error(t, ValidateTag("a,b"))
	assert.Error(t, ValidateTag("a\nb"))
}
