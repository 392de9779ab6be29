package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/notionblog/internal/model"
)

func TestProfile_ReadsFrontmatter(t *testing.T) {
	dir := t.TempDir()
	content := `---
name: 김개발
role: Backend Engineer
avatar: /assets/avatar.png
links:
  - label: GitHub
    url: https://github.com/dev
  - label: Broken
  - label: Email
    url: mailto:dev@example.com
---
Writes **Go**.`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profile.md"), []byte(content), 0o644))

	profile, err := NewProfileService(dir, "Blog").Profile()

	require.NoError(t, err)
	assert.Equal(t, "김개발", profile.Name)
	assert.Equal(t, "Backend Engineer", profile.Role)
	assert.Equal(t, "/assets/avatar.png", profile.Avatar)
	assert.Contains(t, profile.BioHTML, "<strong>Go</strong>")
	assert.Equal(t, []model.ContactLink{
		{Label: "GitHub", URL: "https://github.com/dev"},
		{Label: "Email", URL: "mailto:dev@example.com"},
	}, profile.Links)
}

func TestProfile_MissingFileUsesDefaultName(t *testing.T) {
	profile, err := NewProfileService(t.TempDir(), "Notion Blog").Profile()

	require.NoError(t, err)
	assert.Equal(t, &model.Profile{Name: "Notion Blog"}, profile)
}
