package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/templui/notionblog/internal/markdown"
	"github.com/templui/notionblog/internal/model"
)

// ProfileService reads the profile and contact sections of the home page
// from <contentPath>/profile.md.
type ProfileService struct {
	path        string
	defaultName string
	parser      *markdown.Parser
}

func NewProfileService(contentPath, defaultName string) *ProfileService {
	return &ProfileService{
		path:        filepath.Join(contentPath, "profile.md"),
		defaultName: defaultName,
		parser:      markdown.NewParser(),
	}
}

// Profile is reloaded on every call so edits show up without a restart.
// A missing file yields a profile with only the default name.
func (s *ProfileService) Profile() (*model.Profile, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &model.Profile{Name: s.defaultName}, nil
		}
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	html, meta, err := s.parser.ParseWithFrontmatter(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	profile := &model.Profile{
		Name:    s.defaultName,
		BioHTML: string(html),
	}

	name, ok := meta["name"].(string)
	if ok && name != "" {
		profile.Name = name
	}

	role, ok := meta["role"].(string)
	if ok {
		profile.Role = role
	}

	avatar, ok := meta["avatar"].(string)
	if ok {
		profile.Avatar = avatar
	}

	links, ok := meta["links"].([]any)
	if ok {
		for _, link := range links {
			entry, ok := link.(map[string]any)
			if !ok {
				continue
			}
			label, _ := entry["label"].(string)
			url, _ := entry["url"].(string)
			if label == "" || url == "" {
				continue
			}
			profile.Links = append(profile.Links, model.ContactLink{Label: label, URL: url})
		}
	}

	return profile, nil
}
