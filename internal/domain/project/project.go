package project

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/prateek9389/prateekportfolio/internal/store"
)

type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Image       string    `json:"image"`
	LiveURL     string    `json:"liveUrl"`
	GithubURL   string    `json:"githubUrl"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var ErrTitleRequired = errors.New("project title is required")

func (p *Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrTitleRequired
	}
	return nil
}

// FromDocument decodes a stored document into a typed record. Missing or
// malformed fields keep explicit defaults instead of failing the read; other
// writers are not trusted to have produced well-formed documents.
func FromDocument(doc store.Document) *Project {
	p := &Project{}
	if b, err := json.Marshal(doc.Fields); err == nil {
		_ = json.Unmarshal(b, p)
	}
	p.ID = doc.ID
	p.CreatedAt = doc.CreatedAt
	p.UpdatedAt = doc.UpdatedAt
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p
}

// Fields returns the document representation. Timestamps are excluded: the
// store stamps those server-side.
func (p *Project) Fields() map[string]any {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return map[string]any{
		"title":       p.Title,
		"description": p.Description,
		"tags":        tags,
		"image":       p.Image,
		"liveUrl":     p.LiveURL,
		"githubUrl":   p.GithubURL,
	}
}

// ParseTags splits a comma-separated editor input into an ordered tag list.
// Each segment is trimmed and empty segments are dropped, so an all-empty
// input yields an empty list rather than [""].
func ParseTags(input string) []string {
	parts := strings.Split(input, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}
