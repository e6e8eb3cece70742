package skill

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/prateek9389/prateekportfolio/internal/store"
)

// Categories is the fixed set a skill may belong to. The editor coerces
// input to one of these before a write ever happens.
var Categories = []string{
	"Programming Languages",
	"Frontend",
	"Backend",
	"Tools & Tech",
	"Mobile",
	"Design",
	"Other",
}

var ErrNameRequired = errors.New("skill name is required")
var ErrUnknownCategory = errors.New("unknown skill category")

type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"`
}

func (s *Skill) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrNameRequired
	}
	if _, err := CanonicalCategory(s.Category); err != nil {
		return err
	}
	return nil
}

// CanonicalCategory matches free-text input against the fixed category set,
// ignoring case and surrounding whitespace. Anything that does not match is
// rejected, not silently bucketed.
func CanonicalCategory(input string) (string, error) {
	needle := strings.ToLower(strings.TrimSpace(input))
	for _, c := range Categories {
		if strings.ToLower(c) == needle {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

// DisplayLevel clamps a stored level into [0,100]. The store does not enforce
// the range.
func DisplayLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}

func FromDocument(doc store.Document) *Skill {
	s := &Skill{}
	if b, err := json.Marshal(doc.Fields); err == nil {
		_ = json.Unmarshal(b, s)
	}
	s.ID = doc.ID
	return s
}

func (s *Skill) Fields() map[string]any {
	return map[string]any{
		"name":     s.Name,
		"category": s.Category,
		"level":    s.Level,
	}
}
