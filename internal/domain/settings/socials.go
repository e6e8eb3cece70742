package settings

import (
	"encoding/json"
	"time"

	"github.com/prateek9389/prateekportfolio/internal/store"
)

// SocialProfiles is the socials singleton: a URL plus an independent
// visibility toggle per platform. Toggling visibility never touches the URL;
// the whole document is still persisted in one write.
type SocialProfiles struct {
	Github            string    `json:"github"`
	Linkedin          string    `json:"linkedin"`
	Twitter           string    `json:"twitter"`
	IsGithubVisible   bool      `json:"isGithubVisible"`
	IsLinkedinVisible bool      `json:"isLinkedinVisible"`
	IsTwitterVisible  bool      `json:"isTwitterVisible"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// VisibleLinks returns the links the public site should render, in a stable
// platform order. Hidden or empty entries are dropped.
func (s *SocialProfiles) VisibleLinks() []SocialLink {
	links := make([]SocialLink, 0, 3)
	if s.IsGithubVisible && s.Github != "" {
		links = append(links, SocialLink{Platform: "github", URL: s.Github})
	}
	if s.IsLinkedinVisible && s.Linkedin != "" {
		links = append(links, SocialLink{Platform: "linkedin", URL: s.Linkedin})
	}
	if s.IsTwitterVisible && s.Twitter != "" {
		links = append(links, SocialLink{Platform: "twitter", URL: s.Twitter})
	}
	return links
}

func SocialsFromDocument(doc store.Document) *SocialProfiles {
	s := &SocialProfiles{}
	if b, err := json.Marshal(doc.Fields); err == nil {
		_ = json.Unmarshal(b, s)
	}
	s.UpdatedAt = doc.UpdatedAt
	return s
}

func (s *SocialProfiles) Fields() map[string]any {
	return map[string]any{
		"github":            s.Github,
		"linkedin":          s.Linkedin,
		"twitter":           s.Twitter,
		"isGithubVisible":   s.IsGithubVisible,
		"isLinkedinVisible": s.IsLinkedinVisible,
		"isTwitterVisible":  s.IsTwitterVisible,
	}
}
