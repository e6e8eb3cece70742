// Package settings holds the two singleton documents of the site: the
// profile and the social links. Both are always read and written whole.
package settings

import (
	"encoding/json"
	"time"

	"github.com/prateek9389/prateekportfolio/internal/store"
)

type Profile struct {
	Name             string    `json:"name"`
	Title            string    `json:"title"`
	Bio              string    `json:"bio"`
	AboutTitle       string    `json:"aboutTitle"`
	AboutText1       string    `json:"aboutText1"`
	AboutText2       string    `json:"aboutText2"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Location         string    `json:"location"`
	Experience       string    `json:"experience"`
	ProjectsCount    string    `json:"projectsCount"`
	ProfileImage     string    `json:"profileImage"`
	ResumeURL        string    `json:"resumeUrl"`
	ResumeImageURL   string    `json:"resumeImageUrl"`
	SkillsTitle      string    `json:"skillsTitle"`
	SkillsSubtitle   string    `json:"skillsSubtitle"`
	ProjectsTitle    string    `json:"projectsTitle"`
	ProjectsSubtitle string    `json:"projectsSubtitle"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// DefaultProfile is the placeholder content the public site renders when the
// store has no profile document or the read fails. The public page never
// renders empty.
func DefaultProfile() *Profile {
	return &Profile{
		Name:          "JOHN DOE",
		Title:         "Architecting the future through Neural Networks and Distributed Systems.",
		Bio:           "Engineering sophisticated digital experiences with unparalleled precision.",
		AboutTitle:    "Expertise Driven by Passion",
		AboutText1:    "With over 5 years of experience in the tech industry, I've had the privilege of working with scaling startups and established enterprises.",
		AboutText2:    "My approach combines clean architecture, modern design principles, and a deep understanding of core technologies to solve complex problems efficiently.",
		Experience:    "5+",
		ProjectsCount: "50+",
		SkillsTitle:   "SYSTEM PROWESS",
		ProjectsTitle: "SELECTED WORKS",
	}
}

func ProfileFromDocument(doc store.Document) *Profile {
	p := &Profile{}
	if b, err := json.Marshal(doc.Fields); err == nil {
		_ = json.Unmarshal(b, p)
	}
	p.UpdatedAt = doc.UpdatedAt
	return p
}

func (p *Profile) Fields() map[string]any {
	return map[string]any{
		"name":             p.Name,
		"title":            p.Title,
		"bio":              p.Bio,
		"aboutTitle":       p.AboutTitle,
		"aboutText1":       p.AboutText1,
		"aboutText2":       p.AboutText2,
		"email":            p.Email,
		"phone":            p.Phone,
		"location":         p.Location,
		"experience":       p.Experience,
		"projectsCount":    p.ProjectsCount,
		"profileImage":     p.ProfileImage,
		"resumeUrl":        p.ResumeURL,
		"resumeImageUrl":   p.ResumeImageURL,
		"skillsTitle":      p.SkillsTitle,
		"skillsSubtitle":   p.SkillsSubtitle,
		"projectsTitle":    p.ProjectsTitle,
		"projectsSubtitle": p.ProjectsSubtitle,
	}
}
