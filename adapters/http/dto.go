package http

import (
	"encoding/json"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prateek9389/prateekportfolio/internal/application/service"
	"github.com/prateek9389/prateekportfolio/internal/domain/experience"
	"github.com/prateek9389/prateekportfolio/internal/domain/message"
	"github.com/prateek9389/prateekportfolio/internal/domain/project"
	"github.com/prateek9389/prateekportfolio/internal/domain/settings"
	"github.com/prateek9389/prateekportfolio/internal/domain/skill"
	"github.com/prateek9389/prateekportfolio/pkg/apperror"
)

// bindDraft reads the request draft either from a plain JSON body or, when
// media is attached, from the 'data' field of a multipart form.
func bindDraft(c *gin.Context, out any) error {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		dataJSON := c.PostForm("data")
		if dataJSON == "" {
			return apperror.NewInvalidInput("multipart form requires a 'data' field", nil)
		}
		if err := json.Unmarshal([]byte(dataJSON), out); err != nil {
			return apperror.NewInvalidInput("'data' field is not valid JSON", err)
		}
		return nil
	}
	if err := c.ShouldBindJSON(out); err != nil {
		return apperror.NewInvalidInput("invalid JSON body", err)
	}
	return nil
}

// stagedFile opens an optional multipart file slot. A missing slot is a nil
// StagedFile, not an error. The caller owns closing the returned file.
func stagedFile(c *gin.Context, field string) (*service.StagedFile, multipart.File, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil, nil, nil
	}
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, apperror.NewInternal("failed to open uploaded file", err)
	}
	staged := &service.StagedFile{
		Reader:    file,
		Filename:  fileHeader.Filename,
		MimeType:  fileHeader.Header.Get("Content-Type"),
		Requested: service.ClassificationAuto,
	}
	return staged, file, nil
}

// Project DTOs

type ProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	// Tags is the raw comma-separated editor input.
	Tags      string `json:"tags"`
	Image     string `json:"image"`
	LiveURL   string `json:"liveUrl"`
	GithubURL string `json:"githubUrl"`
}

type ProjectDTO struct {
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

func ToProjectDTO(p *project.Project) ProjectDTO {
	return ProjectDTO{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Tags:        p.Tags,
		Image:       p.Image,
		LiveURL:     p.LiveURL,
		GithubURL:   p.GithubURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// Skill DTOs

type SkillRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Level    int    `json:"level"`
}

type SkillDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"`
}

func ToSkillDTO(s *skill.Skill) SkillDTO {
	return SkillDTO{ID: s.ID, Name: s.Name, Category: s.Category, Level: s.Level}
}

// Experience DTOs

type ExperienceRequest struct {
	Company     string `json:"company" binding:"required"`
	Role        string `json:"role" binding:"required"`
	Location    string `json:"location"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	IsCurrent   bool   `json:"isCurrent"`
	Website     string `json:"website"`
}

type ExperienceDTO struct {
	ID          string    `json:"id"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Location    string    `json:"location"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
	IsCurrent   bool      `json:"isCurrent"`
	Website     string    `json:"website"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToExperienceDTO(e *experience.Experience) ExperienceDTO {
	return ExperienceDTO{
		ID:          e.ID,
		Company:     e.Company,
		Role:        e.Role,
		Location:    e.Location,
		Duration:    e.Duration,
		Description: e.Description,
		IsCurrent:   e.IsCurrent,
		Website:     e.Website,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// Message DTOs

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type MessageDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func ToMessageDTO(m *message.Message) MessageDTO {
	return MessageDTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}

// Settings DTOs

type ProfileRequest struct {
	Name             string `json:"name"`
	Title            string `json:"title"`
	Bio              string `json:"bio"`
	AboutTitle       string `json:"aboutTitle"`
	AboutText1       string `json:"aboutText1"`
	AboutText2       string `json:"aboutText2"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Location         string `json:"location"`
	Experience       string `json:"experience"`
	ProjectsCount    string `json:"projectsCount"`
	ProfileImage     string `json:"profileImage"`
	ResumeURL        string `json:"resumeUrl"`
	ResumeImageURL   string `json:"resumeImageUrl"`
	SkillsTitle      string `json:"skillsTitle"`
	SkillsSubtitle   string `json:"skillsSubtitle"`
	ProjectsTitle    string `json:"projectsTitle"`
	ProjectsSubtitle string `json:"projectsSubtitle"`
}

func (r *ProfileRequest) ToDomain() settings.Profile {
	return settings.Profile{
		Name:             r.Name,
		Title:            r.Title,
		Bio:              r.Bio,
		AboutTitle:       r.AboutTitle,
		AboutText1:       r.AboutText1,
		AboutText2:       r.AboutText2,
		Email:            r.Email,
		Phone:            r.Phone,
		Location:         r.Location,
		Experience:       r.Experience,
		ProjectsCount:    r.ProjectsCount,
		ProfileImage:     r.ProfileImage,
		ResumeURL:        r.ResumeURL,
		ResumeImageURL:   r.ResumeImageURL,
		SkillsTitle:      r.SkillsTitle,
		SkillsSubtitle:   r.SkillsSubtitle,
		ProjectsTitle:    r.ProjectsTitle,
		ProjectsSubtitle: r.ProjectsSubtitle,
	}
}

type SocialsRequest struct {
	Github            string `json:"github"`
	Linkedin          string `json:"linkedin"`
	Twitter           string `json:"twitter"`
	IsGithubVisible   bool   `json:"isGithubVisible"`
	IsLinkedinVisible bool   `json:"isLinkedinVisible"`
	IsTwitterVisible  bool   `json:"isTwitterVisible"`
}

func (r *SocialsRequest) ToDomain() settings.SocialProfiles {
	return settings.SocialProfiles{
		Github:            r.Github,
		Linkedin:          r.Linkedin,
		Twitter:           r.Twitter,
		IsGithubVisible:   r.IsGithubVisible,
		IsLinkedinVisible: r.IsLinkedinVisible,
		IsTwitterVisible:  r.IsTwitterVisible,
	}
}

// Overview DTO

type OverviewDTO struct {
	Projects       int `json:"projects"`
	Skills         int `json:"skills"`
	Experiences    int `json:"experiences"`
	Messages       int `json:"messages"`
	UnreadMessages int `json:"unread_messages"`
}
