package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	messageuc "github.com/prateek9389/prateekportfolio/internal/application/usecase/message"
	publicuc "github.com/prateek9389/prateekportfolio/internal/application/usecase/public"
	settingsuc "github.com/prateek9389/prateekportfolio/internal/application/usecase/settings"
	"github.com/prateek9389/prateekportfolio/internal/domain/settings"
	"github.com/prateek9389/prateekportfolio/pkg/apperror"
)

// PublicHandler serves the anonymous surface: rendered content, the contact
// form, and the socials live stream. No route here requires a token.
type PublicHandler struct {
	contentUC *publicuc.PublicContentUseCase
	messageUC *messageuc.MessageUseCase
	socialsUC *settingsuc.SocialsUseCase
}

func NewPublicHandler(
	contentUC *publicuc.PublicContentUseCase,
	messageUC *messageuc.MessageUseCase,
	socialsUC *settingsuc.SocialsUseCase,
) *PublicHandler {
	return &PublicHandler{
		contentUC: contentUC,
		messageUC: messageUC,
		socialsUC: socialsUC,
	}
}

func (h *PublicHandler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentUC.ExecuteProfile(c.Request.Context()))
}

func (h *PublicHandler) Projects(c *gin.Context) {
	projects := h.contentUC.ExecuteProjects(c.Request.Context())
	dtos := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = ToProjectDTO(p)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *PublicHandler) Skills(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentUC.ExecuteSkills(c.Request.Context()))
}

func (h *PublicHandler) Experiences(c *gin.Context) {
	experiences := h.contentUC.ExecuteExperiences(c.Request.Context())
	dtos := make([]ExperienceDTO, len(experiences))
	for i, e := range experiences {
		dtos[i] = ToExperienceDTO(e)
	}
	c.JSON(http.StatusOK, dtos)
}

type publicSocialsDTO struct {
	Links []settings.SocialLink `json:"links"`
}

// Socials only exposes the links toggled visible; hidden platforms and the
// visibility flags themselves never leave the admin surface.
func (h *PublicHandler) Socials(c *gin.Context) {
	socials := h.contentUC.ExecuteSocials(c.Request.Context())
	links := socials.VisibleLinks()
	if links == nil {
		links = []settings.SocialLink{}
	}
	c.JSON(http.StatusOK, publicSocialsDTO{Links: links})
}

func (h *PublicHandler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("name, email, subject and message are required", err))
		return
	}

	output, err := h.messageUC.ExecuteSubmit(c.Request.Context(), messageuc.SubmitMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": output.ID})
}

// WatchSocials streams socials updates as server-sent events. Each event
// carries the visible links after a write, so a page applying the latest
// event always shows current visibility.
func (h *PublicHandler) WatchSocials(c *gin.Context) {
	ctx := c.Request.Context()

	updates, cancel, err := h.socialsUC.ExecuteWatch(ctx)
	if err != nil {
		c.Error(err)
		return
	}
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	// Initial snapshot so subscribers render without waiting for a write.
	initial := h.contentUC.ExecuteSocials(ctx)
	c.SSEvent("socials", publicSocialsDTO{Links: visibleOrEmpty(initial)})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case doc, ok := <-updates:
			if !ok {
				return false
			}
			socials := settings.SocialsFromDocument(doc)
			c.SSEvent("socials", publicSocialsDTO{Links: visibleOrEmpty(socials)})
			return true
		case <-ctx.Done():
			return false
		}
	})
}

func visibleOrEmpty(s *settings.SocialProfiles) []settings.SocialLink {
	links := s.VisibleLinks()
	if links == nil {
		links = []settings.SocialLink{}
	}
	return links
}
