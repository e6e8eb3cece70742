package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	settingsuc "github.com/prateek9389/prateekportfolio/internal/application/usecase/settings"
	statsuc "github.com/prateek9389/prateekportfolio/internal/application/usecase/stats"
)

type SettingsHandler struct {
	profileUC  *settingsuc.ProfileUseCase
	socialsUC  *settingsuc.SocialsUseCase
	overviewUC *statsuc.OverviewUseCase
}

func NewSettingsHandler(
	profileUC *settingsuc.ProfileUseCase,
	socialsUC *settingsuc.SocialsUseCase,
	overviewUC *statsuc.OverviewUseCase,
) *SettingsHandler {
	return &SettingsHandler{
		profileUC:  profileUC,
		socialsUC:  socialsUC,
		overviewUC: overviewUC,
	}
}

func (h *SettingsHandler) GetProfile(c *gin.Context) {
	output, err := h.profileUC.ExecuteGet(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Profile)
}

// UpdateProfile accepts JSON or a multipart form with up to three file slots:
// 'image', 'resume' and 'resume_image'. Slots left empty keep the URLs
// already carried in the draft.
func (h *SettingsHandler) UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := bindDraft(c, &req); err != nil {
		c.Error(err)
		return
	}

	input := settingsuc.UpdateProfileInput{Draft: req.ToDomain()}

	image, imageFile, err := stagedFile(c, "image")
	if err != nil {
		c.Error(err)
		return
	}
	if imageFile != nil {
		defer imageFile.Close()
	}
	input.Image = image

	resume, resumeFile, err := stagedFile(c, "resume")
	if err != nil {
		c.Error(err)
		return
	}
	if resumeFile != nil {
		defer resumeFile.Close()
	}
	input.Resume = resume

	resumeImage, resumeImageFile, err := stagedFile(c, "resume_image")
	if err != nil {
		c.Error(err)
		return
	}
	if resumeImageFile != nil {
		defer resumeImageFile.Close()
	}
	input.ResumeImage = resumeImage

	output, err := h.profileUC.ExecuteUpdate(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Profile)
}

func (h *SettingsHandler) GetSocials(c *gin.Context) {
	output, err := h.socialsUC.ExecuteGet(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Socials)
}

func (h *SettingsHandler) UpdateSocials(c *gin.Context) {
	var req SocialsRequest
	if err := bindDraft(c, &req); err != nil {
		c.Error(err)
		return
	}

	output, err := h.socialsUC.ExecuteUpdate(c.Request.Context(), settingsuc.UpdateSocialsInput{
		Draft: req.ToDomain(),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Socials)
}

func (h *SettingsHandler) Overview(c *gin.Context) {
	output, err := h.overviewUC.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, OverviewDTO{
		Projects:       output.Projects,
		Skills:         output.Skills,
		Experiences:    output.Experiences,
		Messages:       output.Messages,
		UnreadMessages: output.UnreadMessages,
	})
}
