package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	experienceuc "github.com/prateek9389/prateekportfolio/internal/application/usecase/experience"
	"github.com/prateek9389/prateekportfolio/pkg/apperror"
)

type ExperienceHandler struct {
	experienceUC *experienceuc.ExperienceUseCase
}

func NewExperienceHandler(experienceUC *experienceuc.ExperienceUseCase) *ExperienceHandler {
	return &ExperienceHandler{experienceUC: experienceUC}
}

func (h *ExperienceHandler) List(c *gin.Context) {
	output, err := h.experienceUC.ExecuteList(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ExperienceDTO, len(output.Experiences))
	for i, e := range output.Experiences {
		dtos[i] = ToExperienceDTO(e)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("company and role are required", err))
		return
	}

	output, err := h.experienceUC.ExecuteSave(c.Request.Context(), h.toInput("", req))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToExperienceDTO(output.Experience))
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("company and role are required", err))
		return
	}

	output, err := h.experienceUC.ExecuteSave(c.Request.Context(), h.toInput(c.Param("id"), req))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToExperienceDTO(output.Experience))
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	if err := h.experienceUC.ExecuteDelete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ExperienceHandler) toInput(id string, req ExperienceRequest) experienceuc.SaveExperienceInput {
	return experienceuc.SaveExperienceInput{
		ID:          id,
		Company:     req.Company,
		Role:        req.Role,
		Location:    req.Location,
		Duration:    req.Duration,
		Description: req.Description,
		IsCurrent:   req.IsCurrent,
		Website:     req.Website,
	}
}
