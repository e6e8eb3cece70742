package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	skilluc "github.com/prateek9389/prateekportfolio/internal/application/usecase/skill"
	"github.com/prateek9389/prateekportfolio/pkg/apperror"
)

type SkillHandler struct {
	skillUC *skilluc.SkillUseCase
}

func NewSkillHandler(skillUC *skilluc.SkillUseCase) *SkillHandler {
	return &SkillHandler{skillUC: skillUC}
}

func (h *SkillHandler) List(c *gin.Context) {
	output, err := h.skillUC.ExecuteList(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]SkillDTO, len(output.Skills))
	for i, s := range output.Skills {
		dtos[i] = ToSkillDTO(s)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("name and category are required", err))
		return
	}

	output, err := h.skillUC.ExecuteSave(c.Request.Context(), skilluc.SaveSkillInput{
		Name:     req.Name,
		Category: req.Category,
		Level:    req.Level,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToSkillDTO(output.Skill))
}

func (h *SkillHandler) Update(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("name and category are required", err))
		return
	}

	output, err := h.skillUC.ExecuteSave(c.Request.Context(), skilluc.SaveSkillInput{
		ID:       c.Param("id"),
		Name:     req.Name,
		Category: req.Category,
		Level:    req.Level,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToSkillDTO(output.Skill))
}

func (h *SkillHandler) Delete(c *gin.Context) {
	if err := h.skillUC.ExecuteDelete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
