package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectuc "github.com/prateek9389/prateekportfolio/internal/application/usecase/project"
)

type ProjectHandler struct {
	createUC *projectuc.CreateProjectUseCase
	updateUC *projectuc.UpdateProjectUseCase
	deleteUC *projectuc.DeleteProjectUseCase
	listUC   *projectuc.ListProjectsUseCase
}

func NewProjectHandler(
	createUC *projectuc.CreateProjectUseCase,
	updateUC *projectuc.UpdateProjectUseCase,
	deleteUC *projectuc.DeleteProjectUseCase,
	listUC *projectuc.ListProjectsUseCase,
) *ProjectHandler {
	return &ProjectHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
	}
}

func (h *ProjectHandler) List(c *gin.Context) {
	output, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ProjectDTO, len(output.Projects))
	for i, p := range output.Projects {
		dtos[i] = ToProjectDTO(p)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req ProjectRequest
	if err := bindDraft(c, &req); err != nil {
		c.Error(err)
		return
	}

	staged, file, err := stagedFile(c, "image")
	if err != nil {
		c.Error(err)
		return
	}
	if file != nil {
		defer file.Close()
	}

	output, err := h.createUC.Execute(c.Request.Context(), projectuc.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		TagsInput:   req.Tags,
		LiveURL:     req.LiveURL,
		GithubURL:   req.GithubURL,
		Image:       staged,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToProjectDTO(output.Project))
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var req ProjectRequest
	if err := bindDraft(c, &req); err != nil {
		c.Error(err)
		return
	}

	staged, file, err := stagedFile(c, "image")
	if err != nil {
		c.Error(err)
		return
	}
	if file != nil {
		defer file.Close()
	}

	output, err := h.updateUC.Execute(c.Request.Context(), projectuc.UpdateProjectInput{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		TagsInput:   req.Tags,
		Image:       req.Image,
		LiveURL:     req.LiveURL,
		GithubURL:   req.GithubURL,
		NewImage:    staged,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProjectDTO(output.Project))
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), projectuc.DeleteProjectInput{ID: c.Param("id")}); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
