package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authuc "github.com/prateek9389/prateekportfolio/internal/application/usecase/auth"
	"github.com/prateek9389/prateekportfolio/pkg/apperror"
)

type AuthHandler struct {
	loginUC *authuc.LoginUseCase
}

func NewAuthHandler(loginUC *authuc.LoginUseCase) *AuthHandler {
	return &AuthHandler{loginUC: loginUC}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("email and password are required", err))
		return
	}

	output, err := h.loginUC.Execute(c.Request.Context(), authuc.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": output.AccessToken})
}

// Session reports whether the presented token is still valid. The route sits
// behind the auth middleware, so reaching the handler is the answer.
func (h *AuthHandler) Session(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("no active session", nil))
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "owner_id": ownerID.String()})
}
