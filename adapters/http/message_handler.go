package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	messageuc "github.com/prateek9389/prateekportfolio/internal/application/usecase/message"
)

// MessageHandler exposes the console side of contact messages. The anonymous
// submit endpoint lives on PublicHandler.
type MessageHandler struct {
	messageUC *messageuc.MessageUseCase
}

func NewMessageHandler(messageUC *messageuc.MessageUseCase) *MessageHandler {
	return &MessageHandler{messageUC: messageUC}
}

func (h *MessageHandler) List(c *gin.Context) {
	output, err := h.messageUC.ExecuteList(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]MessageDTO, len(output.Messages))
	for i, m := range output.Messages {
		dtos[i] = ToMessageDTO(m)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *MessageHandler) MarkRead(c *gin.Context) {
	if err := h.messageUC.ExecuteMarkRead(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"read": true})
}

func (h *MessageHandler) Delete(c *gin.Context) {
	if err := h.messageUC.ExecuteDelete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
