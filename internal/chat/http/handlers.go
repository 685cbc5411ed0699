package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/deltahacks/coursehub-backend/internal/chat/domain"
	"github.com/deltahacks/coursehub-backend/internal/chat/service"
)

// Handler serves the free-form chat page.
type Handler struct {
	chat *service.ChatService
}

func New(chat *service.ChatService) *Handler {
	return &Handler{chat: chat}
}

// Register attaches the chat routes to the root router.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/chat", h.page)
	r.POST("/chat", h.send)
}

func (h *Handler) page(c *gin.Context) {
	id := strings.TrimSpace(c.Query("conversation_id"))
	data := gin.H{}

	if id != "" {
		conv, err := h.chat.Transcript(c.Request.Context(), id)
		if err == nil {
			data["Conversation"] = conv
		} else if !errors.Is(err, domain.ErrConversationNotFound) {
			c.String(http.StatusInternalServerError, "failed to load conversation")
			return
		}
	}

	c.HTML(http.StatusOK, "chat.tmpl", data)
}

func (h *Handler) send(c *gin.Context) {
	message := strings.TrimSpace(c.PostForm("message"))
	if message == "" {
		c.String(http.StatusBadRequest, "message is required")
		return
	}

	conv, _, err := h.chat.Send(c.Request.Context(), strings.TrimSpace(c.PostForm("conversation_id")), message)
	if err != nil {
		c.String(http.StatusBadGateway, "the assistant is unavailable right now")
		return
	}

	c.HTML(http.StatusOK, "chat.tmpl", gin.H{
		"Conversation": conv,
	})
}
