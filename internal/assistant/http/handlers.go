package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/deltahacks/coursehub-backend/internal/assistant/service"
	"github.com/deltahacks/coursehub-backend/internal/courses/domain"
)

// Handler serves the per-course question form submissions.
type Handler struct {
	answers *service.AnswerService
}

func New(answers *service.AnswerService) *Handler {
	return &Handler{answers: answers}
}

// Register attaches the HTML ask routes to the root router.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/courses/:code/ai", h.ask)
	r.POST("/course/:code/ai", h.ask)
}

// RegisterAPI attaches the JSON ask route to the given group.
func (h *Handler) RegisterAPI(rg *gin.RouterGroup) {
	rg.POST("/courses/:code/ai", h.askJSON)
}

func (h *Handler) ask(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	question := strings.TrimSpace(c.PostForm("question"))
	if question == "" {
		c.String(http.StatusBadRequest, "question is required")
		return
	}

	answer, err := h.answers.Ask(c.Request.Context(), code, question, c.PostForm("conversation_id"))
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			c.HTML(http.StatusNotFound, "notfound.tmpl", gin.H{"Code": code})
			return
		}
		c.String(http.StatusBadGateway, "the assistant is unavailable right now")
		return
	}

	c.HTML(http.StatusOK, "answer.tmpl", gin.H{
		"Code":     code,
		"Question": question,
		"Answer":   answer,
	})
}

func (h *Handler) askJSON(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))

	var req struct {
		Question       string `json:"question"`
		ConversationID string `json:"conversation_id,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	answer, err := h.answers.Ask(c.Request.Context(), code, req.Question, req.ConversationID)
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "course not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "answer": answer})
}
