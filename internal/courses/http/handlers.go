package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/deltahacks/coursehub-backend/internal/courses/domain"
	"github.com/deltahacks/coursehub-backend/internal/courses/repository"
)

// Handler renders the course pages and serves the JSON catalog API.
type Handler struct {
	catalog repository.Provider
}

func New(catalog repository.Provider) *Handler {
	return &Handler{catalog: catalog}
}

func (h *Handler) index(c *gin.Context) {
	items, err := h.catalog.List(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load courses")
		return
	}

	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"Courses": items,
	})
}

func (h *Handler) show(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))

	course, err := h.catalog.GetByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			c.HTML(http.StatusNotFound, "notfound.tmpl", gin.H{"Code": code})
			return
		}
		c.String(http.StatusInternalServerError, "failed to load course")
		return
	}

	c.HTML(http.StatusOK, "course.tmpl", gin.H{
		"Course": course,
	})
}

func (h *Handler) listJSON(c *gin.Context) {
	items, err := h.catalog.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	out := make([]courseSummary, 0, len(items))
	for _, course := range items {
		out = append(out, toSummary(course))
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "courses": out})
}

func (h *Handler) showJSON(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))

	course, err := h.catalog.GetByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "course not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "course": course})
}
