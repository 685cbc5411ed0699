package http

import "github.com/gin-gonic/gin"

// Register attaches the HTML course pages to the root router.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.index)
	r.GET("/courses/:code", h.show)
	// Older links use the singular form.
	r.GET("/course/:code", h.show)
}

// RegisterAPI attaches the JSON catalog routes to the given group.
func (h *Handler) RegisterAPI(rg *gin.RouterGroup) {
	rg.GET("/courses", h.listJSON)
	rg.GET("/courses/:code", h.showJSON)
}
