package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/deltahacks/coursehub-backend/internal/api/http"
	"github.com/deltahacks/coursehub-backend/internal/api/middleware"
	assistanthttp "github.com/deltahacks/coursehub-backend/internal/assistant/http"
	assistantsvc "github.com/deltahacks/coursehub-backend/internal/assistant/service"
	chathttp "github.com/deltahacks/coursehub-backend/internal/chat/http"
	chatsvc "github.com/deltahacks/coursehub-backend/internal/chat/service"
	courseshttp "github.com/deltahacks/coursehub-backend/internal/courses/http"
	"github.com/deltahacks/coursehub-backend/internal/courses/repository"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Templates   string
	Static      string
	Catalog     repository.Provider
	Answers     *assistantsvc.AnswerService
	Chat        *chatsvc.ChatService
	Redis       *redis.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestIDMiddleware())

	if dep.Templates != "" {
		r.LoadHTMLGlob(dep.Templates)
	}
	if dep.Static != "" {
		r.Static("/static", dep.Static)
	}

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis)
	healthHandler.RegisterRoutes(r)

	coursesHandler := courseshttp.New(dep.Catalog)
	coursesHandler.Register(r)

	askHandler := assistanthttp.New(dep.Answers)
	askHandler.Register(r)

	if dep.Chat != nil {
		chatHandler := chathttp.New(dep.Chat)
		chatHandler.Register(r)
	}

	api := r.Group("/api/v1")
	api.Use(cors.Default())
	coursesHandler.RegisterAPI(api)
	askHandler.RegisterAPI(api)

	return r
}
