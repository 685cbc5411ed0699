package main

import (
	"context"
	"log"

	"github.com/deltahacks/coursehub-backend/config"
	"github.com/deltahacks/coursehub-backend/internal/ai/cohere"
	assistantsvc "github.com/deltahacks/coursehub-backend/internal/assistant/service"
	"github.com/deltahacks/coursehub-backend/internal/bootstrap"
	chatcron "github.com/deltahacks/coursehub-backend/internal/chat/cron"
	chatrepo "github.com/deltahacks/coursehub-backend/internal/chat/repository"
	chatsvc "github.com/deltahacks/coursehub-backend/internal/chat/service"
)

const serviceName = "coursehub-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	rdb, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Printf("redis unavailable, chat transcripts disabled: %v", err)
		rdb = nil
	}

	catalog, err := bootstrap.OpenCatalog(ctx, cfg.App.DatabaseDSN)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	aiClient := cohere.NewClient(cfg.AI.BaseURL, cfg.AI.APIKey)
	opts := assistantsvc.Options{
		ChatModel:     cfg.AI.ChatModel,
		RerankModel:   cfg.AI.RerankModel,
		ClassifyModel: cfg.AI.ClassifyModel,
		MaxTokens:     cfg.AI.MaxTokens,
	}

	strategy, err := assistantsvc.NewStrategy(cfg.AI.Strategy, aiClient, opts)
	if err != nil {
		log.Fatalf("strategy: %v", err)
	}
	log.Printf("answer strategy: %s", cfg.AI.Strategy)

	deps := bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Templates:   cfg.App.Templates,
		Static:      cfg.App.Static,
		Catalog:     catalog,
		Answers:     assistantsvc.NewAnswerService(catalog, strategy),
		Redis:       rdb,
	}

	if rdb != nil {
		convRepo := chatrepo.NewConversationRepository(rdb)
		deps.Chat = chatsvc.NewChatService(
			assistantsvc.NewChatStrategy(aiClient, opts),
			convRepo,
		)
		chatcron.NewScheduler(convRepo).Start()
	}

	r := bootstrap.BuildRouter(deps)

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
