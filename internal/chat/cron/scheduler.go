package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/deltahacks/coursehub-backend/internal/chat/repository"
)

// Scheduler runs the nightly conversation-index prune. Transcript keys expire
// on their own; set members do not, so they are cleaned up here.
type Scheduler struct {
	repo *repository.ConversationRepository
}

func NewScheduler(repo *repository.ConversationRepository) *Scheduler {
	return &Scheduler{repo: repo}
}

// Start initializes cron tasks
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	// (12:00 AM)
	_, err := c.AddFunc("0 0 0 * * *", func() {
		s.pruneConversations()
	})

	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (pruning conversations nightly at 12:00AM)")
	c.Start()
}

func (s *Scheduler) pruneConversations() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := s.repo.PruneIndex(ctx)
	if err != nil {
		log.Printf("Conversation prune failed: %v", err)
		return
	}
	log.Printf("Conversation prune removed %d stale entries", removed)
}
