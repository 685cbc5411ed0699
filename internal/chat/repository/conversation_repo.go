package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/deltahacks/coursehub-backend/internal/chat/domain"
)

const (
	convKeyPrefix = "chat:conv:" // Transcript data: chat:conv:{conversation_id}
	convIndexKey  = "chat:convs" // Set of known conversation IDs
	convTTL       = 7 * 24 * time.Hour
)

// ConversationRepository stores chat transcripts in Redis. Transcripts expire
// after a week; the index set is pruned separately since set members have no
// per-member TTL.
type ConversationRepository struct {
	client *redis.Client
}

func NewConversationRepository(client *redis.Client) *ConversationRepository {
	return &ConversationRepository{client: client}
}

func (r *ConversationRepository) convKey(id string) string {
	return convKeyPrefix + id
}

// Get retrieves a conversation transcript by ID.
func (r *ConversationRepository) Get(ctx context.Context, id string) (*domain.Conversation, error) {
	data, err := r.client.Get(ctx, r.convKey(id)).Result()
	if err == redis.Nil {
		return nil, domain.ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	var conv domain.Conversation
	if err := json.Unmarshal([]byte(data), &conv); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation: %w", err)
	}
	return &conv, nil
}

// AppendTurn records a user message and the assistant's reply. A blank ID
// starts a new conversation; the (possibly minted) ID is returned.
func (r *ConversationRepository) AppendTurn(ctx context.Context, id, message, reply string) (*domain.Conversation, error) {
	now := time.Now()

	var conv *domain.Conversation
	if id == "" {
		conv = &domain.Conversation{ID: uuid.New().String(), CreatedAt: now}
	} else {
		existing, err := r.Get(ctx, id)
		if err == domain.ErrConversationNotFound {
			conv = &domain.Conversation{ID: id, CreatedAt: now}
		} else if err != nil {
			return nil, err
		} else {
			conv = existing
		}
	}

	conv.Turns = append(conv.Turns,
		domain.Turn{Role: domain.RoleUser, Content: message, At: now},
		domain.Turn{Role: domain.RoleAssistant, Content: reply, At: now},
	)
	conv.UpdatedAt = now

	data, err := json.Marshal(conv)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal conversation: %w", err)
	}

	// Use pipeline for atomic operations
	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.convKey(conv.ID), data, convTTL)
	pipe.SAdd(ctx, convIndexKey, conv.ID)
	pipe.Expire(ctx, convIndexKey, convTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save conversation: %w", err)
	}

	return conv, nil
}

// ListIDs returns the IDs in the conversation index, including any whose
// transcripts have already expired.
func (r *ConversationRepository) ListIDs(ctx context.Context) ([]string, error) {
	ids, err := r.client.SMembers(ctx, convIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return ids, nil
}

// PruneIndex drops index entries whose transcript keys have expired and
// returns how many were removed.
func (r *ConversationRepository) PruneIndex(ctx context.Context) (int, error) {
	ids, err := r.ListIDs(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, id := range ids {
		exists, err := r.client.Exists(ctx, r.convKey(id)).Result()
		if err != nil {
			return removed, fmt.Errorf("failed to check conversation %s: %w", id, err)
		}
		if exists == 0 {
			if err := r.client.SRem(ctx, convIndexKey, id).Err(); err != nil {
				return removed, fmt.Errorf("failed to prune conversation %s: %w", id, err)
			}
			removed++
		}
	}
	return removed, nil
}
