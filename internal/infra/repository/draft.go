package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	domainorder "github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/order"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra"
)

// DraftStore keeps the last submitted draft per user in redis. One draft per
// user; a new checkout attempt overwrites the previous snapshot.
type DraftStore struct {
	client *redis.Client
}

func NewDraftStore(client *redis.Client) *DraftStore {
	return &DraftStore{client: client}
}

func draftKey(userID uuid.UUID) string {
	return fmt.Sprintf("draft:%s", userID)
}

func (s *DraftStore) Save(ctx context.Context, userID uuid.UUID, draft *domainorder.DraftOrder, ttl time.Duration) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal draft", err)
	}

	if err := s.client.Set(ctx, draftKey(userID), payload, ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save draft", err)
	}

	return nil
}

func (s *DraftStore) Load(ctx context.Context, userID uuid.UUID) (*domainorder.DraftOrder, error) {
	payload, err := s.client.Get(ctx, draftKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.WrapRepoErr("draft not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load draft", err)
	}

	var draft domainorder.DraftOrder
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal draft", err)
	}

	return &draft, nil
}

func (s *DraftStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, draftKey(userID)).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete draft", err)
	}

	return nil
}
