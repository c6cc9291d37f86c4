package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TokenStore tracks issued session token ids. A token missing from the store
// is treated as revoked by the auth middleware; revoking every token of a
// subject invalidates all of their sessions at once.
type TokenStore interface {
	Save(ctx context.Context, subjectID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, subjectID uuid.UUID, tokenID string) (bool, error)
	RevokeAll(ctx context.Context, subjectID uuid.UUID) error
}

type redisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{client: client}
}

func sessionKey(subjectID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("session_token:%s:%s", subjectID.String(), tokenID)
}

func (s *redisTokenStore) Save(ctx context.Context, subjectID uuid.UUID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(subjectID, tokenID), "valid", ttl).Err()
}

func (s *redisTokenStore) Exists(ctx context.Context, subjectID uuid.UUID, tokenID string) (bool, error) {
	exists, err := s.client.Exists(ctx, sessionKey(subjectID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

// RevokeAll walks the subject's session keys with SCAN so large keyspaces
// never block the server, deleting in batches as it goes.
func (s *redisTokenStore) RevokeAll(ctx context.Context, subjectID uuid.UUID) error {
	pattern := fmt.Sprintf("session_token:%s:*", subjectID.String())

	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
