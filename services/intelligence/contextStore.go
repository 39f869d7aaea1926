// File: services/intelligence/contextStore.go
package ai

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const draftPrefix = "ai:agenda:"

// RedisDraftStore remembers successful drafts per topic and duration.
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{client: client, ttl: ttl}
}

func draftKey(topic string, durationMinutes int) string {
	sum := sha1.Sum([]byte(topic + "\x00" + strconv.Itoa(durationMinutes)))
	return draftPrefix + hex.EncodeToString(sum[:])
}

// Get returns "" and no error on a miss.
func (s *RedisDraftStore) Get(ctx context.Context, topic string, durationMinutes int) (string, error) {
	text, err := s.client.Get(ctx, draftKey(topic, durationMinutes)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return text, err
}

func (s *RedisDraftStore) Set(ctx context.Context, topic string, durationMinutes int, text string) error {
	return s.client.Set(ctx, draftKey(topic, durationMinutes), text, s.ttl).Err()
}

// CachedAgendaDrafter serves repeated requests from the draft store. Fallback
// texts are never cached so a recovered service is used on the next call.
type CachedAgendaDrafter struct {
	Next   AgendaDrafter
	Store  *RedisDraftStore
	Logger *zap.Logger
}

func (c *CachedAgendaDrafter) DraftAgenda(ctx context.Context, topic string, durationMinutes int) string {
	if text, err := c.Store.Get(ctx, topic, durationMinutes); err != nil {
		c.Logger.Warn("agenda cache read failed", zap.Error(err))
	} else if text != "" {
		return text
	}

	text := c.Next.DraftAgenda(ctx, topic, durationMinutes)
	if text == FallbackUnavailable || text == FallbackEmpty {
		return text
	}
	if err := c.Store.Set(ctx, topic, durationMinutes, text); err != nil {
		c.Logger.Warn("agenda cache write failed", zap.Error(err))
	}
	return text
}
