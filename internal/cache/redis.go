package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/camrent/config"
	"github.com/Domenick1991/camrent/internal/domain"
	"github.com/Domenick1991/camrent/internal/storefront"
	"github.com/redis/go-redis/v9"
)

// RedisSessionStore keeps storefront sessions in Redis. Every save refreshes
// the session TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(cfg config.RedisConfig) *RedisSessionStore {
	return NewRedisSessionStoreFromClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		time.Duration(cfg.SessionTTLMinutes)*time.Minute,
	)
}

func NewRedisSessionStoreFromClient(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (c *RedisSessionStore) Get(ctx context.Context, id string) (*storefront.Session, error) {
	data, err := c.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	var s storefront.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	relinkSelection(&s)
	return &s, nil
}

func (c *RedisSessionStore) Save(ctx context.Context, s *storefront.Session) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, sessionKey(s.ID), payload, c.ttl).Err()
}

func (c *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, sessionKey(id)).Err()
}

func (c *RedisSessionStore) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisSessionStore) Close() error {
	return c.client.Close()
}

// relinkSelection points the decoded selection back into the session catalog
// so the selected camera is shared with the listing rather than a detached copy.
func relinkSelection(s *storefront.Session) {
	if s.Selected == nil {
		return
	}
	for i := range s.Catalog {
		if s.Catalog[i] == *s.Selected {
			s.Selected = &s.Catalog[i]
			return
		}
	}
}

func sessionKey(id string) string {
	return "storefront:session:" + id
}

var _ storefront.SessionStore = (*RedisSessionStore)(nil)
