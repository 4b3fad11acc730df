package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// SessionCacheImpl implements domain.SessionCache using Redis. The
// database row stays authoritative; the cache only ever holds sessions
// that were active when written, and logout evicts the key, so a hit
// never resurrects a logged-out session.
type SessionCacheImpl struct {
	client *redis.Client
	prefix string
}

// NewSessionCache creates a new session cache
func NewSessionCache(client *redis.Client) domain.SessionCache {
	return &SessionCacheImpl{
		client: client,
		prefix: "session:",
	}
}

// Put implements domain.SessionCache. The key TTL tracks the session
// expiry, so Redis drops the entry on its own once the session expires.
func (c *SessionCacheImpl) Put(ctx context.Context, session *domain.CustomerSession) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	return c.client.Set(ctx, c.prefix+session.AccessToken, data, ttl).Err()
}

// Get implements domain.SessionCache
func (c *SessionCacheImpl) Get(ctx context.Context, accessToken string) (*domain.CustomerSession, bool, error) {
	data, err := c.client.Get(ctx, c.prefix+accessToken).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}

	var session domain.CustomerSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, true, nil
}

// Evict implements domain.SessionCache
func (c *SessionCacheImpl) Evict(ctx context.Context, accessToken string) error {
	return c.client.Del(ctx, c.prefix+accessToken).Err()
}
