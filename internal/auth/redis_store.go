package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	sessionKeyPrefix        = "session:"
	accountSessionKeyPrefix = "account_sessions:"
)

// RedisSessionStore keeps one key per session holding the account id, plus a
// set per account indexing its session ids.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func accountSessionsKey(accountID uint) string {
	return fmt.Sprintf("%s%d", accountSessionKeyPrefix, accountID)
}

func (s *RedisSessionStore) Save(ctx context.Context, sess *Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	setKey := accountSessionsKey(sess.AccountID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sessionKeyPrefix+sess.ID, sess.AccountID, ttl)
		pipe.SAdd(ctx, setKey, sess.ID)
		// newest session expires last
		pipe.Expire(ctx, setKey, ttl)
		return nil
	})
	return err
}

func (s *RedisSessionStore) Active(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisSessionStore) Revoke(ctx context.Context, sessionID string) error {
	key := sessionKeyPrefix + sessionID

	owner, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if id, perr := strconv.ParseUint(owner, 10, 64); perr == nil {
			pipe.SRem(ctx, accountSessionsKey(uint(id)), sessionID)
		}
		return nil
	})
	return err
}

func (s *RedisSessionStore) RevokeAll(ctx context.Context, accountID uint) error {
	setKey := accountSessionsKey(accountID)

	ids, err := s.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKeyPrefix+id)
	}
	keys = append(keys, setKey)

	return s.client.Del(ctx, keys...).Err()
}

var _ SessionStore = (*RedisSessionStore)(nil)
