package session

import (
	"context"
	"fmt"
	"time"

	"bookstore-web/pkg/cache"
)

const keyPrefix = "session:"

// Store persists sessions in a cache.Cache, keyed by session id.
type Store struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewStore(c cache.Cache, ttl time.Duration) *Store {
	return &Store{cache: c, ttl: ttl}
}

// Load returns the stored session, or a fresh one when nothing is stored under id.
func (s *Store) Load(ctx context.Context, id string) (*Session, error) {
	var sess Session
	found, err := s.cache.Get(ctx, keyPrefix+id, &sess)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !found {
		return New(id), nil
	}

	sess.ID = id
	if sess.Bag == nil {
		sess.Bag = make(map[int64]int)
	}
	return &sess, nil
}

// Save writes the session back and resets its modified flag.
func (s *Store) Save(ctx context.Context, sess *Session) error {
	if err := s.cache.Set(ctx, keyPrefix+sess.ID, sess, s.ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	sess.modified = false
	sess.isNew = false
	return nil
}

// Destroy removes the session from the store.
func (s *Store) Destroy(ctx context.Context, id string) error {
	if err := s.cache.Delete(ctx, keyPrefix+id); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}
