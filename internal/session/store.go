package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/marketconnect/backend/internal/model"
	"github.com/redis/go-redis/v9"
)

const CookieName = "mc_session"

var ErrNotFound = errors.New("session not found")

type Session struct {
	UserID     uint64         `json:"userId"`
	UserType   model.UserType `json:"userType"`
	FullName   string         `json:"fullName"`
	Email      string         `json:"email"`
	CSRFToken  string         `json:"csrfToken"`
	LoggedInAt time.Time      `json:"loggedInAt"`
}

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func key(id string) string {
	return "session:" + id
}

// Create persists the session and returns its id. A fresh CSRF token is
// minted when the caller did not set one.
func (s *Store) Create(ctx context.Context, sess *Session) (string, error) {
	if sess.CSRFToken == "" {
		sess.CSRFToken = uuid.NewString()
	}
	if sess.LoggedInAt.IsZero() {
		sess.LoggedInAt = time.Now()
	}
	id := uuid.NewString()
	raw, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, key(id), raw, s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := s.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	// Sliding expiry: touching the session keeps an active user logged in.
	_ = s.rdb.Expire(ctx, key(id), s.ttl).Err()
	return &sess, nil
}

func (s *Store) Destroy(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, key(id)).Err()
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}
