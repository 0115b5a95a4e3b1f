// Package session persists the caller's bearer token between CLI invocations.
// The API client never reads it; callers look the token up and pass it explicitly.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillsync-client/internal/common/config"
	"skillsync-client/internal/common/logger"
)

const (
	KeyToken = "token"
	KeyRole  = "role"
)

var ErrNotFound = errors.New("session: key not found")

// Store is a process-wide string key/value store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Token returns the stored bearer token, or "" when none is stored.
func Token(ctx context.Context, s Store) (string, error) {
	if s == nil {
		return "", nil
	}
	tok, err := s.Get(ctx, KeyToken)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return tok, err
}

// Save stores the credentials returned by a successful login.
func Save(ctx context.Context, s Store, token, role string) error {
	if err := s.Set(ctx, KeyToken, token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	if role == "" {
		return nil
	}
	if err := s.Set(ctx, KeyRole, role); err != nil {
		return fmt.Errorf("failed to store role: %w", err)
	}
	return nil
}

// Clear removes the stored credentials. Missing keys are not an error.
func Clear(ctx context.Context, s Store) error {
	for _, key := range []string{KeyToken, KeyRole} {
		if err := s.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}
	}
	return nil
}

// NewStore builds the backend selected in cfg.
func NewStore(ctx context.Context, cfg config.SessionConfig, log logger.Logger) (Store, error) {
	switch cfg.Backend {
	case "memory":
		return NewMemoryStore(), nil
	case "file", "":
		return NewFileStore(cfg.Path), nil
	case "redis":
		store := NewRedisStore(cfg.Redis, time.Duration(cfg.Redis.TTL)*time.Second)
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, err
		}
		if log != nil {
			log.Debug("Connected to redis session store", map[string]interface{}{
				"address": cfg.Redis.Address,
				"db":      cfg.Redis.DB,
			})
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
	}
}
