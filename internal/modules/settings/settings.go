package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Setting is one named JSON slot the admin console edits: hero banner,
// announcement bar, shipping notice and the like. The storefront treats the
// value as opaque.
type Setting struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Repository defines data access for settings.
type Repository interface {
	Get(ctx context.Context, key string) (*Setting, error)
	Put(ctx context.Context, s *Setting) error
	List(ctx context.Context) ([]*Setting, error)
}

// Service defines settings business logic.
type Service interface {
	GetSetting(ctx context.Context, key string) (*Setting, error)
	PutSetting(ctx context.Context, key string, value json.RawMessage) (*Setting, error)
	ListSettings(ctx context.Context) ([]*Setting, error)
}

type service struct{ repo Repository }

// NewService creates a new settings service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) GetSetting(ctx context.Context, key string) (*Setting, error) {
	return s.repo.Get(ctx, key)
}

func (s *service) PutSetting(ctx context.Context, key string, value json.RawMessage) (*Setting, error) {
	if key == "" {
		return nil, fmt.Errorf("key is required")
	}
	if !json.Valid(value) {
		return nil, fmt.Errorf("value must be valid JSON")
	}
	setting := &Setting{Key: key, Value: value, UpdatedAt: time.Now()}
	if err := s.repo.Put(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *service) ListSettings(ctx context.Context) ([]*Setting, error) {
	return s.repo.List(ctx)
}
