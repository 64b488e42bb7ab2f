package university

import (
	"context"
	"errors"
	"time"

	"github.com/whispr-campus/whispr/internal/domain"
)

var ErrNotFound = errors.New("university not found")

//go:generate go run go.uber.org/mock/mockgen -source=university.go -destination=mocks/mock.go
type Repository interface {
	GetAll(ctx context.Context) ([]domain.University, error)
	GetByID(ctx context.Context, id string) (*domain.University, error)
}

// Cache is the subset of the redis cache the cached repository relies on.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}
