package store

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/matchqueue/internal/repositories/store Repository

import (
	"context"

	"github.com/KirkDiggler/matchqueue/internal/models"
)

// Repository persists the whole queue aggregate as one document
type Repository interface {
	// Load reads the aggregate, returning an empty one when nothing was saved yet
	Load(ctx context.Context) (*models.Store, error)

	// Save replaces the persisted aggregate
	Save(ctx context.Context, input *SaveInput) error
}
