package store

import (
	"errors"

	"github.com/KirkDiggler/matchqueue/internal/models"
)

// ErrCorruptStore is returned when the persisted document cannot be decoded
var ErrCorruptStore = errors.New("store document is corrupt")

// ErrNilStore is returned when Save is called without an aggregate
var ErrNilStore = errors.New("input and store cannot be nil")

// SaveInput contains the aggregate to persist
type SaveInput struct {
	Store *models.Store
}
