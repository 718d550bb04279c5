package store

import (
	"fmt"

	"github.com/KirkDiggler/matchqueue/internal/models"
)

func encode(input *SaveInput) ([]byte, error) {
	if input == nil || input.Store == nil {
		return nil, ErrNilStore
	}
	return models.EncodeStore(input.Store)
}

func decode(data []byte) (*models.Store, error) {
	s, err := models.DecodeStore(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptStore, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptStore, err)
	}
	return s, nil
}
