package queue

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/matchqueue/internal/models"
)

// GetPanel returns a copy of the venue's panel read without the writer lock
func (s *service) GetPanel(ctx context.Context, input *GetPanelInput) (*GetPanelOutput, error) {
	if input == nil || input.VenueID == "" {
		return nil, fmt.Errorf("%w: venue ID is required", ErrInvalidInput)
	}

	st, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	panel, ok := st.Panel(input.VenueID)
	if !ok {
		return nil, ErrPanelNotFound
	}

	return &GetPanelOutput{Panel: panel}, nil
}

func (s *service) ListPanels(ctx context.Context) (*ListPanelsOutput, error) {
	st, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	output := &ListPanelsOutput{Panels: make([]*models.Panel, 0, len(st.Panels))}
	for _, venueID := range sortedVenues(st) {
		output.Panels = append(output.Panels, st.Panels[venueID])
	}

	return output, nil
}

// TopRanking returns the most active participants of a category.
// Equal counts are ordered by participant ID.
func (s *service) TopRanking(ctx context.Context, input *TopRankingInput) (*TopRankingOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input is required", ErrInvalidInput)
	}
	if !input.Category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, input.Category)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultRankingLimit
	}

	st, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &TopRankingOutput{
		Category: input.Category,
		Entries:  st.Rankings.Top(input.Category, limit),
	}, nil
}

// Recover rebuilds the selector layout of every panel with a pinned message.
// Queues are the only source: no cached view is consulted.
func (s *service) Recover(ctx context.Context) (*RecoverOutput, error) {
	st, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	output := &RecoverOutput{}
	for _, venueID := range sortedVenues(st) {
		panel := st.Panels[venueID]
		if panel.PinnedMessageID == nil {
			continue
		}
		output.Panels = append(output.Panels, LayoutOf(panel))
	}

	return output, nil
}

// LayoutOf derives the selector layout of a panel
func LayoutOf(panel *models.Panel) PanelLayout {
	layout := PanelLayout{
		VenueID:   panel.VenueID,
		Category:  panel.Category,
		MessageID: models.Deref(panel.PinnedMessageID),
		Round:     panel.Round,
		UnitPrice: panel.UnitPrice,
		Selectors: make([]Selector, 0, len(panel.Queues)),
	}
	for _, q := range panel.Queues {
		layout.Selectors = append(layout.Selectors, Selector{
			ModeKey:  q.Key,
			Label:    q.Label,
			Capacity: q.Capacity,
			Count:    len(q.Participants),
		})
	}
	return layout
}
