package models

import (
	"encoding/json"
	"fmt"
)

// Store is the aggregate persisted as a single document: every panel plus the ranking ledgers.
// It is always read and written whole.
type Store struct {
	// Panels maps venue IDs to their panel
	Panels map[string]*Panel `json:"panels"`

	// Rankings holds the join counters per category
	Rankings Rankings `json:"rankings"`
}

// NewStore returns the empty aggregate used on first run
func NewStore() *Store {
	s := &Store{}
	s.Normalize()
	return s
}

// Normalize fills in anything a decoded document may lack and
// copies map keys into the VenueID and Key fields.
func (s *Store) Normalize() {
	if s.Panels == nil {
		s.Panels = map[string]*Panel{}
	}
	if s.Rankings == nil {
		s.Rankings = Rankings{}
	}
	for _, category := range Categories {
		if s.Rankings[category] == nil {
			s.Rankings[category] = Ledger{}
		}
	}
	for venueID, panel := range s.Panels {
		if panel == nil {
			delete(s.Panels, venueID)
			continue
		}
		panel.VenueID = venueID
		if panel.Round < 1 {
			panel.Round = 1
		}
		if panel.Queues == nil {
			panel.Queues = QueueList{}
		}
	}
}

// Panel returns the panel for the venue
func (s *Store) Panel(venueID string) (*Panel, bool) {
	p, ok := s.Panels[venueID]
	return p, ok
}

// Validate checks every panel
func (s *Store) Validate() error {
	for venueID, panel := range s.Panels {
		if err := panel.Validate(); err != nil {
			return fmt.Errorf("panel %s: %w", venueID, err)
		}
	}
	return nil
}

// Clone returns a deep copy of the aggregate
func (s *Store) Clone() *Store {
	c := &Store{
		Panels:   make(map[string]*Panel, len(s.Panels)),
		Rankings: s.Rankings.Clone(),
	}
	for venueID, panel := range s.Panels {
		c.Panels[venueID] = panel.Clone()
	}
	return c
}

// EncodeStore serializes the aggregate in its persisted layout
func EncodeStore(s *Store) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal store: %w", err)
	}
	return data, nil
}

// DecodeStore parses a persisted document and normalizes it
func DecodeStore(data []byte) (*Store, error) {
	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal store: %w", err)
	}
	s.Normalize()
	return &s, nil
}
