package models

import (
	"errors"
	"fmt"
	"strings"
)

// ActivityCategory identifies which game a panel runs queues for
type ActivityCategory string

const (
	// CategoryStumble is Stumble Guys, played on fixed maps
	CategoryStumble ActivityCategory = "stumble"

	// CategoryValorant is Valorant, played in custom modes such as 1x1 or 5x5
	CategoryValorant ActivityCategory = "valorant"
)

// Categories lists every known activity category in display order
var Categories = []ActivityCategory{CategoryStumble, CategoryValorant}

// Valid reports whether the category is one of the known categories
func (c ActivityCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// MinCapacity is the smallest capacity a queue may have
const MinCapacity = 2

var (
	// ErrQueueInvariant is returned by Validate when a queue is inconsistent
	ErrQueueInvariant = errors.New("queue invariant violated")

	// ErrPanelInvariant is returned by Validate when a panel is inconsistent
	ErrPanelInvariant = errors.New("panel invariant violated")
)

// ModeKey derives the storage key for a mode or map label,
// e.g. "Block Dash" becomes "block_dash"
func ModeKey(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "_")
}

// Queue is one admission line for a mode or map inside a panel
type Queue struct {
	// Key is the mode key the queue is stored under
	Key string `json:"-"`

	// Label is the display name of the mode or map
	Label string `json:"label"`

	// Capacity is the number of participants that completes a round
	Capacity int `json:"capacity"`

	// Participants holds participant IDs in join order
	Participants []string `json:"participants"`

	// MessageID is the Discord message showing this queue, if any
	MessageID *string `json:"messageRef"`
}

// Contains reports whether the participant is waiting in the queue
func (q *Queue) Contains(participantID string) bool {
	for _, id := range q.Participants {
		if id == participantID {
			return true
		}
	}
	return false
}

// IsFull reports whether the queue reached its capacity
func (q *Queue) IsFull() bool {
	return len(q.Participants) >= q.Capacity
}

// Remaining returns the number of free slots
func (q *Queue) Remaining() int {
	if q.IsFull() {
		return 0
	}
	return q.Capacity - len(q.Participants)
}

// Remove drops the participant and reports whether it was present
func (q *Queue) Remove(participantID string) bool {
	for i, id := range q.Participants {
		if id == participantID {
			q.Participants = append(q.Participants[:i:i], q.Participants[i+1:]...)
			return true
		}
	}
	return false
}

// Validate checks the capacity bound and participant uniqueness
func (q *Queue) Validate() error {
	if q.Capacity < MinCapacity {
		return fmt.Errorf("%w: %s capacity %d below %d", ErrQueueInvariant, q.Key, q.Capacity, MinCapacity)
	}
	if len(q.Participants) > q.Capacity {
		return fmt.Errorf("%w: %s has %d participants for capacity %d", ErrQueueInvariant, q.Key, len(q.Participants), q.Capacity)
	}
	seen := make(map[string]struct{}, len(q.Participants))
	for _, id := range q.Participants {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s lists %s twice", ErrQueueInvariant, q.Key, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Clone returns a deep copy of the queue
func (q *Queue) Clone() *Queue {
	if q == nil {
		return nil
	}
	c := *q
	c.Participants = append([]string{}, q.Participants...)
	if q.MessageID != nil {
		id := *q.MessageID
		c.MessageID = &id
	}
	return &c
}

// Panel is the set of queues configured for one venue (a Discord channel)
type Panel struct {
	// VenueID is the channel the panel lives in
	VenueID string `json:"-"`

	// Category is the game the panel runs queues for
	Category ActivityCategory `json:"activityCategory"`

	// UnitPrice is the entry price per participant
	UnitPrice Money `json:"unitPrice"`

	// Round counts completed rounds, starting at 1
	Round int `json:"roundNumber"`

	// PinnedMessageID is the pinned panel message, if one was posted
	PinnedMessageID *string `json:"pinnedMessageRef"`

	// Queues holds the panel's queues in creation order
	Queues QueueList `json:"queues"`
}

// NewPanel creates an empty panel at round 1
func NewPanel(venueID string, category ActivityCategory, unitPrice Money) *Panel {
	return &Panel{
		VenueID:   venueID,
		Category:  category,
		UnitPrice: unitPrice,
		Round:     1,
	}
}

// Queue returns the queue stored under the mode key
func (p *Panel) Queue(modeKey string) (*Queue, bool) {
	return p.Queues.Get(modeKey)
}

// Validate checks the panel invariants and those of every queue
func (p *Panel) Validate() error {
	if p.Round < 1 {
		return fmt.Errorf("%w: round %d", ErrPanelInvariant, p.Round)
	}
	if p.UnitPrice < 0 {
		return fmt.Errorf("%w: negative unit price %s", ErrPanelInvariant, p.UnitPrice)
	}
	for _, q := range p.Queues {
		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of the panel
func (p *Panel) Clone() *Panel {
	if p == nil {
		return nil
	}
	c := *p
	if p.PinnedMessageID != nil {
		id := *p.PinnedMessageID
		c.PinnedMessageID = &id
	}
	c.Queues = make(QueueList, 0, len(p.Queues))
	for _, q := range p.Queues {
		c.Queues = append(c.Queues, q.Clone())
	}
	return &c
}

// StringRef returns a pointer to s, or nil when s is empty
func StringRef(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the referenced string, or "" for nil
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
