package models

import (
	"time"
)

// QueueCompleted is emitted once per fill event after the queue was reset
type QueueCompleted struct {
	// ID uniquely identifies this completion
	ID string

	// VenueID is the channel whose panel owns the queue
	VenueID string

	// ModeKey is the key of the queue that filled
	ModeKey string

	// Label is the display name of the mode or map
	Label string

	// Category is the panel's activity category
	Category ActivityCategory

	// Participants is the snapshot of the queue at the moment it filled
	Participants []string

	// UnitPrice is the per-participant entry price
	UnitPrice Money

	// TotalValue is capacity times unit price
	TotalValue Money

	// FeeTotal is capacity times the per-entrant fee
	FeeTotal Money

	// CompletedRound is the round number that just closed
	CompletedRound int

	// Round is the round number the queue reopened with
	Round int

	// PinnedMessageID is the panel message to refresh, if any
	PinnedMessageID string

	// CompletedAt is when the completion was committed
	CompletedAt time.Time
}
