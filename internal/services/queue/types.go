package queue

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/matchqueue/internal/common/clock"
	"github.com/KirkDiggler/matchqueue/internal/common/uuid"
	"github.com/KirkDiggler/matchqueue/internal/models"
	storeRepo "github.com/KirkDiggler/matchqueue/internal/repositories/store"
)

// DefaultRankingLimit is the number of entries TopRanking returns when no limit is given
const DefaultRankingLimit = 10

// Config holds configuration for the queue service
type Config struct {
	// Store persists the aggregate
	Store storeRepo.Repository

	// Notifier receives completion events after they are committed (optional)
	Notifier Notifier

	// Clock stamps completions (optional)
	Clock clock.Clock

	// UUIDGenerator names completions (optional)
	UUIDGenerator uuid.UUID

	// Logger for the service (optional)
	Logger *slog.Logger

	// FeePerEntrant is the house fee charged per participant of a completed queue
	FeePerEntrant models.Money

	// MaxCapacity caps queue capacity; zero or less means no cap
	MaxCapacity int

	// NotifyTimeout bounds each notifier call (optional)
	NotifyTimeout time.Duration
}

// ModeInput declares one queue of a panel
type ModeInput struct {
	// Key is the mode key; derived from Label when empty
	Key string

	// Label is the display name of the mode or map
	Label string

	// Capacity is the number of participants that completes a round
	Capacity int
}

// CreatePanelInput contains parameters for creating or updating a panel.
// The caller must already have verified that the requester is staff.
type CreatePanelInput struct {
	// VenueID is the Discord channel the panel lives in
	VenueID string

	// Category is the game the panel runs queues for
	Category models.ActivityCategory

	// UnitPrice is the entry price per participant
	UnitPrice models.Money

	// Modes lists the queues to create or update
	Modes []ModeInput
}

// CreatePanelOutput contains the result of creating a panel
type CreatePanelOutput struct {
	// Panel is the panel after the upsert
	Panel *models.Panel

	// Created is true when the venue had no panel before
	Created bool

	// Completions holds events for queues that were full after a capacity change
	Completions []*models.QueueCompleted
}

// JoinQueueInput contains parameters for joining a queue
type JoinQueueInput struct {
	VenueID       string
	ModeKey       string
	ParticipantID string
}

// JoinQueueOutput contains the result of joining a queue
type JoinQueueOutput struct {
	// Queue is the queue state right after the join was committed
	Queue *models.Queue

	// Category is the panel's activity category
	Category models.ActivityCategory

	// JustFilled is true when this join brought the queue to capacity
	JustFilled bool

	// Completion is set when this call also committed the completion of the round
	Completion *models.QueueCompleted
}

// LeaveQueueInput contains parameters for leaving a queue
type LeaveQueueInput struct {
	VenueID       string
	ModeKey       string
	ParticipantID string
}

// LeaveQueueOutput contains the result of leaving a queue
type LeaveQueueOutput struct {
	// Queue is the queue state after the participant was removed
	Queue *models.Queue
}

// RemovePanelInput contains parameters for removing a panel.
// The caller must already have verified that the requester is staff.
type RemovePanelInput struct {
	VenueID string
}

// RemovePanelOutput contains the result of removing a panel
type RemovePanelOutput struct {
	// PinnedMessageID is the last pinned panel message, empty if none
	PinnedMessageID string
}

// CompleteQueueInput contains parameters for completing a full queue
type CompleteQueueInput struct {
	VenueID string
	ModeKey string
}

// CompleteQueueOutput contains the result of a completion attempt
type CompleteQueueOutput struct {
	// Completed is false when the queue was no longer full
	Completed bool

	// Event is the committed completion, nil when Completed is false
	Event *models.QueueCompleted
}

// SetPanelMessageInput contains parameters for recording the pinned panel message
type SetPanelMessageInput struct {
	VenueID string

	// MessageID is the new panel message; empty clears it
	MessageID string
}

// SetPanelMessageOutput contains the result of recording the panel message
type SetPanelMessageOutput struct {
	// PreviousMessageID is the message that was pinned before, empty if none
	PreviousMessageID string

	// Panel is the panel after the update
	Panel *models.Panel
}

// GetPanelInput contains parameters for reading a panel
type GetPanelInput struct {
	VenueID string
}

// GetPanelOutput contains a point-in-time copy of a panel
type GetPanelOutput struct {
	Panel *models.Panel
}

// ListPanelsOutput contains every panel ordered by venue
type ListPanelsOutput struct {
	Panels []*models.Panel
}

// TopRankingInput contains parameters for reading a ranking
type TopRankingInput struct {
	Category models.ActivityCategory

	// Limit is the maximum number of entries; DefaultRankingLimit when zero
	Limit int
}

// TopRankingOutput contains the ranking entries
type TopRankingOutput struct {
	Category models.ActivityCategory
	Entries  []models.RankingEntry
}

// Selector describes one queue button of a panel message
type Selector struct {
	ModeKey  string
	Label    string
	Capacity int
	Count    int
}

// PanelLayout is everything needed to rebuild a pinned panel message
type PanelLayout struct {
	VenueID   string
	Category  models.ActivityCategory
	MessageID string
	Round     int
	UnitPrice models.Money
	Selectors []Selector
}

// RecoverOutput contains the layouts of all pinned panels
type RecoverOutput struct {
	Panels []PanelLayout
}
