package queue

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/matchqueue/internal/services/queue Service,Notifier

import (
	"context"

	"github.com/KirkDiggler/matchqueue/internal/models"
)

// Service defines the queue admission operations
type Service interface {
	// CreatePanel creates or updates the panel of a venue
	CreatePanel(ctx context.Context, input *CreatePanelInput) (*CreatePanelOutput, error)

	// JoinQueue adds a participant to a queue and completes the round when it fills
	JoinQueue(ctx context.Context, input *JoinQueueInput) (*JoinQueueOutput, error)

	// LeaveQueue removes a participant from a queue
	LeaveQueue(ctx context.Context, input *LeaveQueueInput) (*LeaveQueueOutput, error)

	// RemovePanel deletes the panel of a venue
	RemovePanel(ctx context.Context, input *RemovePanelInput) (*RemovePanelOutput, error)

	// CompleteQueue closes the round of a full queue; a no-op when it is not full
	CompleteQueue(ctx context.Context, input *CompleteQueueInput) (*CompleteQueueOutput, error)

	// CompleteFullQueues runs the completion protocol on every full queue
	CompleteFullQueues(ctx context.Context) ([]*models.QueueCompleted, error)

	// SetPanelMessage records the pinned panel message
	SetPanelMessage(ctx context.Context, input *SetPanelMessageInput) (*SetPanelMessageOutput, error)

	// GetPanel returns a point-in-time copy of a panel
	GetPanel(ctx context.Context, input *GetPanelInput) (*GetPanelOutput, error)

	// ListPanels returns every panel
	ListPanels(ctx context.Context) (*ListPanelsOutput, error)

	// TopRanking returns the participants with the most joins in a category
	TopRanking(ctx context.Context, input *TopRankingInput) (*TopRankingOutput, error)

	// Recover returns the layouts needed to rebuild every pinned panel message
	Recover(ctx context.Context) (*RecoverOutput, error)
}

// Notifier receives committed completions. It is called on its own goroutine
// after the state is saved, so callers of the engine never wait for it; its
// errors are logged and never undo the completion.
type Notifier interface {
	QueueCompleted(ctx context.Context, event *models.QueueCompleted) error
}
