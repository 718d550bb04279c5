package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/matchqueue/internal/common/clock"
	"github.com/KirkDiggler/matchqueue/internal/common/uuid"
	"github.com/KirkDiggler/matchqueue/internal/models"
	storeRepo "github.com/KirkDiggler/matchqueue/internal/repositories/store"
)

// errNoChange aborts a transaction without saving
var errNoChange = errors.New("no change")

// DefaultNotifyTimeout bounds one notifier call when Config.NotifyTimeout is unset
const DefaultNotifyTimeout = 30 * time.Second

// service implements the Service interface.
// mu is the single writer lock: every load-mutate-save cycle holds it.
type service struct {
	mu            sync.Mutex
	store         storeRepo.Repository
	notifier      Notifier
	clock         clock.Clock
	uuid          uuid.UUID
	logger        *slog.Logger
	feePerEntrant models.Money
	maxCapacity   int
	notifyTimeout time.Duration

	// notifying counts completion notifications still in flight
	notifying sync.WaitGroup
}

// New creates a new queue service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Store == nil {
		return nil, ErrNilStore
	}

	if cfg.FeePerEntrant < 0 {
		return nil, fmt.Errorf("%w: negative fee", ErrInvalidPrice)
	}

	svc := &service{
		store:         cfg.Store,
		notifier:      cfg.Notifier,
		clock:         cfg.Clock,
		uuid:          cfg.UUIDGenerator,
		logger:        cfg.Logger,
		feePerEntrant: cfg.FeePerEntrant,
		maxCapacity:   cfg.MaxCapacity,
		notifyTimeout: cfg.NotifyTimeout,
	}

	if svc.notifier == nil {
		svc.notifier = noopNotifier{}
	}
	if svc.clock == nil {
		svc.clock = &clock.DefaultClock{}
	}
	if svc.uuid == nil {
		svc.uuid = uuid.New()
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	if svc.notifyTimeout <= 0 {
		svc.notifyTimeout = DefaultNotifyTimeout
	}

	return svc, nil
}

// update loads the aggregate, applies fn and saves the result, all under the
// writer lock. The transaction ignores caller cancellation once the lock is
// held so a load is never left without its save.
func (s *service) update(ctx context.Context, fn func(st *models.Store) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txCtx := context.WithoutCancel(ctx)

	st, err := s.store.Load(txCtx)
	if err != nil {
		return storeError("load", err)
	}

	if err := fn(st); err != nil {
		if errors.Is(err, errNoChange) {
			return nil
		}
		return err
	}

	if err := s.store.Save(txCtx, &storeRepo.SaveInput{Store: st}); err != nil {
		return storeError("save", err)
	}

	return nil
}

// snapshot loads the aggregate without taking the writer lock.
// The result may be stale by the time it is displayed.
func (s *service) snapshot(ctx context.Context) (*models.Store, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, storeError("load", err)
	}
	return st, nil
}

func storeError(op string, err error) error {
	return fmt.Errorf("%w: failed to %s store: %w", ErrStoreIO, op, err)
}

func findQueue(st *models.Store, venueID, modeKey string) (*models.Panel, *models.Queue, error) {
	panel, ok := st.Panel(venueID)
	if !ok {
		return nil, nil, ErrPanelNotFound
	}
	q, ok := panel.Queue(modeKey)
	if !ok {
		return nil, nil, ErrQueueNotFound
	}
	return panel, q, nil
}

// CreatePanel creates or updates the panel of a venue. Existing queues keep
// their participants; only label and capacity change.
func (s *service) CreatePanel(ctx context.Context, input *CreatePanelInput) (*CreatePanelOutput, error) {
	if input == nil || input.VenueID == "" {
		return nil, fmt.Errorf("%w: venue ID is required", ErrInvalidInput)
	}
	if !input.Category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, input.Category)
	}
	if input.UnitPrice < 0 {
		return nil, ErrInvalidPrice
	}
	if len(input.Modes) == 0 {
		return nil, ErrNoModes
	}

	modes := make([]ModeInput, 0, len(input.Modes))
	for _, m := range input.Modes {
		m.Label = strings.TrimSpace(m.Label)
		if m.Label == "" {
			return nil, fmt.Errorf("%w: mode label is required", ErrInvalidInput)
		}
		if m.Key == "" {
			m.Key = models.ModeKey(m.Label)
		}
		if err := s.checkCapacity(m.Capacity); err != nil {
			return nil, fmt.Errorf("%w: %s", err, m.Label)
		}
		modes = append(modes, m)
	}

	output := &CreatePanelOutput{}
	var filled []string

	err := s.update(ctx, func(st *models.Store) error {
		panel, ok := st.Panel(input.VenueID)
		if !ok {
			panel = models.NewPanel(input.VenueID, input.Category, input.UnitPrice)
			st.Panels[input.VenueID] = panel
			output.Created = true
		}
		panel.Category = input.Category
		panel.UnitPrice = input.UnitPrice

		for _, m := range modes {
			q, _ := panel.Queues.Upsert(m.Key, m.Label, m.Capacity)
			if len(q.Participants) > q.Capacity {
				return fmt.Errorf("%w: %s already has %d waiting", ErrInvalidCapacity, q.Label, len(q.Participants))
			}
			if q.MessageID == nil && panel.PinnedMessageID != nil {
				q.MessageID = models.StringRef(*panel.PinnedMessageID)
			}
		}

		filled = filled[:0]
		for _, q := range panel.Queues {
			if len(q.Participants) > 0 && q.IsFull() {
				filled = append(filled, q.Key)
			}
		}

		output.Panel = panel.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	// A lowered capacity can leave a queue exactly full; close those rounds too.
	for _, modeKey := range filled {
		completed, err := s.CompleteQueue(ctx, &CompleteQueueInput{VenueID: input.VenueID, ModeKey: modeKey})
		if err != nil {
			s.logger.Error("failed to complete queue after panel update",
				"venue_id", input.VenueID, "mode", modeKey, "error", err)
			continue
		}
		if completed.Completed {
			output.Completions = append(output.Completions, completed.Event)
		}
	}
	if len(output.Completions) > 0 {
		if refreshed, err := s.GetPanel(ctx, &GetPanelInput{VenueID: input.VenueID}); err == nil {
			output.Panel = refreshed.Panel
		}
	}

	s.logger.Info("panel saved",
		"venue_id", input.VenueID,
		"category", input.Category,
		"modes", len(modes),
		"created", output.Created)

	return output, nil
}

func (s *service) checkCapacity(capacity int) error {
	if capacity < models.MinCapacity {
		return fmt.Errorf("%w: must be at least %d", ErrInvalidCapacity, models.MinCapacity)
	}
	if s.maxCapacity > 0 && capacity > s.maxCapacity {
		return fmt.Errorf("%w: must be at most %d", ErrInvalidCapacity, s.maxCapacity)
	}
	return nil
}

// JoinQueue adds a participant to a queue and bumps their ranking counter.
// When the join fills the queue, the completion protocol runs as a second
// transaction that re-checks the fill state before resetting the queue.
func (s *service) JoinQueue(ctx context.Context, input *JoinQueueInput) (*JoinQueueOutput, error) {
	if input == nil || input.VenueID == "" || input.ModeKey == "" || input.ParticipantID == "" {
		return nil, fmt.Errorf("%w: venue, mode and participant are required", ErrInvalidInput)
	}

	output := &JoinQueueOutput{}
	err := s.update(ctx, func(st *models.Store) error {
		panel, q, err := findQueue(st, input.VenueID, input.ModeKey)
		if err != nil {
			return err
		}
		if q.Contains(input.ParticipantID) {
			return ErrAlreadyJoined
		}
		if q.IsFull() {
			return ErrQueueFull
		}

		q.Participants = append(q.Participants, input.ParticipantID)
		st.Rankings.Increment(panel.Category, input.ParticipantID)

		output.Queue = q.Clone()
		output.Category = panel.Category
		output.JustFilled = q.IsFull()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !output.JustFilled {
		return output, nil
	}

	completed, err := s.CompleteQueue(ctx, &CompleteQueueInput{VenueID: input.VenueID, ModeKey: input.ModeKey})
	if err != nil {
		// The join itself is committed; CompleteFullQueues picks the round up later.
		s.logger.Error("failed to complete queue after join",
			"venue_id", input.VenueID, "mode", input.ModeKey, "error", err)
		return output, nil
	}
	output.Completion = completed.Event

	return output, nil
}

// LeaveQueue removes a participant from a queue. Ranking counters are not touched.
func (s *service) LeaveQueue(ctx context.Context, input *LeaveQueueInput) (*LeaveQueueOutput, error) {
	if input == nil || input.VenueID == "" || input.ModeKey == "" || input.ParticipantID == "" {
		return nil, fmt.Errorf("%w: venue, mode and participant are required", ErrInvalidInput)
	}

	output := &LeaveQueueOutput{}
	err := s.update(ctx, func(st *models.Store) error {
		_, q, err := findQueue(st, input.VenueID, input.ModeKey)
		if err != nil {
			return err
		}
		if !q.Remove(input.ParticipantID) {
			return ErrNotInQueue
		}
		output.Queue = q.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// RemovePanel deletes the whole panel of a venue
func (s *service) RemovePanel(ctx context.Context, input *RemovePanelInput) (*RemovePanelOutput, error) {
	if input == nil || input.VenueID == "" {
		return nil, fmt.Errorf("%w: venue ID is required", ErrInvalidInput)
	}

	output := &RemovePanelOutput{}
	err := s.update(ctx, func(st *models.Store) error {
		panel, ok := st.Panel(input.VenueID)
		if !ok {
			return ErrPanelNotFound
		}
		output.PinnedMessageID = models.Deref(panel.PinnedMessageID)
		delete(st.Panels, input.VenueID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("panel removed", "venue_id", input.VenueID)
	return output, nil
}

// SetPanelMessage records the panel message on the panel and each of its queues
func (s *service) SetPanelMessage(ctx context.Context, input *SetPanelMessageInput) (*SetPanelMessageOutput, error) {
	if input == nil || input.VenueID == "" {
		return nil, fmt.Errorf("%w: venue ID is required", ErrInvalidInput)
	}

	output := &SetPanelMessageOutput{}
	err := s.update(ctx, func(st *models.Store) error {
		panel, ok := st.Panel(input.VenueID)
		if !ok {
			return ErrPanelNotFound
		}
		output.PreviousMessageID = models.Deref(panel.PinnedMessageID)

		panel.PinnedMessageID = models.StringRef(input.MessageID)
		for _, q := range panel.Queues {
			q.MessageID = models.StringRef(input.MessageID)
		}

		output.Panel = panel.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

type noopNotifier struct{}

func (noopNotifier) QueueCompleted(context.Context, *models.QueueCompleted) error {
	return nil
}
