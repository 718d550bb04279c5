package queue

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/KirkDiggler/matchqueue/internal/models"
)

// CompleteQueue closes the round of a full queue: it snapshots the
// participants, clears the queue and bumps the panel round. The fill state is
// re-read under the lock, so calling it on a queue that was already drained
// is a no-op. The notifier runs in the background once the state is saved;
// Flush waits for it.
func (s *service) CompleteQueue(ctx context.Context, input *CompleteQueueInput) (*CompleteQueueOutput, error) {
	if input == nil || input.VenueID == "" || input.ModeKey == "" {
		return nil, fmt.Errorf("%w: venue and mode are required", ErrInvalidInput)
	}

	var event *models.QueueCompleted
	err := s.update(ctx, func(st *models.Store) error {
		panel, q, err := findQueue(st, input.VenueID, input.ModeKey)
		if err != nil {
			return err
		}
		if len(q.Participants) == 0 || !q.IsFull() {
			return errNoChange
		}

		snapshot := make([]string, len(q.Participants))
		copy(snapshot, q.Participants)

		event = &models.QueueCompleted{
			ID:              s.uuid.NewUUID(),
			VenueID:         panel.VenueID,
			ModeKey:         q.Key,
			Label:           q.Label,
			Category:        panel.Category,
			Participants:    snapshot,
			UnitPrice:       panel.UnitPrice,
			TotalValue:      panel.UnitPrice.Times(q.Capacity),
			FeeTotal:        s.feePerEntrant.Times(q.Capacity),
			CompletedRound:  panel.Round,
			Round:           panel.Round + 1,
			PinnedMessageID: models.Deref(panel.PinnedMessageID),
			CompletedAt:     s.clock.Now(),
		}

		q.Participants = []string{}
		panel.Round++
		return nil
	})
	if err != nil {
		return nil, err
	}

	if event == nil {
		return &CompleteQueueOutput{}, nil
	}

	s.logger.Info("queue completed",
		"completion_id", event.ID,
		"venue_id", event.VenueID,
		"mode", event.ModeKey,
		"round", event.CompletedRound,
		"participants", len(event.Participants),
		"total_value", event.TotalValue.String())

	s.notify(ctx, event)

	return &CompleteQueueOutput{Completed: true, Event: event}, nil
}

// notify hands a copy of the event to the notifier on its own goroutine.
// The notifier keeps running after the caller's context is cancelled and is
// bounded by notifyTimeout instead.
func (s *service) notify(ctx context.Context, event *models.QueueCompleted) {
	delivered := *event
	delivered.Participants = slices.Clone(event.Participants)

	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)

	s.notifying.Add(1)
	go func() {
		defer s.notifying.Done()
		defer cancel()

		if err := s.notifier.QueueCompleted(notifyCtx, &delivered); err != nil {
			s.logger.Error("failed to deliver queue completion",
				"completion_id", delivered.ID,
				"venue_id", delivered.VenueID,
				"mode", delivered.ModeKey,
				"error", err)
		}
	}()
}

// Flush waits until every completion notification started so far has
// returned, or until ctx is done.
func (s *service) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.notifying.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// CompleteFullQueues sweeps every panel for queues sitting at capacity and
// completes them. It covers joins whose completion step failed and state
// written by older versions. Individual failures are logged and skipped.
func (s *service) CompleteFullQueues(ctx context.Context) ([]*models.QueueCompleted, error) {
	st, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	type target struct{ venueID, modeKey string }
	var targets []target
	for _, venueID := range sortedVenues(st) {
		for _, q := range st.Panels[venueID].Queues {
			if len(q.Participants) > 0 && q.IsFull() {
				targets = append(targets, target{venueID: venueID, modeKey: q.Key})
			}
		}
	}

	var events []*models.QueueCompleted
	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			return events, err
		}
		out, err := s.CompleteQueue(ctx, &CompleteQueueInput{VenueID: t.venueID, ModeKey: t.modeKey})
		if err != nil {
			s.logger.Error("failed to complete full queue",
				"venue_id", t.venueID, "mode", t.modeKey, "error", err)
			continue
		}
		if out.Completed {
			events = append(events, out.Event)
		}
	}

	return events, nil
}

func sortedVenues(st *models.Store) []string {
	venues := make([]string, 0, len(st.Panels))
	for venueID := range st.Panels {
		venues = append(venues, venueID)
	}
	sort.Strings(venues)
	return venues
}
