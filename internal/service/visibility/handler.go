package visibility

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fleencorp/stream-service/internal/model"
)

// Service releases the backlog of pending join requests when a stream
// opens up.
type Service struct {
	repository DBRepo
	notifier   Notifier
	producer   TaskProducer
}

func New(repository DBRepo, notifier Notifier, producer TaskProducer) *Service {
	return &Service{
		repository: repository,
		notifier:   notifier,
		producer:   producer,
	}
}

// OnVisibilityChanged bulk-approves pending attendees of a stream that
// went from private or protected to public. Any other transition is a no-op.
func (s *Service) OnVisibilityChanged(ctx context.Context, event *model.VisibilityChangedEvent) error {
	if event.CurrentVisibility != model.PublicStreamVisibility {
		return nil
	}

	switch event.PreviousVisibility {
	case model.PrivateStreamVisibility, model.ProtectedStreamVisibility:
	default:
		return nil
	}

	var (
		stream *model.Stream
		emails []string
	)

	err := s.repository.WithTx(ctx, func(ctx context.Context) error {
		var err error
		stream, err = s.repository.GetStreamByID(ctx, event.StreamID)
		if errors.Is(err, sql.ErrNoRows) {
			return model.ErrStreamNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get stream: %w", err)
		}

		approved, err := s.repository.ApprovePendingAttendees(ctx, event.StreamID)
		if err != nil {
			return err
		}

		if len(approved) == 0 {
			return nil
		}

		var attending int64
		memberIDs := make([]uuid.UUID, 0, len(approved))
		for i := range approved {
			attendee := &approved[i]
			memberIDs = append(memberIDs, attendee.MemberID)
			if attendee.Attending {
				attending++
			}

			if err := s.notifier.NotifyDecision(ctx, stream, attendee, true); err != nil {
				return fmt.Errorf("failed to save notification: %w", err)
			}
		}

		if attending > 0 {
			if err := s.repository.AddToTotalAttendees(ctx, event.StreamID, attending); err != nil {
				return fmt.Errorf("failed to update attendee counter: %w", err)
			}
		}

		emails, err = s.repository.GetMemberEmails(ctx, memberIDs)
		return err
	})
	if err != nil {
		return err
	}

	if len(emails) == 0 {
		return nil
	}

	task := model.CalendarTask{
		Action:   model.AddAttendeesTask,
		StreamID: stream.ID.String(),
		Emails:   emails,
	}
	if stream.ExternalEventID != nil {
		task.ExternalEventID = *stream.ExternalEventID
	}

	if err := s.producer.ProduceMessage(ctx, task, task.StreamID); err != nil {
		return fmt.Errorf("failed to enqueue calendar sync task: %w", err)
	}

	return nil
}
