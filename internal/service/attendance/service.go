package attendance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/fleencorp/stream-service/internal/config"
	"github.com/fleencorp/stream-service/internal/model"
	"github.com/fleencorp/stream-service/internal/pkg/tx"
)

// Service orchestrates attendee state transitions. Calendar sync tasks
// are enqueued only after the local transaction commits.
type Service struct {
	repository   DBRepo
	memberClient MemberClient
	spaceClient  SpaceClient
	notifier     Notifier
	producer     TaskProducer
}

func New(
	repository DBRepo,
	memberClient MemberClient,
	spaceClient SpaceClient,
	notifier Notifier,
	producer TaskProducer,
) *Service {
	return &Service{
		repository:   repository,
		memberClient: memberClient,
		spaceClient:  spaceClient,
		notifier:     notifier,
		producer:     producer,
	}
}

func (s *Service) RequestToJoin(ctx context.Context, streamID, comment, userID string) (*model.Attendee, error) {
	var (
		stream   *model.Stream
		attendee *model.Attendee
		invite   *model.CalendarAttendee
	)

	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		var err error
		stream, err = s.loadJoinableStream(ctx, streamID)
		if err != nil {
			return err
		}

		var created bool
		attendee, created, err = s.getOrCreateAttendee(ctx, stream, userID, comment)
		if err != nil {
			return err
		}

		if !attendee.IsPending() {
			// rejoin after an opt-out flips the attending flag back
			if attendee.Attending {
				return nil
			}

			if err := s.repository.SetAttendeeAttending(ctx, attendee.ID.String(), true); err != nil {
				return fmt.Errorf("failed to update attendee: %w", err)
			}
			attendee.Attending = true

			if attendee.IsApproved() {
				if err := s.repository.IncrementTotalAttendees(ctx, stream.ID.String()); err != nil {
					return fmt.Errorf("failed to increment attendee counter: %w", err)
				}
			}

			return nil
		}

		approve, err := s.decideJoinOutcome(ctx, stream, userID)
		if err != nil {
			return err
		}

		if !approve {
			if created {
				return s.notifier.NotifyRequestReceived(ctx, stream, attendee)
			}
			return nil
		}

		if err := s.approveAttendee(ctx, attendee, nil); err != nil {
			return err
		}

		invite, err = s.calendarInvite(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if invite != nil {
		s.dispatchAddAttendee(ctx, stream, invite)
	}

	return attendee, nil
}

// ProcessOrganizerDecision applies the organizer's verdict to a pending
// request. A request that is no longer pending is left untouched.
func (s *Service) ProcessOrganizerDecision(ctx context.Context, streamID, attendeeMemberID string, approved bool, comment, requesterID string) (*model.Attendee, error) {
	var (
		stream   *model.Stream
		attendee *model.Attendee
		invite   *model.CalendarAttendee
	)

	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		var err error
		stream, err = s.loadOwnedStream(ctx, streamID, requesterID)
		if err != nil {
			return err
		}

		attendee, err = s.repository.GetAttendee(ctx, streamID, attendeeMemberID)
		if errors.Is(err, sql.ErrNoRows) {
			return model.ErrAttendeeNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get attendee: %w", err)
		}

		if !attendee.IsPending() {
			return nil
		}

		var organizerComment *string
		if comment != "" {
			organizerComment = &comment
		}

		if approved {
			if err := s.approveAttendee(ctx, attendee, organizerComment); err != nil {
				return err
			}

			invite, err = s.calendarInvite(ctx, attendeeMemberID)
			if err != nil {
				return err
			}
		} else {
			if err := s.repository.UpdateAttendeeDecision(ctx, attendee.ID.String(), model.DisapprovedRequestStatus, organizerComment); err != nil {
				return fmt.Errorf("failed to disapprove attendee: %w", err)
			}
			attendee.RequestStatus = model.DisapprovedRequestStatus
			attendee.OrganizerComment = organizerComment
		}

		return s.notifier.NotifyDecision(ctx, stream, attendee, approved)
	})
	if err != nil {
		return nil, err
	}

	if invite != nil {
		s.dispatchAddAttendee(ctx, stream, invite)
	}

	return attendee, nil
}

// AddAttendeeDirectly lets the organizer invite someone by email, skipping
// the request flow. A platform member gets an approved attendee row
// (pending or disapproved rows are flipped, never duplicated); the calendar
// invitation goes out either way. Returns nil when the email does not
// belong to a platform member.
func (s *Service) AddAttendeeDirectly(ctx context.Context, streamID, email, alias, comment, requesterID string) (*model.Attendee, error) {
	if email == "" {
		return nil, model.ErrFailedOperation
	}

	var (
		stream   *model.Stream
		attendee *model.Attendee
	)

	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		var err error
		stream, err = s.loadOwnedStream(ctx, streamID, requesterID)
		if err != nil {
			return err
		}

		if stream.IsCanceled() {
			return model.ErrStreamAlreadyCanceled
		}
		if stream.HasHappened(time.Now()) {
			return model.ErrStreamAlreadyHappened
		}

		info, err := s.memberClient.GetMemberByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("%w: member lookup failed: %v", model.ErrUnableToCompleteOperation, err)
		}
		if info == nil {
			return nil
		}

		memberUUID, err := uuid.Parse(info.ID)
		if err != nil {
			return fmt.Errorf("member service returned invalid id %q: %w", info.ID, err)
		}

		err = s.repository.UpsertMember(ctx, &model.Member{
			ID:        memberUUID,
			Email:     info.Email,
			Nickname:  info.Nickname,
			AvatarURL: info.AvatarURL,
		})
		if err != nil {
			return fmt.Errorf("failed to cache member: %w", err)
		}

		attendee, _, err = s.getOrCreateAttendee(ctx, stream, info.ID, "")
		if err != nil {
			return err
		}

		if !attendee.IsApproved() {
			var organizerComment *string
			if comment != "" {
				organizerComment = &comment
			}
			return s.approveAttendee(ctx, attendee, organizerComment)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatchAddAttendee(ctx, stream, &model.CalendarAttendee{Email: email, Alias: alias})

	return attendee, nil
}

// MarkNotAttending records that the member opted out. Approval state
// stays as it is; only the attending flag and the stream counter move.
func (s *Service) MarkNotAttending(ctx context.Context, streamID, userID string) error {
	return tx.TxExecute(ctx, func(ctx context.Context) error {
		stream, err := s.repository.GetStreamByID(ctx, streamID)
		if errors.Is(err, sql.ErrNoRows) {
			return model.ErrStreamNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get stream: %w", err)
		}

		if stream.OwnerID.String() == userID {
			return model.ErrCannotLeaveOwnStream
		}

		attendee, err := s.repository.GetAttendee(ctx, streamID, userID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get attendee: %w", err)
		}

		if !attendee.Attending {
			return nil
		}

		if err := s.repository.SetAttendeeAttending(ctx, attendee.ID.String(), false); err != nil {
			return fmt.Errorf("failed to update attendee: %w", err)
		}

		if attendee.IsApproved() {
			if err := s.repository.DecrementTotalAttendees(ctx, streamID); err != nil {
				return fmt.Errorf("failed to decrement attendee counter: %w", err)
			}
		}

		return nil
	})
}

func (s *Service) CountApprovedAttending(ctx context.Context, streamID string) (int64, error) {
	return s.repository.CountApprovedAttending(ctx, streamID)
}

func (s *Service) GetAttendee(ctx context.Context, streamID, memberID string) (*model.Attendee, error) {
	attendee, err := s.repository.GetAttendee(ctx, streamID, memberID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrAttendeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attendee: %w", err)
	}

	return attendee, nil
}

func (s *Service) loadJoinableStream(ctx context.Context, streamID string) (*model.Stream, error) {
	stream, err := s.repository.GetStreamByID(ctx, streamID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrStreamNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stream: %w", err)
	}

	if stream.IsCanceled() {
		return nil, model.ErrStreamAlreadyCanceled
	}
	if stream.HasHappened(time.Now()) {
		return nil, model.ErrStreamAlreadyHappened
	}

	return stream, nil
}

func (s *Service) loadOwnedStream(ctx context.Context, streamID, requesterID string) (*model.Stream, error) {
	stream, err := s.repository.GetStreamByID(ctx, streamID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrStreamNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stream: %w", err)
	}

	if stream.OwnerID.String() != requesterID {
		return nil, model.ErrStreamNotCreatedByUser
	}

	return stream, nil
}

// calendarInvite resolves the invitation payload from the member cache. It
// runs inside the transaction so the post-commit dispatch needs no reads.
func (s *Service) calendarInvite(ctx context.Context, memberID string) (*model.CalendarAttendee, error) {
	member, err := s.repository.GetMemberByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &model.CalendarAttendee{Email: member.Email, Alias: member.Nickname}, nil
}

func (s *Service) dispatchAddAttendee(ctx context.Context, stream *model.Stream, attendee *model.CalendarAttendee) {
	task := model.CalendarTask{
		Action:   model.AddAttendeeTask,
		StreamID: stream.ID.String(),
		Attendee: attendee,
	}
	if stream.ExternalEventID != nil {
		task.ExternalEventID = *stream.ExternalEventID
	}

	if err := s.producer.ProduceMessage(ctx, task, task.StreamID); err != nil {
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Error(fmt.Sprintf("failed to enqueue calendar sync task for stream %s: %v", task.StreamID, err))
	}
}
