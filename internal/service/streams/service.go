package streams

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

// Service owns the stream lifecycle. Every lifecycle change commits
// locally first and is mirrored to the external calendar afterwards.
type Service struct {
	repository         DBRepo
	memberClient       MemberClient
	calendarProducer   TaskProducer
	visibilityProducer TaskProducer
}

func New(repository DBRepo, memberClient MemberClient, calendarProducer, visibilityProducer TaskProducer) *Service {
	return &Service{
		repository:         repository,
		memberClient:       memberClient,
		calendarProducer:   calendarProducer,
		visibilityProducer: visibilityProducer,
	}
}

type CreateStreamParams struct {
	Title       string
	Description string
	Kind        string
	Visibility  string
	StartsAt    time.Time
	EndsAt      time.Time
	Timezone    string
	Location    *string
	SpaceID     *uuid.UUID
}

func (s *Service) CreateStream(ctx context.Context, params *CreateStreamParams, userID string) (*model.Stream, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, model.ErrFailedOperation
	}

	stream := &model.Stream{
		ID:          uuid.New(),
		Title:       params.Title,
		Description: params.Description,
		Kind:        params.Kind,
		Visibility:  params.Visibility,
		Status:      model.ActiveStreamStatus,
		StartsAt:    params.StartsAt,
		EndsAt:      params.EndsAt,
		Timezone:    params.Timezone,
		Location:    params.Location,
		OwnerID:     ownerID,
		SpaceID:     params.SpaceID,
	}

	var organizerEmail string
	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		member, err := s.ensureMemberCached(ctx, userID)
		if err != nil {
			return err
		}
		organizerEmail = member.Email

		return s.repository.CreateStream(ctx, stream)
	})
	if err != nil {
		return nil, err
	}

	location := ""
	if stream.Location != nil {
		location = *stream.Location
	}

	s.dispatchCalendarTask(ctx, model.CalendarTask{
		Action:   model.CreateEventTask,
		StreamID: stream.ID.String(),
		Event: &model.CalendarEvent{
			Title:          stream.Title,
			Description:    stream.Description,
			StartsAt:       stream.StartsAt,
			EndsAt:         stream.EndsAt,
			Timezone:       stream.Timezone,
			Location:       location,
			OrganizerEmail: organizerEmail,
			Visibility:     stream.Visibility,
		},
	})

	return stream, nil
}

// CancelStream marks the stream canceled. Canceling twice is a no-op;
// canceling a stream that already happened is refused.
func (s *Service) CancelStream(ctx context.Context, streamID, userID string) (*model.Stream, error) {
	var stream *model.Stream

	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		var err error
		stream, err = s.loadOwnedStream(ctx, streamID, userID)
		if err != nil {
			return err
		}

		if stream.IsCanceled() {
			return nil
		}
		if stream.HasHappened(time.Now()) {
			return model.ErrStreamAlreadyHappened
		}

		if err := s.repository.UpdateStreamStatus(ctx, streamID, model.CanceledStreamStatus); err != nil {
			return fmt.Errorf("failed to cancel stream: %w", err)
		}
		stream.Status = model.CanceledStreamStatus

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatchCalendarTask(ctx, model.CalendarTask{
		Action:          model.CancelEventTask,
		StreamID:        stream.ID.String(),
		ExternalEventID: externalEventID(stream),
	})

	return stream, nil
}

func (s *Service) RescheduleStream(ctx context.Context, streamID string, startsAt, endsAt time.Time, timezone, userID string) (*model.Stream, error) {
	var stream *model.Stream

	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		var err error
		stream, err = s.loadOwnedStream(ctx, streamID, userID)
		if err != nil {
			return err
		}

		if stream.IsCanceled() {
			return model.ErrStreamAlreadyCanceled
		}

		if err := s.repository.UpdateStreamSchedule(ctx, streamID, startsAt, endsAt, timezone); err != nil {
			return fmt.Errorf("failed to reschedule stream: %w", err)
		}
		stream.StartsAt = startsAt
		stream.EndsAt = endsAt
		stream.Timezone = timezone

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatchCalendarTask(ctx, model.CalendarTask{
		Action:          model.RescheduleEventTask,
		StreamID:        stream.ID.String(),
		ExternalEventID: externalEventID(stream),
		StartsAt:        &startsAt,
		EndsAt:          &endsAt,
		Timezone:        timezone,
	})

	return stream, nil
}

// UpdateStreamInfo replaces the stream title, description and location and
// patches the mirrored calendar event with the new details.
func (s *Service) UpdateStreamInfo(ctx context.Context, streamID, title, description string, location *string, userID string) (*model.Stream, error) {
	var stream *model.Stream

	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		var err error
		stream, err = s.loadOwnedStream(ctx, streamID, userID)
		if err != nil {
			return err
		}

		if stream.IsCanceled() {
			return model.ErrStreamAlreadyCanceled
		}

		if err := s.repository.UpdateStreamInfo(ctx, streamID, title, description, location); err != nil {
			return fmt.Errorf("failed to update stream info: %w", err)
		}
		stream.Title = title
		stream.Description = description
		stream.Location = location

		return nil
	})
	if err != nil {
		return nil, err
	}

	eventLocation := ""
	if stream.Location != nil {
		eventLocation = *stream.Location
	}

	s.dispatchCalendarTask(ctx, model.CalendarTask{
		Action:          model.PatchEventTask,
		StreamID:        stream.ID.String(),
		ExternalEventID: externalEventID(stream),
		Event: &model.CalendarEvent{
			Title:       stream.Title,
			Description: stream.Description,
			StartsAt:    stream.StartsAt,
			EndsAt:      stream.EndsAt,
			Timezone:    stream.Timezone,
			Location:    eventLocation,
			Visibility:  stream.Visibility,
		},
	})

	return stream, nil
}

// UpdateVisibility persists the new visibility, mirrors it to the calendar
// and publishes the transition event consumed by the visibility worker.
func (s *Service) UpdateVisibility(ctx context.Context, streamID, visibility, userID string) (*model.Stream, error) {
	switch visibility {
	case model.PublicStreamVisibility, model.PrivateStreamVisibility, model.ProtectedStreamVisibility:
	default:
		return nil, model.ErrFailedOperation
	}

	var (
		stream   *model.Stream
		previous string
	)

	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		var err error
		stream, err = s.loadOwnedStream(ctx, streamID, userID)
		if err != nil {
			return err
		}

		if stream.IsCanceled() {
			return model.ErrStreamAlreadyCanceled
		}

		previous = stream.Visibility
		if previous == visibility {
			return nil
		}

		if err := s.repository.UpdateStreamVisibility(ctx, streamID, visibility); err != nil {
			return fmt.Errorf("failed to update stream visibility: %w", err)
		}
		stream.Visibility = visibility

		return nil
	})
	if err != nil {
		return nil, err
	}

	if previous == visibility {
		return stream, nil
	}

	s.dispatchCalendarTask(ctx, model.CalendarTask{
		Action:          model.UpdateVisibilityTask,
		StreamID:        stream.ID.String(),
		ExternalEventID: externalEventID(stream),
		Visibility:      visibility,
	})

	event := model.VisibilityChangedEvent{
		StreamID:           stream.ID.String(),
		PreviousVisibility: previous,
		CurrentVisibility:  visibility,
	}
	if err := s.visibilityProducer.ProduceMessage(ctx, event, event.StreamID); err != nil {
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Error(fmt.Sprintf("failed to publish visibility change for stream %s: %v", event.StreamID, err))
	}

	return stream, nil
}

func (s *Service) GetStream(ctx context.Context, streamID string) (*model.Stream, error) {
	stream, err := s.repository.GetStreamByID(ctx, streamID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrStreamNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stream: %w", err)
	}

	return stream, nil
}

func (s *Service) loadOwnedStream(ctx context.Context, streamID, userID string) (*model.Stream, error) {
	stream, err := s.repository.GetStreamByID(ctx, streamID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrStreamNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stream: %w", err)
	}

	if stream.OwnerID.String() != userID {
		return nil, model.ErrStreamNotCreatedByUser
	}

	return stream, nil
}

func (s *Service) ensureMemberCached(ctx context.Context, memberID string) (*model.Member, error) {
	member, err := s.repository.GetMemberByID(ctx, memberID)
	if err == nil {
		return member, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	info, err := s.memberClient.GetMemberByUUID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up member %s: %w", memberID, err)
	}
	if info == nil {
		return nil, model.ErrFailedOperation
	}

	memberUUID, err := uuid.Parse(info.ID)
	if err != nil {
		return nil, fmt.Errorf("member service returned invalid id %q: %w", info.ID, err)
	}

	member = &model.Member{
		ID:        memberUUID,
		Email:     info.Email,
		Nickname:  info.Nickname,
		AvatarURL: info.AvatarURL,
	}

	if err := s.repository.UpsertMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to cache member: %w", err)
	}

	return member, nil
}

func (s *Service) dispatchCalendarTask(ctx context.Context, task model.CalendarTask) {
	if err := s.calendarProducer.ProduceMessage(ctx, task, task.StreamID); err != nil {
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Error(fmt.Sprintf("failed to enqueue calendar sync task for stream %s: %v", task.StreamID, err))
	}
}

func externalEventID(stream *model.Stream) string {
	if stream.ExternalEventID == nil {
		return ""
	}

	return *stream.ExternalEventID
}
