package notify

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fleencorp/stream-service/internal/model"
)

// Service persists one notification row per attendance transition. It
// never deduplicates; callers only emit on an effective transition.
type Service struct {
	repository DBRepo
}

func New(repository DBRepo) *Service {
	return &Service{
		repository: repository,
	}
}

// NotifyDecision tells the attendee how the organizer decided their request.
func (s *Service) NotifyDecision(ctx context.Context, stream *model.Stream, attendee *model.Attendee, approved bool) error {
	kind, err := decisionKind(stream.Kind, approved)
	if err != nil {
		return err
	}

	notification := &model.Notification{
		ID:         uuid.New(),
		Kind:       kind,
		StreamID:   stream.ID,
		AttendeeID: attendee.ID,
		ReceiverID: attendee.MemberID,
		Comment:    attendee.OrganizerComment,
	}

	return s.repository.SaveNotification(ctx, notification)
}

// NotifyRequestReceived tells the organizer a join request is waiting.
func (s *Service) NotifyRequestReceived(ctx context.Context, stream *model.Stream, attendee *model.Attendee) error {
	kind, err := receivedKind(stream.Kind)
	if err != nil {
		return err
	}

	var comment *string
	if attendee.MemberComment != "" {
		comment = &attendee.MemberComment
	}

	notification := &model.Notification{
		ID:          uuid.New(),
		Kind:        kind,
		StreamID:    stream.ID,
		AttendeeID:  attendee.ID,
		ReceiverID:  stream.OwnerID,
		RequesterID: &attendee.MemberID,
		Comment:     comment,
	}

	return s.repository.SaveNotification(ctx, notification)
}

func decisionKind(streamKind string, approved bool) (string, error) {
	switch streamKind {
	case model.EventStreamKind:
		if approved {
			return model.EventRequestApprovedNotification, nil
		}
		return model.EventRequestDisapprovedNotification, nil
	case model.LiveBroadcastStreamKind:
		if approved {
			return model.BroadcastRequestApprovedNotification, nil
		}
		return model.BroadcastRequestDisapprovedNotification, nil
	default:
		return "", fmt.Errorf("unknown stream kind %q", streamKind)
	}
}

func receivedKind(streamKind string) (string, error) {
	switch streamKind {
	case model.EventStreamKind:
		return model.EventRequestReceivedNotification, nil
	case model.LiveBroadcastStreamKind:
		return model.BroadcastRequestReceivedNotification, nil
	default:
		return "", fmt.Errorf("unknown stream kind %q", streamKind)
	}
}
