package attendance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fleencorp/stream-service/internal/model"
)

// getOrCreateAttendee returns the attendee row for (stream, member),
// creating a pending one on first contact. A conflicting concurrent
// insert reports zero rows and the winner's row is refetched.
func (s *Service) getOrCreateAttendee(ctx context.Context, stream *model.Stream, memberID, comment string) (*model.Attendee, bool, error) {
	if stream == nil || memberID == "" {
		return nil, false, model.ErrFailedOperation
	}

	memberUUID, err := uuid.Parse(memberID)
	if err != nil {
		return nil, false, model.ErrFailedOperation
	}

	streamID := stream.ID.String()

	existing, err := s.repository.GetAttendee(ctx, streamID, memberID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to get attendee: %w", err)
	}

	if err := s.ensureMemberCached(ctx, memberID); err != nil {
		return nil, false, err
	}

	attendee := &model.Attendee{
		ID:            uuid.New(),
		StreamID:      stream.ID,
		MemberID:      memberUUID,
		RequestStatus: model.PendingRequestStatus,
		Attending:     true,
		MemberComment: comment,
	}

	inserted, err := s.repository.CreateAttendee(ctx, attendee)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create attendee: %w", err)
	}

	if !inserted {
		existing, err := s.repository.GetAttendee(ctx, streamID, memberID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to refetch attendee: %w", err)
		}
		return existing, false, nil
	}

	return attendee, true, nil
}

// decideJoinOutcome reports whether the join request is auto-approved.
func (s *Service) decideJoinOutcome(ctx context.Context, stream *model.Stream, memberID string) (bool, error) {
	if stream.IsPublic() {
		return true, nil
	}

	if stream.SpaceID == nil {
		return false, nil
	}

	isMember, err := s.spaceClient.IsSpaceMember(ctx, stream.SpaceID.String(), memberID)
	if err != nil {
		return false, fmt.Errorf("failed to check space membership: %w", err)
	}

	return isMember, nil
}

// approveAttendee transitions the attendee to approved. The counter only
// ever counts approved attendees who are attending.
func (s *Service) approveAttendee(ctx context.Context, attendee *model.Attendee, organizerComment *string) error {
	if err := s.repository.UpdateAttendeeDecision(ctx, attendee.ID.String(), model.ApprovedRequestStatus, organizerComment); err != nil {
		return fmt.Errorf("failed to approve attendee: %w", err)
	}

	attendee.RequestStatus = model.ApprovedRequestStatus
	attendee.OrganizerComment = organizerComment

	if attendee.Attending {
		if err := s.repository.IncrementTotalAttendees(ctx, attendee.StreamID.String()); err != nil {
			return fmt.Errorf("failed to increment attendee counter: %w", err)
		}
	}

	return nil
}

func (s *Service) ensureMemberCached(ctx context.Context, memberID string) error {
	_, err := s.repository.GetMemberByID(ctx, memberID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to get member: %w", err)
	}

	info, err := s.memberClient.GetMemberByUUID(ctx, memberID)
	if err != nil {
		return fmt.Errorf("failed to look up member %s: %w", memberID, err)
	}
	if info == nil {
		return model.ErrFailedOperation
	}

	memberUUID, err := uuid.Parse(info.ID)
	if err != nil {
		return fmt.Errorf("member service returned invalid id %q: %w", info.ID, err)
	}

	return s.repository.UpsertMember(ctx, &model.Member{
		ID:        memberUUID,
		Email:     info.Email,
		Nickname:  info.Nickname,
		AvatarURL: info.AvatarURL,
	})
}
