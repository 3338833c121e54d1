//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package attendance

import (
	"context"

	"github.com/fleencorp/stream-service/internal/model"
)

type DBRepo interface {
	GetStreamByID(ctx context.Context, streamID string) (*model.Stream, error)
	CreateAttendee(ctx context.Context, attendee *model.Attendee) (bool, error)
	GetAttendee(ctx context.Context, streamID, memberID string) (*model.Attendee, error)
	UpdateAttendeeDecision(ctx context.Context, attendeeID, status string, organizerComment *string) error
	SetAttendeeAttending(ctx context.Context, attendeeID string, attending bool) error
	CountApprovedAttending(ctx context.Context, streamID string) (int64, error)
	IncrementTotalAttendees(ctx context.Context, streamID string) error
	DecrementTotalAttendees(ctx context.Context, streamID string) error
	UpsertMember(ctx context.Context, member *model.Member) error
	GetMemberByID(ctx context.Context, memberID string) (*model.Member, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type MemberClient interface {
	GetMemberByUUID(ctx context.Context, memberUUID string) (*model.MemberInfo, error)
	GetMemberByEmail(ctx context.Context, email string) (*model.MemberInfo, error)
}

type SpaceClient interface {
	IsSpaceMember(ctx context.Context, spaceID, memberID string) (bool, error)
}

type Notifier interface {
	NotifyDecision(ctx context.Context, stream *model.Stream, attendee *model.Attendee, approved bool) error
	NotifyRequestReceived(ctx context.Context, stream *model.Stream, attendee *model.Attendee) error
}

type TaskProducer interface {
	ProduceMessage(ctx context.Context, message interface{}, key interface{}) error
}
