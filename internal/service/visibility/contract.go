//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package visibility

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleencorp/stream-service/internal/model"
)

type DBRepo interface {
	GetStreamByID(ctx context.Context, streamID string) (*model.Stream, error)
	ApprovePendingAttendees(ctx context.Context, streamID string) (model.AttendeeList, error)
	AddToTotalAttendees(ctx context.Context, streamID string, delta int64) error
	GetMemberEmails(ctx context.Context, memberIDs []uuid.UUID) ([]string, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Notifier interface {
	NotifyDecision(ctx context.Context, stream *model.Stream, attendee *model.Attendee, approved bool) error
}

type TaskProducer interface {
	ProduceMessage(ctx context.Context, message interface{}, key interface{}) error
}
