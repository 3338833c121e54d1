//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package streams

import (
	"context"
	"time"

	"github.com/fleencorp/stream-service/internal/model"
)

type DBRepo interface {
	GetStreamByID(ctx context.Context, streamID string) (*model.Stream, error)
	CreateStream(ctx context.Context, stream *model.Stream) error
	UpdateStreamStatus(ctx context.Context, streamID, status string) error
	UpdateStreamSchedule(ctx context.Context, streamID string, startsAt, endsAt time.Time, timezone string) error
	UpdateStreamInfo(ctx context.Context, streamID, title, description string, location *string) error
	UpdateStreamVisibility(ctx context.Context, streamID, visibility string) error
	UpsertMember(ctx context.Context, member *model.Member) error
	GetMemberByID(ctx context.Context, memberID string) (*model.Member, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type MemberClient interface {
	GetMemberByUUID(ctx context.Context, memberUUID string) (*model.MemberInfo, error)
}

type TaskProducer interface {
	ProduceMessage(ctx context.Context, message interface{}, key interface{}) error
}
