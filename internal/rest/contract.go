//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"
	"time"

	api "github.com/fleencorp/stream-service/internal/generated"
	"github.com/fleencorp/stream-service/internal/model"
	"github.com/fleencorp/stream-service/internal/service/streams"
)

type AttendanceService interface {
	RequestToJoin(ctx context.Context, streamID, comment, userID string) (*model.Attendee, error)
	ProcessOrganizerDecision(ctx context.Context, streamID, attendeeMemberID string, approved bool, comment, requesterID string) (*model.Attendee, error)
	AddAttendeeDirectly(ctx context.Context, streamID, email, alias, comment, requesterID string) (*model.Attendee, error)
	MarkNotAttending(ctx context.Context, streamID, userID string) error
	CountApprovedAttending(ctx context.Context, streamID string) (int64, error)
	GetAttendee(ctx context.Context, streamID, memberID string) (*model.Attendee, error)
}

type StreamService interface {
	CreateStream(ctx context.Context, params *streams.CreateStreamParams, userID string) (*model.Stream, error)
	GetStream(ctx context.Context, streamID string) (*model.Stream, error)
	CancelStream(ctx context.Context, streamID, userID string) (*model.Stream, error)
	RescheduleStream(ctx context.Context, streamID string, startsAt, endsAt time.Time, timezone, userID string) (*model.Stream, error)
	UpdateStreamInfo(ctx context.Context, streamID, title, description string, location *string, userID string) (*model.Stream, error)
	UpdateVisibility(ctx context.Context, streamID, visibility, userID string) (*model.Stream, error)
}

type Validator interface {
	ValidateCreateStream(req *api.CreateStreamRequest) error
	ValidateRescheduleStream(req *api.RescheduleStreamRequest) error
	ValidateUpdateStreamInfo(req *api.UpdateStreamInfoRequest) error
	ValidateUpdateVisibility(req *api.UpdateVisibilityRequest) error
	ValidateRequestToJoin(req *api.RequestToJoinRequest) error
	ValidateProcessDecision(req *api.ProcessDecisionRequest) error
	ValidateAddAttendee(req *api.AddAttendeeRequest) error
}

type JWTGenerator interface {
	GenerateConnectToken(userID string) (string, int64, error)
	GenerateWatchToken(userID, streamID string) (string, int64, error)
	ValidateConnectToken(token string) (*model.BroadcastConnectClaims, error)
	ValidateWatchToken(token string) (*model.BroadcastWatchClaims, error)
}
