//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package calendar

import (
	"context"
	"time"

	"github.com/fleencorp/stream-service/internal/model"
)

type CalendarClient interface {
	CreateEvent(ctx context.Context, event *model.CalendarEvent) (*model.CreatedCalendarEvent, error)
	CancelEvent(ctx context.Context, eventID string) error
	RescheduleEvent(ctx context.Context, eventID string, startsAt, endsAt time.Time, timezone string) error
	PatchEvent(ctx context.Context, eventID string, event *model.CalendarEvent) error
	AddAttendee(ctx context.Context, eventID string, attendee *model.CalendarAttendee) error
	AddAttendees(ctx context.Context, eventID string, emails []string) error
	UpdateVisibility(ctx context.Context, eventID, visibility string) error
}

type DBRepo interface {
	GetStreamByID(ctx context.Context, streamID string) (*model.Stream, error)
	SetStreamExternalRef(ctx context.Context, streamID, externalEventID, externalLink string) error
}
