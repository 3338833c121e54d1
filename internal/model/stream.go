package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventStreamKind         = "event"
	LiveBroadcastStreamKind = "live_broadcast"

	PublicStreamVisibility    = "public"
	PrivateStreamVisibility   = "private"
	ProtectedStreamVisibility = "protected"

	ActiveStreamStatus   = "active"
	CanceledStreamStatus = "canceled"
)

type Stream struct {
	ID              uuid.UUID  `db:"id"`
	Title           string     `db:"title"`
	Description     string     `db:"description"`
	Kind            string     `db:"kind"`
	Visibility      string     `db:"visibility"`
	Status          string     `db:"status"`
	StartsAt        time.Time  `db:"starts_at"`
	EndsAt          time.Time  `db:"ends_at"`
	Timezone        string     `db:"timezone"`
	Location        *string    `db:"location"`
	OwnerID         uuid.UUID  `db:"owner_id"`
	SpaceID         *uuid.UUID `db:"space_id"`
	ExternalEventID *string    `db:"external_event_id"`
	ExternalLink    *string    `db:"external_link"`
	TotalAttendees  int64      `db:"total_attendees"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at"`
}

func (s *Stream) IsPublic() bool {
	return s.Visibility == PublicStreamVisibility
}

func (s *Stream) IsCanceled() bool {
	return s.Status == CanceledStreamStatus
}

func (s *Stream) HasHappened(now time.Time) bool {
	return s.EndsAt.Before(now)
}

func (s *Stream) IsOwnedBy(memberID uuid.UUID) bool {
	return s.OwnerID == memberID
}
