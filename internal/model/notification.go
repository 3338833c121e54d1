package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventRequestReceivedNotification        = "event_request_received"
	EventRequestApprovedNotification        = "event_request_approved"
	EventRequestDisapprovedNotification     = "event_request_disapproved"
	BroadcastRequestReceivedNotification    = "broadcast_request_received"
	BroadcastRequestApprovedNotification    = "broadcast_request_approved"
	BroadcastRequestDisapprovedNotification = "broadcast_request_disapproved"
)

// Notification is append-only; only the read flag is ever updated after
// creation, and that happens outside this service.
type Notification struct {
	ID          uuid.UUID  `db:"id"`
	Kind        string     `db:"kind"`
	StreamID    uuid.UUID  `db:"stream_id"`
	AttendeeID  uuid.UUID  `db:"attendee_id"`
	ReceiverID  uuid.UUID  `db:"receiver_id"`
	RequesterID *uuid.UUID `db:"requester_id"`
	Comment     *string    `db:"comment"`
	IsRead      bool       `db:"is_read"`
	CreatedAt   time.Time  `db:"created_at"`
}
