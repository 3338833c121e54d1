package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	PendingRequestStatus     = "pending"
	ApprovedRequestStatus    = "approved"
	DisapprovedRequestStatus = "disapproved"
)

type AttendeeList []Attendee

type Attendee struct {
	ID               uuid.UUID  `db:"id"`
	StreamID         uuid.UUID  `db:"stream_id"`
	MemberID         uuid.UUID  `db:"member_id"`
	RequestStatus    string     `db:"request_status"`
	Attending        bool       `db:"attending"`
	MemberComment    string     `db:"member_comment"`
	OrganizerComment *string    `db:"organizer_comment"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at"`
}

func (a *Attendee) IsPending() bool {
	return a.RequestStatus == PendingRequestStatus
}

func (a *Attendee) IsApproved() bool {
	return a.RequestStatus == ApprovedRequestStatus
}
