package model

import "time"

const (
	CreateEventTask      = "create_event"
	CancelEventTask      = "cancel_event"
	RescheduleEventTask  = "reschedule_event"
	PatchEventTask       = "patch_event"
	AddAttendeeTask      = "add_attendee"
	AddAttendeesTask     = "add_attendees"
	UpdateVisibilityTask = "update_visibility"
)

// CalendarTask is the payload of the calendar sync topic. Action selects
// which of the optional fields are meaningful.
type CalendarTask struct {
	Action          string            `json:"action"`
	StreamID        string            `json:"stream_id"`
	ExternalEventID string            `json:"external_event_id,omitempty"`
	Event           *CalendarEvent    `json:"event,omitempty"`
	Attendee        *CalendarAttendee `json:"attendee,omitempty"`
	Emails          []string          `json:"emails,omitempty"`
	Visibility      string            `json:"visibility,omitempty"`
	StartsAt        *time.Time        `json:"starts_at,omitempty"`
	EndsAt          *time.Time        `json:"ends_at,omitempty"`
	Timezone        string            `json:"timezone,omitempty"`
}

type CalendarEvent struct {
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	Timezone       string    `json:"timezone"`
	Location       string    `json:"location,omitempty"`
	OrganizerEmail string    `json:"organizer_email"`
	Visibility     string    `json:"visibility"`
}

type CalendarAttendee struct {
	Email string `json:"email"`
	Alias string `json:"alias,omitempty"`
}

// CreatedCalendarEvent is the gateway's answer to a create call.
type CreatedCalendarEvent struct {
	EventID string `json:"event_id"`
	Link    string `json:"link"`
}

// VisibilityChangedEvent is the payload of the visibility changed topic.
type VisibilityChangedEvent struct {
	StreamID           string `json:"stream_id"`
	PreviousVisibility string `json:"previous_visibility"`
	CurrentVisibility  string `json:"current_visibility"`
}
