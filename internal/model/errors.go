package model

import "errors"

var (
	ErrStreamNotFound            = errors.New("stream not found")
	ErrAttendeeNotFound          = errors.New("attendee not found")
	ErrStreamAlreadyHappened     = errors.New("stream has already happened")
	ErrStreamAlreadyCanceled     = errors.New("stream has already been canceled")
	ErrStreamNotCreatedByUser    = errors.New("stream was not created by the user")
	ErrCannotLeaveOwnStream      = errors.New("organizer cannot leave their own stream")
	ErrFailedOperation           = errors.New("operation failed: required input is missing")
	ErrUnableToCompleteOperation = errors.New("unable to complete operation")
)
