package validator

import (
	"fmt"
	"strings"

	api "github.com/fleencorp/stream-service/internal/generated"
	"github.com/fleencorp/stream-service/internal/model"
)

const maxCommentLength = 500

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateCreateStream(req *api.CreateStreamRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("title is required")
	}

	switch req.Kind {
	case model.EventStreamKind, model.LiveBroadcastStreamKind:
	default:
		return fmt.Errorf("stream kind '%s' is not supported", req.Kind)
	}

	switch req.Visibility {
	case model.PublicStreamVisibility, model.PrivateStreamVisibility, model.ProtectedStreamVisibility:
	default:
		return fmt.Errorf("visibility '%s' is not supported", req.Visibility)
	}

	if strings.TrimSpace(req.Timezone) == "" {
		return fmt.Errorf("timezone is required")
	}

	if req.StartsAt.IsZero() || req.EndsAt.IsZero() {
		return fmt.Errorf("schedule is required")
	}

	if !req.EndsAt.After(req.StartsAt) {
		return fmt.Errorf("stream must end after it starts")
	}

	return nil
}

func (v *Validator) ValidateRescheduleStream(req *api.RescheduleStreamRequest) error {
	if strings.TrimSpace(req.Timezone) == "" {
		return fmt.Errorf("timezone is required")
	}

	if req.StartsAt.IsZero() || req.EndsAt.IsZero() {
		return fmt.Errorf("schedule is required")
	}

	if !req.EndsAt.After(req.StartsAt) {
		return fmt.Errorf("stream must end after it starts")
	}

	return nil
}

func (v *Validator) ValidateUpdateStreamInfo(req *api.UpdateStreamInfoRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("title is required")
	}

	return nil
}

func (v *Validator) ValidateUpdateVisibility(req *api.UpdateVisibilityRequest) error {
	switch req.Visibility {
	case model.PublicStreamVisibility, model.PrivateStreamVisibility, model.ProtectedStreamVisibility:
		return nil
	default:
		return fmt.Errorf("visibility '%s' is not supported", req.Visibility)
	}
}

func (v *Validator) ValidateRequestToJoin(req *api.RequestToJoinRequest) error {
	if req.Comment != nil && len([]rune(*req.Comment)) > maxCommentLength {
		return fmt.Errorf("comment exceeds maximum length of %d characters", maxCommentLength)
	}

	return nil
}

func (v *Validator) ValidateProcessDecision(req *api.ProcessDecisionRequest) error {
	if req.Comment != nil && len([]rune(*req.Comment)) > maxCommentLength {
		return fmt.Errorf("comment exceeds maximum length of %d characters", maxCommentLength)
	}

	return nil
}

func (v *Validator) ValidateAddAttendee(req *api.AddAttendeeRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("email is required")
	}

	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("email '%s' is not valid", req.Email)
	}

	if req.Comment != nil && len([]rune(*req.Comment)) > maxCommentLength {
		return fmt.Errorf("comment exceeds maximum length of %d characters", maxCommentLength)
	}

	return nil
}
