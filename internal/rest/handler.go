package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/fleencorp/stream-service/internal/config"
	api "github.com/fleencorp/stream-service/internal/generated"
	"github.com/fleencorp/stream-service/internal/model"
	"github.com/fleencorp/stream-service/internal/service/streams"
)

type Handler struct {
	attendanceService AttendanceService
	streamService     StreamService
	validator         Validator
	jwtGenerator      JWTGenerator
}

func New(
	attendanceService AttendanceService,
	streamService StreamService,
	validator Validator,
	jwtGenerator JWTGenerator,
) *Handler {
	return &Handler{
		attendanceService: attendanceService,
		streamService:     streamService,
		validator:         validator,
		jwtGenerator:      jwtGenerator,
	}
}

func (h *Handler) CreateStream(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateStream")

	var req api.CreateStreamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateCreateStream(&req); err != nil {
		logger.Error(fmt.Sprintf("stream validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("stream validation failed: %v", err), http.StatusBadRequest)
		return
	}

	params := &streams.CreateStreamParams{
		Title:      req.Title,
		Kind:       req.Kind,
		Visibility: req.Visibility,
		StartsAt:   req.StartsAt,
		EndsAt:     req.EndsAt,
		Timezone:   req.Timezone,
		Location:   req.Location,
	}
	if req.Description != nil {
		params.Description = *req.Description
	}
	if req.SpaceId != nil {
		spaceUUID, err := uuid.Parse(*req.SpaceId)
		if err != nil {
			logger.Error(fmt.Sprintf("invalid space id: %v", err))
			h.writeError(w, "invalid space id", http.StatusBadRequest)
			return
		}
		params.SpaceID = &spaceUUID
	}

	stream, err := h.streamService.CreateStream(r.Context(), params, userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create stream: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, toStreamResponse(stream), http.StatusOK)
}

func (h *Handler) GetStream(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetStream")

	stream, err := h.streamService.GetStream(r.Context(), streamId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get stream: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, toStreamResponse(stream), http.StatusOK)
}

func (h *Handler) CancelStream(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CancelStream")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	stream, err := h.streamService.CancelStream(r.Context(), streamId, userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to cancel stream: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, toStreamResponse(stream), http.StatusOK)
}

func (h *Handler) RescheduleStream(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RescheduleStream")

	var req api.RescheduleStreamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateRescheduleStream(&req); err != nil {
		logger.Error(fmt.Sprintf("reschedule validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("reschedule validation failed: %v", err), http.StatusBadRequest)
		return
	}

	stream, err := h.streamService.RescheduleStream(r.Context(), streamId, req.StartsAt, req.EndsAt, req.Timezone, userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to reschedule stream: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, toStreamResponse(stream), http.StatusOK)
}

func (h *Handler) UpdateStreamInfo(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateStreamInfo")

	var req api.UpdateStreamInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateUpdateStreamInfo(&req); err != nil {
		logger.Error(fmt.Sprintf("stream info validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("stream info validation failed: %v", err), http.StatusBadRequest)
		return
	}

	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	stream, err := h.streamService.UpdateStreamInfo(r.Context(), streamId, req.Title, description, req.Location, userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to update stream info: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, toStreamResponse(stream), http.StatusOK)
}

func (h *Handler) UpdateStreamVisibility(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateStreamVisibility")

	var req api.UpdateVisibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateUpdateVisibility(&req); err != nil {
		logger.Error(fmt.Sprintf("visibility validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("visibility validation failed: %v", err), http.StatusBadRequest)
		return
	}

	stream, err := h.streamService.UpdateVisibility(r.Context(), streamId, req.Visibility, userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to update stream visibility: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, toStreamResponse(stream), http.StatusOK)
}

func (h *Handler) RequestToJoin(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RequestToJoin")

	var req api.RequestToJoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateRequestToJoin(&req); err != nil {
		logger.Error(fmt.Sprintf("join validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("join validation failed: %v", err), http.StatusBadRequest)
		return
	}

	comment := ""
	if req.Comment != nil {
		comment = *req.Comment
	}

	attendee, err := h.attendanceService.RequestToJoin(r.Context(), streamId, comment, userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to process join request: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, api.AttendeeResponse{Attendee: toAttendee(attendee)}, http.StatusOK)
}

func (h *Handler) ProcessOrganizerDecision(w http.ResponseWriter, r *http.Request, streamId string, memberId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ProcessOrganizerDecision")

	var req api.ProcessDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateProcessDecision(&req); err != nil {
		logger.Error(fmt.Sprintf("decision validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("decision validation failed: %v", err), http.StatusBadRequest)
		return
	}

	comment := ""
	if req.Comment != nil {
		comment = *req.Comment
	}

	attendee, err := h.attendanceService.ProcessOrganizerDecision(r.Context(), streamId, memberId, req.Approved, comment, userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to process organizer decision: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, api.AttendeeResponse{Attendee: toAttendee(attendee)}, http.StatusOK)
}

func (h *Handler) AddAttendeeDirectly(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AddAttendeeDirectly")

	var req api.AddAttendeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateAddAttendee(&req); err != nil {
		logger.Error(fmt.Sprintf("attendee validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("attendee validation failed: %v", err), http.StatusBadRequest)
		return
	}

	alias := ""
	if req.Alias != nil {
		alias = *req.Alias
	}
	comment := ""
	if req.Comment != nil {
		comment = *req.Comment
	}

	attendee, err := h.attendanceService.AddAttendeeDirectly(r.Context(), streamId, req.Email, alias, comment, userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to add attendee: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, api.AttendeeResponse{Attendee: toAttendee(attendee)}, http.StatusOK)
}

func (h *Handler) MarkNotAttending(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MarkNotAttending")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	if err := h.attendanceService.MarkNotAttending(r.Context(), streamId, userUUID); err != nil {
		logger.Error(fmt.Sprintf("failed to mark not attending: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, api.MarkNotAttendingResponse{Ack: true}, http.StatusOK)
}

func (h *Handler) GetAttendeeCount(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetAttendeeCount")

	count, err := h.attendanceService.CountApprovedAttending(r.Context(), streamId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to count attendees: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, api.AttendeeCountResponse{Count: count}, http.StatusOK)
}

func (h *Handler) GetConnectToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectToken")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate connect token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate connect token: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.GetConnectTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, http.StatusOK)
}

func (h *Handler) GetWatchToken(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetWatchToken")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	stream, err := h.streamService.GetStream(r.Context(), streamId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get stream: %v", err))
		h.writeServiceError(w, err)
		return
	}

	if stream.Kind != model.LiveBroadcastStreamKind {
		logger.Error("stream is not a live broadcast")
		h.writeError(w, "stream is not a live broadcast", http.StatusBadRequest)
		return
	}

	attendee, err := h.attendanceService.GetAttendee(r.Context(), streamId, userUUID)
	if err != nil {
		if errors.Is(err, model.ErrAttendeeNotFound) {
			h.writeError(w, "user is not an attendee of the stream", http.StatusForbidden)
			return
		}
		logger.Error(fmt.Sprintf("failed to get attendee: %v", err))
		h.writeServiceError(w, err)
		return
	}

	if !attendee.IsApproved() || !attendee.Attending {
		logger.Error("user is not an approved attendee of the stream")
		h.writeError(w, "user is not an approved attendee of the stream", http.StatusForbidden)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateWatchToken(userUUID, streamId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate watch token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate watch token: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.GetWatchTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Channel:   streamId,
	}, http.StatusOK)
}

// VerifyBroadcastToken lets the media gateway check a token it received
// from a viewer. A request carrying a channel verifies a watch token
// against that channel; without one it verifies a connect token.
func (h *Handler) VerifyBroadcastToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("VerifyBroadcastToken")

	var req api.VerifyBroadcastTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Channel == nil {
		claims, err := h.jwtGenerator.ValidateConnectToken(req.Token)
		if err != nil {
			logger.Error(fmt.Sprintf("connect token rejected: %v", err))
			h.writeError(w, "invalid token", http.StatusUnauthorized)
			return
		}

		h.writeJSON(w, api.VerifyBroadcastTokenResponse{
			UserId: claims.Subject,
		}, http.StatusOK)
		return
	}

	claims, err := h.jwtGenerator.ValidateWatchToken(req.Token)
	if err != nil {
		logger.Error(fmt.Sprintf("watch token rejected: %v", err))
		h.writeError(w, "invalid token", http.StatusUnauthorized)
		return
	}

	if claims.Channel != *req.Channel {
		logger.Error("watch token issued for another channel")
		h.writeError(w, "invalid token", http.StatusUnauthorized)
		return
	}

	h.writeJSON(w, api.VerifyBroadcastTokenResponse{
		UserId:   claims.UserID,
		StreamId: &claims.StreamID,
		Channel:  &claims.Channel,
	}, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func toStreamResponse(stream *model.Stream) api.Stream {
	resp := api.Stream{
		Id:             stream.ID.String(),
		Title:          stream.Title,
		Kind:           stream.Kind,
		Visibility:     stream.Visibility,
		Status:         stream.Status,
		StartsAt:       stream.StartsAt.Format(time.RFC3339),
		EndsAt:         stream.EndsAt.Format(time.RFC3339),
		Timezone:       stream.Timezone,
		Location:       stream.Location,
		ExternalLink:   stream.ExternalLink,
		TotalAttendees: stream.TotalAttendees,
	}

	if stream.Description != "" {
		resp.Description = &stream.Description
	}

	return resp
}

func toAttendee(attendee *model.Attendee) *api.Attendee {
	if attendee == nil {
		return nil
	}

	resp := &api.Attendee{
		StreamId:         attendee.StreamID.String(),
		MemberId:         attendee.MemberID.String(),
		RequestStatus:    attendee.RequestStatus,
		Attending:        attendee.Attending,
		OrganizerComment: attendee.OrganizerComment,
	}

	if attendee.MemberComment != "" {
		resp.MemberComment = &attendee.MemberComment
	}

	return resp
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrStreamNotFound), errors.Is(err, model.ErrAttendeeNotFound):
		h.writeError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, model.ErrStreamNotCreatedByUser):
		h.writeError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, model.ErrStreamAlreadyHappened),
		errors.Is(err, model.ErrStreamAlreadyCanceled),
		errors.Is(err, model.ErrCannotLeaveOwnStream):
		h.writeError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, model.ErrFailedOperation):
		h.writeError(w, err.Error(), http.StatusBadRequest)
	default:
		h.writeError(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
