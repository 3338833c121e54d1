package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/fleencorp/stream-service/internal/config"
	"github.com/fleencorp/stream-service/internal/model"
)

const (
	defaultMaxAttempts = 5
	defaultBaseDelay   = 2 * time.Second
)

// Handler drains the calendar sync topic. Each task is retried with
// exponential backoff; a task that still fails after the last attempt is
// reported and dropped.
type Handler struct {
	repository  DBRepo
	client      CalendarClient
	maxAttempts int
	baseDelay   time.Duration
}

func New(repository DBRepo, client CalendarClient) *Handler {
	return &Handler{
		repository:  repository,
		client:      client,
		maxAttempts: defaultMaxAttempts,
		baseDelay:   defaultBaseDelay,
	}
}

func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("CalendarSyncHandler")

	var task model.CalendarTask
	if err := json.Unmarshal(in, &task); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal calendar task: %v", err))
		return
	}

	if err := h.process(ctx, &task); err != nil {
		logger.Error(fmt.Sprintf("calendar sync %s for stream %s failed after %d attempts: %v",
			task.Action, task.StreamID, h.maxAttempts, err))
	}
}

func (h *Handler) process(ctx context.Context, task *model.CalendarTask) error {
	var lastErr error

	for attempt := 0; attempt < h.maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(h.baseDelay << (attempt - 1)):
			}
		}

		if lastErr = h.apply(ctx, task); lastErr == nil {
			return nil
		}
	}

	return lastErr
}

func (h *Handler) apply(ctx context.Context, task *model.CalendarTask) error {
	if task.Action == model.CreateEventTask {
		if task.Event == nil {
			return fmt.Errorf("create task for stream %s carries no event", task.StreamID)
		}

		created, err := h.client.CreateEvent(ctx, task.Event)
		if err != nil {
			return err
		}

		return h.repository.SetStreamExternalRef(ctx, task.StreamID, created.EventID, created.Link)
	}

	eventID, err := h.resolveEventID(ctx, task)
	if err != nil {
		return err
	}

	switch task.Action {
	case model.CancelEventTask:
		return h.client.CancelEvent(ctx, eventID)
	case model.RescheduleEventTask:
		if task.StartsAt == nil || task.EndsAt == nil {
			return fmt.Errorf("reschedule task for stream %s carries no schedule", task.StreamID)
		}
		return h.client.RescheduleEvent(ctx, eventID, *task.StartsAt, *task.EndsAt, task.Timezone)
	case model.PatchEventTask:
		if task.Event == nil {
			return fmt.Errorf("patch task for stream %s carries no event", task.StreamID)
		}
		return h.client.PatchEvent(ctx, eventID, task.Event)
	case model.AddAttendeeTask:
		if task.Attendee == nil {
			return fmt.Errorf("add-attendee task for stream %s carries no attendee", task.StreamID)
		}
		return h.client.AddAttendee(ctx, eventID, task.Attendee)
	case model.AddAttendeesTask:
		return h.client.AddAttendees(ctx, eventID, task.Emails)
	case model.UpdateVisibilityTask:
		return h.client.UpdateVisibility(ctx, eventID, task.Visibility)
	default:
		return fmt.Errorf("unknown calendar task action %q", task.Action)
	}
}

// resolveEventID falls back to the streams table when the task predates
// the create-event sync.
func (h *Handler) resolveEventID(ctx context.Context, task *model.CalendarTask) (string, error) {
	if task.ExternalEventID != "" {
		return task.ExternalEventID, nil
	}

	stream, err := h.repository.GetStreamByID(ctx, task.StreamID)
	if err != nil {
		return "", fmt.Errorf("failed to get stream: %w", err)
	}

	if stream.ExternalEventID == nil || *stream.ExternalEventID == "" {
		return "", fmt.Errorf("stream %s is not mirrored to the calendar yet", task.StreamID)
	}

	return *stream.ExternalEventID, nil
}
