//go:generate mockgen -destination=mock_handler_test.go -package=${GOPACKAGE} -source=handler.go
package visibility

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/fleencorp/stream-service/internal/config"
	"github.com/fleencorp/stream-service/internal/model"
)

type TransitionService interface {
	OnVisibilityChanged(ctx context.Context, event *model.VisibilityChangedEvent) error
}

// Handler feeds visibility change events to the transition service.
type Handler struct {
	service TransitionService
}

func New(service TransitionService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("VisibilityChangedHandler")

	var event model.VisibilityChangedEvent
	if err := json.Unmarshal(in, &event); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal visibility event: %v", err))
		return
	}

	if err := h.service.OnVisibilityChanged(ctx, &event); err != nil {
		logger.Error(fmt.Sprintf("failed to process visibility change for stream %s: %v", event.StreamID, err))
	}
}
