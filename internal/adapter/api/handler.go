package api

import (
	"bufio"
	"context"

	"dispute-core/internal/domain/entity"
	"dispute-core/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

type DisputeHandler struct {
	orchestrator *usecase.Orchestrator
	logger       *zap.Logger
}

func NewDisputeHandler(orch *usecase.Orchestrator, logger *zap.Logger) *DisputeHandler {
	return &DisputeHandler{orchestrator: orch, logger: logger}
}

// HandleDispute runs the pipeline in single-shot or streaming mode. Business
// refusals are successful transport responses; only malformed requests get a
// non-200 status.
func (h *DisputeHandler) HandleDispute(c *fiber.Ctx) error {
	var req entity.DisputeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Action == "" || req.Input == "" || req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": entity.ErrInvalidRequest.Error()})
	}

	if req.Stream {
		return h.stream(c, req)
	}

	res := h.orchestrator.Execute(c.Context(), req, nil)
	return c.Status(fiber.StatusOK).JSON(res)
}

// stream emits ordered status events followed by exactly one terminal result
// event carrying the same document the single-shot mode would return.
func (h *DisputeHandler) stream(c *fiber.Ctx, req entity.DisputeRequest) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		// The request context dies with the handler; the pipeline (and its
		// log write) must outlive a client disconnect.
		ctx := context.Background()

		emit := func(message string) {
			if err := writeEvent(w, "status", statusEvent{Type: "status", Message: message}); err != nil {
				h.logger.Debug("status event dropped", zap.Error(err))
				return
			}
			w.Flush()
		}

		res := h.orchestrator.Execute(ctx, req, emit)
		if err := writeEvent(w, "result", resultEvent{Type: "result", Result: res}); err != nil {
			h.logger.Warn("result event write failed", zap.Error(err))
		}
		w.Flush()
	}))
	return nil
}
