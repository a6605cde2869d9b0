package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/haiminhdev/meeting-relay/errors"
	webhookdto "github.com/haiminhdev/meeting-relay/internal/adapter/dto/webhook"
	"github.com/haiminhdev/meeting-relay/internal/usecase/relay"
)

// WebhookHandler handles incoming meeting-end webhooks from the meeting
// intelligence source
type WebhookHandler struct {
	svc    relay.Service
	logger *zap.Logger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(svc relay.Service, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{svc: svc, logger: logger}
}

// HandleMeetingEnd receives meeting-end webhook events
// @Summary      Meeting-end webhook
// @Description  Receives a meeting-end event, updates the matching knowledge-base record and notifies admins
// @Tags         Webhooks
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /webhook [post]
func (h *WebhookHandler) HandleMeetingEnd(c echo.Context) error {
	var req webhookdto.MeetingEndRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	event, err := req.ToEntity()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	res, err := h.svc.ProcessMeetingEnd(c.Request().Context(), event)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, webhookdto.NewMeetingEndAck(res.EventID, res.PageID, res.Deliveries))
}
