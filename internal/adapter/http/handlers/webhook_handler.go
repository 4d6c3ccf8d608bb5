package handlers

import (
	"errors"
	"net/http"

	request "mbg_outreach/internal/adapter/http/dto/request"
	"mbg_outreach/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookHandler receives WhatsApp Cloud API callbacks under /api/webhook.
type WebhookHandler struct {
	outreach    usecase.IOutreachUseCase
	verifyToken string
	log         *zap.Logger
}

func NewWebhookHandler(outreach usecase.IOutreachUseCase, verifyToken string, logger *zap.Logger) *WebhookHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebhookHandler{outreach: outreach, verifyToken: verifyToken, log: logger.Named("webhook")}
}

// Verify godoc
// @Summary      Meta webhook verification handshake
// @Tags         webhook
// @Produce      plain
// @Param        hub.mode          query  string  true  "subscribe"
// @Param        hub.verify_token  query  string  true  "Configured verify token"
// @Param        hub.challenge     query  string  true  "Echoed back on success"
// @Success      200  {string}  string
// @Failure      400  {string}  string
// @Failure      403  {string}  string
// @Router       /webhook [get]
func (h *WebhookHandler) Verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "" || token == "" {
		c.Status(http.StatusBadRequest)
		return
	}
	if mode != "subscribe" || token != h.verifyToken {
		h.log.Warn("verification failed", zap.String("mode", mode))
		c.Status(http.StatusForbidden)
		return
	}
	h.log.Info("verified")
	c.String(http.StatusOK, challenge)
}

// Receive godoc
// @Summary      Inbound WhatsApp notification
// @Description  Text replies are matched to a lead by the last 10 phone digits and classified.
// @Tags         webhook
// @Accept       json
// @Param        payload  body  request.WebhookPayload  true  "WhatsApp notification"
// @Success      200
// @Failure      404
// @Router       /webhook [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	var payload request.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if payload.Object == "" {
		c.Status(http.StatusNotFound)
		return
	}

	from, text, ok := payload.FirstTextMessage()
	if !ok {
		c.Status(http.StatusOK)
		return
	}

	res, err := h.outreach.HandleInbound(c.Request.Context(), from, text)
	switch {
	case errors.Is(err, usecase.ErrLeadNotFound), errors.Is(err, usecase.ErrEmptyReply):
		h.log.Info("inbound message ignored", zap.Error(err))
	case err != nil:
		h.log.Error("inbound processing failed", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	default:
		h.log.Info("inbound reply processed",
			zap.String("lead_id", res.LeadID),
			zap.String("classification", string(res.Classification)),
			zap.String("status", string(res.Status)))
	}
	c.Status(http.StatusOK)
}
