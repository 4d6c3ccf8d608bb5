package handlers

import (
	"net/http"

	response "mbg_outreach/internal/adapter/http/dto/response"
	"mbg_outreach/internal/usecase"
	"mbg_outreach/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AutomationHandler triggers the agents under /api/automation.
type AutomationHandler struct {
	orchestrator usecase.IOrchestratorUseCase
	scanner      usecase.IContactScanner
	lock         interfaces.IRunLock
	log          *zap.Logger
}

func NewAutomationHandler(
	orchestrator usecase.IOrchestratorUseCase,
	scanner usecase.IContactScanner,
	lock interfaces.IRunLock,
	logger *zap.Logger,
) *AutomationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AutomationHandler{
		orchestrator: orchestrator,
		scanner:      scanner,
		lock:         lock,
		log:          logger.Named("automation"),
	}
}

// RunWorkflow godoc
// @Summary      Run discovery, drafting and dispatch once
// @Description  Blocks until the run finishes. Returns 409 while another run holds the lock.
// @Tags         automation
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Failure      409  {object}  pkg.HTTPError
// @Router       /automation/run [post]
func (h *AutomationHandler) RunWorkflow(c *gin.Context) {
	release, ok, err := h.lock.TryAcquire(c.Request.Context())
	if err != nil {
		h.log.Error("run lock unavailable", zap.Error(err))
		writeError(c, mapLeadError(err, "Terjadi kesalahan saat menjalankan proses"))
		return
	}
	if !ok {
		writeError(c, mapLeadError(usecase.ErrRunInProgress, ""))
		return
	}
	defer release()

	h.log.Info("workflow triggered via api")
	result := h.orchestrator.RunFullWorkflow(c.Request.Context())
	c.JSON(http.StatusOK, response.OK(result))
}

// GetStatus godoc
// @Summary      Preflight readiness and channel mode
// @Tags         automation
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /automation/status [get]
func (h *AutomationHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, response.OK(h.orchestrator.GetSystemStatus(c.Request.Context())))
}

// GenerateMessage godoc
// @Summary      Draft the outreach message for one lead
// @Tags         automation
// @Produce      json
// @Param        id   path      string  true  "Lead ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /automation/generate-message/{id} [post]
func (h *AutomationHandler) GenerateMessage(c *gin.Context) {
	result, err := h.orchestrator.GenerateMessageForLead(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapLeadError(err, "Gagal membuat pesan"))
		return
	}
	c.JSON(http.StatusOK, response.OK(result))
}

// SendMessage godoc
// @Summary      Dispatch the stored message for one lead
// @Description  Goes through the same gate and recency check as the workflow.
// @Tags         automation
// @Produce      json
// @Param        id   path      string  true  "Lead ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /automation/send/{id} [post]
func (h *AutomationHandler) SendMessage(c *gin.Context) {
	result, err := h.orchestrator.SendMessageForLead(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapLeadError(err, "Gagal mengirim pesan"))
		return
	}
	c.JSON(http.StatusOK, response.OK(result))
}

// ScanContact godoc
// @Summary      Search public sources for a lead's phone number
// @Tags         automation
// @Produce      json
// @Param        id   path      string  true  "Lead ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  pkg.HTTPError
// @Router       /automation/scan-contact/{id} [post]
func (h *AutomationHandler) ScanContact(c *gin.Context) {
	result, err := h.scanner.FindContact(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapLeadError(err, "Gagal mencari kontak"))
		return
	}
	c.JSON(http.StatusOK, response.OK(result))
}
