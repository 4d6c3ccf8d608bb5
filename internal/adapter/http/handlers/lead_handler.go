package handlers

import (
	"net/http"

	request "mbg_outreach/internal/adapter/http/dto/request"
	response "mbg_outreach/internal/adapter/http/dto/response"
	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase"

	"github.com/gin-gonic/gin"
)

// LeadHandler serves the dashboard lead routes under /api/leads.
type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// ListLeads godoc
// @Summary      List leads
// @Description  Newest first, optionally filtered by status
// @Tags         leads
// @Produce      json
// @Param        status  query     string  false  "Lead status, e.g. Belum Dihubungi"
// @Success      200     {object}  response.Envelope
// @Failure      400     {object}  pkg.HTTPError
// @Router       /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	status, err := request.ResolveStatusFilter(c.Query("status"))
	if err != nil {
		writeError(c, errInvalidStatus)
		return
	}

	leads, err := h.usecase.List(c.Request.Context(), status)
	if err != nil {
		writeError(c, mapLeadError(err, "Gagal mengambil data dapur"))
		return
	}
	if leads == nil {
		leads = []entities.Lead{}
	}
	c.JSON(http.StatusOK, response.OK(leads))
}

// GetStats godoc
// @Summary      Dashboard KPIs
// @Tags         leads
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /leads/stats [get]
func (h *LeadHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		writeError(c, mapLeadError(err, "Gagal mengambil statistik"))
		return
	}
	c.JSON(http.StatusOK, response.OK(stats))
}

// GetDuplicates godoc
// @Summary      Leads sharing a (name, city) key
// @Tags         leads
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /leads/duplicates [get]
func (h *LeadHandler) GetDuplicates(c *gin.Context) {
	groups, err := h.usecase.FindDuplicates(c.Request.Context())
	if err != nil {
		writeError(c, mapLeadError(err, "Gagal memeriksa duplikat"))
		return
	}
	if groups == nil {
		groups = []usecase.DuplicateGroup{}
	}
	c.JSON(http.StatusOK, response.OK(groups))
}

// GetLead godoc
// @Summary      Lead detail with its message log
// @Tags         leads
// @Produce      json
// @Param        id   path      string  true  "Lead ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  pkg.HTTPError
// @Router       /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	detail, err := h.usecase.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapLeadError(err, "Gagal mengambil detail dapur"))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromLeadDetail(detail)))
}

// UpdateLead godoc
// @Summary      Manual edit of status and/or outreach message
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Lead ID"
// @Param        payload  body      request.UpdateLeadRequest  true  "Fields to update"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /leads/{id} [put]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	var payload request.UpdateLeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(c, errNothingToApply)
		return
	}
	status, err := payload.ResolveStatus()
	if err != nil {
		writeError(c, errInvalidStatus)
		return
	}

	lead, err := h.usecase.Update(c.Request.Context(), c.Param("id"), usecase.UpdateLeadInput{
		Status:          status,
		OutreachMessage: payload.OutreachMessage,
	})
	if err != nil {
		writeError(c, mapLeadError(err, "Gagal mengupdate data"))
		return
	}
	c.JSON(http.StatusOK, response.OK(lead))
}
