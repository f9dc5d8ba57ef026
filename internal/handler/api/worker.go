package api

import (
	"net/http"

	reqdto "hass-backend/internal/handler/dto/request"
	resdto "hass-backend/internal/handler/dto/response"
	"hass-backend/internal/handler/middleware"
	"hass-backend/internal/usecase/commands"
	"hass-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WorkerHandler covers the worker console: the request worklist, visit
// scheduling and completion, plus the inventory views.
type WorkerHandler struct {
	requestQueries queries.RequestQueries
	catalogQueries queries.CatalogQueries
	requestUseCase commands.RequestCommands
}

func NewWorkerHandler(
	requestQueries queries.RequestQueries,
	catalogQueries queries.CatalogQueries,
	requestUseCase commands.RequestCommands,
) *WorkerHandler {
	return &WorkerHandler{
		requestQueries: requestQueries,
		catalogQueries: catalogQueries,
		requestUseCase: requestUseCase,
	}
}

// @Summary List all requests
// @Tags worker
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RequestResponse
// @Router /worker/requests [get]
func (h *WorkerHandler) ListRequests(c *gin.Context) {
	reqs, err := h.requestQueries.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestViews(reqs))
}

// @Summary Get a request
// @Tags worker
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 404 {object} httperr.Response
// @Router /worker/requests/{id} [get]
func (h *WorkerHandler) GetRequest(c *gin.Context) {
	id, ok := parseRequestID(c)
	if !ok {
		return
	}

	req, err := h.requestQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestView(req))
}

// @Summary List a request's preference dates
// @Tags worker
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {array} resdto.PreferenceDateResponse
// @Router /worker/requests/{id}/preferences [get]
func (h *WorkerHandler) ListPreferenceDates(c *gin.Context) {
	id, ok := parseRequestID(c)
	if !ok {
		return
	}

	prefs, err := h.requestQueries.ListPreferenceDates(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPreferenceDateViews(prefs))
}

// @Summary Get a request's scheduled visit
// @Tags worker
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.VisitResponse
// @Failure 404 {object} httperr.Response
// @Router /worker/requests/{id}/visit [get]
func (h *WorkerHandler) GetVisit(c *gin.Context) {
	id, ok := parseRequestID(c)
	if !ok {
		return
	}

	v, err := h.requestQueries.GetVisit(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVisitView(v))
}

// @Summary List workers qualified for a request
// @Description Workers whose specialty matches the category of the request's appliance
// @Tags worker
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {array} resdto.WorkerResponse
// @Failure 404 {object} httperr.Response
// @Router /worker/requests/{id}/qualified-workers [get]
func (h *WorkerHandler) QualifiedWorkers(c *gin.Context) {
	id, ok := parseRequestID(c)
	if !ok {
		return
	}

	workers, err := h.requestQueries.QualifiedWorkers(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWorkerViews(workers))
}

// @Summary Accept a request
// @Description Schedules the visit on the given date, or the earliest preference date
// @Tags worker
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.AcceptRequestRequest true "Accept request"
// @Success 201 {object} resdto.AcceptResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /worker/requests/{id}/accept [post]
func (h *WorkerHandler) AcceptRequest(c *gin.Context) {
	workerID, ok := middleware.GetPrincipalID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, ok := parseRequestID(c)
	if !ok {
		return
	}

	var req reqdto.AcceptRequestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.requestUseCase.AcceptRequest(c.Request.Context(), id, workerID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAcceptResult(result))
}

// @Summary Complete a visit
// @Description Closes the scheduled visit; repairs record their detail
// @Tags worker
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.CompleteVisitRequest true "Completion detail"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /worker/requests/{id}/complete [post]
func (h *WorkerHandler) CompleteVisit(c *gin.Context) {
	id, ok := parseRequestID(c)
	if !ok {
		return
	}

	var req reqdto.CompleteVisitRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.requestUseCase.CompleteVisit(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Stock summary
// @Tags worker
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.StockSummaryResponse
// @Router /worker/summary/stock [get]
func (h *WorkerHandler) StockSummary(c *gin.Context) {
	summary, err := h.catalogQueries.StockSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStockSummaryViews(summary))
}

// @Summary Pending and scheduled request counts
// @Tags worker
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RequestCountsResponse
// @Router /worker/summary/requests [get]
func (h *WorkerHandler) RequestCounts(c *gin.Context) {
	counts, err := h.requestQueries.Counts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.RequestCountsResponse{
		Pending:   counts.Pending,
		Scheduled: counts.Scheduled,
	})
}

// @Summary List physical units
// @Tags worker
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ProductResponse
// @Router /worker/products [get]
func (h *WorkerHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogQueries.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductViews(products))
}

// @Summary Get a physical unit
// @Tags worker
// @Produce json
// @Security BearerAuth
// @Param serial path string true "Serial number"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} httperr.Response
// @Router /worker/products/{serial} [get]
func (h *WorkerHandler) GetProduct(c *gin.Context) {
	serial := c.Param("serial")

	p, err := h.catalogQueries.GetProduct(c.Request.Context(), serial)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductView(p))
}

func parseRequestID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
