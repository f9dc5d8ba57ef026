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

type CustomerHandler struct {
	customerQueries     queries.CustomerQueries
	subscriptionQueries queries.SubscriptionQueries
	requestQueries      queries.RequestQueries
	requestUseCase      commands.RequestCommands
}

func NewCustomerHandler(
	customerQueries queries.CustomerQueries,
	subscriptionQueries queries.SubscriptionQueries,
	requestQueries queries.RequestQueries,
	requestUseCase commands.RequestCommands,
) *CustomerHandler {
	return &CustomerHandler{
		customerQueries:     customerQueries,
		subscriptionQueries: subscriptionQueries,
		requestQueries:      requestQueries,
		requestUseCase:      requestUseCase,
	}
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CustomerResponse
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerQueries.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomerViews(customers))
}

// @Summary List my subscriptions
// @Description Subscriptions of the authenticated customer whose install visit has completed
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SubscriptionResponse
// @Router /customers/me/subscriptions [get]
func (h *CustomerHandler) MySubscriptions(c *gin.Context) {
	customerID, ok := middleware.GetPrincipalID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	subs, err := h.subscriptionQueries.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSubscriptionViews(subs))
}

// @Summary List my request history
// @Description Requests of the authenticated customer with the resolved visit date
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CustomerRequestResponse
// @Router /customers/me/requests [get]
func (h *CustomerHandler) MyRequests(c *gin.Context) {
	customerID, ok := middleware.GetPrincipalID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	reqs, err := h.requestQueries.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomerRequestViews(reqs))
}

// @Summary File a repair request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRepairRequest true "Repair request"
// @Success 201 {object} resdto.CreateRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /requests/repair [post]
func (h *CustomerHandler) CreateRepair(c *gin.Context) {
	customerID, ok := middleware.GetPrincipalID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateRepairRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	requestID, err := h.requestUseCase.CreateRepairRequest(c.Request.Context(), customerID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateRequestResponse{RequestID: requestID})
}

// @Summary Cancel a request
// @Description Withdraws a not-yet-visited request; cancelling an install unwinds the subscription
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/cancel [post]
func (h *CustomerHandler) CancelRequest(c *gin.Context) {
	customerID, ok := middleware.GetPrincipalID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return
	}

	if err := h.requestUseCase.CancelRequest(c.Request.Context(), customerID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
