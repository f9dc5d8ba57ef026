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

type SubscriptionHandler struct {
	subscriptionUseCase commands.SubscriptionCommands
	subscriptionQueries queries.SubscriptionQueries
}

func NewSubscriptionHandler(
	subscriptionUseCase commands.SubscriptionCommands,
	subscriptionQueries queries.SubscriptionQueries,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUseCase: subscriptionUseCase,
		subscriptionQueries: subscriptionQueries,
	}
}

// @Summary Subscribe to an appliance model
// @Description Reserves a unit, opens the subscription and files the install request
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubscribeRequest true "Subscribe request"
// @Success 201 {object} resdto.SubscribeResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /subscriptions [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	customerID, ok := middleware.GetPrincipalID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SubscribeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.subscriptionUseCase.Subscribe(c.Request.Context(), customerID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSubscribeResult(result))
}

// @Summary Extend a subscription term
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscription ID"
// @Param request body reqdto.ExtendSubscriptionRequest true "Extend request"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /subscriptions/{id}/extend [post]
func (h *SubscriptionHandler) Extend(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid subscription ID format",
		})
		return
	}

	var req reqdto.ExtendSubscriptionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.subscriptionUseCase.Extend(c.Request.Context(), id, req.AddYears); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary File a return request
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscription ID"
// @Param request body reqdto.CreateReturnRequest true "Return request"
// @Success 201 {object} resdto.CreateRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /subscriptions/{id}/return [post]
func (h *SubscriptionHandler) CreateReturn(c *gin.Context) {
	actorID, ok := middleware.GetPrincipalID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	actorRole, ok := middleware.GetRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid subscription ID format",
		})
		return
	}

	var req reqdto.CreateReturnRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	requestID, err := h.subscriptionUseCase.CreateReturnRequest(c.Request.Context(), actorID, actorRole, id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateRequestResponse{RequestID: requestID})
}

// @Summary List active subscriptions
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SubscriptionResponse
// @Router /subscriptions [get]
func (h *SubscriptionHandler) ListActive(c *gin.Context) {
	subs, err := h.subscriptionQueries.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSubscriptionViews(subs))
}

// @Summary List expired subscriptions awaiting return
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SubscriptionResponse
// @Router /subscriptions/expiring [get]
func (h *SubscriptionHandler) ListExpiring(c *gin.Context) {
	subs, err := h.subscriptionQueries.ListExpiring(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSubscriptionViews(subs))
}
