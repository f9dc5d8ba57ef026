package api

import (
	"errors"
	"net/http"

	"hass-backend/internal/domain/visit"
	"hass-backend/internal/handler/httperr"
	"hass-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// respondError maps usecase errors onto the HTTP surface. One table so every
// handler reports the same error the same way.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrModelNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Model not found", nil)
	case errors.Is(err, errs.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
	case errors.Is(err, errs.ErrSubscriptionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Subscription not found", nil)
	case errors.Is(err, errs.ErrRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found", nil)
	case errors.Is(err, errs.ErrCustomerNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
	case errors.Is(err, errs.ErrWorkerNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Worker not found", nil)
	case errors.Is(err, errs.ErrVisitNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No visit recorded for request", nil)
	case errors.Is(err, errs.ErrOutOfStock):
		httperr.AbortWithError(c, http.StatusConflict, err, "No unit in stock for model", nil)
	case errors.Is(err, errs.ErrVisitAlreadyScheduled):
		httperr.AbortWithError(c, http.StatusConflict, err, "Visit already scheduled for request", nil)
	case errors.Is(err, errs.ErrAlreadyVisited):
		httperr.AbortWithError(c, http.StatusConflict, err, "Request already visited", nil)
	case errors.Is(err, errs.ErrBeginDateAlreadySet):
		httperr.AbortWithError(c, http.StatusConflict, err, "Subscription begin date already set", nil)
	case errors.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Invalid request status transition", nil)
	case errors.Is(err, errs.ErrLoginIDTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, "Login ID already exists", nil)
	case errors.Is(err, errs.ErrTransactionConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Concurrent update conflict, retry the request", nil)
	case errors.Is(err, errs.ErrInvalidTerm):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Resulting subscription term is not positive", nil)
	case errors.Is(err, errs.ErrNoPreferenceDate):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "At least one preference date is required", nil)
	case errors.Is(err, visit.ErrEmptyRepairDetail):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Repair detail must not be empty", nil)
	case errors.Is(err, errs.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid credentials", nil)
	case errors.Is(err, errs.ErrStoreUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Store unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
