package api

import (
	"net/http"

	resdto "hass-backend/internal/handler/dto/response"
	"hass-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalogQueries: catalogQueries}
}

// @Summary List appliance models
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ModelResponse
// @Router /catalog/models [get]
func (h *CatalogHandler) ListModels(c *gin.Context) {
	models, err := h.catalogQueries.ListModels(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromModelViews(models))
}

// @Summary Stock summary per model
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.StockSummaryResponse
// @Router /catalog/stock [get]
func (h *CatalogHandler) StockSummary(c *gin.Context) {
	summary, err := h.catalogQueries.StockSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStockSummaryViews(summary))
}
