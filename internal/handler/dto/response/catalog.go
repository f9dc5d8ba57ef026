package response

import (
	"hass-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type ModelResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	YearlyFeeCents int64     `json:"yearly_fee_cents"`
	Manufacturer   string    `json:"manufacturer"`
	Color          *string   `json:"color,omitempty"`
	EnergyRating   *string   `json:"energy_rating,omitempty"`
	ReleaseYear    *int32    `json:"release_year,omitempty"`
}

func FromModelViews(views []*queries.ModelView) []*ModelResponse {
	out := make([]*ModelResponse, len(views))
	for i, v := range views {
		out[i] = &ModelResponse{
			ID:             v.ID,
			Name:           v.Name,
			Category:       v.Category,
			YearlyFeeCents: v.YearlyFeeCents,
			Manufacturer:   v.Manufacturer,
			Color:          v.Color,
			EnergyRating:   v.EnergyRating,
			ReleaseYear:    v.ReleaseYear,
		}
	}
	return out
}

type ProductResponse struct {
	SerialNumber string    `json:"serial_number"`
	ModelID      uuid.UUID `json:"model_id"`
	Status       string    `json:"status"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return &ProductResponse{SerialNumber: v.SerialNumber, ModelID: v.ModelID, Status: v.Status}
}

func FromProductViews(views []*queries.ProductView) []*ProductResponse {
	out := make([]*ProductResponse, len(views))
	for i, v := range views {
		out[i] = FromProductView(v)
	}
	return out
}

type StockSummaryResponse struct {
	ModelID         uuid.UUID `json:"model_id"`
	ModelName       string    `json:"model_name"`
	Category        string    `json:"category"`
	StockCount      int64     `json:"stock_count"`
	SubscribedCount int64     `json:"subscribed_count"`
}

func FromStockSummaryViews(views []*queries.StockSummaryView) []*StockSummaryResponse {
	out := make([]*StockSummaryResponse, len(views))
	for i, v := range views {
		out[i] = &StockSummaryResponse{
			ModelID:         v.ModelID,
			ModelName:       v.ModelName,
			Category:        v.Category,
			StockCount:      v.StockCount,
			SubscribedCount: v.SubscribedCount,
		}
	}
	return out
}
