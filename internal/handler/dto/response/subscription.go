package response

import (
	"time"

	"hass-backend/internal/usecase/commands"
	"hass-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubscriptionResponse struct {
	ID           uuid.UUID  `json:"id"`
	TermYears    int        `json:"term_years"`
	CreatedAt    time.Time  `json:"created_at"`
	BeginDate    *time.Time `json:"begin_date,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	CustomerID   uuid.UUID  `json:"customer_id"`
	SerialNumber string     `json:"serial_number"`
}

func FromSubscriptionView(v *queries.SubscriptionView) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:           v.ID,
		TermYears:    v.TermYears,
		CreatedAt:    v.CreatedAt,
		BeginDate:    v.BeginDate,
		ExpiresAt:    v.ExpiresAt,
		CustomerID:   v.CustomerID,
		SerialNumber: v.SerialNumber,
	}
}

func FromSubscriptionViews(views []*queries.SubscriptionView) []*SubscriptionResponse {
	out := make([]*SubscriptionResponse, len(views))
	for i, v := range views {
		out[i] = FromSubscriptionView(v)
	}
	return out
}

type SubscribeResponse struct {
	SubscriptionID uuid.UUID `json:"subscription_id"`
	RequestID      uuid.UUID `json:"request_id"`
	SerialNumber   string    `json:"serial_number"`
}

func FromSubscribeResult(r *commands.SubscribeResult) *SubscribeResponse {
	return &SubscribeResponse{
		SubscriptionID: r.SubscriptionID,
		RequestID:      r.RequestID,
		SerialNumber:   r.SerialNumber,
	}
}
