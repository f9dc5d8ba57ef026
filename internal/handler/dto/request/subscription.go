package request

import (
	"time"

	"github.com/google/uuid"
)

type SubscribeRequest struct {
	ModelID        uuid.UUID   `json:"model_id" binding:"required"`
	TermYears      int         `json:"term_years" binding:"required,min=1"`
	Comment        *string     `json:"comment,omitempty"`
	PreferredDates []time.Time `json:"preferred_dates" binding:"required,min=1,dive,required"`
}

type ExtendSubscriptionRequest struct {
	AddYears int `json:"add_years" binding:"required"`
}

type CreateReturnRequest struct {
	Comment        *string     `json:"comment,omitempty"`
	PreferredDates []time.Time `json:"preferred_dates" binding:"required,min=1,dive,required"`
}
