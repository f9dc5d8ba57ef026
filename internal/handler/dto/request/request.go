package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateRepairRequest struct {
	SubscriptionID uuid.UUID   `json:"subscription_id" binding:"required"`
	Comment        *string     `json:"comment,omitempty"`
	PreferredDates []time.Time `json:"preferred_dates" binding:"required,min=1,dive,required"`
}

type AcceptRequestRequest struct {
	// VisitDate overrides the customer's preferences; when omitted the
	// earliest preference date is used.
	VisitDate *time.Time `json:"visit_date,omitempty"`
}

type CompleteVisitRequest struct {
	// Repair completions must describe what was wrong and what was done.
	ProblemDetail  *string `json:"problem_detail,omitempty"`
	SolutionDetail *string `json:"solution_detail,omitempty"`
}
