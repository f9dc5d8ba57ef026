package response

import (
	"time"

	"hass-backend/internal/usecase/commands"
	"hass-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestResponse struct {
	ID             uuid.UUID  `json:"id"`
	Type           string     `json:"type"`
	Status         string     `json:"status"`
	Comment        *string    `json:"comment,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	EditedAt       *time.Time `json:"edited_at,omitempty"`
	SubscriptionID uuid.UUID  `json:"subscription_id"`
}

func FromRequestView(v *queries.RequestView) *RequestResponse {
	return &RequestResponse{
		ID:             v.ID,
		Type:           v.Type,
		Status:         v.Status,
		Comment:        v.Comment,
		CreatedAt:      v.CreatedAt,
		EditedAt:       v.EditedAt,
		SubscriptionID: v.SubscriptionID,
	}
}

func FromRequestViews(views []*queries.RequestView) []*RequestResponse {
	out := make([]*RequestResponse, len(views))
	for i, v := range views {
		out[i] = FromRequestView(v)
	}
	return out
}

// VisitDateResponse carries either the committed visit date or the still-open
// preference dates, never both.
type VisitDateResponse struct {
	Kind      string      `json:"kind"`
	Scheduled *time.Time  `json:"scheduled,omitempty"`
	Preferred []time.Time `json:"preferred,omitempty"`
}

type CustomerRequestResponse struct {
	RequestResponse
	VisitDate VisitDateResponse `json:"visit_date"`
}

func FromCustomerRequestViews(views []*queries.CustomerRequestView) []*CustomerRequestResponse {
	out := make([]*CustomerRequestResponse, len(views))
	for i, v := range views {
		out[i] = &CustomerRequestResponse{
			RequestResponse: *FromRequestView(&v.RequestView),
			VisitDate: VisitDateResponse{
				Kind:      string(v.VisitDate.Kind),
				Scheduled: v.VisitDate.Scheduled,
				Preferred: v.VisitDate.Preferred,
			},
		}
	}
	return out
}

type CreateRequestResponse struct {
	RequestID uuid.UUID `json:"request_id"`
}

type PreferenceDateResponse struct {
	ID          uuid.UUID `json:"id"`
	PreferredAt time.Time `json:"preferred_at"`
}

func FromPreferenceDateViews(views []*queries.PreferenceDateView) []*PreferenceDateResponse {
	out := make([]*PreferenceDateResponse, len(views))
	for i, v := range views {
		out[i] = &PreferenceDateResponse{ID: v.ID, PreferredAt: v.PreferredAt}
	}
	return out
}

type VisitResponse struct {
	ID        uuid.UUID `json:"id"`
	VisitAt   time.Time `json:"visit_at"`
	CreatedAt time.Time `json:"created_at"`
	WorkerID  uuid.UUID `json:"worker_id"`
	RequestID uuid.UUID `json:"request_id"`
}

func FromVisitView(v *queries.VisitView) *VisitResponse {
	return &VisitResponse{
		ID:        v.ID,
		VisitAt:   v.VisitAt,
		CreatedAt: v.CreatedAt,
		WorkerID:  v.WorkerID,
		RequestID: v.RequestID,
	}
}

type AcceptResponse struct {
	VisitID   uuid.UUID `json:"visit_id"`
	VisitDate time.Time `json:"visit_date"`
}

func FromAcceptResult(r *commands.AcceptResult) *AcceptResponse {
	return &AcceptResponse{VisitID: r.VisitID, VisitDate: r.VisitDate}
}

type RequestCountsResponse struct {
	Pending   int64 `json:"pending"`
	Scheduled int64 `json:"scheduled"`
}

type WorkerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	Phone     string    `json:"phone"`
}

func FromWorkerViews(views []*queries.WorkerView) []*WorkerResponse {
	out := make([]*WorkerResponse, len(views))
	for i, v := range views {
		out[i] = &WorkerResponse{ID: v.ID, Name: v.Name, Specialty: v.Specialty, Phone: v.Phone}
	}
	return out
}
