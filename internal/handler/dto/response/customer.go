package response

import (
	"hass-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MainPhone       string    `json:"main_phone"`
	SubPhone        *string   `json:"sub_phone,omitempty"`
	StreetAddress   string    `json:"street_address"`
	DetailedAddress *string   `json:"detailed_address,omitempty"`
}

func FromCustomerViews(views []*queries.CustomerView) []*CustomerResponse {
	out := make([]*CustomerResponse, len(views))
	for i, v := range views {
		out[i] = &CustomerResponse{
			ID:              v.ID,
			Name:            v.Name,
			MainPhone:       v.MainPhone,
			SubPhone:        v.SubPhone,
			StreetAddress:   v.StreetAddress,
			DetailedAddress: v.DetailedAddress,
		}
	}
	return out
}
