package response

import "github.com/google/uuid"

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	PrincipalID uuid.UUID `json:"principal_id"`
	Role        string    `json:"role"`
}

type SignupResponse struct {
	CustomerID uuid.UUID `json:"customer_id"`
}

type LoginIDCheckResponse struct {
	LoginID   string `json:"login_id"`
	Available bool   `json:"available"`
}
