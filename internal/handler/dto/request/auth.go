package request

type LoginRequest struct {
	LoginID  string `json:"login_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignupCustomerRequest struct {
	LoginID         string  `json:"login_id" binding:"required,min=4,max=32"`
	Password        string  `json:"password" binding:"required,min=8"`
	Name            string  `json:"name" binding:"required"`
	MainPhone       string  `json:"main_phone" binding:"required"`
	SubPhone        *string `json:"sub_phone,omitempty"`
	StreetAddress   string  `json:"street_address" binding:"required"`
	DetailedAddress *string `json:"detailed_address,omitempty"`
	PostalCode      *string `json:"postal_code,omitempty"`
}
