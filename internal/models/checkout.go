package models

type CheckoutRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type CheckoutResponse struct {
	Cart            *Cart   `json:"cart"`
	PaymentIntentID string  `json:"payment_intent_id"`
	ClientSecret    string  `json:"client_secret"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Message         string  `json:"message"`
}
