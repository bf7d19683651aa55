package request

type CreatePayment struct {
	BookingID string  `json:"booking_id" validate:"required,uuid4"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Currency  string  `json:"currency"`
}

type UpdatePayment struct {
	Status        string `json:"status" validate:"required,oneof=PENDING PAID FAILED REFUNDED"`
	TransactionID string `json:"transaction_id"`
}
