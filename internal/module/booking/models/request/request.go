package request

type CreateBooking struct {
	CabinID   string `json:"cabin_id" validate:"required,uuid4"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Notes     string `json:"notes"`
}

type UpdateBooking struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Notes     *string `json:"notes"`
	Status    *string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
}

type PaymentPaid struct {
	PaymentID string `json:"payment_id" validate:"required"`
	BookingID string `json:"booking_id" validate:"required"`
}

type BookingCompleted struct {
	BookingID string `json:"booking_id" validate:"required"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}
