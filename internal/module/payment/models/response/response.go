package response

type Payment struct {
	ID            string  `json:"id"`
	UserID        int64   `json:"user_id"`
	BookingID     string  `json:"booking_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	TransactionID string  `json:"transaction_id,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}
