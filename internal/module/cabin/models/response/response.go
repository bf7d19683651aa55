package response

type Cabin struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description,omitempty"`
	IsAvailable bool   `json:"is_available"`
	CreatedAt   string `json:"created_at"`
}
