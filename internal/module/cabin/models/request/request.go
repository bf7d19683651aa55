package request

type CreateCabin struct {
	Name        string `json:"name" validate:"required"`
	Capacity    int    `json:"capacity" validate:"required,min=1"`
	Description string `json:"description"`
	IsAvailable *bool  `json:"is_available"`
}
