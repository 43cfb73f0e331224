package greetee

// CreateInput for POST /greetee.
type CreateInput struct {
	Name *string `json:"name" validate:"required,max=200"`
}

// UpdateInput for PATCH /greetee.
type UpdateInput struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=200"`
}
