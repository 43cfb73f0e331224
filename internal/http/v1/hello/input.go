package hello

// GetInput is the query for rendering a greeting.
// Name is a pointer so a missing parameter is rejected while an empty one is accepted.
type GetInput struct {
	Name *string `query:"name" validate:"required"`
}

// CreateInput is the request body for creating a greeting.
type CreateInput struct {
	Name *string `json:"name" validate:"required"`
}
