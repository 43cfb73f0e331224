package greetee

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("greetee not found")
	ErrAlreadyExists = errors.New("greetee already exists")
)

// Greetee is the name a user has chosen to be greeted by.
type Greetee struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateParams holds the fields for a new greetee.
type CreateParams struct {
	Name string
}

// UpdateParams holds optional fields for a partial update. Nil means unchanged.
type UpdateParams struct {
	Name *string
}

// Service manages greetees keyed by user ID.
// Names are stored exactly as given; no trimming or normalization is applied.
type Service interface {
	Create(ctx context.Context, userID string, params CreateParams) (*Greetee, error)
	Get(ctx context.Context, userID string) (*Greetee, error)
	Update(ctx context.Context, userID string, params UpdateParams) (*Greetee, error)
	Delete(ctx context.Context, userID string) error
}
