package greetee

import "github.com/janisto/greeting-playground/internal/platform/timeutil"

// Greetee is the stored-name response.
type Greetee struct {
	ID        string        `json:"id"         cbor:"id"         example:"user-123"`
	Name      string        `json:"name"       cbor:"name"       example:"World"`
	CreatedAt timeutil.Time `json:"created_at" cbor:"created_at" example:"2024-01-15T10:30:00.000Z"`
	UpdatedAt timeutil.Time `json:"updated_at" cbor:"updated_at" example:"2024-01-15T10:30:00.000Z"`
}
