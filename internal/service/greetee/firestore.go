package greetee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	applog "github.com/janisto/greeting-playground/internal/platform/logging"
)

const greeteesCollection = "greetees"

// document is the Firestore representation of a Greetee.
type document struct {
	Name      string    `firestore:"name"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

func (d document) toGreetee(id string) *Greetee {
	return &Greetee{
		ID:        id,
		Name:      d.Name,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// FirestoreStore implements Service on Cloud Firestore.
// Each greetee is a document in the "greetees" collection keyed by user ID.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a Firestore-backed greetee store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) doc(userID string) *firestore.DocumentRef {
	return s.client.Collection(greeteesCollection).Doc(userID)
}

func (s *FirestoreStore) Create(ctx context.Context, userID string, params CreateParams) (*Greetee, error) {
	now := time.Now().UTC()
	d := document{Name: params.Name, CreatedAt: now, UpdatedAt: now}

	if _, err := s.doc(userID).Create(ctx, d); err != nil {
		return nil, s.fail(ctx, "create", userID, mapError(err))
	}
	return d.toGreetee(userID), nil
}

func (s *FirestoreStore) Get(ctx context.Context, userID string) (*Greetee, error) {
	snap, err := s.doc(userID).Get(ctx)
	if err != nil {
		return nil, s.fail(ctx, "get", userID, mapError(err))
	}

	var d document
	if err := snap.DataTo(&d); err != nil {
		return nil, s.fail(ctx, "get", userID, fmt.Errorf("decode greetee: %w", err))
	}
	return d.toGreetee(userID), nil
}

func (s *FirestoreStore) Update(ctx context.Context, userID string, params UpdateParams) (*Greetee, error) {
	ref := s.doc(userID)
	var updated document

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return err
		}
		if err := snap.DataTo(&updated); err != nil {
			return fmt.Errorf("decode greetee: %w", err)
		}

		if params.Name != nil {
			updated.Name = *params.Name
		}
		updated.UpdatedAt = time.Now().UTC()

		return tx.Set(ref, updated)
	})
	if err != nil {
		return nil, s.fail(ctx, "update", userID, mapError(err))
	}
	return updated.toGreetee(userID), nil
}

func (s *FirestoreStore) Delete(ctx context.Context, userID string) error {
	if _, err := s.doc(userID).Delete(ctx, firestore.Exists); err != nil {
		return s.fail(ctx, "delete", userID, mapError(err))
	}
	return nil
}

// fail logs a store failure with a safe category and returns err unchanged.
func (s *FirestoreStore) fail(ctx context.Context, op, userID string, err error) error {
	category := categorizeError(err)
	if category == "internal_error" {
		applog.LogError(ctx, "greetee store failed", err,
			slog.String("op", op),
			slog.String("userId", userID))
	} else {
		applog.LogInfo(ctx, "greetee store rejected",
			slog.String("op", op),
			slog.String("userId", userID),
			slog.String("reason", category))
	}
	return err
}

// mapError translates Firestore gRPC status codes into service sentinels.
func mapError(err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	default:
		return err
	}
}

func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal_error"
	}
}

var _ Service = (*FirestoreStore)(nil)
