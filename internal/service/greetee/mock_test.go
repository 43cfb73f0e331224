package greetee

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMockStore_CreateKeepsNameVerbatim(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	g, err := store.Create(ctx, "user-1", CreateParams{Name: "  <b>Ada</b>  "})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if g.Name != "  <b>Ada</b>  " {
		t.Fatalf("expected verbatim name, got %q", g.Name)
	}
	if g.CreatedAt.IsZero() || !g.CreatedAt.Equal(g.UpdatedAt) {
		t.Fatal("expected matching non-zero timestamps on create")
	}
}

func TestMockStore_CreateDuplicate(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	if _, err := store.Create(ctx, "user-1", CreateParams{Name: "Ada"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	_, err := store.Create(ctx, "user-1", CreateParams{Name: "Ada"})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestMockStore_Update(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	if _, err := store.Create(ctx, "user-1", CreateParams{Name: "Ada"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newName := ""
	updated, err := store.Update(ctx, "user-1", UpdateParams{Name: &newName})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "" {
		t.Fatalf("expected empty name, got %q", updated.Name)
	}
}

func TestMockStore_UpdateNilLeavesName(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	if _, err := store.Create(ctx, "user-1", CreateParams{Name: "Ada"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	updated, err := store.Update(ctx, "user-1", UpdateParams{})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Ada" {
		t.Fatalf("expected name Ada, got %q", updated.Name)
	}
}

func TestMockStore_ReturnsCopies(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	created, err := store.Create(ctx, "user-1", CreateParams{Name: "Ada"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	created.Name = "mutated"

	got, err := store.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Ada" {
		t.Fatalf("expected stored name Ada, got %q", got.Name)
	}
}

func TestMockStore_NotFound(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound from Get, got %v", err)
	}
	name := "x"
	if _, err := store.Update(ctx, "missing", UpdateParams{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound from Update, got %v", err)
	}
	if err := store.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound from Delete, got %v", err)
	}
}

func TestMockStore_Delete(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	if _, err := store.Create(ctx, "user-1", CreateParams{Name: "Ada"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := store.Delete(ctx, "user-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		code codes.Code
		want error
	}{
		{"not found", codes.NotFound, ErrNotFound},
		{"already exists", codes.AlreadyExists, ErrAlreadyExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapError(status.Error(tt.code, "boom"))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestMapError_PassesThroughOtherCodes(t *testing.T) {
	src := status.Error(codes.Unavailable, "down")
	err := mapError(src)
	if err != src {
		t.Fatalf("expected error unchanged, got %v", err)
	}
	if categorizeError(err) != "internal_error" {
		t.Fatalf("expected internal_error category, got %q", categorizeError(err))
	}
}
