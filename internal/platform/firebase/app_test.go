package firebase

import (
	"context"
	"errors"
	"testing"

	"github.com/janisto/greeting-playground/internal/testutil"
)

func TestInitializeClientsRequiresProjectID(t *testing.T) {
	_, err := InitializeClients(context.Background(), Config{})
	if !errors.Is(err, ErrNoProjectID) {
		t.Fatalf("expected ErrNoProjectID, got %v", err)
	}
}

func TestInitializeClientsEmulator(t *testing.T) {
	testutil.RequireEmulator(t)

	clients, err := InitializeClients(context.Background(), Config{ProjectID: testutil.EmulatorProjectID})
	if err != nil {
		t.Fatalf("InitializeClients failed: %v", err)
	}
	if clients.Auth == nil || clients.Firestore == nil {
		t.Fatalf("expected both clients, got %+v", clients)
	}
	if err := clients.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestCloseNil(t *testing.T) {
	var c *Clients
	if err := c.Close(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := (&Clients{}).Close(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
