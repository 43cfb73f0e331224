package testutil

import (
	"context"
	"net"
	"os"
	"testing"
	"time"
)

// EmulatorProjectID is the project ID the Firebase emulators run under.
const EmulatorProjectID = "demo-test-project"

// RequireEmulator skips the test unless FIRESTORE_EMULATOR_HOST points at a
// reachable Firestore emulator.
func RequireEmulator(t *testing.T) {
	t.Helper()
	requireHost(t, "FIRESTORE_EMULATOR_HOST")
}

// RequireAuthEmulator skips the test unless FIREBASE_AUTH_EMULATOR_HOST
// points at a reachable Auth emulator, and returns its host:port.
func RequireAuthEmulator(t *testing.T) string {
	t.Helper()
	return requireHost(t, "FIREBASE_AUTH_EMULATOR_HOST")
}

func requireHost(t *testing.T, env string) string {
	t.Helper()

	host := os.Getenv(env)
	if host == "" {
		t.Skipf("%s not set; skipping emulator test", env)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", host)
	if err != nil {
		t.Skipf("emulator not reachable at %s (%s): %v", host, env, err)
	}
	_ = conn.Close()
	return host
}
