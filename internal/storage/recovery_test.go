package storage_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"packmule/internal/storage"
	"packmule/internal/storage/sqlite"
)

func manager(t *testing.T, dbPath string, opens *int) *storage.RecoveryManager {
	t.Helper()
	return &storage.RecoveryManager{
		Open: func() (storage.Store, error) {
			*opens++
			return sqlite.New(dbPath)
		},
		Destroy:  func() error { return sqlite.Destroy(dbPath) },
		Attempts: 3,
		Backoff:  time.Millisecond,
	}
}

func TestOpenWithRecovery_HealthyStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "healthy.db")
	opens := 0

	store, recovered, err := manager(t, dbPath, &opens).OpenWithRecovery(context.Background())
	if err != nil {
		t.Fatalf("OpenWithRecovery failed: %v", err)
	}
	defer store.Close()

	if recovered {
		t.Error("Expected no recovery for a healthy store")
	}
	if opens != 1 {
		t.Errorf("Expected 1 open attempt, got %d", opens)
	}
}

func TestOpenWithRecovery_CorruptStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "corrupt.db")
	if err := os.WriteFile(dbPath, []byte("garbage, not a database"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}
	opens := 0

	store, recovered, err := manager(t, dbPath, &opens).OpenWithRecovery(context.Background())
	if err != nil {
		t.Fatalf("OpenWithRecovery failed: %v", err)
	}
	defer store.Close()

	if !recovered {
		t.Error("Expected recovered flag after delete-and-recreate")
	}
	// 3 failed attempts plus exactly one fresh open after deletion.
	if opens != 4 {
		t.Errorf("Expected 4 open attempts, got %d", opens)
	}

	// Every partition reads empty, not an error.
	ctx := context.Background()
	trips, err := store.ListTrips(ctx)
	if err != nil {
		t.Fatalf("ListTrips failed after recovery: %v", err)
	}
	if len(trips) != 0 {
		t.Errorf("Expected empty trips partition, got %d", len(trips))
	}
	packing, err := store.GetPackingList(ctx, "any")
	if err != nil {
		t.Fatalf("GetPackingList failed after recovery: %v", err)
	}
	if len(packing) != 0 {
		t.Errorf("Expected empty packing partition, got %d", len(packing))
	}
	gear, err := store.ListGear(ctx, "")
	if err != nil {
		t.Fatalf("ListGear failed after recovery: %v", err)
	}
	if len(gear) != 0 {
		t.Errorf("Expected empty gear partition, got %d", len(gear))
	}
}

func TestOpenWithRecovery_RecoveryItselfFails(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "corrupt.db")
	if err := os.WriteFile(dbPath, []byte("garbage, not a database"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	opens := 0
	m := manager(t, dbPath, &opens)
	m.Destroy = func() error { return errors.New("disk on fire") }

	_, _, err := m.OpenWithRecovery(context.Background())
	if err == nil {
		t.Fatal("Expected fatal error when recovery delete fails")
	}
	if !errors.Is(err, storage.ErrOpenFailed) {
		t.Errorf("Expected ErrOpenFailed, got %v", err)
	}
}
