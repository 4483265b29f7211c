package localcache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"taller_movil/internal/domain/entities"
)

func TestFileDraftCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts", "order_draft.json")
	cache := NewFileDraftCache(path)

	if _, ok, err := cache.Load(); err != nil || ok {
		t.Fatalf("empty slot must load as (ok=false, nil), got ok=%v err=%v", ok, err)
	}

	snap := entities.OrderSnapshot{
		Customer:      &entities.Customer{ID: "c-1", Name: "Ana", Surname: "Gomez", Phone: "600111222"},
		Devices:       []entities.Device{{ID: "d-1", Brand: "Apple", Model: "iPhone 12", Order: 1}},
		ActiveSection: entities.SectionDevices,
		LastSavedAt:   time.Now().UTC().Truncate(time.Second),
	}
	if err := cache.Store(snap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := cache.Load()
	if err != nil || !ok {
		t.Fatalf("expected stored snapshot, ok=%v err=%v", ok, err)
	}
	if got.Customer == nil || got.Customer.ID != "c-1" {
		t.Fatalf("customer lost in round trip: %+v", got.Customer)
	}
	if len(got.Devices) != 1 || got.Devices[0].ID != "d-1" {
		t.Fatalf("devices lost in round trip: %+v", got.Devices)
	}
	if got.ActiveSection != entities.SectionDevices {
		t.Fatalf("expected devices section, got %s", got.ActiveSection)
	}
	if !got.LastSavedAt.Equal(snap.LastSavedAt) {
		t.Fatalf("timestamp drift: %v != %v", got.LastSavedAt, snap.LastSavedAt)
	}
}

func TestFileDraftCacheSingleSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order_draft.json")
	cache := NewFileDraftCache(path)

	first := entities.OrderSnapshot{ActiveSection: entities.SectionCustomer}
	second := entities.OrderSnapshot{ActiveSection: entities.SectionDiagnosis}
	if err := cache.Store(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cache.Store(second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := cache.Load()
	if err != nil || !ok {
		t.Fatalf("expected snapshot, ok=%v err=%v", ok, err)
	}
	if got.ActiveSection != entities.SectionDiagnosis {
		t.Fatalf("slot must hold the latest snapshot only, got %s", got.ActiveSection)
	}

	// No stray temp file after the atomic rename.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestFileDraftCacheClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order_draft.json")
	cache := NewFileDraftCache(path)

	if err := cache.Clear(); err != nil {
		t.Fatalf("clearing an empty slot must succeed: %v", err)
	}

	if err := cache.Store(entities.OrderSnapshot{ActiveSection: entities.SectionCustomer}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cache.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok, err := cache.Load(); err != nil || ok {
		t.Fatalf("slot must be empty after clear, ok=%v err=%v", ok, err)
	}

	if err := cache.Clear(); err != nil {
		t.Fatalf("double clear must succeed: %v", err)
	}
}
