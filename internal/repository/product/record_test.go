package product

import (
	"testing"
	"time"

	"github.com/hamzzakaya/nano-envanter/internal/domain"
)

func TestNewRecord_DefaultsCreatedAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := newRecord(domain.ProductPatch{Name: "Widget", Code: "W-1", Count: 10}, time.Time{}, now)
	if !rec.CreatedAt.Equal(now) {
		t.Fatalf("expected created_at defaulted to now, got %v", rec.CreatedAt)
	}
	if !rec.UpdatedAt.Equal(now) {
		t.Fatalf("expected updated_at stamped with now, got %v", rec.UpdatedAt)
	}
}

func TestNewRecord_KeepsGivenCreatedAt(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := newRecord(domain.ProductPatch{Name: "Widget", Code: "W-1", Count: 10}, created, now)
	if !rec.CreatedAt.Equal(created) {
		t.Fatalf("expected created_at kept, got %v", rec.CreatedAt)
	}
	if !rec.UpdatedAt.Equal(now) {
		t.Fatalf("expected updated_at refreshed, got %v", rec.UpdatedAt)
	}
}

func TestTransfer_MapsKeyToID(t *testing.T) {
	rec := record{Key: "abc-123", Name: "Widget", Code: "W-1", Count: 3, Description: "spare"}
	p, err := rec.transfer()
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if p.ID != "abc-123" || p.Name != "Widget" || p.Code != "W-1" || p.Count != 3 || p.Description != "spare" {
		t.Fatalf("unexpected product %+v", p)
	}
}

func TestTransfer_RejectsMissingKey(t *testing.T) {
	if _, err := (record{Name: "Widget"}).transfer(); err == nil {
		t.Fatal("expected error for record without primary key")
	}
}

func TestValidID(t *testing.T) {
	if err := validID("0b474de2-4d63-4f7a-9a4a-6a9f54f0a001"); err != nil {
		t.Fatalf("expected valid uuid accepted: %v", err)
	}
	if err := validID("not-a-uuid"); err != domain.ErrInvalidID {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}
