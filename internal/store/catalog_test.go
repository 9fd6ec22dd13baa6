package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/krakozavr/Inventory/internal/catalog"
	"github.com/krakozavr/Inventory/internal/testutil"
)

func TestSaveLoadCatalog_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	want := testutil.Catalog(12)
	want[3].Colors = []string{"Black & White"}
	want[4].Sizes = nil

	if err := s.SaveCatalog(ctx, want, "catalog.yaml"); err != nil {
		t.Fatalf("SaveCatalog() failed: %v", err)
	}

	got, err := s.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog() failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("LoadCatalog() returned %d records, want %d", len(got), len(want))
	}

	for i := range want {
		for _, col := range catalog.Columns() {
			if g, w := col.Text(got[i]), col.Text(want[i]); g != w {
				t.Errorf("record %d %s = %q, want %q", i, col, g, w)
			}
		}
	}
	if len(got[4].Sizes) != 0 || got[4].Sizes == nil {
		t.Errorf("nil sizes should load as empty list, got %#v", got[4].Sizes)
	}
}

func TestSaveCatalog_PreservesOrder(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	records := []catalog.Record{
		testutil.Record("ZZ"),
		testutil.Record("AA"),
		testutil.Record("MM"),
	}
	if err := s.SaveCatalog(ctx, records, ""); err != nil {
		t.Fatalf("SaveCatalog() failed: %v", err)
	}

	got, err := s.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog() failed: %v", err)
	}
	for i, sku := range []string{"ZZ", "AA", "MM"} {
		if got[i].SKU != sku {
			t.Errorf("position %d = %s, want %s", i, got[i].SKU, sku)
		}
	}
}

func TestSaveCatalog_Replaces(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if err := s.SaveCatalog(ctx, testutil.Catalog(10), "first.yaml"); err != nil {
		t.Fatalf("first SaveCatalog() failed: %v", err)
	}
	if err := s.SaveCatalog(ctx, testutil.Catalog(3), "second.yaml"); err != nil {
		t.Fatalf("second SaveCatalog() failed: %v", err)
	}

	info, err := s.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot() failed: %v", err)
	}
	if info.RecordCount != 3 || info.Source != "second.yaml" || info.SchemaVersion != 1 {
		t.Errorf("Snapshot() = %+v", info)
	}
}

func TestSaveCatalog_DuplicateSKURollsBack(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if err := s.SaveCatalog(ctx, testutil.Catalog(2), "good.yaml"); err != nil {
		t.Fatalf("SaveCatalog() failed: %v", err)
	}

	dup := []catalog.Record{testutil.Record("X"), testutil.Record("X")}
	if err := s.SaveCatalog(ctx, dup, "bad.yaml"); err == nil {
		t.Fatal("expected error for duplicate sku, got nil")
	}

	got, err := s.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog() failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("failed save should keep previous snapshot, got %d records", len(got))
	}
}

func TestLoadCatalog_Empty(t *testing.T) {
	s := createTestStore(t)

	got, err := s.LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("LoadCatalog() failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("LoadCatalog() on empty store = %#v, want empty slice", got)
	}

	info, err := s.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() failed: %v", err)
	}
	if info.RecordCount != 0 || info.Source != "" {
		t.Errorf("Snapshot() on empty store = %+v", info)
	}
}

func TestSnapshot_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.db")
	ctx := context.Background()

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := s1.SaveCatalog(ctx, testutil.Catalog(4), "cat.yaml"); err != nil {
		t.Fatalf("SaveCatalog() failed: %v", err)
	}
	s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	got, err := s2.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog() failed: %v", err)
	}
	if len(got) != 4 {
		t.Errorf("LoadCatalog() after reopen returned %d records, want 4", len(got))
	}
}
