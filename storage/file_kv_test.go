package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileKV_GetAbsent(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("new file kv: %v", err)
	}

	_, ok, err := kv.Get(context.Background(), "products")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected absent key")
	}
}

func TestFileKV_RoundTrip(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("new file kv: %v", err)
	}
	ctx := context.Background()

	value := "[{\"id\":\"1\"}]\nwith a second line"
	if err := kv.Set(ctx, "products", value); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, ok, err := kv.Get(ctx, "products")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected key to exist")
	}
	if got != value {
		t.Errorf("expected %q, got %q", value, got)
	}
}

func TestFileKV_Overwrite(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("new file kv: %v", err)
	}
	ctx := context.Background()

	if err := kv.Set(ctx, "siteName", "first"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := kv.Set(ctx, "siteName", "second"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, _, err := kv.Get(ctx, "siteName")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != "second" {
		t.Errorf("expected second, got %q", got)
	}
}

func TestFileKV_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	kv, err := NewFileKV(dir)
	if err != nil {
		t.Fatalf("new file kv: %v", err)
	}
	if err := kv.Set(ctx, "logoRef", "https://cdn.example/logo.png"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	reopened, err := NewFileKV(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	got, ok, err := reopened.Get(ctx, "logoRef")
	if err != nil || !ok {
		t.Fatalf("expected value after reopen, ok=%v err=%v", ok, err)
	}
	if got != "https://cdn.example/logo.png" {
		t.Errorf("unexpected value %q", got)
	}
}

func TestFileKV_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	if err != nil {
		t.Fatalf("new file kv: %v", err)
	}
	if err := kv.Set(context.Background(), "orders", "[]"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp-*"))
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected no temp files, found %v", matches)
	}
	if _, err := os.Stat(filepath.Join(dir, "orders")); err != nil {
		t.Errorf("expected orders file: %v", err)
	}
}
