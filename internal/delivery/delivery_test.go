package delivery_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/youruser/fortunecard/internal/delivery"
)

func TestSave_DeterministicFilename(t *testing.T) {
	dir := t.TempDir()
	path, err := delivery.Save(dir, []byte("png-bytes"), "2024-02-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "card-2024-02-10.png" {
		t.Errorf("filename: got %q", filepath.Base(path))
	}
	got, err := os.ReadFile(path)
	if err != nil || string(got) != "png-bytes" {
		t.Errorf("content round trip failed: %q, %v", got, err)
	}
}

func TestSave_OverwritesPreviousExport(t *testing.T) {
	dir := t.TempDir()
	if _, err := delivery.Save(dir, []byte("first"), "2024-02-10"); err != nil {
		t.Fatal(err)
	}
	path, err := delivery.Save(dir, []byte("second"), "2024-02-10")
	if err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "second" {
		t.Errorf("expected overwrite, got %q", got)
	}
}

func TestSave_NoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	if _, err := delivery.Save(dir, []byte("x"), "2024-02-10"); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file leaked: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly one file, got %d", len(entries))
	}
}

func TestCounter_MissingFileIsZero(t *testing.T) {
	c := delivery.Counter{Path: filepath.Join(t.TempDir(), "count")}
	if got := c.Load(); got != 0 {
		t.Errorf("got %d", got)
	}
}

func TestCounter_IncrementPersists(t *testing.T) {
	c := delivery.Counter{Path: filepath.Join(t.TempDir(), "count")}
	for want := 1; want <= 3; want++ {
		got, err := c.Increment()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("increment %d: got %d", want, got)
		}
	}
	if got := c.Load(); got != 3 {
		t.Errorf("reload: got %d", got)
	}
}

func TestCounter_GarbageFileIsZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "count")
	if err := os.WriteFile(path, []byte("not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := delivery.Counter{Path: path}
	if got := c.Load(); got != 0 {
		t.Errorf("got %d", got)
	}
	if got, err := c.Increment(); err != nil || got != 1 {
		t.Errorf("increment after garbage: %d, %v", got, err)
	}
}
