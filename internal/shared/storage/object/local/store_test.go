package local

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"strings"
	"testing"
)

func TestSaveOpenRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	n, err := store.Save(ctx, "resume.json", "application/json", strings.NewReader(`{"name":"A"}`))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if n != int64(len(`{"name":"A"}`)) {
		t.Fatalf("unexpected size %d", n)
	}

	rc, err := store.Open(ctx, "resume.json")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != `{"name":"A"}` {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestSaveOverwritesWholesale(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	if _, err := store.Save(ctx, "resume.pdf", "application/pdf", strings.NewReader("first version, longer")); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := store.Save(ctx, "resume.pdf", "application/pdf", strings.NewReader("second")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	rc, err := store.Open(ctx, "resume.pdf")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "second" {
		t.Fatalf("expected overwrite, got %q", data)
	}
}

func TestOpenMissingObject(t *testing.T) {
	store := New(t.TempDir())

	_, err := store.Open(context.Background(), "missing.json")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestExists(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	ok, err := store.Exists(ctx, "resume.pdf")
	if err != nil || ok {
		t.Fatalf("expected not exists, got ok=%v err=%v", ok, err)
	}
	if _, err := store.Save(ctx, "resume.pdf", "application/pdf", strings.NewReader("x")); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	ok, err = store.Exists(ctx, "resume.pdf")
	if err != nil || !ok {
		t.Fatalf("expected exists, got ok=%v err=%v", ok, err)
	}
}

func TestRejectsTraversalKeys(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	if _, err := store.Open(ctx, "../outside.json"); err == nil {
		t.Fatalf("expected error for traversal key")
	}
	if _, err := store.Save(ctx, "/abs/path.json", "", strings.NewReader("x")); err == nil {
		t.Fatalf("expected error for absolute key")
	}
}
