package storage

import (
	"context"
	"path/filepath"
	"testing"

	"taskring/internal/tasklist"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "tasks.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestLoadEmptyDatabase(t *testing.T) {
	s, _ := openTemp(t)
	tasks, saved, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if saved || len(tasks) != 0 {
		t.Fatalf("fresh db: saved=%v tasks=%v", saved, tasks)
	}
}

func TestSaveLoadPreservesOrder(t *testing.T) {
	s, path := openTemp(t)
	ctx := context.Background()
	want := []tasklist.Task{
		{ID: 101, Text: "newest"},
		{ID: 3, Text: "Morning run", Done: true},
		{ID: 1, Text: "oldest"},
	}
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()
	got, saved, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !saved {
		t.Fatalf("expected saved snapshot")
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tasks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("task %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSaveEmptyListIsRemembered(t *testing.T) {
	s, _ := openTemp(t)
	ctx := context.Background()
	if err := s.Save(ctx, []tasklist.Task{{ID: 1, Text: "x"}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := s.Save(ctx, nil); err != nil {
		t.Fatalf("Save(nil) error = %v", err)
	}
	tasks, saved, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !saved || len(tasks) != 0 {
		t.Fatalf("saved=%v tasks=%v, want saved empty list", saved, tasks)
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
