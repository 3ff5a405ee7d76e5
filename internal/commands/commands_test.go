package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"taskring/internal/storage"
	"taskring/internal/tasklist"
	"taskring/internal/ui"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return out.String()
}

func TestStatsOnSeedData(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	out := execute(t, "--config", cfgPath, "stats")
	if !strings.HasPrefix(out, "3 total · 2 active · 1 done · 33%\n") {
		t.Fatalf("unexpected stats:\n%s", out)
	}
	if !strings.Contains(out, "[x] Morning run, 5km") {
		t.Fatalf("seed list missing:\n%s", out)
	}
}

func TestStatsFilterAndNoSeed(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	out := execute(t, "--config", cfgPath, "--filter", "active", "stats")
	if strings.Contains(out, "[x]") {
		t.Fatalf("active filter printed a done task:\n%s", out)
	}

	out = execute(t, "--config", cfgPath, "--no-seed", "stats")
	if out != "0 total · 0 active · 0 done · 0%\n" {
		t.Fatalf("unexpected empty stats: %q", out)
	}
}

func TestStatsReadsDatabaseSnapshot(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "tasks.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	err = db.Save(context.Background(), []tasklist.Task{
		{ID: 120, Text: "saved one", Done: true},
		{ID: 110, Text: "saved two", Done: true},
	})
	db.Close()
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	out := execute(t, "--config", filepath.Join(dir, "config.toml"), "--db", dbPath, "stats")
	if !strings.HasPrefix(out, "2 total · 0 active · 2 done · 100%\n") {
		t.Fatalf("unexpected stats:\n%s", out)
	}
}

func TestRootRunsUIWithSaver(t *testing.T) {
	dir := t.TempDir()
	var got ui.Model
	called := false
	orig := runUI
	runUI = func(m ui.Model) error {
		called = true
		got = m
		return nil
	}
	t.Cleanup(func() { runUI = orig })

	execute(t, "--config", filepath.Join(dir, "config.toml"), "--db", filepath.Join(dir, "tasks.db"))
	if !called {
		t.Fatalf("UI was not started")
	}
	if !strings.Contains(got.View(), "3 total") {
		t.Fatalf("UI model not built from seed data:\n%s", got.View())
	}
}

func TestRejectsUnknownFilter(t *testing.T) {
	cmd := New()
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "config.toml"), "--filter", "soon", "stats"})
	cmd.SetOut(&bytes.Buffer{})
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatalf("expected error for unknown filter")
	}
}

func TestVersion(t *testing.T) {
	if out := execute(t, "version"); out != "taskring dev\n" {
		t.Fatalf("version output = %q", out)
	}
}
