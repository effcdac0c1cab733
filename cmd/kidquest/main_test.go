package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/kidquest/internal/config"
	"github.com/akyairhashvil/kidquest/internal/models"
	"github.com/akyairhashvil/kidquest/internal/storage"
	"github.com/akyairhashvil/kidquest/internal/tracker"
	"github.com/akyairhashvil/kidquest/internal/util"
)

func TestMain(m *testing.M) {
	util.DiscardLogs()
	m.Run()
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := writeSummary(&buf, tracker.New(context.Background(), nil)); err != nil {
		t.Fatalf("writeSummary failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Missions: 2 of 8 complete (25%), 6 left",
		"Points bank: 135 pts",
		"1. Nova  Level 3  52 pts  8 day streak",
		"3. Milo",
		"- Make your bed · Luna · Before school +5 pts",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected summary to contain %q:\n%s", want, out)
		}
	}
}

func TestWriteSummaryAllDone(t *testing.T) {
	ctx := context.Background()
	store := tracker.New(ctx, nil)
	store.Dispatch(ctx, tracker.RestoreState{State: models.TrackerState{}})
	var buf bytes.Buffer
	if err := writeSummary(&buf, store); err != nil {
		t.Fatalf("writeSummary failed: %v", err)
	}
	if !strings.Contains(buf.String(), "time for a dance party!") {
		t.Fatalf("expected celebration line:\n%s", buf.String())
	}
}

func TestOpenBackendModes(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	backend, closeFn := openBackend(ctx, &config.Config{DataDir: dir, Storage: config.StorageOff}, &bytes.Buffer{})
	if _, ok := backend.(storage.Nop); !ok {
		t.Fatalf("expected Nop backend, got %T", backend)
	}
	closeFn()

	backend, closeFn = openBackend(ctx, &config.Config{DataDir: dir, Storage: config.StorageMemory}, &bytes.Buffer{})
	if _, ok := backend.(*storage.Memory); !ok {
		t.Fatalf("expected Memory backend, got %T", backend)
	}
	closeFn()

	cfg := &config.Config{DataDir: dir, Storage: config.StorageSQLite}
	backend, closeFn = openBackend(ctx, cfg, &bytes.Buffer{})
	if _, ok := backend.(*storage.SQLite); !ok {
		t.Fatalf("expected SQLite backend, got %T", backend)
	}
	closeFn()
	if _, err := os.Stat(cfg.DBPath()); err != nil {
		t.Fatalf("expected database file: %v", err)
	}
}

func TestOpenBackendFallsBackToMemory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	var warn bytes.Buffer
	backend, closeFn := openBackend(context.Background(), &config.Config{DataDir: blocker, Storage: config.StorageSQLite}, &warn)
	defer closeFn()
	if _, ok := backend.(*storage.Memory); !ok {
		t.Fatalf("expected memory fallback, got %T", backend)
	}
	if !strings.Contains(warn.String(), "will not be saved") {
		t.Fatalf("expected a warning, got %q", warn.String())
	}
}

func TestResolveBackupKey(t *testing.T) {
	noPrompt := func(string) (string, error) {
		t.Fatalf("prompt should not be called")
		return "", nil
	}
	if key, _ := resolveBackupKey(&config.Config{BackupKey: "FromEnv1"}, noPrompt, &bytes.Buffer{}); key != "FromEnv1" {
		t.Fatalf("expected configured key, got %q", key)
	}
	if key, _ := resolveBackupKey(&config.Config{}, noPrompt, &bytes.Buffer{}); key != "" {
		t.Fatalf("expected no key without prompting, got %q", key)
	}

	answers := []string{"weak", "Sunny123"}
	prompt := func(string) (string, error) {
		next := answers[0]
		answers = answers[1:]
		return next, nil
	}
	var out bytes.Buffer
	key, err := resolveBackupKey(&config.Config{PromptBackup: true}, prompt, &out)
	if err != nil || key != "Sunny123" {
		t.Fatalf("expected prompted key, got %q, %v", key, err)
	}
	if !strings.Contains(out.String(), "Passphrase too weak") {
		t.Fatalf("expected weak passphrase notice")
	}
}

func TestResolveBackupKeyGivesUp(t *testing.T) {
	calls := 0
	prompt := func(string) (string, error) {
		calls++
		return "short", nil
	}
	key, err := resolveBackupKey(&config.Config{PromptBackup: true}, prompt, &bytes.Buffer{})
	if err != nil || key != "" || calls != maxPassphraseTries {
		t.Fatalf("expected to give up after %d tries, got %q %v %d", maxPassphraseTries, key, err, calls)
	}

	boom := errors.New("no tty")
	_, err = resolveBackupKey(&config.Config{PromptBackup: true}, func(string) (string, error) { return "", boom }, &bytes.Buffer{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected prompt error, got %v", err)
	}
}
