package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/kidquest/internal/models"
)

func setupTestDB(t *testing.T, ctx context.Context) *SQLite {
	t.Helper()
	dir := t.TempDir()
	db, err := Open(ctx, filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func sampleState() models.TrackerState {
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	return models.TrackerState{
		Kids: []models.Kid{{ID: "luna", Name: "Luna", Badges: []string{"Early Bird"}, Points: 45, Streak: 6}},
		Tasks: []models.Task{{
			ID: "task-bed", Title: "Make your bed", Category: models.CategoryMorning,
			Reward: 5, Status: models.StatusTodo, AssignedKidID: "luna", CreatedAt: created,
		}},
	}
}

func TestOpenIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
	again, err := Open(ctx, db.Path())
	if err != nil {
		t.Fatalf("Open second run failed: %v", err)
	}
	if err := again.Close(); err != nil {
		t.Fatalf("second close failed: %v", err)
	}
}

func TestSQLiteGetSet(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if _, found, err := db.Get(ctx, "missing"); err != nil || found {
		t.Fatalf("expected missing key, got found=%v err=%v", found, err)
	}
	if err := db.Set(ctx, "k", []byte("one")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := db.Set(ctx, "k", []byte("two")); err != nil {
		t.Fatalf("Set overwrite failed: %v", err)
	}
	blob, found, err := db.Get(ctx, "k")
	if err != nil || !found {
		t.Fatalf("Get failed: found=%v err=%v", found, err)
	}
	if string(blob) != "two" {
		t.Fatalf("expected overwritten value, got %q", blob)
	}
	var rows int
	if err := db.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM kv").Scan(&rows); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected upsert to keep one row, got %d", rows)
	}
}

func TestSQLiteClosed(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	err := db.Set(ctx, "k", []byte("v"))
	if !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	var opErr *OpError
	if !errors.As(err, &opErr) || opErr.Op != "set" || opErr.Key != "k" {
		t.Fatalf("expected OpError for set, got %#v", err)
	}
}

func TestMemoryCopiesBlobs(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	blob := []byte("abc")
	if err := m.Set(ctx, "k", blob); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	blob[0] = 'z'
	got, found, _ := m.Get(ctx, "k")
	if !found || string(got) != "abc" {
		t.Fatalf("expected stored copy, got %q", got)
	}
}

func TestNopNeverFinds(t *testing.T) {
	ctx := context.Background()
	var n Nop
	if err := n.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, found, err := n.Get(ctx, "k"); found || err != nil {
		t.Fatalf("expected nothing from Nop, got found=%v err=%v", found, err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	want := sampleState()
	if err := SaveState(ctx, db, "tracker", want); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}
	got, ok := LoadState(ctx, db, "tracker")
	if !ok {
		t.Fatalf("expected stored state")
	}
	if len(got.Kids) != 1 || got.Kids[0].Points != 45 {
		t.Fatalf("unexpected kids %+v", got.Kids)
	}
	if len(got.Tasks) != 1 || !got.Tasks[0].CreatedAt.Equal(want.Tasks[0].CreatedAt) {
		t.Fatalf("unexpected tasks %+v", got.Tasks)
	}
}

func TestLoadStateRejectsMalformed(t *testing.T) {
	ctx := context.Background()
	cases := map[string]string{
		"not json":       "{kids:",
		"array root":     `[1,2,3]`,
		"missing tasks":  `{"kids":[]}`,
		"kids object":    `{"kids":{},"tasks":[]}`,
		"tasks null":     `{"kids":[],"tasks":null}`,
		"tasks string":   `{"kids":[],"tasks":"nope"}`,
		"bad task shape": `{"kids":[],"tasks":[{"reward":"ten"}]}`,
		"empty":          ``,
	}
	for name, blob := range cases {
		t.Run(name, func(t *testing.T) {
			m := NewMemory()
			if err := m.Set(ctx, "tracker", []byte(blob)); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if _, ok := LoadState(ctx, m, "tracker"); ok {
				t.Fatalf("expected %q to be rejected", blob)
			}
		})
	}
}

func TestLoadStateAcceptsEmptyCollections(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	if err := m.Set(ctx, "tracker", []byte(` {"kids": [], "tasks": [] } `)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	state, ok := LoadState(ctx, m, "tracker")
	if !ok {
		t.Fatalf("expected empty collections to be valid")
	}
	if len(state.Kids) != 0 || len(state.Tasks) != 0 {
		t.Fatalf("expected empty state, got %+v", state)
	}
}

func TestLoadStateWithoutBackend(t *testing.T) {
	ctx := context.Background()
	if _, ok := LoadState(ctx, nil, "tracker"); ok {
		t.Fatalf("expected no state from nil backend")
	}
	if _, ok := LoadState(ctx, Nop{}, "tracker"); ok {
		t.Fatalf("expected no state from Nop backend")
	}
	if err := SaveState(ctx, nil, "tracker", sampleState()); err != nil {
		t.Fatalf("SaveState with nil backend should be a no-op, got %v", err)
	}
}

type failingBackend struct{ err error }

func (f failingBackend) Get(context.Context, string) ([]byte, bool, error) { return nil, false, f.err }
func (f failingBackend) Set(context.Context, string, []byte) error         { return f.err }

func TestLoadStateSwallowsBackendErrors(t *testing.T) {
	ctx := context.Background()
	b := failingBackend{err: errors.New("disk on fire")}
	if _, ok := LoadState(ctx, b, "tracker"); ok {
		t.Fatalf("expected backend error to read as no state")
	}
	if err := SaveState(ctx, b, "tracker", sampleState()); err == nil {
		t.Fatalf("expected SaveState to surface the write error")
	}
}

func TestEncodeStateWritesArrays(t *testing.T) {
	blob, err := EncodeState(models.TrackerState{})
	if err != nil {
		t.Fatalf("EncodeState failed: %v", err)
	}
	if string(blob) != `{"kids":[],"tasks":[]}` {
		t.Fatalf("unexpected encoding %s", blob)
	}
	if _, err := DecodeState(blob); err != nil {
		t.Fatalf("expected encoded empty state to decode, got %v", err)
	}
}
