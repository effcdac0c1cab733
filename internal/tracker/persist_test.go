package tracker

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/akyairhashvil/kidquest/internal/config"
	"github.com/akyairhashvil/kidquest/internal/models"
	"github.com/akyairhashvil/kidquest/internal/storage"
	"github.com/akyairhashvil/kidquest/internal/util"
)

func TestMain(m *testing.M) {
	util.DiscardLogs()
	m.Run()
}

func newMockStore(t *testing.T) (*Store, *MockBackend) {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)
	backend.EXPECT().Get(gomock.Any(), config.StorageKey).Return(nil, false, nil)
	return New(context.Background(), backend, WithIDSource(counterIDs())), backend
}

func TestPersistOncePerCollectionChange(t *testing.T) {
	ctx := context.Background()
	s, backend := newMockStore(t)

	var writes [][]byte
	backend.EXPECT().Set(gomock.Any(), config.StorageKey, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, blob []byte) error {
			writes = append(writes, blob)
			return nil
		}).Times(3)

	s.Dispatch(ctx, ToggleTask{ID: "task-bed"})
	s.Dispatch(ctx, SetFilter{Filter: models.FilterCompleted})
	draft := s.State().Draft
	draft.Title = "Water the garden"
	s.Dispatch(ctx, UpdateDraft{Draft: draft})
	s.Dispatch(ctx, CreateTask{})
	s.Dispatch(ctx, ToggleTask{ID: "missing"})
	s.Dispatch(ctx, CreateTask{}) // title was reset, rejected
	s.Dispatch(ctx, ToggleTask{ID: "new-1"})

	if len(writes) != 3 {
		t.Fatalf("expected 3 writes, got %d", len(writes))
	}
	last, err := storage.DecodeState(writes[2])
	if err != nil {
		t.Fatalf("last write is not a valid state: %v", err)
	}
	if len(last.Tasks) != 9 || last.Tasks[0].Status != models.StatusDone {
		t.Fatalf("unexpected last write %+v", last.Tasks[0])
	}
}

func TestPersistErrorIsSurfaced(t *testing.T) {
	ctx := context.Background()
	s, backend := newMockStore(t)
	boom := errors.New("disk full")

	gomock.InOrder(
		backend.EXPECT().Set(gomock.Any(), config.StorageKey, gomock.Any()).Return(boom),
		backend.EXPECT().Set(gomock.Any(), config.StorageKey, gomock.Any()).Return(nil),
	)

	if !s.Dispatch(ctx, ToggleTask{ID: "task-bed"}) {
		t.Fatalf("expected toggle to apply despite the failed write")
	}
	if !errors.Is(s.LastPersistError(), boom) {
		t.Fatalf("expected persist error, got %v", s.LastPersistError())
	}
	if kid, _ := s.Kid("luna"); kid.Points != 50 {
		t.Fatalf("in-memory state should keep the change, got %d", kid.Points)
	}

	s.Dispatch(ctx, ToggleTask{ID: "task-bed"})
	if err := s.LastPersistError(); err != nil {
		t.Fatalf("expected error cleared after a good write, got %v", err)
	}
}

func TestLoadErrorFallsBackToDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)
	backend.EXPECT().Get(gomock.Any(), config.StorageKey).Return(nil, false, storage.ErrUnavailable)

	s := New(context.Background(), backend)
	if s.Restored() || len(s.State().Tasks) != 8 {
		t.Fatalf("expected defaults after a read error")
	}
}

func TestCustomStorageKey(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)
	backend.EXPECT().Get(gomock.Any(), "other").Return(nil, false, nil)
	backend.EXPECT().Set(gomock.Any(), "other", gomock.Any()).Return(nil)

	s := New(ctx, backend, WithStorageKey("other"))
	s.Dispatch(ctx, ToggleTask{ID: "task-art"})
}
