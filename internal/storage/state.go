package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/akyairhashvil/kidquest/internal/models"
	"github.com/akyairhashvil/kidquest/internal/util"
)

// ErrInvalidState means a blob was readable but not a tracker state.
var ErrInvalidState = errors.New("invalid tracker state")

type rawState struct {
	Kids  json.RawMessage `json:"kids"`
	Tasks json.RawMessage `json:"tasks"`
}

// DecodeState parses blob and checks that kids and tasks are both arrays.
func DecodeState(blob []byte) (models.TrackerState, error) {
	var raw rawState
	if err := json.Unmarshal(blob, &raw); err != nil {
		return models.TrackerState{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if !isArray(raw.Kids) || !isArray(raw.Tasks) {
		return models.TrackerState{}, fmt.Errorf("%w: kids and tasks must be arrays", ErrInvalidState)
	}
	var state models.TrackerState
	if err := json.Unmarshal(raw.Kids, &state.Kids); err != nil {
		return models.TrackerState{}, fmt.Errorf("%w: kids: %v", ErrInvalidState, err)
	}
	if err := json.Unmarshal(raw.Tasks, &state.Tasks); err != nil {
		return models.TrackerState{}, fmt.Errorf("%w: tasks: %v", ErrInvalidState, err)
	}
	return state, nil
}

// EncodeState serializes both collections as one value. Nil collections are
// written as empty arrays so the blob always passes DecodeState.
func EncodeState(state models.TrackerState) ([]byte, error) {
	if state.Kids == nil {
		state.Kids = []models.Kid{}
	}
	if state.Tasks == nil {
		state.Tasks = []models.Task{}
	}
	return json.Marshal(state)
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// LoadState reads the tracker blob stored under key. ok is false when the
// backend is missing, the key is absent, or the blob fails validation; the
// caller falls back to defaults and the reason only reaches the log.
func LoadState(ctx context.Context, backend Backend, key string) (state models.TrackerState, ok bool) {
	if backend == nil {
		return models.TrackerState{}, false
	}
	blob, found, err := backend.Get(ctx, key)
	if err != nil {
		util.LogError("load tracker state", err)
		return models.TrackerState{}, false
	}
	if !found || len(blob) == 0 {
		return models.TrackerState{}, false
	}
	state, err = DecodeState(blob)
	if err != nil {
		util.LogWarn("discarding stored state under %q: %v", key, err)
		return models.TrackerState{}, false
	}
	return state, true
}

// SaveState replaces the blob under key with both collections. A nil backend
// is a no-op.
func SaveState(ctx context.Context, backend Backend, key string, state models.TrackerState) error {
	if backend == nil {
		return nil
	}
	blob, err := EncodeState(state)
	if err != nil {
		return wrapErr("encode", key, err)
	}
	return backend.Set(ctx, key, blob)
}
