package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

const tuiStateFileName = "tui_state.json"

// TUIState restores the last screen on relaunch. Best effort: callers must
// tolerate missing or invalid data.
type TUIState struct {
	Version int `json:"version"`

	// View is one of: dashboard|detail|analytics
	View string `json:"view,omitempty"`

	// SelectedProjectID is set when View == "detail". A stale id (project no
	// longer in the collection) is cleared silently on restore.
	SelectedProjectID string `json:"selectedProjectId,omitempty"`

	FilterTag      string `json:"filterTag,omitempty"`
	FilterStatus   string `json:"filterStatus,omitempty"`
	FilterFunction string `json:"filterFunction,omitempty"`

	Page int `json:"page,omitempty"`
}

func tuiStatePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, tuiStateFileName), nil
}

func LoadTUIState() (*TUIState, error) {
	path, err := tuiStatePath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &TUIState{Version: 1}, nil
		}
		return nil, err
	}
	var st TUIState
	if err := json.Unmarshal(b, &st); err != nil {
		// Corrupt state is discarded, not surfaced.
		return &TUIState{Version: 1}, nil
	}
	if st.Version == 0 {
		st.Version = 1
	}
	return &st, nil
}

func SaveTUIState(st *TUIState) error {
	path, err := tuiStatePath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if st.Version == 0 {
		st.Version = 1
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(dir, tuiStateFileName+".*.tmp", path, b, 0o644)
}
