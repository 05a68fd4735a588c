package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
)

func init() {
	Register("json", func(location string) (Store, error) {
		s, err := OpenJSON(location)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}

// JSONStore keeps scores in a single local JSON document.
// The whole document is rewritten on every save.
type JSONStore struct {
	filePath string
	mutex    sync.RWMutex
	data     *jsonData
}

// jsonData is the on-disk document.
type jsonData struct {
	HighScore int   `json:"high_score"`
	NextID    int64 `json:"next_id"`
	Runs      []Run `json:"runs"`
}

// OpenJSON loads the document at filePath, creating it if it doesn't exist.
func OpenJSON(filePath string) (*JSONStore, error) {
	filePath, err := prepareFile(filePath)
	if err != nil {
		return nil, err
	}

	store := &JSONStore{
		filePath: filePath,
		data:     &jsonData{NextID: 1},
	}

	raw, err := os.ReadFile(filePath)
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, store.data); err != nil {
			return nil, fmt.Errorf("storage: cannot decode %s: %w", filePath, err)
		}
		if store.data.NextID < 1 {
			store.data.NextID = 1
		}
	case errors.Is(err, os.ErrNotExist):
		if err := store.saveLocked(); err != nil {
			return nil, fmt.Errorf("storage: cannot create %s: %w", filePath, err)
		}
	default:
		return nil, fmt.Errorf("storage: cannot read %s: %w", filePath, err)
	}

	return store, nil
}

// saveLocked writes the document through a temp file. Caller holds the mutex.
func (js *JSONStore) saveLocked() error {
	raw, err := json.MarshalIndent(js.data, "", "  ")
	if err != nil {
		return err
	}

	tmp := js.filePath + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, js.filePath)
}

// LoadHighScore returns the stored high score.
func (js *JSONStore) LoadHighScore() (int, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()
	return js.data.HighScore, nil
}

// SaveHighScore stores score unless a higher one is already stored.
func (js *JSONStore) SaveHighScore(score int) error {
	if err := validateScore(score); err != nil {
		return err
	}

	js.mutex.Lock()
	defer js.mutex.Unlock()

	if score <= js.data.HighScore {
		return nil
	}
	js.data.HighScore = score
	if err := js.saveLocked(); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// SaveRun appends a finished run.
func (js *JSONStore) SaveRun(run Run) (int64, error) {
	run, err := prepareRun(run)
	if err != nil {
		return 0, err
	}

	js.mutex.Lock()
	defer js.mutex.Unlock()

	run.ID = js.data.NextID
	js.data.NextID++
	js.data.Runs = append(js.data.Runs, run)
	if err := js.saveLocked(); err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

// TopRuns returns the best runs, highest score first. Ties go to the earlier run.
func (js *JSONStore) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultTopRuns
	}

	js.mutex.RLock()
	runs := make([]Run, len(js.data.Runs))
	copy(runs, js.data.Runs)
	js.mutex.RUnlock()

	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].Score != runs[j].Score {
			return runs[i].Score > runs[j].Score
		}
		return runs[i].ID < runs[j].ID
	})

	if len(runs) > limit {
		runs = runs[:limit]
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return runs, nil
}

// Close is a no-op; every save is already on disk.
func (js *JSONStore) Close() error {
	return nil
}

var _ Store = (*JSONStore)(nil)
