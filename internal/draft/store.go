// Package draft owns the single-slot persistence of the in-progress working
// set. The slot is one JSON document in a local key-value fashion: written
// whole on every save, read back on restore, cleared after a successful
// export. There is at most one draft at a time and no schema versioning.
package draft

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/ThaiBaHoa/daily-nightshift-report/internal/logger"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/model"
)

// PersistError signals a failed draft write. The application keeps operating
// in-memory without a durable draft; nothing is retried automatically.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("draft %s failed: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// Store serializes the working set to a single named slot.
type Store struct {
	fs        afero.Fs
	path      string
	softLimit int64
}

// NewStore creates a store writing to path on fs. softLimit is the size in
// bytes above which saves emit a warning but still write (attachments are
// the dominant size driver).
func NewStore(fs afero.Fs, path string, softLimit int64) *Store {
	return &Store{fs: fs, path: path, softLimit: softLimit}
}

// Save overwrites the slot with the full snapshot. Saving without an
// inspector name is refused: a draft that cannot be exported later is not
// worth persisting over a restorable one.
func (s *Store) Save(rows []model.Row, inspector, station string, date time.Time) error {
	if inspector == "" {
		return &PersistError{Op: "save", Err: fmt.Errorf("inspector name is not set")}
	}

	snapshot := model.Draft{
		Rows:      rows,
		Inspector: inspector,
		Station:   station,
		Date:      date,
	}

	data, err := json.Marshal(&snapshot)
	if err != nil {
		return &PersistError{Op: "save", Err: err}
	}

	if s.softLimit > 0 && int64(len(data)) > s.softLimit {
		logger.Warn("Draft size %d bytes exceeds the %d byte threshold; saving anyway", len(data), s.softLimit)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return &PersistError{Op: "save", Err: err}
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0644); err != nil {
		return &PersistError{Op: "save", Err: err}
	}

	logger.Debug("Draft saved: %d rows, %d bytes", len(rows), len(data))
	return nil
}

// Load returns the last snapshot, or (nil, false) when the slot is empty.
// A corrupt slot is logged and reported as empty; Load never fails loudly.
func (s *Store) Load() (*model.Draft, bool) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Draft slot unreadable, starting fresh: %v", err)
		}
		return nil, false
	}

	var snapshot model.Draft
	if err := json.Unmarshal(data, &snapshot); err != nil {
		logger.Warn("Draft slot corrupt, starting fresh: %v", err)
		return nil, false
	}

	logger.Debug("Draft restored: %d rows", len(snapshot.Rows))
	return &snapshot, true
}

// Delete clears the slot unconditionally. Deleting an already empty slot is
// a quiet no-op.
func (s *Store) Delete() {
	if err := s.fs.Remove(s.path); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to clear draft slot: %v", err)
	}
}
