package store

import (
	"fmt"
	"sync"

	"github.com/akadeepesh/legal-processor-frontend/internal/model"
)

// Store is the in-memory collection of tracked job records. It is the single
// shared resource between the upload controller, the status reconciler and
// the UI; all access goes through the mutex so the interleaving goroutines
// keep the one-writer-at-a-time guarantee. State is ephemeral and lives only
// for the process lifetime.
type Store struct {
	mu      sync.Mutex
	records []model.JobRecord
}

// New creates an empty store
func New() *Store {
	return &Store{}
}

// Insert appends a new record. Inserting an id that already exists is a
// programming error and panics.
func (s *Store) Insert(rec model.JobRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertLocked(rec)
}

func (s *Store) insertLocked(rec model.JobRecord) {
	if s.indexOfLocked(rec.ID) >= 0 {
		panic(fmt.Sprintf("store: duplicate job id %q", rec.ID))
	}
	s.records = append(s.records, rec.Clone())
}

// Replace atomically removes the record matching oldID and inserts rec in
// its place, keeping the display position stable. Used when a provisional id
// is superseded by a server id or by a failure record. A missing oldID is a
// programming error and panics. The new id comes from the remote, so a
// collision with another tracked record is not a panic: Replace reports
// false and leaves the store unchanged.
func (s *Store) Replace(oldID model.JobID, rec model.JobRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfLocked(oldID)
	if i < 0 {
		panic(fmt.Sprintf("store: replace of unknown job id %q", oldID))
	}
	if rec.ID != oldID && s.indexOfLocked(rec.ID) >= 0 {
		return false
	}
	s.records[i] = rec.Clone()
	return true
}

// Remove deletes the record matching id, reporting whether it existed
func (s *Store) Remove(id model.JobID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfLocked(id)
	if i < 0 {
		return false
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return true
}

// MergeSnapshot reconciles every local record against the remote snapshot.
// Matching is two-tier: exact id first, then display-name equality; when
// several remote entries share a name the first in snapshot order wins.
// Matched records take the remote lifecycle, stages and output wholesale
// while keeping their local id, display name and submission time. Records
// with no remote counterpart are left unchanged.
func (s *Store) MergeSnapshot(entries []model.SnapshotEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		entry, ok := matchEntry(&s.records[i], entries)
		if !ok {
			continue
		}

		rec := &s.records[i]
		rec.Lifecycle = entry.Lifecycle
		rec.Stages = append([]model.StageStatus(nil), entry.Stages...)
		rec.Output = entry.Output.Clone()
		if entry.Lifecycle == model.JobFailed {
			rec.ErrorMessage = entry.ErrorMessage
		} else {
			rec.ErrorMessage = ""
		}
	}
}

func matchEntry(rec *model.JobRecord, entries []model.SnapshotEntry) (model.SnapshotEntry, bool) {
	for _, e := range entries {
		if e.ID != "" && e.ID == rec.ID.String() {
			return e, true
		}
	}
	for _, e := range entries {
		if e.OriginalFile != "" && e.OriginalFile == rec.DisplayName {
			return e, true
		}
	}
	return model.SnapshotEntry{}, false
}

// RemoveCompleted deletes every completed record and returns the removed
// subset in display order
func (s *Store) RemoveCompleted() []model.JobRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed []model.JobRecord
	kept := s.records[:0]
	for _, rec := range s.records {
		if rec.Lifecycle == model.JobCompleted {
			removed = append(removed, rec)
			continue
		}
		kept = append(kept, rec)
	}
	s.records = kept
	return removed
}

// ActiveCount returns the number of records still awaiting remote
// reconciliation (submitting, submitted or processing)
func (s *Store) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for i := range s.records {
		if s.records[i].IsActive() {
			n++
		}
	}
	return n
}

// Len returns the total number of tracked records
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Records returns a copy of all records in display order
func (s *Store) Records() []model.JobRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.JobRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec.Clone())
	}
	return out
}

// Get returns a copy of the record matching id
func (s *Store) Get(id model.JobID) (model.JobRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfLocked(id)
	if i < 0 {
		return model.JobRecord{}, false
	}
	return s.records[i].Clone(), true
}

// Completed derives the read-only projection of completed jobs
func (s *Store) Completed() []model.CompletedJobSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.CompletedJobSummary
	for i := range s.records {
		rec := &s.records[i]
		if rec.Lifecycle != model.JobCompleted {
			continue
		}
		out = append(out, model.CompletedJobSummary{
			ID:          rec.ID.String(),
			DisplayName: rec.DisplayName,
			Output:      rec.Output.Clone(),
		})
	}
	return out
}

func (s *Store) indexOfLocked(id model.JobID) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}
