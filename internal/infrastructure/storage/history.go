package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v3"
)

const runKeyPrefix = "run:"

// ErrRunNotFound is returned when a run id is unknown
var ErrRunNotFound = errors.New("run not found")

// RunRecord is one finished run
type RunRecord struct {
	ID       string    `json:"id"`
	Seed     int64     `json:"seed"`
	Wave     int       `json:"wave"`
	Kills    int       `json:"kills"`
	Coins    int       `json:"coins"`
	Exp      int       `json:"exp"`
	Duration float64   `json:"duration"`
	BossWon  bool      `json:"bossWon"`
	EndedAt  time.Time `json:"endedAt"`
}

// History is an append-only ledger of finished runs
type History struct {
	db *badger.DB
}

// OpenHistory opens the ledger under dataPath
func OpenHistory(dataPath string) (*History, error) {
	opts := badger.DefaultOptions(filepath.Join(dataPath, "history"))
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open run history: %w", err)
	}
	return &History{db: db}, nil
}

// Close closes the ledger
func (h *History) Close() error {
	return h.db.Close()
}

// runKey orders records by end time, oldest first
func runKey(r RunRecord) []byte {
	return []byte(fmt.Sprintf("%s%020d:%s", runKeyPrefix, r.EndedAt.UnixNano(), r.ID))
}

// Record stores a finished run
func (h *History) Record(r RunRecord) error {
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode run %s: %w", r.ID, err)
	}

	err = h.db.Update(func(txn *badger.Txn) error {
		return txn.Set(runKey(r), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store run %s: %w", r.ID, err)
	}
	return nil
}

// List returns up to limit records, newest first. limit <= 0 returns all.
func (h *History) List(limit int) ([]RunRecord, error) {
	var records []RunRecord

	err := h.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = []byte(runKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(runKeyPrefix + "\xff")); it.Valid(); it.Next() {
			var r RunRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			})
			if err != nil {
				return err
			}
			records = append(records, r)
			if limit > 0 && len(records) >= limit {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return records, nil
}

// Find returns the record with the given id
func (h *History) Find(id string) (RunRecord, error) {
	records, err := h.List(0)
	if err != nil {
		return RunRecord{}, err
	}
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}
	return RunRecord{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
}

// Best returns the record with the highest wave, ties broken by kills
func (h *History) Best() (RunRecord, bool, error) {
	records, err := h.List(0)
	if err != nil {
		return RunRecord{}, false, err
	}
	var best RunRecord
	found := false
	for _, r := range records {
		if !found || r.Wave > best.Wave || (r.Wave == best.Wave && r.Kills > best.Kills) {
			best, found = r, true
		}
	}
	return best, found, nil
}
