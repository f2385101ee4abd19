// Package store implements the phrase store (C3): a persistent dictionary
// keyed by syllable-id sequences, backed by SQLite via modernc.org/sqlite
// (pure Go, no cgo) — the direct ecosystem analog of the original engine's
// own sqlite3-backed Database, see original_source/src/Database.h.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/zyinput/zyinput/internal/zlog"
)

// Phrase is the unit of ranked output, matching the spec's Phrase data
// model: utf8_text, syllable_length, system_freq, user_freq.
type Phrase struct {
	Text           string
	SyllableIDs    []string // canonical "sheng:yun" ids, one per syllable
	SyllableLength int
	SystemFreq     int
	UserFreq       int
}

// IsUserLearned reports the "user-learned" predicate from the data model:
// syllable_length > 1 && user_freq > 0 && system_freq == 0.
func (p Phrase) IsUserLearned() bool {
	return p.SyllableLength > 1 && p.UserFreq > 0 && p.SystemFreq == 0
}

func joinIDs(ids []string) string {
	return strings.Join(ids, ".")
}

// flushDebounce is how long the store waits after the last Commit before
// flushing pending user-frequency increments to durable storage, mirroring
// the original engine's GTimer-based debounce (original_source's
// Database.h's m_timeout_id/timeoutCallback) via time.AfterFunc.
const flushDebounce = 5 * time.Second

// Store is the process-wide phrase dictionary singleton described in the
// spec's lifecycle section. Reads and writes are serialized by mu, matching
// the spec's "process-wide lock or equivalent" concurrency requirement.
type Store struct {
	mu      sync.Mutex
	db      *sql.DB
	path    string
	pending map[string]int // phrase key -> pending user_freq delta
	timer   *time.Timer
}

// Open creates (or reuses) the SQLite-backed dictionary at path, seeding it
// with a bundled starter corpus on first run.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}
	s := &Store{db: db, path: path, pending: map[string]int{}}
	if err := s.seedIfEmpty(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS phrases (
	text            TEXT NOT NULL,
	syllables       TEXT NOT NULL,
	syllable_length INTEGER NOT NULL,
	system_freq     INTEGER NOT NULL DEFAULT 0,
	user_freq       INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (text, syllables)
);
CREATE INDEX IF NOT EXISTS idx_phrases_syllables ON phrases(syllables);
`

// Close flushes any pending commits and releases the database handle.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	pending := s.pending
	s.pending = map[string]int{}
	s.mu.Unlock()
	if len(pending) > 0 {
		if err := s.flush(pending); err != nil {
			zlog.Get().Warn().Err(err).Msg("store: flush on close failed")
		}
	}
	return s.db.Close()
}

// Commit atomically increments user_freq for each phrase, then schedules a
// debounced flush. Matches the spec's §4.2 commit contract: "atomically
// increments user_freq of each supplied phrase in session order; flushes
// asynchronously (debounced) to durable storage."
func (s *Store) Commit(ctx context.Context, phrases []Phrase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range phrases {
		key := p.Text + "\x00" + joinIDs(p.SyllableIDs)
		s.pending[key] = s.pending[key] + 1
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO phrases(text, syllables, syllable_length, system_freq, user_freq)
			 VALUES (?, ?, ?, 0, 1)
			 ON CONFLICT(text, syllables) DO UPDATE SET user_freq = user_freq + 1`,
			p.Text, joinIDs(p.SyllableIDs), p.SyllableLength); err != nil {
			return fmt.Errorf("store: commit %q: %w", p.Text, err)
		}
	}
	s.scheduleFlushLocked()
	return nil
}

// Remove resets a user-learned entry's user_freq to zero, returning it to
// system-freq-only ranking.
func (s *Store) Remove(ctx context.Context, p Phrase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx,
		`UPDATE phrases SET user_freq = 0 WHERE text = ? AND syllables = ?`,
		p.Text, joinIDs(p.SyllableIDs))
	if err != nil {
		return fmt.Errorf("store: remove %q: %w", p.Text, err)
	}
	return nil
}

// scheduleFlushLocked arms (or re-arms) the debounce timer. Caller must hold
// s.mu.
func (s *Store) scheduleFlushLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(flushDebounce, func() {
		s.mu.Lock()
		pending := s.pending
		s.pending = map[string]int{}
		s.mu.Unlock()
		if err := s.flush(pending); err != nil {
			zlog.Get().Warn().Err(err).Msg("store: debounced flush failed")
		}
	})
}

// flush is a no-op beyond logging: writes already landed synchronously in
// Commit via SQLite's own durability; this models the debounce point where
// the original engine would fsync/checkpoint a batch.
func (s *Store) flush(pending map[string]int) error {
	if len(pending) == 0 {
		return nil
	}
	zlog.Get().Info().Int("entries", len(pending)).Msg("store: flushed pending commits")
	return nil
}
