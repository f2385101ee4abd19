package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Query is a restartable, finite lazy cursor over one syllable-sequence
// prefix match, matching the spec's "the store exposes a restartable,
// finite lazy cursor per query" contract.
type Query struct {
	store     *Store
	dotted    string
	offset    int
	exhausted bool
}

// Query returns a cursor over phrases whose syllable sequence is a prefix of
// ids (the spec's syllables[begin..begin+len] range, already resolved by the
// caller into canonical ids).
func (s *Store) Query(ids []string) *Query {
	return &Query{store: s, dotted: joinIDs(ids)}
}

func scanPhrases(rows *sql.Rows) ([]Phrase, error) {
	var out []Phrase
	for rows.Next() {
		var p Phrase
		var syllables string
		if err := rows.Scan(&p.Text, &syllables, &p.SyllableLength, &p.SystemFreq, &p.UserFreq); err != nil {
			return nil, err
		}
		p.SyllableIDs = splitIDs(syllables)
		out = append(out, p)
	}
	return out, rows.Err()
}

func splitIDs(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '.' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return out
}

// Fill returns up to count more phrases ranked by descending
// (user_freq, system_freq) with longer syllable_length preferred at equal
// rank, and reports whether the cursor is now exhausted.
func (q *Query) Fill(ctx context.Context, count int) ([]Phrase, bool, error) {
	if q.exhausted || count <= 0 {
		return nil, q.exhausted, nil
	}
	// The '.'-terminator on both sides makes the prefix test syllable-boundary
	// safe: ids are joined with '.' and carry no trailing terminator, so a
	// naive substr(?, 1, length(syllables)) = syllables comparison would let
	// syllables="n:a" byte-prefix-match a query for "n:ai" even though "a"
	// and "ai" are different syllables. Appending '.' to both the stored
	// value and the query forces the next character after a match to be a
	// real syllable separator (or the query's own injected end marker).
	rows, err := q.store.db.QueryContext(ctx,
		`SELECT text, syllables, syllable_length, system_freq, user_freq
		 FROM phrases
		 WHERE substr(? || '.', 1, length(syllables) + 1) = syllables || '.' AND length(syllables) > 0
		 ORDER BY user_freq DESC, system_freq DESC, syllable_length DESC, text ASC
		 LIMIT ? OFFSET ?`,
		q.dotted, count+1, q.offset)
	if err != nil {
		return nil, false, fmt.Errorf("store: query fill: %w", err)
	}
	defer rows.Close()
	phrases, err := scanPhrases(rows)
	if err != nil {
		return nil, false, fmt.Errorf("store: query fill scan: %w", err)
	}
	hasMore := len(phrases) > count
	if hasMore {
		phrases = phrases[:count]
	}
	q.offset += len(phrases)
	q.exhausted = !hasMore
	return phrases, !hasMore, nil
}

// BestPrefixPhrase returns the single phrase covering the most leading
// syllables of ids (ties broken by frequency), used by the phrase editor's
// default-conversion algorithm which greedily maximizes coverage per step
// rather than frequency per step.
func (s *Store) BestPrefixPhrase(ctx context.Context, ids []string) (Phrase, error) {
	dotted := joinIDs(ids)
	row := s.db.QueryRowContext(ctx,
		`SELECT text, syllables, syllable_length, system_freq, user_freq
		 FROM phrases
		 WHERE substr(? || '.', 1, length(syllables) + 1) = syllables || '.' AND length(syllables) > 0
		 ORDER BY syllable_length DESC, user_freq DESC, system_freq DESC, text ASC
		 LIMIT 1`, dotted)
	var p Phrase
	var syllables string
	if err := row.Scan(&p.Text, &syllables, &p.SyllableLength, &p.SystemFreq, &p.UserFreq); err != nil {
		return Phrase{}, err
	}
	p.SyllableIDs = splitIDs(syllables)
	return p, nil
}
