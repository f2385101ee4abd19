// Package special implements the special-phrase table (C4): an
// ASCII-command → ordered list of expansion strings overlay, loaded from a
// phrases.txt file with a static/dynamic split, grounded on
// original_source/src/SpecialPhraseTable.{h,cc}.
package special

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zyinput/zyinput/internal/zlog"
)

// Phrase is one expansion entry for a command.
type Phrase struct {
	Command string
	Value   string // static text, or the template body (without the leading '#') when Dynamic
	Dynamic bool
}

// Table is the loaded multimap of command -> ordered phrases, mirroring
// SpecialPhraseTable's std::multimap<string, SpecialPhrasePtr>.
type Table struct {
	order   []string // commands in first-seen order, for deterministic dumps
	entries map[string][]Phrase
}

// New returns an empty table (used when no phrases.txt can be found at all).
func New() *Table {
	return &Table{entries: map[string][]Phrase{}}
}

// Load tries, in order, "phrases.txt" in the current directory,
// "<configDir>/phrases.txt", then defaultPath when it is non-empty. The
// first one that exists wins; if none does, Load returns an empty table
// (not an error) per the spec's fall-back-to-empty error handling rule. A
// packaged default with no filesystem path of its own (e.g. an embedded
// corpus) goes through LoadWithDefault instead.
func Load(configDir, defaultPath string) (*Table, error) {
	candidates := fileCandidates(configDir)
	if defaultPath != "" {
		candidates = append(candidates, defaultPath)
	}
	if t, ok := loadFirstExisting(candidates); ok {
		return t, nil
	}
	zlog.Get().Warn().Msg("special: no phrases.txt found in any location, starting empty")
	return New(), nil
}

// LoadWithDefault mirrors the original engine's
// "phrases.txt" || "<configDir>/phrases.txt" || packaged-default fallback
// chain (original_source/src/SpecialPhraseTable.cc's
// load("phrases.txt") || load(path) || load(PKGDATADIR "/phrases.txt")),
// except the packaged default is supplied as in-memory bytes — typically a
// //go:embed'd corpus — rather than a third filesystem path, since an
// embedded default has no path of its own to open.
func LoadWithDefault(configDir string, defaultData []byte) (*Table, error) {
	if t, ok := loadFirstExisting(fileCandidates(configDir)); ok {
		return t, nil
	}
	if len(defaultData) > 0 {
		t, err := LoadReader(bytes.NewReader(defaultData))
		if err != nil {
			zlog.Get().Warn().Err(err).Msg("special: malformed packaged-default phrases, starting empty")
			return New(), nil
		}
		zlog.Get().Info().Int("commands", len(t.entries)).Msg("special: loaded packaged-default phrases")
		return t, nil
	}
	zlog.Get().Warn().Msg("special: no phrases.txt found and no packaged default, starting empty")
	return New(), nil
}

func fileCandidates(configDir string) []string {
	candidates := []string{"phrases.txt"}
	if configDir != "" {
		candidates = append(candidates, filepath.Join(configDir, "phrases.txt"))
	}
	return candidates
}

func loadFirstExisting(paths []string) (*Table, bool) {
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		t, loadErr := LoadReader(f)
		f.Close()
		if loadErr != nil {
			zlog.Get().Warn().Err(loadErr).Str("path", path).Msg("special: malformed phrases.txt, trying next location")
			continue
		}
		zlog.Get().Info().Str("path", path).Int("commands", len(t.entries)).Msg("special: loaded phrases.txt")
		return t, true
	}
	return nil, false
}

// LoadReader parses the command=value line format directly from any reader
// (a file, an embedded byte slice via bytes.NewReader, a test fixture, ...).
func LoadReader(r io.Reader) (*Table, error) {
	t := New()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, ";") {
			continue
		}
		idx := strings.IndexByte(text, '=')
		if idx < 0 {
			continue
		}
		command := strings.TrimSpace(text[:idx])
		value := text[idx+1:]
		if command == "" || value == "" {
			continue
		}
		p := Phrase{Command: command}
		if value[0] == '#' {
			if len(value) <= 1 {
				continue
			}
			p.Dynamic = true
			p.Value = value[1:]
		} else {
			p.Value = value
		}
		t.add(p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("special: reading phrases.txt: %w", err)
	}
	return t, nil
}

func (t *Table) add(p Phrase) {
	if _, ok := t.entries[p.Command]; !ok {
		t.order = append(t.order, p.Command)
	}
	t.entries[p.Command] = append(t.entries[p.Command], p)
}

// Lookup returns the ordered expansion strings for command, evaluating any
// dynamic templates against now. Returns nil if command has no entries.
func Lookup(t *Table, command string, now time.Time) []string {
	phrases, ok := t.entries[command]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if !p.Dynamic {
			out = append(out, p.Value)
			continue
		}
		out = append(out, Expand(p.Value, now, nil))
	}
	return out
}

// Has reports whether command has any registered expansion, without paying
// for template evaluation.
func (t *Table) Has(command string) bool {
	_, ok := t.entries[command]
	return ok
}
