// Package zyinput is the engine's root lifecycle package (C9): process-wide
// init/finalize of the phrase store and special-phrase table singletons,
// and a create() factory that hands out independent Session instances over
// them. Grounded on original_source/src/InputContext.cc's init/finalize/
// create free functions and the teacher's former common/register.go
// mutex-guarded singleton-registry pattern (see DESIGN.md).
package zyinput

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"

	"github.com/zyinput/zyinput/internal/zlog"
	"github.com/zyinput/zyinput/session"
	"github.com/zyinput/zyinput/simptrad"
	"github.com/zyinput/zyinput/special"
	"github.com/zyinput/zyinput/store"
)

// defaultPhrasesTxt is the packaged-default special-phrase corpus (spec
// §4.3's "fallback to a packaged default"), embedded at build time so a
// fresh Init with no phrases.txt anywhere on disk still yields a non-empty
// special-phrase table — including the engine's own "aazhi" → "AA制"
// worked example.
//
//go:embed default_phrases.txt
var defaultPhrasesTxt []byte

// Re-exported so callers never need to import the session package directly.
type (
	InputType     = session.InputType
	CommitType    = session.CommitType
	PropertyName  = session.PropertyName
	CandidateType = session.CandidateType
	Candidate     = session.Candidate
	Observer      = session.Observer
	NopObserver   = session.NopObserver
	Variant       = session.Variant
	Session       = session.Session
)

const (
	FullPinyin   = session.FullPinyin
	DoublePinyin = session.DoublePinyin
	Bopomofo     = session.Bopomofo
)

const (
	TypeRaw       = session.TypeRaw
	TypePhonetic  = session.TypePhonetic
	TypeConverted = session.TypeConverted
)

const (
	PropertyConversionOption   = session.PropertyConversionOption
	PropertyDoublePinyinSchema = session.PropertyDoublePinyinSchema
	PropertyBopomofoSchema     = session.PropertyBopomofoSchema
	PropertySpecialPhrase      = session.PropertySpecialPhrase
	PropertyModeSimp           = session.PropertyModeSimp
)

const (
	NormalPhrase  = session.NormalPhrase
	UserPhrase    = session.UserPhrase
	SpecialPhrase = session.SpecialPhrase
)

var (
	NullVariant = session.NullVariant
	BoolVariant = session.BoolVariant
	UintVariant = session.UintVariant
)

const dictFilename = "zyinput.db"

var (
	mu        sync.Mutex
	phraseDB  *store.Store
	specials  *special.Table
	converter *simptrad.Converter
	ready     bool
)

// Init initializes the process-wide phrase store and special-phrase table,
// matching the spec's "initialized once with (user_cache_dir,
// user_config_dir)" lifecycle rule. An empty userCacheDir or userConfigDir
// resolves to the platform default via xdg (xdg.DataHome/xdg.ConfigHome),
// mirroring lang/zho/gojieba.go's ensureDictDir default-directory idiom.
// Calling Init twice without an intervening Finalize is a no-op that
// returns nil, matching a singleton's idempotent-init convention.
func Init(userCacheDir, userConfigDir string) error {
	mu.Lock()
	defer mu.Unlock()
	if ready {
		return nil
	}
	if userCacheDir == "" {
		userCacheDir = filepath.Join(xdg.DataHome, "zyinput")
	}
	if userConfigDir == "" {
		userConfigDir = filepath.Join(xdg.ConfigHome, "zyinput")
	}
	if err := os.MkdirAll(userCacheDir, 0o755); err != nil {
		return fmt.Errorf("zyinput: create cache dir %s: %w", userCacheDir, err)
	}
	if err := os.MkdirAll(userConfigDir, 0o755); err != nil {
		return fmt.Errorf("zyinput: create config dir %s: %w", userConfigDir, err)
	}

	db, err := store.Open(filepath.Join(userCacheDir, dictFilename))
	if err != nil {
		return fmt.Errorf("zyinput: init phrase store: %w", err)
	}
	tbl, err := special.LoadWithDefault(userConfigDir, defaultPhrasesTxt)
	if err != nil {
		db.Close()
		return fmt.Errorf("zyinput: init special-phrase table: %w", err)
	}

	phraseDB = db
	specials = tbl
	converter = simptrad.New()
	ready = true
	zlog.Get().Info().Str("cache_dir", userCacheDir).Str("config_dir", userConfigDir).Msg("zyinput: initialized")
	return nil
}

// Finalize flushes and tears down the process-wide singletons. Safe to call
// when Init was never called or already finalized.
func Finalize() {
	mu.Lock()
	defer mu.Unlock()
	if !ready {
		return
	}
	if err := phraseDB.Close(); err != nil {
		zlog.Get().Warn().Err(err).Msg("zyinput: error closing phrase store")
	}
	phraseDB = nil
	specials = nil
	converter = nil
	ready = false
	zlog.Get().Info().Msg("zyinput: finalized")
}

// Create returns a new, independent editing session of the given kind over
// the process-wide singletons. Panics if Init has not been called, matching
// the spec's "init(...) must be called before create" lifecycle invariant —
// a programmer error, not a recoverable runtime condition.
func Create(kind InputType, observer Observer) *Session {
	mu.Lock()
	defer mu.Unlock()
	if !ready {
		panic("zyinput: Create called before Init")
	}
	if observer == nil {
		observer = NopObserver{}
	}
	return session.New(kind, session.Deps{
		Store:    phraseDB,
		Special:  specials,
		Simptrad: converter,
	}, observer)
}
