package session

import (
	"github.com/zyinput/zyinput/phonetic/bopomofo"
	"github.com/zyinput/zyinput/phonetic/doublepinyin"
	"github.com/zyinput/zyinput/table"
)

// Config is a session's property bag, factored out as an independent value
// type mirroring pyzy's PinyinConfig/BopomofoConfig split: the schema field
// foreign to a given session kind is simply never read by that kind's
// parseTokens dispatch, and GetProperty/SetProperty reject it outright.
type Config struct {
	Option             table.Option
	DoublePinyinSchema doublepinyin.Schema
	BopomofoSchema     bopomofo.Keyboard
	SpecialPhrase      bool
	ModeSimp           bool
}

// DefaultConfig returns the spec's §6 property defaults: default conversion
// option, schema/keyboard index 0, special phrases on, Simplified mode on.
func DefaultConfig() Config {
	return Config{
		Option:        table.DefaultOption,
		SpecialPhrase: true,
		ModeSimp:      true,
	}
}
