// Command zyinputdemo is an interactive terminal harness over a single
// zyinput session: it reads lines from stdin, feeds bare text to the
// session one byte at a time as keystrokes, and treats ":"-prefixed tokens
// as session commands (select/commit/cursor motion/etc). Built in the idiom
// of a thin main.go wrapper, since the teacher has no CLI demo of its own.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/k0kubun/pp"

	"github.com/zyinput/zyinput"
	"github.com/zyinput/zyinput/internal/xstr"
)

// candidateColumnWidth caps a displayed candidate to this many grapheme
// clusters so a run of selected/learned multi-character phrases doesn't
// blow out the terminal column.
const candidateColumnWidth = 24

type printObserver struct {
	debug bool
}

func (printObserver) CommitText(_ *zyinput.Session, text string) {
	color.Green.Printf("commit: %q\n", text)
}

// The remaining Observer methods are no-ops: the demo re-renders the view
// model explicitly after each processed token instead of per-notification,
// since several operations (FocusCandidate) fire only a subset of the six
// notifications and a notification-driven render would either miss or
// double-print.
func (printObserver) InputTextChanged(*zyinput.Session)     {}
func (printObserver) CursorChanged(*zyinput.Session)        {}
func (printObserver) PreeditTextChanged(*zyinput.Session)   {}
func (printObserver) AuxiliaryTextChanged(*zyinput.Session) {}
func (printObserver) CandidatesChanged(*zyinput.Session)    {}

func (o printObserver) render(s *zyinput.Session) {
	if o.debug {
		pp.Println(viewModel(s))
		return
	}
	color.Cyan.Printf("  %s\n", s.AuxiliaryText())
	color.Yellow.Printf("  %s%s\n", s.ConversionText(), s.RestText())
	for i := 0; i < 9 && s.HasCandidate(i); i++ {
		c, _ := s.GetCandidate(i)
		text := c.Text
		if xstr.Count(text) > candidateColumnWidth {
			text = xstr.TruncateGraphemes(text, candidateColumnWidth-1) + "…"
		}
		if i == s.FocusedCandidate() {
			color.Bold.Printf("  *%d. %s\n", i+1, text)
		} else {
			fmt.Printf("   %d. %s\n", i+1, text)
		}
	}
}

type view struct {
	InputText      string
	Cursor         int
	AuxiliaryText  string
	ConversionText string
	RestText       string
	SelectedText   string
}

func viewModel(s *zyinput.Session) view {
	return view{
		InputText:      s.InputText(),
		Cursor:         s.Cursor(),
		AuxiliaryText:  s.AuxiliaryText(),
		ConversionText: s.ConversionText(),
		RestText:       s.RestText(),
		SelectedText:   s.SelectedText(),
	}
}

func runCommand(s *zyinput.Session, cmd string) {
	switch {
	case cmd == "enter":
		s.Commit(zyinput.TypeConverted)
	case cmd == "raw":
		s.Commit(zyinput.TypeRaw)
	case cmd == "phonetic":
		s.Commit(zyinput.TypePhonetic)
	case cmd == "esc":
		s.Reset()
	case cmd == "bs":
		s.RemoveCharBefore()
	case cmd == "del":
		s.RemoveCharAfter()
	case cmd == "wordbefore":
		s.RemoveWordBefore()
	case cmd == "wordafter":
		s.RemoveWordAfter()
	case cmd == "left":
		s.MoveCursorLeft()
	case cmd == "right":
		s.MoveCursorRight()
	case cmd == "leftword":
		s.MoveCursorLeftByWord()
	case cmd == "rightword":
		s.MoveCursorRightByWord()
	case cmd == "home":
		s.MoveCursorToBegin()
	case cmd == "end":
		s.MoveCursorToEnd()
	case cmd == "unselect":
		s.UnselectCandidates()
	case cmd == "simp":
		s.SetProperty(zyinput.PropertyModeSimp, zyinput.BoolVariant(true))
	case cmd == "trad":
		s.SetProperty(zyinput.PropertyModeSimp, zyinput.BoolVariant(false))
	case cmd == "next":
		s.FocusCandidateNext()
	case cmd == "prev":
		s.FocusCandidatePrevious()
	default:
		if n, err := strconv.Atoi(cmd); err == nil && n >= 1 {
			s.SelectCandidate(n - 1)
			return
		}
		color.Red.Printf("unrecognized command %q\n", cmd)
	}
}

func main() {
	debug := flag.Bool("debug", false, "pretty-print the full view model after every input token or command")
	cacheDir := flag.String("cache-dir", "", "user cache directory (xdg default if empty)")
	configDir := flag.String("config-dir", "", "user config directory (xdg default if empty)")
	kindFlag := flag.String("kind", "pinyin", "input kind: pinyin | doublepinyin | bopomofo")
	flag.Parse()

	if err := zyinput.Init(*cacheDir, *configDir); err != nil {
		fmt.Fprintln(os.Stderr, "init:", err)
		os.Exit(1)
	}
	defer zyinput.Finalize()

	kind := zyinput.FullPinyin
	switch *kindFlag {
	case "doublepinyin":
		kind = zyinput.DoublePinyin
	case "bopomofo":
		kind = zyinput.Bopomofo
	}

	obs := printObserver{debug: *debug}
	session := zyinput.Create(kind, obs)

	color.Cyan.Println("zyinput demo — type pinyin, \":1\".. to select, \":enter\" to commit, \":quit\" to exit")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		for _, token := range strings.Fields(line) {
			if strings.HasPrefix(token, ":") {
				cmd := strings.TrimPrefix(token, ":")
				if cmd == "quit" {
					return
				}
				runCommand(session, cmd)
				obs.render(session)
				continue
			}
			for i := 0; i < len(token); i++ {
				session.Insert(token[i])
			}
			obs.render(session)
		}
	}
}
