package matcher

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// State is the cursor a matching engine advances through an input text.
// Matchers consume input by moving the position forward; a failed match
// leaves the position where the matcher found it unless documented otherwise.
type State struct {
	input string
	pos   int
}

func NewState(input string) *State {
	return &State{
		input: input,
	}
}

// Position returns the current byte offset into the input.
func (s *State) Position() int {
	return s.pos
}

// Rest returns the unconsumed remainder of the input.
func (s *State) Rest() string {
	return s.input[s.pos:]
}

type Kind int

const (
	KindLiteral Kind = iota
	KindChar
	KindStartOfInput
	KindEndOfInput
	KindAlternative
	KindSequence
	KindRepeat
)

// Matcher represents a terminal-matching primitive. The set of kinds is
// closed; all operations dispatch on the kind exhaustively.
type Matcher struct {
	kind  Kind
	text  string
	char  rune
	left  *Matcher
	right *Matcher
	sub   *Matcher
	min   int
	max   int
}

// unbounded marks a repetition without an upper limit.
const unbounded = -1

func Literal(text string) *Matcher {
	return &Matcher{
		kind: KindLiteral,
		text: text,
	}
}

func Char(c rune) *Matcher {
	return &Matcher{
		kind: KindChar,
		char: c,
	}
}

func StartOfInput() *Matcher {
	return &Matcher{
		kind: KindStartOfInput,
	}
}

func EndOfInput() *Matcher {
	return &Matcher{
		kind: KindEndOfInput,
	}
}

func Alternative(left, right *Matcher) *Matcher {
	return &Matcher{
		kind:  KindAlternative,
		left:  left,
		right: right,
	}
}

func Sequence(left, right *Matcher) *Matcher {
	return &Matcher{
		kind:  KindSequence,
		left:  left,
		right: right,
	}
}

// Repeat matches sub at least min times and at most max times. Pass a
// negative max for an unbounded repetition.
func Repeat(sub *Matcher, min, max int) *Matcher {
	if max < 0 {
		max = unbounded
	}
	return &Matcher{
		kind: KindRepeat,
		sub:  sub,
		min:  min,
		max:  max,
	}
}

func (m *Matcher) Kind() Kind {
	return m.kind
}

// Matches reports whether the matcher accepts input at the state's current
// position, advancing the position past the consumed text on success.
func (m *Matcher) Matches(s *State) bool {
	switch m.kind {
	case KindLiteral:
		end := s.pos + len(m.text)
		if end <= len(s.input) && s.input[s.pos:end] == m.text {
			s.pos = end
			return true
		}
		return false
	case KindChar:
		c, size := utf8.DecodeRuneInString(s.input[s.pos:])
		if size == 0 || (c == utf8.RuneError && size == 1) {
			// Exhausted input or an invalid encoding; a decode error byte
			// must not satisfy Char(utf8.RuneError).
			return false
		}
		if c == m.char {
			s.pos += size
			return true
		}
		return false
	case KindStartOfInput:
		return s.pos == 0
	case KindEndOfInput:
		return s.pos >= len(s.input)
	case KindAlternative:
		orig := s.pos
		if m.left.Matches(s) {
			return true
		}
		s.pos = orig
		return m.right.Matches(s)
	case KindSequence:
		orig := s.pos
		if m.left.Matches(s) && m.right.Matches(s) {
			return true
		}
		s.pos = orig
		return false
	case KindRepeat:
		orig := s.pos
		count := 0
		for m.max == unbounded || count < m.max {
			before := s.pos
			if !m.sub.Matches(s) {
				break
			}
			count++
			if s.pos == before {
				// The sub-matcher accepted without consuming anything.
				// Further iterations cannot make progress, but a zero-width
				// success can be repeated arbitrarily, so it satisfies any
				// remaining minimum.
				if count < m.min {
					count = m.min
				}
				break
			}
		}
		if count >= m.min {
			return true
		}
		s.pos = orig
		return false
	}
	return false
}

// IsNullable reports whether the matcher can succeed while consuming zero
// characters from every valid start state.
func (m *Matcher) IsNullable() bool {
	switch m.kind {
	case KindLiteral:
		return len(m.text) == 0
	case KindChar:
		return false
	case KindStartOfInput, KindEndOfInput:
		return true
	case KindAlternative:
		return m.left.IsNullable() || m.right.IsNullable()
	case KindSequence:
		return m.left.IsNullable() && m.right.IsNullable()
	case KindRepeat:
		return m.min == 0 || m.sub.IsNullable()
	}
	return false
}

func (m *Matcher) String() string {
	switch m.kind {
	case KindLiteral:
		return strconv.Quote(m.text)
	case KindChar:
		return strconv.QuoteRune(m.char)
	case KindStartOfInput:
		return "SOF"
	case KindEndOfInput:
		return "EOF"
	case KindAlternative:
		return fmt.Sprintf("(%v | %v)", m.left, m.right)
	case KindSequence:
		return fmt.Sprintf("%v %v", m.left, m.right)
	case KindRepeat:
		var b strings.Builder
		fmt.Fprintf(&b, "%v{%v,", m.sub, m.min)
		if m.max != unbounded {
			fmt.Fprintf(&b, "%v", m.max)
		}
		fmt.Fprintf(&b, "}")
		return b.String()
	}
	return "<terminal>"
}
