package matcher

import (
	"testing"
	"unicode/utf8"
)

func TestMatcherMatches(t *testing.T) {
	tests := []struct {
		caption string
		matcher *Matcher
		input   string
		match   bool
		pos     int
	}{
		{
			caption: "a literal consumes exactly its own text",
			matcher: Literal("let"),
			input:   "letter",
			match:   true,
			pos:     3,
		},
		{
			caption: "a literal fails without consuming anything",
			matcher: Literal("let"),
			input:   "leap",
			match:   false,
			pos:     0,
		},
		{
			caption: "an empty literal succeeds consuming nothing",
			matcher: Literal(""),
			input:   "x",
			match:   true,
			pos:     0,
		},
		{
			caption: "a char consumes one character",
			matcher: Char('a'),
			input:   "ab",
			match:   true,
			pos:     1,
		},
		{
			caption: "a char consumes a full multi-byte character",
			matcher: Char('α'),
			input:   "αβ",
			match:   true,
			pos:     2,
		},
		{
			caption: "a char fails on empty input",
			matcher: Char('a'),
			input:   "",
			match:   false,
			pos:     0,
		},
		{
			caption: "start-of-input succeeds at offset 0 without consuming",
			matcher: StartOfInput(),
			input:   "abc",
			match:   true,
			pos:     0,
		},
		{
			caption: "start-of-input fails after any consumption",
			matcher: Sequence(Literal("a"), StartOfInput()),
			input:   "abc",
			match:   false,
			pos:     0,
		},
		{
			caption: "end-of-input succeeds only when the input is exhausted",
			matcher: Sequence(Literal("abc"), EndOfInput()),
			input:   "abc",
			match:   true,
			pos:     3,
		},
		{
			caption: "end-of-input fails while input remains",
			matcher: EndOfInput(),
			input:   "abc",
			match:   false,
			pos:     0,
		},
		{
			caption: "an alternative retries the right branch from the original position",
			matcher: Alternative(Literal("foo"), Literal("fx")),
			input:   "fxy",
			match:   true,
			pos:     2,
		},
		{
			caption: "an alternative prefers the left branch",
			matcher: Alternative(Literal("f"), Literal("fx")),
			input:   "fx",
			match:   true,
			pos:     1,
		},
		{
			caption: "a sequence restores the position when its tail fails",
			matcher: Sequence(Literal("ab"), Literal("cd")),
			input:   "abce",
			match:   false,
			pos:     0,
		},
		{
			caption: "a bounded repeat is greedy up to its maximum",
			matcher: Repeat(Literal("a"), 0, 2),
			input:   "aaaa",
			match:   true,
			pos:     2,
		},
		{
			caption: "a repeat below its minimum fails without consuming",
			matcher: Repeat(Literal("a"), 3, -1),
			input:   "aab",
			match:   false,
			pos:     0,
		},
		{
			caption: "an unbounded repeat consumes every occurrence",
			matcher: Repeat(Literal("ab"), 1, -1),
			input:   "ababab!",
			match:   true,
			pos:     6,
		},
		{
			caption: "a repeat of a zero-width matcher terminates",
			matcher: Repeat(Literal(""), 0, -1),
			input:   "abc",
			match:   true,
			pos:     0,
		},
		{
			caption: "a zero-width success satisfies any repetition minimum",
			matcher: Repeat(Literal(""), 3, -1),
			input:   "abc",
			match:   true,
			pos:     0,
		},
		{
			caption: "a decode-error char does not match an invalid byte",
			matcher: Char(utf8.RuneError),
			input:   "\xff",
			match:   false,
			pos:     0,
		},
		{
			caption: "a decode-error char matches its valid encoded form",
			matcher: Char(utf8.RuneError),
			input:   "�x",
			match:   true,
			pos:     3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			state := NewState(tt.input)
			match := tt.matcher.Matches(state)
			if match != tt.match {
				t.Fatalf("unexpected result; want: %v, got: %v", tt.match, match)
			}
			if state.Position() != tt.pos {
				t.Fatalf("unexpected position; want: %v, got: %v", tt.pos, state.Position())
			}
		})
	}
}

func TestMatcherIsNullable(t *testing.T) {
	tests := []struct {
		caption  string
		matcher  *Matcher
		nullable bool
	}{
		{
			caption:  "a non-empty literal is not nullable",
			matcher:  Literal("a"),
			nullable: false,
		},
		{
			caption:  "an empty literal is nullable",
			matcher:  Literal(""),
			nullable: true,
		},
		{
			caption:  "a char is not nullable",
			matcher:  Char('a'),
			nullable: false,
		},
		{
			caption:  "start-of-input is nullable",
			matcher:  StartOfInput(),
			nullable: true,
		},
		{
			caption:  "end-of-input is nullable",
			matcher:  EndOfInput(),
			nullable: true,
		},
		{
			caption:  "an alternative is nullable when either branch is",
			matcher:  Alternative(Literal("a"), Literal("")),
			nullable: true,
		},
		{
			caption:  "an alternative of non-nullable branches is not nullable",
			matcher:  Alternative(Literal("a"), Char('b')),
			nullable: false,
		},
		{
			caption:  "a sequence is nullable only when both sides are",
			matcher:  Sequence(Literal(""), EndOfInput()),
			nullable: true,
		},
		{
			caption:  "a sequence with a consuming side is not nullable",
			matcher:  Sequence(Literal(""), Literal("a")),
			nullable: false,
		},
		{
			caption:  "a repeat admitting zero occurrences is nullable",
			matcher:  Repeat(Literal("a"), 0, -1),
			nullable: true,
		},
		{
			caption:  "a repeat with a nullable sub-matcher is nullable",
			matcher:  Repeat(Literal(""), 1, -1),
			nullable: true,
		},
		{
			caption:  "a repeat demanding several zero-width occurrences is nullable",
			matcher:  Repeat(Literal(""), 3, -1),
			nullable: true,
		},
		{
			caption:  "a mandatory repeat of a consuming matcher is not nullable",
			matcher:  Repeat(Literal("a"), 1, -1),
			nullable: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			if tt.matcher.IsNullable() != tt.nullable {
				t.Fatalf("unexpected nullability; want: %v, got: %v", tt.nullable, tt.matcher.IsNullable())
			}

			// A nullable matcher must be able to succeed consuming zero
			// characters from the start of an empty input.
			if tt.nullable {
				state := NewState("")
				if !tt.matcher.Matches(state) {
					t.Fatalf("a nullable matcher failed on empty input")
				}
				if state.Position() != 0 {
					t.Fatalf("a nullable matcher consumed input; position: %v", state.Position())
				}
			}
		})
	}
}

func TestMatcherString(t *testing.T) {
	tests := []struct {
		caption string
		matcher *Matcher
		display string
	}{
		{
			caption: "literal",
			matcher: Literal("let"),
			display: `"let"`,
		},
		{
			caption: "char",
			matcher: Char('a'),
			display: `'a'`,
		},
		{
			caption: "anchors",
			matcher: Sequence(StartOfInput(), EndOfInput()),
			display: "SOF EOF",
		},
		{
			caption: "alternative",
			matcher: Alternative(Literal("a"), Literal("b")),
			display: `("a" | "b")`,
		},
		{
			caption: "bounded repeat",
			matcher: Repeat(Char('x'), 1, 3),
			display: "'x'{1,3}",
		},
		{
			caption: "unbounded repeat",
			matcher: Repeat(Char('x'), 2, -1),
			display: "'x'{2,}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			if tt.matcher.String() != tt.display {
				t.Fatalf("unexpected display form; want: %v, got: %v", tt.display, tt.matcher.String())
			}
		})
	}
}
