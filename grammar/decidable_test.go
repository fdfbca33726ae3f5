package grammar

import (
	"testing"

	"github.com/nihei9/durum/matcher"
)

func term(text string) *NormalizedNode {
	return &NormalizedNode{
		Kind:    NormalizedTerminal,
		Matcher: matcher.Literal(text),
	}
}

func TestNonConsumingCalls(t *testing.T) {
	tests := []struct {
		caption string
		node    *NormalizedNode
		null    []bool
		calls   []int
	}{
		{
			caption: "a terminal calls nothing",
			node:    term("a"),
			null:    []bool{false, false},
			calls:   nil,
		},
		{
			caption: "every choice branch contributes regardless of nullability",
			node:    choiceOf(refTo(0), seqOf(term("a"), refTo(1))),
			null:    []bool{false, false},
			calls:   []int{0},
		},
		{
			caption: "a sequence stops after its first non-nullable child",
			node:    seqOf(refTo(0), term("a"), refTo(1)),
			null:    []bool{true, true},
			calls:   []int{0},
		},
		{
			caption: "a sequence of nullable children contributes every call",
			node:    seqOf(refTo(0), refTo(1)),
			null:    []bool{true, true},
			calls:   []int{0, 1},
		},
		{
			caption: "a non-nullable reference still contributes itself",
			node:    seqOf(refTo(0), refTo(1)),
			null:    []bool{false, false},
			calls:   []int{0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			calls := nonConsumingCalls(tt.node, tt.null, nil)
			if len(calls) != len(tt.calls) {
				t.Fatalf("unexpected calls; want: %v, got: %v", tt.calls, calls)
			}
			for i, c := range tt.calls {
				if calls[i] != c {
					t.Fatalf("unexpected calls; want: %v, got: %v", tt.calls, calls)
				}
			}
		})
	}
}

func TestFindUndecidableRule(t *testing.T) {
	tests := []struct {
		caption string
		rules   []*Rule
		want    int
	}{
		{
			caption: "a direct zero-width self-loop is undecidable",
			rules: []*Rule{
				{Name: "A", Node: choiceOf(refTo(0), term("a"))},
			},
			want: 0,
		},
		{
			caption: "a cycle through another rule is undecidable",
			rules: []*Rule{
				{Name: "A", Node: refTo(1)},
				{Name: "B", Node: choiceOf(refTo(0), term("b"))},
			},
			want: 0,
		},
		{
			caption: "recursion guarded by consumption is decidable",
			rules: []*Rule{
				{Name: "A", Node: choiceOf(seqOf(term("a"), refTo(0)), term("b"))},
			},
			want: -1,
		},
		{
			caption: "a nullable self-loop in one branch is rejected even when another branch consumes",
			rules: []*Rule{
				{Name: "A", Node: choiceOf(seqOf(term("a"), refTo(0)), refTo(0))},
			},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			null := genNullable(tt.rules)
			got := findUndecidableRule(tt.rules, null)
			if got != tt.want {
				t.Fatalf("unexpected result; want: %v, got: %v", tt.want, got)
			}
		})
	}
}
