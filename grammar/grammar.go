package grammar

import (
	"github.com/nihei9/durum/matcher"
	spec "github.com/nihei9/durum/spec/grammar"
)

type NormalizedKind int

const (
	NormalizedTerminal NormalizedKind = iota
	NormalizedChoice
	NormalizedSequence
	NormalizedReference
	// NormalizedPlaceholder marks a rule slot that has been reserved but not
	// filled yet. It appears only while the normalizer is running and never
	// in a finished rule table.
	NormalizedPlaceholder
)

// NormalizedNode is a rule body after normalization. All cross-rule
// references are integer indices into the rule table, never pointers, so a
// table can represent arbitrarily cyclic rule graphs.
type NormalizedNode struct {
	Kind     NormalizedKind
	Matcher  *matcher.Matcher
	Children []*NormalizedNode
	Rule     int
}

// Rule occupies one slot of a compiled rule table. A distinct RuleID owns
// exactly one slot for the lifetime of the grammar.
type Rule struct {
	Name        string
	Node        *NormalizedNode
	IsRecursive bool
	IsNullable  bool
}

// StartRuleName is the synthetic rule occupying index 0. All discovered
// rules are shifted up by one to make room for it.
const StartRuleName = "START"

// Grammar is a compiled grammar: a flat, decidable rule table ready to
// drive a matching engine.
type Grammar struct {
	rules []*Rule
}

// Compile normalizes the grammar expression rooted at root into a rule
// table, computes nullability to a fixpoint, and rejects the grammar if any
// rule can invoke itself without consuming input.
func Compile(root *Node) (*Grammar, error) {
	b := newTableBuilder()
	start := b.normalize(root, "")

	rules := make([]*Rule, 0, len(b.rules)+1)
	rules = append(rules, &Rule{
		Name:       StartRuleName,
		Node:       shiftReferences(start.node, 1),
		IsNullable: start.isNullable,
	})
	for _, r := range b.rules {
		rules = append(rules, &Rule{
			Name:        r.Name,
			Node:        shiftReferences(r.Node, 1),
			IsRecursive: r.IsRecursive,
			IsNullable:  r.IsNullable,
		})
	}

	null := genNullable(rules)
	for i, r := range rules {
		r.IsNullable = null[i]
	}

	if i := findUndecidableRule(rules, null); i >= 0 {
		return nil, &RuleError{
			Cause: ErrUndecidableRule,
			Rule:  rules[i].Name,
		}
	}

	return &Grammar{
		rules: rules,
	}, nil
}

// RuleCount returns the number of slots in the rule table, including the
// synthetic start rule.
func (g *Grammar) RuleCount() int {
	return len(g.rules)
}

// Rule returns the rule occupying the given slot.
func (g *Grammar) Rule(i int) *Rule {
	return g.rules[i]
}

// LookupRule returns the slot of the first rule with the given name.
func (g *Grammar) LookupRule(name string) (int, bool) {
	for i, r := range g.rules {
		if r.Name == name {
			return i, true
		}
	}
	return 0, false
}

// IsNullable reports whether the rule occupying the given slot can match
// zero characters.
func (g *Grammar) IsNullable(i int) bool {
	return g.rules[i].IsNullable
}

// Spec converts the grammar into its serializable form.
func (g *Grammar) Spec(name string) *spec.CompiledGrammar {
	rules := make([]*spec.Rule, len(g.rules))
	for i, r := range g.rules {
		rules[i] = &spec.Rule{
			Name:        r.Name,
			Node:        specNode(r.Node),
			IsRecursive: r.IsRecursive,
			IsNullable:  r.IsNullable,
		}
	}
	return &spec.CompiledGrammar{
		Name:  name,
		Rules: rules,
	}
}

func specNode(n *NormalizedNode) *spec.Node {
	switch n.Kind {
	case NormalizedTerminal:
		return &spec.Node{
			Kind:     spec.NodeKindTerminal,
			Terminal: n.Matcher.String(),
		}
	case NormalizedChoice, NormalizedSequence:
		kind := spec.NodeKindChoice
		if n.Kind == NormalizedSequence {
			kind = spec.NodeKindSequence
		}
		children := make([]*spec.Node, len(n.Children))
		for i, c := range n.Children {
			children[i] = specNode(c)
		}
		return &spec.Node{
			Kind:     kind,
			Children: children,
		}
	case NormalizedReference:
		return &spec.Node{
			Kind: spec.NodeKindReference,
			Rule: n.Rule,
		}
	}
	return &spec.Node{
		Kind: spec.NodeKindPlaceholder,
	}
}

func shiftReferences(n *NormalizedNode, offset int) *NormalizedNode {
	switch n.Kind {
	case NormalizedReference:
		n.Rule += offset
	case NormalizedChoice, NormalizedSequence:
		for _, c := range n.Children {
			shiftReferences(c, offset)
		}
	}
	return n
}
