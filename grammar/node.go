package grammar

import (
	"github.com/nihei9/durum/matcher"
)

// RuleID is the stable identity of a rule. Two references registered under
// the same ID always resolve to the same rule-table slot, which is what
// unifies mutually recursive and diamond-shaped references.
type RuleID string

// RuleFn produces the defining expression of a rule. The normalizer invokes
// it at most once per compilation, when the rule's slot is first reserved.
type RuleFn func() *Node

type nodeKind int

const (
	nodeKindTerminal nodeKind = iota
	nodeKindChoice
	nodeKindSequence
	nodeKindReference
	nodeKindOptional
	nodeKindSome
	nodeKindMany
)

// Node is an author-facing grammar expression. A grammar is described as a
// tree of nodes whose references may form arbitrary cycles; the normalizer
// flattens the whole reachable rule graph into an indexed table.
type Node struct {
	kind     nodeKind
	matcher  *matcher.Matcher
	children []*Node
	sub      *Node
	ruleID   RuleID
	ruleName string
	ruleFn   RuleFn
}

// Term matches a single terminal.
func Term(m *matcher.Matcher) *Node {
	return &Node{
		kind:    nodeKindTerminal,
		matcher: m,
	}
}

// Text is shorthand for a literal-text terminal.
func Text(text string) *Node {
	return Term(matcher.Literal(text))
}

// Ref refers to the rule registered under id. The name is used for
// diagnostics only; fn defines the rule's body and may refer back to id.
func Ref(id RuleID, name string, fn RuleFn) *Node {
	return &Node{
		kind:     nodeKindReference,
		ruleID:   id,
		ruleName: name,
		ruleFn:   fn,
	}
}

// Choice matches the first of nodes that succeeds.
func Choice(nodes ...*Node) *Node {
	return &Node{
		kind:     nodeKindChoice,
		children: nodes,
	}
}

// Seq matches all of nodes in order. Seq() is the canonical zero-width
// expression.
func Seq(nodes ...*Node) *Node {
	return &Node{
		kind:     nodeKindSequence,
		children: nodes,
	}
}

// Opt matches node zero or one time.
func Opt(node *Node) *Node {
	return &Node{
		kind: nodeKindOptional,
		sub:  node,
	}
}

// Some matches node one or more times.
func Some(node *Node) *Node {
	return &Node{
		kind: nodeKindSome,
		sub:  node,
	}
}

// Many matches node zero or more times.
func Many(node *Node) *Node {
	return &Node{
		kind: nodeKindMany,
		sub:  node,
	}
}

// Then returns the sequence of n followed by next. Adjacent sequences are
// flattened rather than nested.
func (n *Node) Then(next *Node) *Node {
	switch {
	case n.kind == nodeKindSequence && next.kind == nodeKindSequence:
		return Seq(append(append([]*Node{}, n.children...), next.children...)...)
	case n.kind == nodeKindSequence:
		return Seq(append(append([]*Node{}, n.children...), next)...)
	case next.kind == nodeKindSequence:
		return Seq(append([]*Node{n}, next.children...)...)
	default:
		return Seq(n, next)
	}
}

// Or returns the choice between n and next. Adjacent choices are flattened
// rather than nested.
func (n *Node) Or(next *Node) *Node {
	switch {
	case n.kind == nodeKindChoice && next.kind == nodeKindChoice:
		return Choice(append(append([]*Node{}, n.children...), next.children...)...)
	case n.kind == nodeKindChoice:
		return Choice(append(append([]*Node{}, n.children...), next)...)
	case next.kind == nodeKindChoice:
		return Choice(append([]*Node{n}, next.children...)...)
	default:
		return Choice(n, next)
	}
}
