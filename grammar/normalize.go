package grammar

import "fmt"

// protoRule carries a normalized body along with the recursion/nullability
// flags accumulated while building it. The flags seed the later fixpoint
// passes; they are not final.
type protoRule struct {
	node        *NormalizedNode
	isRecursive bool
	isNullable  bool
}

type tableBuilder struct {
	rules []*Rule
	slots map[RuleID]int
	synth int
}

func newTableBuilder() *tableBuilder {
	return &tableBuilder{
		slots: map[RuleID]int{},
	}
}

// normalize walks a grammar expression once and flattens every rule
// reachable from it into the table. Rule slots are reserved with a
// placeholder body before their defining expression is expanded, so the
// second time a cycle reaches the same RuleID the slot already exists and a
// back-reference is emitted instead of re-expanding. Normalization itself
// cannot fail; decidability is checked afterward over the finished table.
//
// enclosing is the name of the nearest enclosing named rule and seeds the
// names of rules synthesized for repetition.
func (b *tableBuilder) normalize(n *Node, enclosing string) *protoRule {
	switch n.kind {
	case nodeKindTerminal:
		return &protoRule{
			node: &NormalizedNode{
				Kind:    NormalizedTerminal,
				Matcher: n.matcher,
			},
			isNullable: n.matcher.IsNullable(),
		}
	case nodeKindChoice:
		children := make([]*NormalizedNode, len(n.children))
		var recursive, nullable bool
		for i, c := range n.children {
			p := b.normalize(c, enclosing)
			children[i] = p.node
			recursive = recursive || p.isRecursive
			nullable = nullable || p.isNullable
		}
		return &protoRule{
			node: &NormalizedNode{
				Kind:     NormalizedChoice,
				Children: children,
			},
			isRecursive: recursive,
			isNullable:  nullable,
		}
	case nodeKindSequence:
		children := make([]*NormalizedNode, len(n.children))
		var recursive bool
		nullable := true
		for i, c := range n.children {
			p := b.normalize(c, enclosing)
			children[i] = p.node
			recursive = recursive || p.isRecursive
			nullable = nullable && p.isNullable
		}
		return &protoRule{
			node: &NormalizedNode{
				Kind:     NormalizedSequence,
				Children: children,
			},
			isRecursive: recursive,
			isNullable:  nullable,
		}
	case nodeKindOptional:
		p := b.normalize(n.sub, enclosing)
		return &protoRule{
			node:        choiceOf(p.node, emptySeq()),
			isRecursive: p.isRecursive,
			isNullable:  true,
		}
	case nodeKindMany:
		p := b.normalize(n.sub, enclosing)
		rep := b.reserveSynth(synthName(enclosing, "rep"))
		b.fill(rep, &protoRule{
			node:        choiceOf(seqOf(p.node, refTo(rep)), emptySeq()),
			isRecursive: true,
			isNullable:  true,
		})
		return &protoRule{
			node:        refTo(rep),
			isRecursive: p.isRecursive,
			isNullable:  true,
		}
	case nodeKindSome:
		p := b.normalize(n.sub, enclosing)
		elem := b.reserveSynth(synthName(enclosing, "elem"))
		b.fill(elem, p)
		rep := b.reserveSynth(synthName(enclosing, "rep"))
		b.fill(rep, &protoRule{
			node:        choiceOf(seqOf(refTo(elem), refTo(rep)), emptySeq()),
			isRecursive: true,
			isNullable:  true,
		})
		return &protoRule{
			node:        seqOf(refTo(elem), refTo(rep)),
			isRecursive: p.isRecursive,
			isNullable:  p.isNullable,
		}
	case nodeKindReference:
		if idx, ok := b.slots[n.ruleID]; ok {
			r := b.rules[idx]
			// A placeholder body means the slot is still being filled
			// somewhere up the call chain, so this reference closes a cycle.
			recursive := r.Node.Kind == NormalizedPlaceholder
			return &protoRule{
				node:        refTo(idx),
				isRecursive: recursive,
				isNullable:  r.IsNullable,
			}
		}
		idx := b.reserve(n.ruleID, n.ruleName)
		b.fill(idx, b.normalize(n.ruleFn(), n.ruleName))
		r := b.rules[idx]
		return &protoRule{
			node:        refTo(idx),
			isRecursive: r.IsRecursive,
			isNullable:  r.IsNullable,
		}
	}
	return &protoRule{
		node: emptySeq(),
	}
}

func (b *tableBuilder) reserve(id RuleID, name string) int {
	idx := len(b.rules)
	b.slots[id] = idx
	b.rules = append(b.rules, &Rule{
		Name: name,
		Node: &NormalizedNode{
			Kind: NormalizedPlaceholder,
		},
	})
	return idx
}

// reserveSynth reserves a slot for a synthesized rule. Synthesized IDs live
// in a namespace of their own so they can never collide with author-supplied
// handles, and every occurrence gets a fresh slot.
func (b *tableBuilder) reserveSynth(name string) int {
	b.synth++
	return b.reserve(RuleID(fmt.Sprintf("#synth%v", b.synth)), name)
}

func (b *tableBuilder) fill(idx int, p *protoRule) {
	r := b.rules[idx]
	r.Node = p.node
	r.IsRecursive = p.isRecursive
	r.IsNullable = p.isNullable
}

func synthName(enclosing, suffix string) string {
	if enclosing == "" {
		enclosing = "start"
	}
	return enclosing + "_" + suffix
}

func refTo(idx int) *NormalizedNode {
	return &NormalizedNode{
		Kind: NormalizedReference,
		Rule: idx,
	}
}

func emptySeq() *NormalizedNode {
	return &NormalizedNode{
		Kind: NormalizedSequence,
	}
}

func seqOf(children ...*NormalizedNode) *NormalizedNode {
	return &NormalizedNode{
		Kind:     NormalizedSequence,
		Children: children,
	}
}

func choiceOf(children ...*NormalizedNode) *NormalizedNode {
	return &NormalizedNode{
		Kind:     NormalizedChoice,
		Children: children,
	}
}
