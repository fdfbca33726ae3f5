package grammar

// findUndecidableRule returns the slot of a rule that can invoke itself,
// directly or transitively, without consuming any input, or -1 when the
// grammar is decidable. Such a rule makes naive recursive matching
// non-terminating and must be rejected at compile time.
func findUndecidableRule(rules []*Rule, null []bool) int {
	calls := make([][]int, len(rules))
	for i, r := range rules {
		calls[i] = nonConsumingCalls(r.Node, null, nil)
	}

	const (
		unvisited = iota
		onStack
		done
	)
	state := make([]int, len(rules))

	var visit func(i int) int
	visit = func(i int) int {
		state[i] = onStack
		for _, c := range calls[i] {
			switch state[c] {
			case onStack:
				return c
			case unvisited:
				if u := visit(c); u >= 0 {
					return u
				}
			}
		}
		state[i] = done
		return -1
	}

	for i := range rules {
		if state[i] != unvisited {
			continue
		}
		if u := visit(i); u >= 0 {
			return u
		}
	}
	return -1
}

// nonConsumingCalls collects the rule slots reachable from a body without
// requiring any input consumption. Every choice branch is attempted at the
// same starting offset, so all branches contribute regardless of their own
// nullability. In a sequence, nothing past the first non-nullable child can
// still be reached at the original offset.
func nonConsumingCalls(n *NormalizedNode, null []bool, acc []int) []int {
	switch n.Kind {
	case NormalizedReference:
		return append(acc, n.Rule)
	case NormalizedChoice:
		for _, c := range n.Children {
			acc = nonConsumingCalls(c, null, acc)
		}
		return acc
	case NormalizedSequence:
		for _, c := range n.Children {
			acc = nonConsumingCalls(c, null, acc)
			if !nodeNullable(c, null) {
				break
			}
		}
		return acc
	}
	return acc
}
