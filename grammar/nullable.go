package grammar

// genNullable computes, for every rule, whether it can match zero
// characters. All flags start false and are recomputed from the current
// flags of referenced rules until a full pass changes nothing. Flags only
// flip false to true, so the loop is bounded by the rule count.
func genNullable(rules []*Rule) []bool {
	null := make([]bool, len(rules))
	for {
		changed := false
		for i, r := range rules {
			if null[i] {
				continue
			}
			if nodeNullable(r.Node, null) {
				null[i] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return null
}

func nodeNullable(n *NormalizedNode, null []bool) bool {
	switch n.Kind {
	case NormalizedTerminal:
		return n.Matcher.IsNullable()
	case NormalizedChoice:
		for _, c := range n.Children {
			if nodeNullable(c, null) {
				return true
			}
		}
		return false
	case NormalizedSequence:
		for _, c := range n.Children {
			if !nodeNullable(c, null) {
				return false
			}
		}
		return true
	case NormalizedReference:
		return null[n.Rule]
	}
	return false
}
