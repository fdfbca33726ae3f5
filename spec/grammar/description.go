package grammar

import (
	"fmt"
	"io"
	"strings"
)

// WriteBNF renders a grammar in a BNF-style textual form, one line per rule
// as `<name> ::= <body>`. The output is for tests and debugging only.
func WriteBNF(w io.Writer, g *CompiledGrammar) error {
	for i, rule := range g.Rules {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%v ::= ", rule.Name)
		writeNode(&b, g, rule.Node)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func writeNode(b *strings.Builder, g *CompiledGrammar, n *Node) {
	switch n.Kind {
	case NodeKindTerminal:
		b.WriteString(n.Terminal)
	case NodeKindReference:
		if n.Rule >= 0 && n.Rule < len(g.Rules) {
			b.WriteString(g.Rules[n.Rule].Name)
		} else {
			fmt.Fprintf(b, "<invalid:%v>", n.Rule)
		}
	case NodeKindChoice:
		for i, c := range n.Children {
			if i > 0 {
				b.WriteString(" | ")
			}
			writeNode(b, g, c)
		}
	case NodeKindSequence:
		if len(n.Children) == 0 {
			b.WriteString("ε")
			return
		}
		for i, c := range n.Children {
			if i > 0 {
				b.WriteString(" ")
			}
			// A choice inside a sequence needs parentheses to keep the
			// alternation from swallowing its neighbors.
			if c.Kind == NodeKindChoice {
				b.WriteString("(")
				writeNode(b, g, c)
				b.WriteString(")")
			} else {
				writeNode(b, g, c)
			}
		}
	case NodeKindPlaceholder:
		b.WriteString("⊥")
	}
}
