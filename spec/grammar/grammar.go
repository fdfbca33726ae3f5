package grammar

// CompiledGrammar is the serializable form of a compiled grammar. It is a
// diagnostic artifact: it can be dumped, inspected, and rendered, but it is
// never read back into a live grammar.
type CompiledGrammar struct {
	Name  string  `json:"name"`
	Rules []*Rule `json:"rules"`
}

type Rule struct {
	Name        string `json:"name"`
	Node        *Node  `json:"node"`
	IsRecursive bool   `json:"is_recursive"`
	IsNullable  bool   `json:"is_nullable"`
}

const (
	NodeKindTerminal    = "terminal"
	NodeKindChoice      = "choice"
	NodeKindSequence    = "sequence"
	NodeKindReference   = "reference"
	NodeKindPlaceholder = "placeholder"
)

type Node struct {
	Kind string `json:"kind"`

	// Terminal is the display form of the terminal's matcher. The matcher
	// structure itself is not preserved.
	Terminal string  `json:"terminal,omitempty"`
	Children []*Node `json:"children,omitempty"`
	Rule     int     `json:"rule,omitempty"`
}
