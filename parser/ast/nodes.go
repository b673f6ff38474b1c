package ast

// Node represents an interface that every AST node type implements to act as a super type
type Node interface {
	node()
	Kind() nodeType
}

// Base represents the base structure that every AST node embeds.
// Span holds the byte offsets of the node inside the parsed pattern.
type Base struct {
	Type nodeType `json:"type"`
	Span [2]uint  `json:"-"`
}

func (_ *Base) node() {}

// Kind returns the type of the node
func (base *Base) Kind() nodeType {
	return base.Type
}

// Message represents the AST node of a whole pattern or of a case sub-message
type Message struct {
	Base
	Elements []Node `json:"elements"` // Literal, Argument, NumberSign, FormatArg, Selector
}

// Literal represents a verbatim text AST node
type Literal struct {
	Base
	Value string `json:"value"`
}

// Argument represents the AST node of a simple {name} placeholder
type Argument struct {
	Base
	Name string `json:"name"`
}

// NumberSign represents the AST node of a '#' inside a plural case.
// It stands for the value of the closest enclosing plural argument minus its offset.
type NumberSign struct {
	Base
}

// FormatArg represents the AST node of a {name, type[, style]} placeholder
type FormatArg struct {
	Base
	Name   string   `json:"name"`
	Format string   `json:"format"`
	Style  *Message `json:"style,omitempty"`
}

// Selector represents the AST node of a plural, selectordinal or select block
type Selector struct {
	Base
	Name     string       `json:"name"`
	Selector SelectorKind `json:"selector"`
	Offset   int          `json:"offset,omitempty"`
	Cases    []*Case      `json:"cases"`
}

// Case represents the AST node of a single selector case.
// Exact-match plural keys keep their leading '='.
type Case struct {
	Base
	Key   string   `json:"key"`
	Value *Message `json:"value"`
}

// Exact checks if the case key is an exact-match ("=N") key
func (c *Case) Exact() bool {
	return len(c.Key) > 1 && c.Key[0] == '='
}
