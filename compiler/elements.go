package compiler

import (
	"github.com/lus/messageformat.go/parser/ast"
	"sort"
)

// Element is a lowered message element. It is one of Text, Arg, NumberSign, Call or Select.
type Element interface {
	element()
}

// Text is emitted verbatim
type Text struct {
	Value string
}

// Arg interpolates an argument value, surrounded by Mark (a directional mark or empty)
type Arg struct {
	Name string
	Mark string
}

// NumberSign interpolates the value of a plural argument minus its offset through the number helper
type NumberSign struct {
	Helper string
	Name   string
	Offset int
}

// Call invokes a formatter with an argument value, the locale and the evaluated style (if any)
type Call struct {
	Formatter string
	Name      string
	Locale    string
	Style     []Element
}

// Select invokes the plural or select helper with one thunk per case
type Select struct {
	Kind   ast.SelectorKind
	Name   string
	Offset int
	Locale string
	Cases  []Case
}

// Case is a single case of a Select. Exact-match keys are stored without their '='.
type Case struct {
	Key  string
	Body []Element
}

func (Text) element()       {}
func (Arg) element()        {}
func (NumberSign) element() {}
func (Call) element()       {}
func (Select) element()     {}

// Kind tags a compiled Node
type Kind int

const (
	// KindLiteral is a leaf without any interpolation
	KindLiteral Kind = iota
	// KindFunction is a leaf that needs parameters to be formatted
	KindFunction
	// KindGroup is a nested group of named child nodes
	KindGroup
)

// Node is a node of a compiled message tree; its shape mirrors the compiled input exactly.
// Nodes are immutable and safe for concurrent use.
type Node struct {
	Kind     Kind
	Locale   string
	Text     string
	Body     []Element
	Children map[string]*Node

	env *Environment
}

// Keys returns the sorted keys of a group node
func (node *Node) Keys() []string {
	keys := make([]string, 0, len(node.Children))
	for key := range node.Children {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Child returns the child node of a group node with the given key
func (node *Node) Child(key string) (*Node, bool) {
	child, ok := node.Children[key]
	return child, ok
}
