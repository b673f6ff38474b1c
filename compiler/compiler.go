// Package compiler lowers parsed MessageFormat patterns into trees of executable message nodes
// and tracks the runtime support those nodes depend on.
package compiler

import (
	"fmt"
	"github.com/lus/messageformat.go/formatters"
	"github.com/lus/messageformat.go/parser"
	"github.com/lus/messageformat.go/parser/ast"
	"github.com/lus/messageformat.go/plurals"
	"github.com/lus/messageformat.go/support"
	"log/slog"
	"sort"
	"strconv"
	"strings"
)

// Environment holds everything compilations share. It must not be modified once a Compiler uses it.
type Environment struct {
	Registry         *plurals.Registry
	Formatters       map[string]formatters.Formatter
	DefaultLocale    string
	BiDiSupport      bool
	StrictNumberSign bool
	MaxDepth         int
	Logger           *slog.Logger
}

// Compiler compiles patterns and message trees within one Environment.
// A Compiler has no mutable state; Compile may be called concurrently.
type Compiler struct {
	env *Environment
}

// New creates a new compiler
func New(env Environment) *Compiler {
	if env.MaxDepth <= 0 {
		env.MaxDepth = parser.DefaultMaxDepth
	}
	if env.Logger == nil {
		env.Logger = slog.New(slog.DiscardHandler)
	}
	if env.Formatters == nil {
		env.Formatters = formatters.Builtins()
	}
	return &Compiler{env: &env}
}

// Result is the outcome of one compilation: the compiled tree and its dependency set
type Result struct {
	Root *Node
	Deps *Deps

	env *Environment
}

// compilation holds the state of a single Compile call
type compilation struct {
	env    *Environment
	deps   *Deps
	leaves int
}

// Compile compiles a single pattern (string) or a message tree (map[string]any / map[string]string).
// If locale is not empty, it applies to every message; otherwise the locale of a message is the first
// path segment naming a bound locale, or the default locale.
// Any error aborts the whole compilation.
func (compiler *Compiler) Compile(input any, locale string) (*Result, error) {
	state := &compilation{
		env:  compiler.env,
		deps: newDeps(),
	}

	explicit := locale != ""
	if explicit {
		code, _, err := compiler.env.Registry.Resolve(locale)
		if err != nil {
			return nil, err
		}
		locale = code
	} else {
		locale = compiler.env.DefaultLocale
	}

	var root *Node
	var err error
	if pattern, ok := input.(string); ok {
		root, err = state.compileLeaf(nil, pattern, locale)
	} else {
		root, err = state.compileValue(nil, input, locale, explicit)
	}
	if err != nil {
		return nil, err
	}

	compiler.env.Logger.Debug("compiled messages",
		slog.Int("messages", state.leaves),
		slog.Any("helpers", state.deps.Helpers()),
		slog.Any("locales", state.deps.Locales()),
		slog.Any("formatters", state.deps.Formatters()),
	)
	return &Result{Root: root, Deps: state.deps, env: compiler.env}, nil
}

// compileValue compiles any value found inside a message tree
func (state *compilation) compileValue(path []string, value any, locale string, explicit bool) (*Node, error) {
	switch v := value.(type) {
	case string:
		return state.compileLeaf(path, v, locale)
	case map[string]any:
		return state.compileTree(path, v, locale, explicit)
	case map[string]string:
		tree := make(map[string]any, len(v))
		for key, pattern := range v {
			tree[key] = pattern
		}
		return state.compileTree(path, tree, locale, explicit)
	default:
		return nil, fmt.Errorf("%s: unsupported message value of type %T", pathString(path), value)
	}
}

// compileTree compiles a nested group of messages, detecting locale segments on the way
func (state *compilation) compileTree(path []string, tree map[string]any, locale string, explicit bool) (*Node, error) {
	if len(path) > state.env.MaxDepth {
		return nil, fmt.Errorf("%s: %w", pathString(path), &parser.RecursionLimitError{Depth: state.env.MaxDepth})
	}

	// Walk the keys in a stable order so the reported error does not depend on map iteration
	keys := make([]string, 0, len(tree))
	for key := range tree {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	// Only the first locale segment on the way from the root counts
	localeFound := explicit || state.localeInPath(path)

	children := make(map[string]*Node, len(tree))
	for _, key := range keys {
		childLocale := locale
		if !localeFound {
			if code, ok := state.env.Registry.Match(key); ok {
				childLocale = code
			}
		}
		child, err := state.compileValue(append(path[:len(path):len(path)], key), tree[key], childLocale, explicit)
		if err != nil {
			return nil, err
		}
		children[key] = child
	}

	return &Node{
		Kind:     KindGroup,
		Children: children,
		env:      state.env,
	}, nil
}

// localeInPath checks if any segment of the path names a bound locale or a regional variant of one
func (state *compilation) localeInPath(path []string) bool {
	for _, segment := range path {
		if _, ok := state.env.Registry.Match(segment); ok {
			return true
		}
	}
	return false
}

// compileLeaf parses and lowers a single pattern
func (state *compilation) compileLeaf(path []string, pattern string, locale string) (*Node, error) {
	message, err := parser.Parse(pattern,
		parser.WithStrictNumberSign(state.env.StrictNumberSign),
		parser.WithMaxDepth(state.env.MaxDepth),
	)
	if err != nil {
		return nil, wrapPath(path, err)
	}

	body, err := state.lower(message, locale, nil)
	if err != nil {
		return nil, wrapPath(path, err)
	}
	state.leaves++
	state.env.Logger.Debug("compiled message", slog.String("path", pathString(path)), slog.String("locale", locale))

	// Messages without any interpolation are plain text
	text, literal := concatText(body)
	if literal {
		return &Node{Kind: KindLiteral, Locale: locale, Text: text, env: state.env}, nil
	}
	return &Node{Kind: KindFunction, Locale: locale, Body: body, env: state.env}, nil
}

// lower turns the elements of a message into executable elements.
// plural is the closest enclosing plural or selectordinal block and is used to resolve '#'.
func (state *compilation) lower(message *ast.Message, locale string, plural *ast.Selector) ([]Element, error) {
	elements := make([]Element, 0, len(message.Elements))
	for _, node := range message.Elements {
		// Only message elements may appear inside a message
		if node == nil || !ast.IsElement(node.Kind()) {
			return nil, fmt.Errorf("unexpected AST node %T inside a message", node)
		}

		switch n := node.(type) {
		case *ast.Literal:
			elements = append(elements, Text{Value: n.Value})

		case *ast.Argument:
			arg := Arg{Name: n.Name}
			if state.env.BiDiSupport {
				arg.Mark = plurals.TextDirection(locale).Mark()
			}
			elements = append(elements, arg)

		case *ast.NumberSign:
			if plural == nil {
				elements = append(elements, Text{Value: "#"})
				continue
			}
			helper := support.HelperNumber
			if state.env.StrictNumberSign {
				helper = support.HelperStrictNumber
			}
			state.deps.addHelper(helper)
			elements = append(elements, NumberSign{Helper: helper, Name: plural.Name, Offset: plural.Offset})

		case *ast.FormatArg:
			call, err := state.lowerFormatArg(n, locale)
			if err != nil {
				return nil, err
			}
			elements = append(elements, call)

		case *ast.Selector:
			sel, err := state.lowerSelector(n, locale, plural)
			if err != nil {
				return nil, err
			}
			elements = append(elements, sel)

		default:
			return nil, fmt.Errorf("unexpected AST node %T", node)
		}
	}
	return elements, nil
}

// lowerFormatArg lowers a {name, type, style} placeholder into a formatter call
func (state *compilation) lowerFormatArg(arg *ast.FormatArg, locale string) (Element, error) {
	if _, ok := state.env.Formatters[arg.Format]; !ok {
		return nil, &UnknownFormatterError{Name: arg.Format, Offset: int(arg.Span[0])}
	}

	var style []Element
	if arg.Style != nil {
		lowered, err := state.lower(arg.Style, locale, nil)
		if err != nil {
			return nil, err
		}
		style = lowered
	}

	state.deps.addFormatter(arg.Format)
	return Call{Formatter: arg.Format, Name: arg.Name, Locale: locale, Style: style}, nil
}

// lowerSelector validates the cases of a selector block and lowers it into a helper call
func (state *compilation) lowerSelector(selector *ast.Selector, locale string, plural *ast.Selector) (Element, error) {
	seen := make(map[string]bool, len(selector.Cases))
	hasOther := false
	for _, c := range selector.Cases {
		key := caseKey(c)
		if seen[key] {
			return nil, &DuplicateCaseError{Argument: selector.Name, Key: c.Key, Offset: int(c.Span[0])}
		}
		seen[key] = true
		if c.Key == ast.CategoryOther {
			hasOther = true
		}
	}
	if !hasOther {
		return nil, &MissingOtherCaseError{Argument: selector.Name, Offset: int(selector.Span[0])}
	}

	if selector.Selector.IsPlural() {
		plural = selector
	}

	cases := make([]Case, 0, len(selector.Cases))
	for _, c := range selector.Cases {
		body, err := state.lower(c.Value, locale, plural)
		if err != nil {
			return nil, err
		}
		cases = append(cases, Case{Key: caseKey(c), Body: body})
	}

	if selector.Selector.IsPlural() {
		state.deps.addHelper(support.HelperPlural)
		state.deps.addLocale(locale)
	} else {
		state.deps.addHelper(support.HelperSelect)
	}

	return Select{
		Kind:   selector.Selector,
		Name:   selector.Name,
		Offset: selector.Offset,
		Locale: locale,
		Cases:  cases,
	}, nil
}

// caseKey returns the key a case is selected by at runtime
func caseKey(c *ast.Case) string {
	if c.Exact() {
		return strings.TrimPrefix(c.Key, "=")
	}
	return c.Key
}

// concatText returns the joined text of the elements if all of them are Text
func concatText(elements []Element) (string, bool) {
	var builder strings.Builder
	for _, element := range elements {
		text, ok := element.(Text)
		if !ok {
			return "", false
		}
		builder.WriteString(text.Value)
	}
	return builder.String(), true
}

func pathString(path []string) string {
	if len(path) == 0 {
		return "<root>"
	}
	quoted := make([]string, len(path))
	for i, segment := range path {
		if strings.ContainsAny(segment, ". ") {
			segment = strconv.Quote(segment)
		}
		quoted[i] = segment
	}
	return strings.Join(quoted, ".")
}

func wrapPath(path []string, err error) error {
	if len(path) == 0 {
		return err
	}
	return fmt.Errorf("%s: %w", pathString(path), err)
}
