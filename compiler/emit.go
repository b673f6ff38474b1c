package compiler

import (
	"fmt"
	"github.com/lus/messageformat.go/parser/ast"
	"github.com/lus/messageformat.go/support"
	"io"
	"strconv"
	"strings"
)

// Bundle returns the runtime support the compiled tree needs to be rendered
func (result *Result) Bundle() (support.Bundle, error) {
	bundle := support.Bundle{
		Helpers:    result.Deps.Helpers(),
		Plurals:    make(map[string]string),
		Formatters: make(map[string]string),
	}
	for _, code := range result.Deps.Locales() {
		resolved, rule, err := result.env.Registry.Resolve(code)
		if err != nil {
			return support.Bundle{}, err
		}
		bundle.Plurals[code] = rule.JS(resolved)
	}
	for _, name := range result.Deps.Formatters() {
		formatter := result.env.Formatters[name]
		if formatter.Source == "" {
			return support.Bundle{}, &RenderError{Formatter: name}
		}
		bundle.Formatters[name] = formatter.Source
	}
	return bundle, nil
}

// Render writes the self-contained JavaScript expression of the compiled artifact:
// an immediately invoked function declaring exactly the referenced runtime support
// and returning the compiled function tree.
// Rendered functions behave like Node.Format, including the placeholder written for a missing
// argument; present values are converted to text by the host (String(v)) instead of support.Display.
func (result *Result) Render(w io.Writer) error {
	bundle, err := result.Bundle()
	if err != nil {
		return err
	}

	var prelude strings.Builder
	if err := support.Render(&prelude, bundle); err != nil {
		return err
	}

	var out strings.Builder
	out.WriteString("(function () {\n")
	out.WriteString(prelude.String())
	out.WriteString("return ")
	emitNode(&out, result.Root, 0)
	out.WriteString(";\n})()")

	_, err = io.WriteString(w, out.String())
	return err
}

// emitNode writes the JavaScript form of a compiled node
func emitNode(out *strings.Builder, node *Node, indent int) {
	switch node.Kind {
	case KindLiteral:
		out.WriteString("function () { return ")
		out.WriteString(support.Quote(node.Text))
		out.WriteString("; }")

	case KindFunction:
		out.WriteString("function (d) { return ")
		emitElements(out, node.Body)
		out.WriteString("; }")

	case KindGroup:
		keys := node.Keys()
		if len(keys) == 0 {
			out.WriteString("{}")
			return
		}
		padding := strings.Repeat("  ", indent+1)
		out.WriteString("{\n")
		for i, key := range keys {
			out.WriteString(padding)
			out.WriteString(support.Quote(key))
			out.WriteString(": ")
			emitNode(out, node.Children[key], indent+1)
			if i < len(keys)-1 {
				out.WriteString(",")
			}
			out.WriteString("\n")
		}
		out.WriteString(strings.Repeat("  ", indent))
		out.WriteString("}")
	}
}

// emitElements writes a string concatenation expression of the given elements
func emitElements(out *strings.Builder, elements []Element) {
	if len(elements) == 0 {
		out.WriteString(`""`)
		return
	}

	// A leading empty string forces string concatenation
	if _, ok := elements[0].(Text); !ok {
		out.WriteString(`"" + `)
	}
	for i, element := range elements {
		if i > 0 {
			out.WriteString(" + ")
		}
		emitElement(out, element)
	}
}

// emitElement writes the JavaScript expression of a single element
func emitElement(out *strings.Builder, element Element) {
	switch e := element.(type) {
	case Text:
		out.WriteString(support.Quote(e.Value))

	case Arg:
		// A missing argument is written as its placeholder, like Node.Format does
		name := support.Quote(e.Name)
		value := "d[" + name + "]"
		if e.Mark != "" {
			value = support.Quote(e.Mark) + " + " + value + " + " + support.Quote(e.Mark)
		}
		fmt.Fprintf(out, "(d != null && %s in d ? %s : %s)", name, value, support.Quote("{"+e.Name+"}"))

	case NumberSign:
		fmt.Fprintf(out, "%s(d[%s], %s, %d)", e.Helper, support.Quote(e.Name), support.Quote(e.Name), e.Offset)

	case Call:
		fmt.Fprintf(out, "%s[%s](d[%s], %s", support.FormattersVar, support.Quote(e.Formatter), support.Quote(e.Name), support.Quote(e.Locale))
		if e.Style != nil {
			out.WriteString(", ")
			emitElements(out, e.Style)
		}
		out.WriteString(")")

	case Select:
		if e.Kind.IsPlural() {
			fmt.Fprintf(out, "%s(d[%s], %d, %s[%s], ", support.HelperPlural, support.Quote(e.Name), e.Offset, support.PluralsVar, support.Quote(e.Locale))
			emitCases(out, e.Cases)
			out.WriteString(", ")
			out.WriteString(strconv.FormatBool(e.Kind == ast.KindSelectOrdinal))
			out.WriteString(")")
			return
		}
		fmt.Fprintf(out, "%s(d[%s], ", support.HelperSelect, support.Quote(e.Name))
		emitCases(out, e.Cases)
		out.WriteString(")")
	}
}

// emitCases writes the object literal mapping case keys to thunks
func emitCases(out *strings.Builder, cases []Case) {
	out.WriteString("{ ")
	for i, c := range cases {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(support.Quote(c.Key))
		out.WriteString(": function () { return ")
		emitElements(out, c.Body)
		out.WriteString("; }")
	}
	out.WriteString(" }")
}
