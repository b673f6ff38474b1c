package compiler

import (
	"github.com/lus/messageformat.go/parser/ast"
	"github.com/lus/messageformat.go/support"
	"strings"
)

// Format formats a message node using the given parameters.
// Literal nodes ignore the parameters. Formatting a group node fails with ErrNotFunction.
// A missing argument is written as its {name} placeholder, the same way rendered functions do.
func (node *Node) Format(params map[string]any) (string, error) {
	switch node.Kind {
	case KindLiteral:
		return node.Text, nil
	case KindFunction:
		var builder strings.Builder
		if err := node.evaluate(&builder, node.Body, params); err != nil {
			return "", err
		}
		return builder.String(), nil
	default:
		return "", ErrNotFunction
	}
}

// evaluate writes the output of the given elements into the builder
func (node *Node) evaluate(builder *strings.Builder, elements []Element, params map[string]any) error {
	for _, element := range elements {
		switch e := element.(type) {
		case Text:
			builder.WriteString(e.Value)

		case Arg:
			value, ok := params[e.Name]
			if !ok {
				// A missing argument is written as its placeholder
				builder.WriteString("{" + e.Name + "}")
				continue
			}
			builder.WriteString(e.Mark)
			builder.WriteString(support.Display(value))
			builder.WriteString(e.Mark)

		case NumberSign:
			helper := support.Number
			if e.Helper == support.HelperStrictNumber {
				helper = support.StrictNumber
			}
			value, err := helper(params[e.Name], e.Name, float64(e.Offset))
			if err != nil {
				return err
			}
			builder.WriteString(support.Display(value))

		case Call:
			formatter := node.env.Formatters[e.Formatter]
			style := ""
			if e.Style != nil {
				var styleBuilder strings.Builder
				if err := node.evaluate(&styleBuilder, e.Style, params); err != nil {
					return err
				}
				style = styleBuilder.String()
			}
			out, err := formatter.Func(params[e.Name], e.Locale, style)
			if err != nil {
				return err
			}
			builder.WriteString(out)

		case Select:
			out, err := node.selectCase(e, params)
			if err != nil {
				return err
			}
			builder.WriteString(out)
		}
	}
	return nil
}

// selectCase dispatches a selector element to the plural or select helper
func (node *Node) selectCase(sel Select, params map[string]any) (string, error) {
	cases := make(support.Cases, len(sel.Cases))
	for _, c := range sel.Cases {
		body := c.Body
		cases[c.Key] = func() (string, error) {
			var builder strings.Builder
			if err := node.evaluate(&builder, body, params); err != nil {
				return "", err
			}
			return builder.String(), nil
		}
	}

	value := params[sel.Name]
	if !sel.Kind.IsPlural() {
		return support.Select(value, cases)
	}

	_, rule, err := node.env.Registry.Resolve(sel.Locale)
	if err != nil {
		return "", err
	}
	return support.Plural(value, float64(sel.Offset), rule.Func, cases, sel.Kind == ast.KindSelectOrdinal)
}
