package parser

import (
	"github.com/lus/messageformat.go/parser/ast"
	"strconv"
	"strings"
)

// DefaultMaxDepth is the default maximum nesting depth of sub-messages
const DefaultMaxDepth = 64

// Option configures a Parser
type Option func(*Parser)

// WithStrictNumberSign makes '#' special only directly inside plural and selectordinal cases.
// By default, select blocks nested inside a plural case inherit the plural's '#'.
func WithStrictNumberSign(strict bool) Option {
	return func(parser *Parser) {
		parser.strict = strict
	}
}

// WithMaxDepth sets the maximum nesting depth of sub-messages.
// Values of zero or less reset the limit to DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(parser *Parser) {
		if depth <= 0 {
			depth = DefaultMaxDepth
		}
		parser.maxDepth = depth
	}
}

// Parser is used to parse a MessageFormat pattern into an AST
type Parser struct {
	str      *stream
	strict   bool
	maxDepth int
}

// New creates a new MessageFormat parser from a source string
func New(source string, opts ...Option) *Parser {
	parser := &Parser{
		str:      newStream(source),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(parser)
	}
	return parser
}

// Parse is a shortcut for New(source, opts...).Parse()
func Parse(source string, opts ...Option) (*ast.Message, error) {
	return New(source, opts...).Parse()
}

// Parse parses the underlying pattern into a message AST node.
// The returned error is either a *SyntaxError or a *RecursionLimitError.
func (parser *Parser) Parse() (*ast.Message, error) {
	message, err := parser.parseMessage(0, false)
	if err != nil {
		return nil, err
	}

	// The top level message only stops early on an unbalanced '}'
	if parser.str.HasNext() {
		return nil, parser.newError(parser.str.CurrentCursorPos(), "unexpected '}'")
	}
	return message, nil
}

// parseMessage parses a message node up to the end of the source or an unmatched '}'
func (parser *Parser) parseMessage(depth int, inPlural bool) (*ast.Message, error) {
	start := parser.str.CurrentCursorPos()

	// Sub-messages may not be nested infinitely
	if depth > parser.maxDepth {
		return nil, &RecursionLimitError{Depth: parser.maxDepth, Offset: start}
	}

	elements := []ast.Node{}
	for parser.str.HasNext() {
		peek := parser.str.Peek()
		if peek == '}' {
			break
		}

		if peek == '{' {
			placeholder, err := parser.parsePlaceholder(depth, inPlural)
			if err != nil {
				return nil, err
			}
			elements = append(elements, placeholder)
			continue
		}

		if peek == '#' && inPlural {
			pos := parser.str.CurrentCursorPos()
			parser.str.Skip(1)
			elements = append(elements, &ast.NumberSign{
				Base: ast.Base{
					Type: ast.TypeNumberSign,
					Span: [2]uint{uint(pos), uint(pos + 1)},
				},
			})
			continue
		}

		elements = append(elements, parser.parseLiteral(inPlural))
	}

	// Build the message AST node
	return &ast.Message{
		Base: ast.Base{
			Type: ast.TypeMessage,
			Span: [2]uint{uint(start), uint(parser.str.CurrentCursorPos())},
		},
		Elements: elements,
	}, nil
}

// parseLiteral parses a literal node, resolving apostrophe escapes and quoted regions
func (parser *Parser) parseLiteral(inPlural bool) *ast.Literal {
	start := parser.str.CurrentCursorPos()

	var buffer strings.Builder
	for parser.str.HasNext() {
		peek := parser.str.Peek()
		if peek == '{' || peek == '}' || (peek == '#' && inPlural) {
			break
		}

		if peek == '\'' {
			next := parser.str.PeekNth(1)

			// A doubled apostrophe always stands for a single one
			if next == '\'' {
				buffer.WriteRune('\'')
				parser.str.Skip(2)
				continue
			}

			// An apostrophe in front of a syntax character quotes everything up to the next single apostrophe
			if next == '{' || next == '}' || (next == '#' && inPlural) {
				parser.str.Skip(1)
				for parser.str.HasNext() {
					char := parser.str.Consume()
					if char == '\'' {
						if parser.str.Peek() != '\'' {
							break
						}
						parser.str.Skip(1)
					}
					buffer.WriteRune(char)
				}
				continue
			}
		}

		buffer.WriteRune(parser.str.Consume())
	}

	// Build the literal AST node
	return &ast.Literal{
		Base: ast.Base{
			Type: ast.TypeLiteral,
			Span: [2]uint{uint(start), uint(parser.str.CurrentCursorPos())},
		},
		Value: buffer.String(),
	}
}

// parsePlaceholder parses an argument, format argument or selector node
func (parser *Parser) parsePlaceholder(depth int, inPlural bool) (ast.Node, error) {
	start := parser.str.CurrentCursorPos()

	// A '{' is required
	if err := parser.expect('{'); err != nil {
		return nil, err
	}
	parser.skipWhitespace()

	// Parse the argument name
	name, err := parser.parseIdentifier("argument name")
	if err != nil {
		return nil, err
	}
	parser.skipWhitespace()

	// A simple argument ends right after its name
	if parser.str.Peek() == '}' {
		parser.str.Skip(1)
		return &ast.Argument{
			Base: ast.Base{
				Type: ast.TypeArgument,
				Span: [2]uint{uint(start), uint(parser.str.CurrentCursorPos())},
			},
			Name: name,
		}, nil
	}

	// A ',' introduces the argument type
	if err := parser.expect(','); err != nil {
		return nil, err
	}
	parser.skipWhitespace()
	typ, err := parser.parseIdentifier("argument type")
	if err != nil {
		return nil, err
	}
	parser.skipWhitespace()

	switch ast.SelectorKind(typ) {
	case ast.KindPlural, ast.KindSelectOrdinal, ast.KindSelect:
		return parser.parseSelector(start, name, ast.SelectorKind(typ), depth, inPlural)
	}

	// Parse the optional style of a format argument; it is a message on its own
	var style *ast.Message
	if parser.str.Peek() == ',' {
		parser.str.Skip(1)
		parser.skipWhitespace()
		style, err = parser.parseMessage(depth+1, false)
		if err != nil {
			return nil, err
		}
		style = trimMessage(style)
	}

	// A closing '}' is required
	if err := parser.expect('}'); err != nil {
		return nil, err
	}

	// Build the format argument AST node
	return &ast.FormatArg{
		Base: ast.Base{
			Type: ast.TypeFormatArg,
			Span: [2]uint{uint(start), uint(parser.str.CurrentCursorPos())},
		},
		Name:   name,
		Format: typ,
		Style:  style,
	}, nil
}

// parseSelector parses the rest of a plural, selectordinal or select block after its type
func (parser *Parser) parseSelector(start int, name string, kind ast.SelectorKind, depth int, inPlural bool) (*ast.Selector, error) {
	// A ',' is required between the type and the cases
	if err := parser.expect(','); err != nil {
		return nil, err
	}
	parser.skipWhitespace()

	// Parse the optional offset
	offset := 0
	if parser.peekKeyword("offset") {
		offsetStart := parser.str.CurrentCursorPos()
		if !kind.IsPlural() {
			return nil, parser.newError(offsetStart, "an offset is only allowed in plural and selectordinal blocks")
		}
		parser.str.Skip(len("offset"))
		parser.skipWhitespace()
		if err := parser.expect(':'); err != nil {
			return nil, err
		}
		parser.skipWhitespace()
		value, err := parser.parseInteger()
		if err != nil {
			return nil, err
		}
		offset = value
	}

	// Cases of a plural set up the '#' context; select cases only keep it in non-strict mode
	caseInPlural := kind.IsPlural() || (inPlural && !parser.strict)

	cases := []*ast.Case{}
	for {
		parser.skipWhitespace()
		if !parser.str.HasNext() || parser.str.Peek() == '}' {
			break
		}
		caseStart := parser.str.CurrentCursorPos()

		// Parse the case key ('=N' or an identifier)
		var key string
		if parser.str.Peek() == '=' {
			parser.str.Skip(1)
			value, err := parser.parseInteger()
			if err != nil {
				return nil, err
			}
			key = "=" + strconv.Itoa(value)
		} else {
			identifier, err := parser.parseIdentifier("case key")
			if err != nil {
				return nil, err
			}
			if kind.IsPlural() && !ast.IsCategory(identifier) {
				return nil, parser.newError(caseStart, "invalid %s key '%s'", kind, identifier)
			}
			key = identifier
		}
		parser.skipWhitespace()

		// Parse the sub-message enclosed in braces
		if err := parser.expect('{'); err != nil {
			return nil, err
		}
		value, err := parser.parseMessage(depth+1, caseInPlural)
		if err != nil {
			return nil, err
		}
		if err := parser.expect('}'); err != nil {
			return nil, err
		}

		// Build and append a new case node
		cases = append(cases, &ast.Case{
			Base: ast.Base{
				Type: ast.TypeCase,
				Span: [2]uint{uint(caseStart), uint(parser.str.CurrentCursorPos())},
			},
			Key:   key,
			Value: value,
		})
	}

	// Ensure at least one case was provided
	if len(cases) == 0 {
		return nil, parser.newError(parser.str.CurrentCursorPos(), "at least one %s case is required", kind)
	}

	// A closing '}' is required
	if err := parser.expect('}'); err != nil {
		return nil, err
	}

	// Build the selector AST node
	return &ast.Selector{
		Base: ast.Base{
			Type: ast.TypeSelector,
			Span: [2]uint{uint(start), uint(parser.str.CurrentCursorPos())},
		},
		Name:     name,
		Selector: kind,
		Offset:   offset,
		Cases:    cases,
	}, nil
}

// parseIdentifier parses an argument name, format type or case key
func (parser *Parser) parseIdentifier(what string) (string, error) {
	start := parser.str.CurrentCursorPos()
	for isIdentifierChar(parser.str.Peek()) {
		parser.str.Consume()
	}
	if parser.str.CurrentCursorPos() == start {
		return "", parser.newError(start, "%s expected", what)
	}
	return parser.str.Slice(start, parser.str.CurrentCursorPos()), nil
}

// parseInteger parses an optionally negative decimal integer
func (parser *Parser) parseInteger() (int, error) {
	start := parser.str.CurrentCursorPos()
	if parser.str.Peek() == '-' {
		parser.str.Skip(1)
	}
	for isDigit(parser.str.Peek()) {
		parser.str.Skip(1)
	}
	raw := parser.str.Slice(start, parser.str.CurrentCursorPos())
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, parser.newError(start, "integer expected")
	}
	return value, nil
}

// peekKeyword checks if the next characters form the given keyword followed by a ':' (whitespace in between is allowed)
func (parser *Parser) peekKeyword(keyword string) bool {
	offset := 0
	for _, char := range keyword {
		if parser.str.PeekNth(offset) != char {
			return false
		}
		offset++
	}
	for isWhitespace(parser.str.PeekNth(offset)) {
		offset++
	}
	return parser.str.PeekNth(offset) == ':'
}

// skipWhitespace moves the stream cursor forward until a character is found that is no whitespace
func (parser *Parser) skipWhitespace() {
	for isWhitespace(parser.str.Peek()) {
		parser.str.Skip(1)
	}
}

// expect expects a single character and skips it
func (parser *Parser) expect(char rune) error {
	if parser.str.Peek() != char {
		return parser.newError(parser.str.CurrentCursorPos(), "'%s' expected", string(char))
	}
	parser.str.Skip(1)
	return nil
}

// trimMessage removes surrounding whitespace of a style message and returns nil if nothing is left
func trimMessage(message *ast.Message) *ast.Message {
	elements := message.Elements
	if len(elements) > 0 {
		if literal, ok := elements[len(elements)-1].(*ast.Literal); ok {
			literal.Value = strings.TrimRight(literal.Value, " \t\r\n")
			if literal.Value == "" {
				elements = elements[:len(elements)-1]
			}
		}
	}
	if len(elements) == 0 {
		return nil
	}
	message.Elements = elements
	return message
}
