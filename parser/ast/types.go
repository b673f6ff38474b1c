package ast

// nodeType is used to declare the different possible types of AST nodes
type nodeType string

const (
	TypeMessage    nodeType = "Message"
	TypeLiteral    nodeType = "Literal"
	TypeArgument   nodeType = "Argument"
	TypeNumberSign nodeType = "NumberSign"
	TypeFormatArg  nodeType = "FormatArg"
	TypeSelector   nodeType = "Selector"
	TypeCase       nodeType = "Case"
)

// SelectorKind declares which kind of selection a Selector node performs
type SelectorKind string

const (
	KindPlural        SelectorKind = "plural"
	KindSelectOrdinal SelectorKind = "selectordinal"
	KindSelect        SelectorKind = "select"
)

// IsPlural checks if the selector kind dispatches on plural categories
func (kind SelectorKind) IsPlural() bool {
	return kind == KindPlural || kind == KindSelectOrdinal
}

// Plural category keywords usable as plural and selectordinal case keys
const (
	CategoryZero  = "zero"
	CategoryOne   = "one"
	CategoryTwo   = "two"
	CategoryFew   = "few"
	CategoryMany  = "many"
	CategoryOther = "other"
)

// IsCategory checks if a case key is one of the plural category keywords
func IsCategory(key string) bool {
	switch key {
	case CategoryZero, CategoryOne, CategoryTwo, CategoryFew, CategoryMany, CategoryOther:
		return true
	}
	return false
}

// IsElement checks if a type represents an element of a message
func IsElement(typ nodeType) bool {
	return anyOf(typ, TypeLiteral, TypeArgument, TypeNumberSign, TypeFormatArg, TypeSelector)
}

// anyOf checks if the given type matches any of the specified other types
func anyOf(typ nodeType, types ...nodeType) bool {
	for _, toCompare := range types {
		if typ == toCompare {
			return true
		}
	}
	return false
}
