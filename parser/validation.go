package parser

// isWhitespace checks if a character is skipped between tokens inside braces
func isWhitespace(char rune) bool {
	return char == ' ' || char == '\t' || char == '\n' || char == '\r'
}

// isSyntaxChar checks if a character has a syntactic meaning inside braces
func isSyntaxChar(char rune) bool {
	return char == '{' || char == '}' || char == ',' || char == '#' || char == ':' || char == '='
}

// isIdentifierChar checks if a character is valid to be part of an argument name, format type or case key
func isIdentifierChar(char rune) bool {
	return char != EOF && char != '\'' && !isWhitespace(char) && !isSyntaxChar(char)
}

// isDigit checks if a character is an ASCII digit
func isDigit(char rune) bool {
	return char >= '0' && char <= '9'
}
