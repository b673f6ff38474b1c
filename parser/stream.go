package parser

import "unicode/utf8"

// EOF is returned by the stream whenever no characters are left
const EOF rune = -1

// stream is used by the parser to navigate through the source.
// The cursor is a byte offset so that errors can point at the exact position inside the pattern.
type stream struct {
	source string
	curPos int
}

// newStream creates a new stream from a source string
func newStream(source string) *stream {
	return &stream{
		source: source,
		curPos: 0,
	}
}

// HasNext returns whether there are characters left to consume
func (str *stream) HasNext() bool {
	return str.curPos < len(str.source)
}

// CurrentCursorPos returns the current cursor position (in bytes)
func (str *stream) CurrentCursorPos() int {
	return str.curPos
}

// Peek returns the next character without moving the cursor forward.
// If no characters are left, EOF is returned.
func (str *stream) Peek() rune {
	return str.PeekNth(0)
}

// PeekNth returns the nth character from the current position; 0 being the current one (equal to calling Peek).
// If n points to a position outside the source, EOF is returned.
func (str *stream) PeekNth(n int) rune {
	pos := str.curPos
	for i := 0; ; i++ {
		if pos >= len(str.source) {
			return EOF
		}
		char, size := utf8.DecodeRuneInString(str.source[pos:])
		if i == n {
			return char
		}
		pos += size
	}
}

// Consume returns the next character and moves the cursor forward.
// If no characters are left, EOF is returned and the cursor is not moved.
func (str *stream) Consume() rune {
	if !str.HasNext() {
		return EOF
	}
	char, size := utf8.DecodeRuneInString(str.source[str.curPos:])
	str.curPos += size
	return char
}

// Skip moves the cursor forward n characters.
// If n is zero or less, nothing is done.
func (str *stream) Skip(n int) {
	for i := 0; i < n && str.HasNext(); i++ {
		str.Consume()
	}
}

// Slice returns the raw source between two byte positions
func (str *stream) Slice(start, end int) string {
	return str.source[start:end]
}

// Position translates a byte offset into a 1-based line and column (counted in characters)
func (str *stream) Position(offset int) (line, column int) {
	if offset > len(str.source) {
		offset = len(str.source)
	}
	line, column = 1, 1
	for _, char := range str.source[:offset] {
		if char == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}
