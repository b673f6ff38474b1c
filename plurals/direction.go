package plurals

// Direction is the writing direction of a locale
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

var rtlScripts = map[string]bool{
	"Adlm": true,
	"Arab": true,
	"Hebr": true,
	"Mand": true,
	"Nkoo": true,
	"Rohg": true,
	"Samr": true,
	"Syrc": true,
	"Thaa": true,
}

// TextDirection derives the writing direction of a locale from its (likely) script.
// Unparseable codes are treated as left-to-right.
func TextDirection(code string) Direction {
	tag, err := Parse(code)
	if err != nil {
		return LeftToRight
	}
	script, _ := tag.Script()
	if rtlScripts[script.String()] {
		return RightToLeft
	}
	return LeftToRight
}

// Mark returns the Unicode directional mark of the direction (RLM or LRM)
func (direction Direction) Mark() string {
	if direction == RightToLeft {
		return "\u200f"
	}
	return "\u200e"
}
