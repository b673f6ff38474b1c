package support

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

var helperSources = map[string]string{
	HelperNumber: `function (value, name, offset) {
  if (!offset) return value;
  if (isNaN(value)) throw new Error("Can't apply offset " + offset + " to argument '" + name + "' with non-numerical value " + JSON.stringify(value));
  return value - offset;
}`,
	HelperStrictNumber: `function (value, name, offset) {
  if (isNaN(value)) throw new Error("Argument '" + name + "' has non-numerical value " + JSON.stringify(value));
  return offset ? value - offset : value;
}`,
	HelperPlural: `function (value, offset, lcfunc, data, isOrdinal) {
  if (value != null && {}.hasOwnProperty.call(data, value)) return data[value]();
  if (isNaN(value)) {
    if (offset) throw new Error("Can't apply offset " + offset + " to non-numerical value " + JSON.stringify(value));
    return data.other();
  }
  var key = lcfunc(value - (offset || 0), isOrdinal);
  return {}.hasOwnProperty.call(data, key) ? data[key]() : data.other();
}`,
	HelperSelect: `function (value, data) {
  return typeof value === "string" && {}.hasOwnProperty.call(data, value) ? data[value]() : data.other();
}`,
}

// Variable names the rendered bundle binds plural functions and formatters to
const (
	PluralsVar    = "plurals"
	FormattersVar = "fmt"
)

// Bundle lists exactly the runtime parts a rendered artifact needs.
// Plurals maps locale codes and Formatters maps formatter names to their JavaScript source.
type Bundle struct {
	Helpers    []string
	Plurals    map[string]string
	Formatters map[string]string
}

// UnknownHelperError is raised when a bundle names a helper that has no implementation
type UnknownHelperError struct {
	Name string
}

// Error turns the error into a string
func (err *UnknownHelperError) Error() string {
	return fmt.Sprintf("unknown runtime helper '%s'", err.Name)
}

// Render writes the JavaScript declarations of the bundle.
// Nothing that is not named by the bundle is written.
func Render(w io.Writer, bundle Bundle) error {
	var out strings.Builder

	helpers := append([]string(nil), bundle.Helpers...)
	sort.Strings(helpers)
	for _, name := range helpers {
		source, ok := helperSources[name]
		if !ok {
			return &UnknownHelperError{Name: name}
		}
		fmt.Fprintf(&out, "var %s = %s;\n", name, source)
	}

	if len(bundle.Plurals) > 0 {
		writeTable(&out, PluralsVar, bundle.Plurals)
	}
	if len(bundle.Formatters) > 0 {
		writeTable(&out, FormattersVar, bundle.Formatters)
	}

	_, err := io.WriteString(w, out.String())
	return err
}

// writeTable writes a JavaScript object literal binding sorted keys to raw sources
func writeTable(out *strings.Builder, variable string, entries map[string]string) {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(out, "var %s = {\n", variable)
	for i, key := range keys {
		fmt.Fprintf(out, "  %s: %s", Quote(key), entries[key])
		if i < len(keys)-1 {
			out.WriteString(",")
		}
		out.WriteString("\n")
	}
	out.WriteString("};\n")
}

// Quote returns a JavaScript string literal of s
func Quote(s string) string {
	raw, err := json.Marshal(s)
	if err != nil {
		// strings always marshal
		panic(err)
	}
	return string(raw)
}
