package messageformat

import (
	"fmt"
	"github.com/lus/messageformat.go/support"
	"io"
	"regexp"
)

// Packaging wraps the rendered JavaScript expression of an artifact into a host format
type Packaging func(w io.Writer, expression string) error

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// InvalidIdentifierError is raised if a packaging is given a name that is no valid JavaScript identifier
type InvalidIdentifierError struct {
	Name string
}

// Error turns the error into a string
func (err *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("'%s' is not a valid identifier", err.Name)
}

// Expression writes the bare expression
func Expression() Packaging {
	return func(w io.Writer, expression string) error {
		_, err := io.WriteString(w, expression)
		return err
	}
}

// Variable binds the expression to a variable with the given name
func Variable(name string) Packaging {
	return func(w io.Writer, expression string) error {
		if !identifierPattern.MatchString(name) {
			return &InvalidIdentifierError{Name: name}
		}
		_, err := fmt.Fprintf(w, "var %s = %s;\n", name, expression)
		return err
	}
}

// Namespace assigns the expression to a property of a global namespace object, creating it if needed
func Namespace(namespace, name string) Packaging {
	return func(w io.Writer, expression string) error {
		if !identifierPattern.MatchString(namespace) {
			return &InvalidIdentifierError{Name: namespace}
		}
		_, err := fmt.Fprintf(w, "var %s = %s || {};\n%s[%s] = %s;\n", namespace, namespace, namespace, support.Quote(name), expression)
		return err
	}
}

// Module exports the expression as the default export of an ECMAScript module
func Module() Packaging {
	return func(w io.Writer, expression string) error {
		_, err := fmt.Fprintf(w, "export default %s;\n", expression)
		return err
	}
}
