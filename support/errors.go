package support

import "fmt"

// TypeError is raised at format time if a non-numeric value is used where a number is required
type TypeError struct {
	Name   string
	Value  any
	Offset float64
}

// Error turns the error into a string
func (err *TypeError) Error() string {
	if err.Name == "" {
		return fmt.Sprintf("can't apply offset %v to non-numerical value %#v", err.Offset, err.Value)
	}
	if err.Offset != 0 {
		return fmt.Sprintf("can't apply offset %v to argument '%s' with non-numerical value %#v", err.Offset, err.Name, err.Value)
	}
	return fmt.Sprintf("argument '%s' has non-numerical value %#v", err.Name, err.Value)
}
