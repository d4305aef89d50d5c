package preset

import "fmt"

// ValidationError represents a schema-level validation error: an
// unsupported version, an empty filter block, or a field whose value
// cannot work as a filter.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}
