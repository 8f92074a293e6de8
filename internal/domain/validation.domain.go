package domain

// FieldGeneric keys provider-level messages that do not belong to a single
// input field.
const FieldGeneric = "*"

type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries an ordered list of user-correctable failures.
// It is a terminal outcome, not an infrastructure fault.
type ValidationError struct {
	Errors []FieldError
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

func (e *ValidationError) Add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	return "validation failed: " + e.Errors[0].Field + " " + e.Errors[0].Message
}

// Map projects the errors into the wire shape: field -> ordered messages.
func (e *ValidationError) Map() map[string][]string {
	out := make(map[string][]string, len(e.Errors))
	for _, fe := range e.Errors {
		out[fe.Field] = append(out[fe.Field], fe.Message)
	}
	return out
}
