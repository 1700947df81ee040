package booking

import (
	"errors"
	"strings"
)

var (
	ErrNoSession       = errors.New("no session selected")
	ErrPersistence     = errors.New("booking could not be saved")
	ErrBookingNotFound = errors.New("booking not found")
)

// ValidationError carries every field rule a submission broke, in field order.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f.Field)
	}
	return "invalid booking fields: " + strings.Join(names, ", ")
}

// Message returns the first field message.
func (e *ValidationError) Message() string {
	if len(e.Fields) == 0 {
		return ""
	}
	return e.Fields[0].Message
}

// Details maps field names to messages.
func (e *ValidationError) Details() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[string(f.Field)] = f.Message
	}
	return out
}
