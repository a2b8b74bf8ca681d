package validation

import (
	"fmt"
	"strings"
	"time"
)

type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}

// checkDate records a field error when the value is empty or not YYYY-MM-DD.
func checkDate(errors map[string]string, field, value string) {
	if strings.TrimSpace(value) == "" {
		errors[field] = field + " is required"
		return
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		errors[field] = err.Error()
	}
}
