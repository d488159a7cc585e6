package translation

import (
	"fmt"
)

// StatusError is returned when the translation service answers with a
// status other than 200 OK
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("translation service returned %s", e.Status)
	}
	return fmt.Sprintf("translation service returned status %d", e.StatusCode)
}
