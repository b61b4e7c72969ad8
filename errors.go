package nonfinite

import "fmt"

// ValueNotFoundError reports a string token that matched no sentinel and
// failed native numeric parsing. Failures of the host's own reads and
// writes are never wrapped in it; those pass through unchanged.
type ValueNotFoundError struct {
	Path string
	Msg  string
}

func valueNotFoundErrf(path string, format string, args ...any) error {
	return &ValueNotFoundError{path, fmt.Sprintf(format, args...)}
}

func (e *ValueNotFoundError) Error() string {
	if e.Path == "" {
		return e.Msg
	}
	return e.Path + ": " + e.Msg
}
