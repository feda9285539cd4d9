package registry

import "fmt"

// ErrorKind classifies why a registry operation failed.
type ErrorKind uint8

const (
	// DuplicateName means Register was called with a name already present.
	DuplicateName ErrorKind = iota
	// NotFound means Unregister referenced a name that isn't registered.
	NotFound
	// CapacityExhausted means the registry already holds its configured
	// maximum number of entries (see NewWithCapacity).
	CapacityExhausted
)

func (k ErrorKind) String() string {
	switch k {
	case DuplicateName:
		return "duplicate-name"
	case NotFound:
		return "not-found"
	case CapacityExhausted:
		return "capacity-exhausted"
	default:
		return "unknown"
	}
}

// Error reports a registry operation failure.
type Error struct {
	Kind    ErrorKind
	Name    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("registry: %s %q: %s", e.Kind, e.Name, e.Message)
}

func newError(kind ErrorKind, name, format string, args ...any) *Error {
	return &Error{Kind: kind, Name: name, Message: fmt.Sprintf(format, args...)}
}
