package pattern

import "fmt"

// ErrorKind classifies why a pattern source string failed to compile.
type ErrorKind uint8

const (
	// UnsupportedConstruct names a syntactically valid regex feature this
	// dialect does not implement (alternation, groups, backreferences,
	// lookaround).
	UnsupportedConstruct ErrorKind = iota
	// UnterminatedClass means a '[' was never closed by a matching ']'.
	UnterminatedClass
	// StrayMetacharacter means a metacharacter appeared where the grammar
	// does not allow one unescaped, e.g. '$' before the end of the
	// pattern or a leading quantifier with nothing to repeat.
	StrayMetacharacter
	// EmptyPattern means the source string had zero length.
	EmptyPattern
)

func (k ErrorKind) String() string {
	switch k {
	case UnsupportedConstruct:
		return "unsupported-construct"
	case UnterminatedClass:
		return "unterminated-class"
	case StrayMetacharacter:
		return "stray-metacharacter"
	case EmptyPattern:
		return "empty-pattern"
	default:
		return "unknown"
	}
}

// CompileError reports why Compile rejected a pattern source string,
// including the byte offset at which the parser gave up.
type CompileError struct {
	Kind    ErrorKind
	Offset  int
	Message string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("pattern: %s at offset %d: %s", e.Kind, e.Offset, e.Message)
}

func newCompileError(kind ErrorKind, offset int, format string, args ...any) *CompileError {
	return &CompileError{Kind: kind, Offset: offset, Message: fmt.Sprintf(format, args...)}
}
