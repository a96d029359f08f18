package encoding

import (
	"errors"
	"fmt"
)

var (
	// ErrLexicalFormat is matched by errors of wire values rejected by a primitive grammar.
	ErrLexicalFormat = errors.New("lexical format")
	// ErrUnknownField is matched by errors of wire keys not in a descriptor table.
	ErrUnknownField = errors.New("unknown field")
	// ErrUnexpectedEvent is matched by errors of event streams ending early or having the wrong shape.
	ErrUnexpectedEvent = errors.New("unexpected event")
	// ErrCardinality is matched by errors of structurally forced cardinality violations.
	ErrCardinality = errors.New("cardinality")
	// ErrInvariant is matched by errors of values violating a documented invariant.
	ErrInvariant = errors.New("invariant")
	// ErrUnderlyingIO is matched by errors reading from the byte source.
	ErrUnderlyingIO = errors.New("underlying io")
	// ErrWriteIO is matched by errors writing to the byte sink.
	ErrWriteIO = errors.New("write io")
)

type LexicalFormatError struct {
	Kind  string
	Input string
	Err   error
}

func (e *LexicalFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Kind, e.Input, e.Err)
	}
	return fmt.Sprintf("invalid %s %q", e.Kind, e.Input)
}

func (e *LexicalFormatError) Is(target error) bool { return target == ErrLexicalFormat }
func (e *LexicalFormatError) Unwrap() error        { return e.Err }

type UnknownFieldError struct {
	Path string
	Key  string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("invalid field: %s in %s", e.Key, e.Path)
}

func (e *UnknownFieldError) Is(target error) bool { return target == ErrUnknownField }

type UnexpectedEventError struct {
	Got  string
	Want string
}

func (e *UnexpectedEventError) Error() string {
	if e.Want == "" {
		return fmt.Sprintf("unexpected %s", e.Got)
	}
	return fmt.Sprintf("unexpected %s, expected %s", e.Got, e.Want)
}

func (e *UnexpectedEventError) Is(target error) bool { return target == ErrUnexpectedEvent }

type CardinalityError struct {
	Path     string
	Got      int
	Expected string
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("%s: got %d values, expected %s", e.Path, e.Got, e.Expected)
}

func (e *CardinalityError) Is(target error) bool { return target == ErrCardinality }

type InvariantError struct {
	Type string
	Msg  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Msg)
}

func (e *InvariantError) Is(target error) bool { return target == ErrInvariant }

// IOError wraps failures of the underlying byte source or sink.
type IOError struct {
	Write bool
	Err   error
}

func (e *IOError) Error() string {
	if e.Write {
		return "write: " + e.Err.Error()
	}
	return "read: " + e.Err.Error()
}

func (e *IOError) Is(target error) bool {
	return (e.Write && target == ErrWriteIO) || (!e.Write && target == ErrUnderlyingIO)
}

func (e *IOError) Unwrap() error { return e.Err }
