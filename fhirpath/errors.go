package fhirpath

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every SyntaxError.
	ErrParse              = errors.New("fhirpath: parse error")
	ErrIncompatible       = errors.New("fhirpath: incompatible operands")
	ErrRootMismatch       = errors.New("fhirpath: root type mismatch")
	ErrUnknownFunction    = errors.New("fhirpath: unknown function")
	ErrUnknownField       = errors.New("fhirpath: unknown field")
	ErrNotAPathExpression = errors.New("fhirpath: not a path expression")
	ErrNotABoolean        = errors.New("fhirpath: not a boolean expression")
)

type SyntaxError struct {
	Expr string
	Pos  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d in %q: %s", e.Pos, e.Expr, e.Msg)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrParse }

type IncompatibleError struct {
	Msg string
}

func (e *IncompatibleError) Error() string        { return e.Msg }
func (e *IncompatibleError) Is(target error) bool { return target == ErrIncompatible }

type RootMismatchError struct {
	Expected string
	Actual   string
}

func (e *RootMismatchError) Error() string {
	return fmt.Sprintf("expression is rooted at %s, but evaluated against %s", e.Expected, e.Actual)
}

func (e *RootMismatchError) Is(target error) bool { return target == ErrRootMismatch }

type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("function %q not found", e.Name)
}

func (e *UnknownFunctionError) Is(target error) bool { return target == ErrUnknownFunction }

type UnknownFieldError struct {
	Type string
	Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s has no element %q", e.Type, e.Name)
}

func (e *UnknownFieldError) Is(target error) bool { return target == ErrUnknownField }
