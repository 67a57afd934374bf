package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrMalformedRecipe = errors.New("malformed recipe")
	ErrParse           = errors.New("parse error")
	ErrInvalidArgument = errors.New("invalid argument")
)

// MalformedRecipeError reports a structural problem with the recipe text:
// too few lines or an ingredient line without the expected fields.
type MalformedRecipeError struct {
	Line   int // 1-based line number in the raw text, 0 if not line-specific
	Reason string
}

func (e *MalformedRecipeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed recipe: line %d: %s", e.Line, e.Reason)
	}
	return "malformed recipe: " + e.Reason
}

// Is makes errors.Is(err, ErrMalformedRecipe) hold.
func (e *MalformedRecipeError) Is(target error) bool { return target == ErrMalformedRecipe }

// ParseError reports a field whose text could not be converted.
type ParseError struct {
	Field string // "servings", "preptime", "quantity"
	Line  int
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse %s: line %d: %q", e.Field, e.Line, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrParse) hold.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// InvalidArgumentError reports an out-of-range argument from the caller.
type InvalidArgumentError struct {
	Name   string
	Value  any
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Name, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidArgument) hold.
func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }
