package calc

import (
	"errors"
	"strconv"
)

// Kind classifies calculation errors.
type Kind int8

const (
	// KindSyntax is an error in the text of an expression.
	KindSyntax Kind = iota + 1
	// KindEvaluation is an error computing the value of a well-formed
	// expression, or an empty expression.
	KindEvaluation
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax error"
	case KindEvaluation:
		return "evaluation error"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// CalculationError is an error returned by Calculate. Every error from
// ToPostfix, Evaluate, and Calculate implements it.
type CalculationError interface {
	error
	// Kind returns the class of the error.
	Kind() Kind
}

// Reasons for syntax errors. A SyntaxError unwraps to one of these.
var (
	ErrInvalidChar       = errors.New("invalid character")
	ErrBareDecimalPoint  = errors.New("decimal point must be followed by at least one digit")
	ErrExtraDecimalPoint = errors.New("number has more than one decimal point")
	ErrUnmatchedOpen     = errors.New("unmatched opening parenthesis")
	ErrUnmatchedClose    = errors.New("unmatched closing parenthesis")
)

// Reasons for evaluation errors. An EvaluationError unwraps to one of these.
var (
	ErrEmpty           = errors.New("expression cannot be empty")
	ErrMissingOperand  = errors.New("not enough operands")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrNoResult        = errors.New("expression did not produce a result")
	ErrTooManyOperands = errors.New("too many operands")
	ErrNotFinite       = errors.New("not a finite number")
)

// SyntaxError indicates malformed input. It implements InputError.
type SyntaxError struct {
	// Col is the 1-based rune position of the offending character.
	Col int
	// Text is the offending text, e.g. the invalid character or the number
	// being scanned.
	Text string
	// Err is the reason for the error.
	Err error
}

func (err *SyntaxError) Error() string {
	msg := err.Err.Error()
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	return errpos(err.Col, msg)
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

func (err *SyntaxError) Kind() Kind {
	return KindSyntax
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// EvaluationError indicates an expression that cannot produce a value.
type EvaluationError struct {
	// Op is the operator being applied, if any.
	Op string
	// Err is the reason for the error.
	Err error
	// Msg replaces the default message, if non-empty.
	Msg string
}

func (err *EvaluationError) Error() string {
	if err.Msg != "" {
		return err.Msg
	}
	if err.Op != "" && errors.Is(err.Err, ErrMissingOperand) {
		return err.Err.Error() + " for operator " + err.Op
	}
	return err.Err.Error()
}

func (err *EvaluationError) Unwrap() error {
	return err.Err
}

func (err *EvaluationError) Kind() Kind {
	return KindEvaluation
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError       = (*SyntaxError)(nil)
	_ CalculationError = (*SyntaxError)(nil)
	_ CalculationError = (*EvaluationError)(nil)
)
