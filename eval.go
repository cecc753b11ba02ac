package calc

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Calculate evaluates an infix expression. The error, if any, is a
// CalculationError.
func Calculate(expr string, opts ...Option) (decimal.Decimal, error) {
	if strings.TrimFunc(expr, unicode.IsSpace) == "" {
		return decimal.Decimal{}, &EvaluationError{Err: ErrEmpty}
	}
	p, err := ToPostfix(expr)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return Evaluate(p, opts...)
}

// Evaluate runs a postfix expression on an operand stack and returns the
// single value it leaves. The error, if any, is an *EvaluationError.
func Evaluate(p Postfix, opts ...Option) (decimal.Decimal, error) {
	cfg := newConfig(opts)
	stack := make([]decimal.Decimal, 0, len(p)/2+1)
	for _, tok := range p {
		switch tok.Kind {
		case TokenNumber:
			stack = append(stack, tok.Num)
		case TokenOperator:
			op := string(tok.Op)
			if len(stack) < 2 {
				return decimal.Decimal{}, &EvaluationError{Op: op, Err: ErrMissingOperand}
			}
			second := stack[len(stack)-1]
			first := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			r, err := cfg.apply(tok.Op, first, second)
			if err != nil {
				return decimal.Decimal{}, err
			}
			stack = append(stack, r)
		default:
			panic("calc: invalid postfix token " + tok.Kind.String())
		}
	}
	switch len(stack) {
	case 0:
		return decimal.Decimal{}, &EvaluationError{Err: ErrNoResult}
	case 1:
		return stack[0], nil
	default:
		return decimal.Decimal{}, &EvaluationError{Err: ErrTooManyOperands}
	}
}

// apply computes first op second.
func (cfg config) apply(op byte, first, second decimal.Decimal) (decimal.Decimal, error) {
	switch op {
	case '+':
		return first.Add(second), nil
	case '-':
		return first.Sub(second), nil
	case '*':
		return first.Mul(second), nil
	case '/':
		if second.IsZero() {
			return decimal.Decimal{}, &EvaluationError{Op: "/", Err: ErrDivisionByZero}
		}
		return first.DivRound(second, cfg.places), nil
	case '^':
		return cfg.pow(first, second)
	default:
		panic("calc: unknown operator " + string(op))
	}
}
