package calc

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TokenKind is the variant of a Token.
type TokenKind int8

const (
	// TokenNumber is a decimal literal.
	TokenNumber TokenKind = iota + 1
	// TokenOperator is a binary operator.
	TokenOperator
	// TokenOpen is an open parenthesis. It never appears in a Postfix.
	TokenOpen
	// TokenClose is a close parenthesis. It never appears in a Postfix.
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "Number"
	case TokenOperator:
		return "Operator"
	case TokenOpen:
		return "OpenParen"
	case TokenClose:
		return "CloseParen"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is an element of an expression.
type Token struct {
	Kind TokenKind
	// Op is the operator symbol for TokenOperator, or the parenthesis for
	// TokenOpen and TokenClose.
	Op byte
	// Num is the value of a TokenNumber.
	Num decimal.Decimal
	// Pos is the 1-based rune position of the token in its source, or 0 if
	// the token was inserted by the converter.
	Pos int
}

// Number creates a number token.
func Number(v decimal.Decimal) Token {
	return Token{Kind: TokenNumber, Num: v}
}

// Operator creates an operator token.
func Operator(op byte) Token {
	return Token{Kind: TokenOperator, Op: op}
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return t.Num.String()
	case TokenOperator, TokenOpen, TokenClose:
		return string(t.Op)
	default:
		return "<" + t.Kind.String() + ">"
	}
}

// Postfix is an expression in reverse Polish notation. It contains only
// numbers and operators.
type Postfix []Token

// String formats the postfix expression with tokens separated by spaces.
func (p Postfix) String() string {
	var b strings.Builder
	for i, t := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
