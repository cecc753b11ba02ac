package calc

import (
	"errors"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// pending is an operator or open parenthesis waiting on the operator stack.
type pending struct {
	sym byte
	// unary marks a - that negates the next term. It is emitted as a binary
	// - after the 0 that was emitted in its place.
	unary bool
	pos   int
}

func (p pending) info() OperatorInfo {
	if p.unary {
		return OperatorInfo{unaryprec, Right}
	}
	info, _ := Lookup(p.sym)
	return info
}

func (p pending) token() Token {
	return Token{Kind: TokenOperator, Op: p.sym, Pos: p.pos}
}

// ToPostfix converts an infix expression to postfix form.
func ToPostfix(expr string) (Postfix, error) {
	return Convert(strings.NewReader(expr))
}

// Convert reads an infix expression to the end of src and converts it to
// postfix form. Any error is a *SyntaxError, except for errors from src.
func Convert(src io.RuneScanner) (Postfix, error) {
	scan := lex(src)
	var (
		out   Postfix
		stack []pending
		// prev is the kind of the last token scanned, or 0 at the start. A -
		// is unary at the start of input or after an operator or open
		// parenthesis.
		prev TokenKind
	)
	for {
		tok, err := scan.next()
		if errors.Is(err, io.EOF) {
			if k := openIndex(stack); k >= 0 {
				return nil, &SyntaxError{Col: stack[k].pos, Err: ErrUnmatchedOpen}
			}
			for i := len(stack) - 1; i >= 0; i-- {
				out = append(out, stack[i].token())
			}
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case TokenNumber:
			out = append(out, tok)
		case TokenOperator:
			sym := tok.Op
			if sym == '-' && (prev == 0 || prev == TokenOperator || prev == TokenOpen) {
				out = append(out, Number(decimal.Zero))
				stack = append(stack, pending{sym: sym, unary: true, pos: tok.Pos})
				break
			}
			info, _ := Lookup(sym)
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.sym == '(' || !top.info().dominates(info) {
					break
				}
				out = append(out, top.token())
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, pending{sym: sym, pos: tok.Pos})
		case TokenOpen:
			stack = append(stack, pending{sym: '(', pos: tok.Pos})
		case TokenClose:
			k := openIndex(stack)
			if k < 0 {
				return nil, &SyntaxError{Col: tok.Pos, Err: ErrUnmatchedClose}
			}
			for i := len(stack) - 1; i > k; i-- {
				out = append(out, stack[i].token())
			}
			stack = stack[:k]
		default:
			panic("calc: unknown token: " + tok.String())
		}
		prev = tok.Kind
	}
}

// openIndex finds the topmost open parenthesis on the stack, or -1 if there
// is none.
func openIndex(stack []pending) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].sym == '(' {
			return i
		}
	}
	return -1
}
