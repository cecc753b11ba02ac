package calc

import (
	"errors"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	// width is the size in bytes of the last rune read.
	width int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	l.width = sz
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At the end of the input, the
// result is io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{Pos: l.rune}, err
		}
		tok := Token{Pos: l.rune}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(tok.Pos); err != nil {
				return tok, err
			}
			tok.Kind = TokenNumber
			// scanNum only accepts valid decimal text.
			tok.Num = decimal.RequireFromString(l.buf.String())
			return tok, nil
		case r == '(':
			tok.Kind = TokenOpen
			tok.Op = '('
			return tok, nil
		case r == ')':
			tok.Kind = TokenClose
			tok.Op = ')'
			return tok, nil
		case strings.ContainsRune(Operators, r):
			tok.Kind = TokenOperator
			tok.Op = byte(r)
			return tok, nil
		default:
			return tok, &SyntaxError{Col: tok.Pos, Text: l.invalid(r), Err: ErrInvalidChar}
		}
	}
}

// invalid returns the text of an invalid rune just read. For malformed UTF-8,
// that is the offending byte rather than the replacement character.
func (l *lexer) invalid(r rune) string {
	if r != utf8.RuneError || l.width != 1 {
		return string(r)
	}
	bs, ok := l.src.(io.ByteScanner)
	if !ok || l.src.UnreadRune() != nil {
		return string(r)
	}
	b, err := bs.ReadByte()
	if err != nil {
		return string(r)
	}
	return string([]byte{b})
}

// scanNum scans a run of digits with at most one decimal point into the
// buffer, with a 0 filled in on an empty side of the point. start is the
// position of the first rune of the number.
func (l *lexer) scanNum(start int) error {
	var dig, dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if r == '.' {
			if dot {
				l.buf.WriteRune(r)
				return &SyntaxError{Col: start, Text: l.buf.String(), Err: ErrExtraDecimalPoint}
			}
			dot = true
			l.buf.WriteRune(r)
			continue
		}
		if r < '0' || r > '9' {
			l.unreadRune()
			break
		}
		dig = true
		l.buf.WriteRune(r)
	}
	if !dig {
		return &SyntaxError{Col: start, Text: l.buf.String(), Err: ErrBareDecimalPoint}
	}
	if dot {
		s := l.buf.String()
		l.buf.Reset()
		if s[0] == '.' {
			l.buf.WriteByte('0')
		}
		l.buf.WriteString(s)
		if s[len(s)-1] == '.' {
			l.buf.WriteByte('0')
		}
	}
	return nil
}
