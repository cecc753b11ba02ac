package calc

import (
	"errors"
	"io"
	"strings"
	"testing"
)

// lexed is the expected form of a scanned token.
type lexed struct {
	kind TokenKind
	text string
	pos  int
}

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexed
		err    error
	}{
		// spaces
		{"", nil, nil},
		{" \t \r\n ", nil, nil},
		// numbers
		{"0", []lexed{{TokenNumber, "0", 1}}, nil},
		{"9876543210", []lexed{{TokenNumber, "9876543210", 1}}, nil},
		{"1 0", []lexed{{TokenNumber, "1", 1}, {TokenNumber, "0", 3}}, nil},
		{"1.25", []lexed{{TokenNumber, "1.25", 1}}, nil},
		{".5", []lexed{{TokenNumber, "0.5", 1}}, nil},
		{"5.", []lexed{{TokenNumber, "5", 1}}, nil},
		{"-1", []lexed{{TokenOperator, "-", 1}, {TokenNumber, "1", 2}}, nil},
		{"1.1.1", nil, ErrExtraDecimalPoint},
		{".", nil, ErrBareDecimalPoint},
		{"..", nil, ErrExtraDecimalPoint},
		{"1e1", []lexed{{TokenNumber, "1", 1}}, ErrInvalidChar},
		// operators and parentheses
		{"1+0", []lexed{{TokenNumber, "1", 1}, {TokenOperator, "+", 2}, {TokenNumber, "0", 3}}, nil},
		{"2^ 3", []lexed{{TokenNumber, "2", 1}, {TokenOperator, "^", 2}, {TokenNumber, "3", 4}}, nil},
		{"*/", []lexed{{TokenOperator, "*", 1}, {TokenOperator, "/", 2}}, nil},
		{"(1)", []lexed{{TokenOpen, "(", 1}, {TokenNumber, "1", 2}, {TokenClose, ")", 3}}, nil},
		{"a--b", nil, ErrInvalidChar},
		// erroneous symbols
		{"$", nil, ErrInvalidChar},
		{"[1]", nil, ErrInvalidChar},
		{"1×2", []lexed{{TokenNumber, "1", 1}}, ErrInvalidChar},
		{"π", nil, ErrInvalidChar},
		{"\xff", nil, ErrInvalidChar},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		for _, want := range c.tokens {
			got, err := scan.next()
			if err != nil {
				t.Errorf("scanning %q: unexpected error %v before %v", c.src, err, want)
				break
			}
			if got.Kind != want.kind || got.String() != want.text || got.Pos != want.pos {
				t.Errorf("scanning %q: want %v, got %v %v@%d", c.src, want, got.Kind, got, got.Pos)
			}
		}
		if c.err == nil {
			if got, err := scan.next(); err != io.EOF {
				t.Errorf("scanning %q: extra token %v with error: %v", c.src, got, err)
			}
			continue
		}
		_, err := scan.next()
		if !errors.Is(err, c.err) {
			t.Errorf("scanning %q: want error %v, got %v", c.src, c.err, err)
		}
	}
}

func TestLexErrorPos(t *testing.T) {
	cases := []struct {
		src string
		col int
		msg string
	}{
		{"1+a", 3, `3: invalid character "a"`},
		{"  1.2.3", 3, `3: number has more than one decimal point "1.2."`},
		{"4 * .", 5, `5: decimal point must be followed by at least one digit "."`},
		{"ππ", 1, `1: invalid character "π"`},
		{"\xff", 1, `1: invalid character "\xff"`},
		{"2*\xc3(", 3, `3: invalid character "\xc3"`},
	}
	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		var err error
		for err == nil {
			_, err = scan.next()
		}
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("scanning %q: want *SyntaxError, got %#v", c.src, err)
			continue
		}
		if serr.Pos() != c.col {
			t.Errorf("scanning %q: want error at %d, got %d", c.src, c.col, serr.Pos())
		}
		if serr.Error() != c.msg {
			t.Errorf("scanning %q: want message %q, got %q", c.src, c.msg, serr.Error())
		}
	}
}
