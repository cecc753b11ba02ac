package calc

// Associativity is the grouping of repeated operators of equal precedence.
type Associativity int8

const (
	// Left groups a-b-c as (a-b)-c.
	Left Associativity = iota
	// Right groups a^b^c as a^(b^c).
	Right
)

func (a Associativity) String() string {
	if a == Right {
		return "right"
	}
	return "left"
}

// OperatorInfo describes how a binary operator binds.
type OperatorInfo struct {
	// Prec is the precedence. Higher is more binding.
	Prec int8
	// Assoc is the associativity.
	Assoc Associativity
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

var optable = [...]struct {
	sym  byte
	info OperatorInfo
}{
	{'+', OperatorInfo{1, Left}},
	{'-', OperatorInfo{1, Left}},
	{'*', OperatorInfo{2, Left}},
	{'/', OperatorInfo{2, Left}},
	{'^', OperatorInfo{4, Right}},
}

// unaryprec is the precedence of unary minus while it waits on the operator
// stack. It binds tighter than every binary operator except ^, so -2^2 is
// -(2^2) but 2/-4*2 is (2/(-4))*2.
const unaryprec int8 = 3

// Lookup returns the precedence and associativity of a binary operator.
func Lookup(sym byte) (OperatorInfo, bool) {
	for _, op := range optable {
		if op.sym == sym {
			return op.info, true
		}
	}
	return OperatorInfo{}, false
}

// IsOperator reports whether sym is a binary operator.
func IsOperator(sym byte) bool {
	_, ok := Lookup(sym)
	return ok
}

// dominates reports whether an operator with info top, waiting on the stack,
// must be applied before pushing op.
func (top OperatorInfo) dominates(op OperatorInfo) bool {
	if top.Prec != op.Prec {
		return top.Prec > op.Prec
	}
	return op.Assoc == Left
}
