package calc

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/zephyrtronium/bigfloat"
)

// pow computes first^second. With float64 exponentiation, the result carries
// the rounding error of float64. In either mode, results that float64 cannot
// represent are errors, so both modes accept the same inputs.
func (cfg config) pow(first, second decimal.Decimal) (decimal.Decimal, error) {
	f := math.Pow(first.InexactFloat64(), second.InexactFloat64())
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, &EvaluationError{
			Op:  "^",
			Err: ErrNotFinite,
			Msg: "result of " + first.String() + "^" + second.String() + " is " + ErrNotFinite.Error(),
		}
	}
	if cfg.bigprec == 0 {
		return decimal.NewFromFloat(f), nil
	}
	if second.IsInteger() && second.Abs().LessThanOrEqual(maxExactExp) {
		n := second.IntPart()
		if n >= 0 {
			return powint(first, n), nil
		}
		d := powint(first, -n)
		if d.IsZero() {
			// 0^-n overflows float64, so it is rejected above.
			return decimal.Decimal{}, &EvaluationError{Op: "^", Err: ErrDivisionByZero}
		}
		return decimal.NewFromInt(1).DivRound(d, cfg.places), nil
	}
	if first.IsZero() || f == 0 {
		return decimal.Zero, nil
	}
	r := bigpow(first.Abs(), second, cfg.bigprec, cfg.places)
	// A negative base only gets here with an integer exponent.
	if first.IsNegative() && second.Mod(two).Abs().Equal(decimal.NewFromInt(1)) {
		r = r.Neg()
	}
	return r, nil
}

var (
	two = decimal.NewFromInt(2)
	// maxExactExp is the largest exponent computed by exact multiplication.
	// Larger exponents go through bigfloat.
	maxExactExp = decimal.NewFromInt(1024)
)

// powint computes x^n exactly by repeated squaring.
func powint(x decimal.Decimal, n int64) decimal.Decimal {
	r := decimal.NewFromInt(1)
	for n > 0 {
		if n&1 != 0 {
			r = r.Mul(x)
		}
		n >>= 1
		if n > 0 {
			x = x.Mul(x)
		}
	}
	return r
}

// bigpow computes x^y for positive x to prec bits and rounds the result to
// places digits after the decimal point.
func bigpow(x, y decimal.Decimal, prec uint, places int32) decimal.Decimal {
	bx, _ := new(big.Float).SetPrec(prec).SetString(x.String())
	by, _ := new(big.Float).SetPrec(prec).SetString(y.String())
	z := new(big.Float).SetPrec(prec)
	bigfloat.Pow(z, bx, by)
	// Enough significant digits to represent prec bits.
	digits := int(float64(prec)*math.Log10(2)) + 1
	r, err := decimal.NewFromString(z.Text('g', digits))
	if err != nil {
		panic("calc: bigfloat produced unparseable text: " + err.Error())
	}
	return r.Round(places)
}
