package calc

import "github.com/shopspring/decimal"

// DefaultPlaces is the number of digits after the decimal point to which
// quotients are rounded by default.
const DefaultPlaces = 28

// defaultBigPrec is the precision in bits of BigPow(0).
const defaultBigPrec = 128

// Option is an option for evaluation.
type Option interface {
	calcOption(config) config
}

type (
	placesopt int32
	bigpowopt uint
)

// config is the evaluation configuration. It is also an Option.
type config struct {
	// places is the number of digits kept after the decimal point by
	// division.
	places int32
	// bigprec is the precision of fractional exponentiation with bigfloat,
	// or 0 to use float64.
	bigprec uint
}

var defaultConfig = config{places: DefaultPlaces}

// Places sets the number of digits after the decimal point kept by division.
// Negative values are treated as 0.
func Places(n int32) Option {
	if n < 0 {
		n = 0
	}
	return placesopt(n)
}

func (o placesopt) calcOption(c config) config {
	c.places = int32(o)
	return c
}

// BigPow computes exponentiation with exact decimal arithmetic for integer
// exponents and with arbitrary-precision floats of prec bits otherwise,
// instead of through float64. If prec is 0, the precision is 128 bits.
// Results of fractional exponents are rounded like quotients.
func BigPow(prec uint) Option {
	if prec == 0 {
		prec = defaultBigPrec
	}
	return bigpowopt(prec)
}

func (o bigpowopt) calcOption(c config) config {
	c.bigprec = uint(o)
	return c
}

func (o config) calcOption(c config) config {
	return o
}

func newConfig(opts []Option) config {
	c := defaultConfig
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.calcOption(c)
	}
	return c
}

// Calculator is a preset of evaluation options. A Calculator is immutable, so
// it is safe to use concurrently.
type Calculator struct {
	cfg config
}

// New creates a calculator with the given options applied in order.
func New(opts ...Option) *Calculator {
	return &Calculator{cfg: newConfig(opts)}
}

// Calculate evaluates an infix expression.
func (c *Calculator) Calculate(expr string) (decimal.Decimal, error) {
	return Calculate(expr, c.cfg)
}

// Evaluate evaluates a postfix expression.
func (c *Calculator) Evaluate(p Postfix) (decimal.Decimal, error) {
	return Evaluate(p, c.cfg)
}

// Places returns the number of digits after the decimal point kept by
// division.
func (c *Calculator) Places() int32 {
	return c.cfg.places
}
