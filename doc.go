// Package calc implements a decimal calculator for infix arithmetic.
//
// Expressions contain numbers like 12 or 3.75, the binary operators
// + - * / ^, parentheses, and unary minus. "a^b" is exponentiation, and it
// groups to the right, so "2^3^2" is "2^(3^2)". Evaluation converts the
// expression to postfix form with the shunting-yard algorithm, then runs the
// postfix form on an operand stack.
//
// Arithmetic is exact decimal arithmetic except for two operations. Division
// rounds to a fixed number of places after the decimal point. Exponentiation
// goes through float64 unless the BigPow option is given.
package calc
