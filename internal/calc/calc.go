// Package calc evaluates arithmetic dictated in words ("2 плюс 2").
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/chronois/avrora/internal/phrases"
	"github.com/chronois/avrora/internal/usage"
)

// AllowedChars is everything a normalised expression may contain.
const AllowedChars = "0123456789+-*/. "

// connective is dropped after operator words are replaced ("помножити на").
const connective = "на"

var (
	// ErrDivisionByZero is returned when a divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNotFinite is returned when the result overflows to infinity.
	ErrNotFinite = errors.New("result is not a finite number")

	// ErrEmpty is returned for an expression with nothing to compute.
	ErrEmpty = errors.New("empty expression")
)

var operators = []struct {
	words  []string
	symbol string
}{
	{phrases.CalcPlus, "+"},
	{phrases.CalcMinus, "-"},
	{phrases.CalcMul, "*"},
	{phrases.CalcDiv, "/"},
}

// Normalize replaces operator words with symbols and removes the
// connective. The result is not validated.
func Normalize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	for _, op := range operators {
		for _, w := range op.words {
			s = strings.ReplaceAll(s, w, op.symbol)
		}
	}
	s = strings.ReplaceAll(s, connective, "")
	return strings.TrimSpace(s)
}

// Validate rejects anything outside AllowedChars.
func Validate(expression string) error {
	for _, r := range expression {
		if !strings.ContainsRune(AllowedChars, r) {
			return usage.BadExpression(expression)
		}
	}
	return nil
}

// Evaluate computes a validated expression and formats the result.
// Unvalidated input is refused.
func Evaluate(expression string) (string, error) {
	if err := Validate(expression); err != nil {
		return "", err
	}
	if strings.TrimSpace(expression) == "" {
		return "", ErrEmpty
	}

	program, err := expr.Compile(expression)
	if err != nil {
		return "", fmt.Errorf("compile %q: %w", expression, err)
	}

	out, err := expr.Run(program, nil)
	if err != nil {
		return "", fmt.Errorf("evaluate %q: %w", expression, err)
	}

	res, err := format(out)
	if errors.Is(err, ErrNotFinite) && dividesByZero(expression) {
		return "", ErrDivisionByZero
	}
	return res, err
}

// Calculate normalises, validates and evaluates text.
func Calculate(text string) (string, error) {
	return Evaluate(Normalize(text))
}

func format(v any) (string, error) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case float64:
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return "", ErrNotFinite
		}
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unexpected result type %T", v)
	}
}

// dividesByZero reports whether any "/" is followed by a literal zero.
// Without parentheses the right operand of a division is always a literal.
func dividesByZero(expression string) bool {
	for i := 0; i < len(expression); i++ {
		if expression[i] != '/' {
			continue
		}
		rest := strings.TrimLeft(expression[i+1:], " +-")
		end := strings.IndexFunc(rest, func(r rune) bool { return (r < '0' || r > '9') && r != '.' })
		if end < 0 {
			end = len(rest)
		}
		if v, err := strconv.ParseFloat(rest[:end], 64); err == nil && v == 0 {
			return true
		}
	}
	return false
}
