package calc

import (
	"testing"

	"github.com/chronois/avrora/internal/usage"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2 плюс 2", "2 + 2"},
		{"10 мінус 3", "10 - 3"},
		{"6 помножити на 7", "6 * 7"},
		{"6 помножити 7", "6 * 7"},
		{"8 поділити на 2", "8 / 2"},
		{"8 ділення 2", "8 / 2"},
		{"1 додати 2 відняти 3", "1 + 2 - 3"},
		{" 5 ", "5"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate("2 + 2.5 * 3 / 1 - 4"))

	err := Validate("2 + a")
	require.Error(t, err)
	require.Equal(t, usage.ErrBadExpression, usage.KindOf(err))

	require.Error(t, Validate("2 + (3)"))
	require.Error(t, Validate("os.exit(1)"))
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2 плюс 2", "4"},
		{"10 мінус 15", "-5"},
		{"6 помножити на 7", "42"},
		{"7 поділити на 2", "3.5"},
		{"8 поділити на 2", "4"},
		{"1.5 плюс 1.25", "2.75"},
		{"2 плюс 2 помножити на 2", "6"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Calculate(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCalculate_RejectsBeforeEvaluation(t *testing.T) {
	_, err := Calculate("2 плюс a")
	require.Error(t, err)
	require.Equal(t, usage.ErrBadExpression, usage.KindOf(err))
}

func TestCalculate_Errors(t *testing.T) {
	_, err := Calculate("1 поділити на 0")
	require.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Calculate("   ")
	require.ErrorIs(t, err, ErrEmpty)

	_, err = Calculate("2 плюс")
	require.Error(t, err)
	require.False(t, usage.IsUserInput(err))
}

func TestEvaluate_NonFinite(t *testing.T) {
	tests := []struct {
		expression string
		want       error
	}{
		{"1 / 0", ErrDivisionByZero},
		{"0 / 0.0", ErrDivisionByZero},
		{"5 + 1 / -0", ErrDivisionByZero},
		{"2 ** 100000", ErrNotFinite},
		{"10 ** 400 / 2", ErrNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			_, err := Evaluate(tt.expression)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDividesByZero(t *testing.T) {
	require.True(t, dividesByZero("1 / 0"))
	require.True(t, dividesByZero("3/0.00"))
	require.False(t, dividesByZero("1 / 0.5"))
	require.False(t, dividesByZero("10 - 0"))
	require.False(t, dividesByZero("1 / 10"))
}
