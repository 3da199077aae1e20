package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		operands []float64
		operator string
		want     float64
	}{
		{name: "сложение двух", operands: []float64{10, 32}, operator: "+", want: 42},
		{name: "сложение нескольких", operands: []float64{1, 2, 3, 4}, operator: "+", want: 10},
		{name: "вычитание двух", operands: []float64{10, 5}, operator: "-", want: 5},
		{name: "вычитание слева направо", operands: []float64{100, 30, 20}, operator: "-", want: 50},
		{name: "вычитание в минус", operands: []float64{5, 10}, operator: "-", want: -5},
		{name: "умножение", operands: []float64{5, 10}, operator: "*", want: 50},
		{name: "умножение на ноль", operands: []float64{5, 0, 7}, operator: "*", want: 0},
		{name: "деление", operands: []float64{10, 5}, operator: "/", want: 2},
		{name: "деление слева направо", operands: []float64{100, 5, 2}, operator: "/", want: 10},
		{name: "дробный результат", operands: []float64{1, 4}, operator: "/", want: 0.25},
		{name: "ноль в делимом", operands: []float64{0, 4}, operator: "/", want: 0},
		{name: "отрицательные числа", operands: []float64{-10, -5}, operator: "+", want: -15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.operands, tt.operator)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestCompute_Deterministic(t *testing.T) {
	operands := []float64{0.1, 0.2, 0.3}
	first, err := Compute(operands, "+")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		got, err := Compute(operands, "+")
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

func TestCompute_DivisionByZero(t *testing.T) {
	tests := []struct {
		name     string
		operands []float64
	}{
		{name: "второй операнд", operands: []float64{10, 0}},
		{name: "последний операнд", operands: []float64{10, 2, 0}},
		{name: "отрицательный ноль", operands: []float64{10, -0.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.operands, "/")
			assert.ErrorIs(t, err, ErrDivisionByZero)
		})
	}
}

func TestCompute_InvalidOperator(t *testing.T) {
	for _, op := range []string{"^", "", "%", "add", "**"} {
		_, err := Compute([]float64{2, 3}, op)
		assert.ErrorIs(t, err, ErrInvalidOperator, "operator %q", op)
	}
}

func TestCompute_TooFewOperands(t *testing.T) {
	_, err := Compute(nil, "+")
	assert.ErrorIs(t, err, ErrTooFewOperands)

	_, err = Compute([]float64{1}, "-")
	assert.ErrorIs(t, err, ErrTooFewOperands)
}

func TestCompute_DoesNotMutateOperands(t *testing.T) {
	operands := []float64{100, 5, 2}
	_, err := Compute(operands, "/")
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 5, 2}, operands)
}

func TestCompute_OutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		operands []float64
		operator string
	}{
		{name: "переполнение умножения", operands: []float64{1e308, 10}, operator: "*"},
		{name: "переполнение сложения", operands: []float64{1.7e308, 1.7e308}, operator: "+"},
		{name: "переполнение вычитания", operands: []float64{-1.7e308, 1.7e308}, operator: "-"},
		{name: "переполнение деления", operands: []float64{1e308, 1e-308}, operator: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.operands, tt.operator)
			assert.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}

func TestCompute_LargeButFinite(t *testing.T) {
	got, err := Compute([]float64{1e307, 10}, "*")
	require.NoError(t, err)
	assert.InDelta(t, 1e308, got, 1e295)
}
