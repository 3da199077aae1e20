package domain

import (
	"fmt"
	"math"
)

// Compute сворачивает операнды слева направо выбранным оператором.
// Для "+" аккумулятор начинается с 0, для "*" с 1, для "-" и "/" с первого операнда.
// Деление проверяет все последующие операнды на ноль до начала вычислений.
// Результат вне диапазона float64 (±Inf, NaN) отклоняется с ErrOutOfRange: его нельзя ни сохранить, ни отдать в JSON.
func Compute(operands []float64, operator string) (float64, error) {
	if len(operands) < MinOperands {
		return 0, ErrTooFewOperands
	}

	var acc float64
	switch operator {
	case OpAdd:
		for _, v := range operands {
			acc += v
		}
	case OpSub:
		acc = operands[0]
		for _, v := range operands[1:] {
			acc -= v
		}
	case OpMul:
		acc = 1.0
		for _, v := range operands {
			acc *= v
		}
	case OpDiv:
		for _, v := range operands[1:] {
			if v == 0 {
				return 0, ErrDivisionByZero
			}
		}
		acc = operands[0]
		for _, v := range operands[1:] {
			acc /= v
		}
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidOperator, operator)
	}

	if math.IsInf(acc, 0) || math.IsNaN(acc) {
		return 0, ErrOutOfRange
	}
	return acc, nil
}
