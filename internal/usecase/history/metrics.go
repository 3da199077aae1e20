package history

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"opsCalc/internal/domain"
)

var calculationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "opscalc",
		Name:      "calculations_total",
		Help:      "Calculations by operator and outcome",
	},
	[]string{"operator", "outcome"},
)

// operatorLabel ограничивает кардинальность метки: неизвестные операторы сводятся к "other".
func operatorLabel(operator string) string {
	switch operator {
	case domain.OpAdd, domain.OpSub, domain.OpMul, domain.OpDiv:
		return operator
	}
	return "other"
}

func outcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, domain.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, domain.ErrInvalidOperator):
		return "invalid_operator"
	default:
		return "error"
	}
}
