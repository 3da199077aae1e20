package domain

import (
	"errors"
	"time"
)

// Ошибки предметной области. Контроллеры сопоставляют их с HTTP-статусами через errors.Is.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrTooFewOperands  = errors.New("at least two operands are required")
	ErrInvalidOperand  = errors.New("all operands must be valid numbers")
	ErrInvalidOperator = errors.New("invalid operator")
	ErrDivisionByZero  = errors.New("division by zero is not allowed")
	ErrOutOfRange      = errors.New("result is out of range")
	ErrNotFound        = errors.New("no history found")
)

// Константы арифметических операций.
const (
	OpAdd = "+"
	OpSub = "-"
	OpMul = "*"
	OpDiv = "/"
)

// MinOperands — минимальное количество операндов в одной операции.
const MinOperands = 2

// Operation — запись истории: одна выполненная операция пользователя.
// Меняется только IsDeleted (мягкое удаление), остальные поля неизменны после создания.
type Operation struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Operands  []float64 `json:"operands"`
	Operator  string    `json:"operator"`
	Result    float64   `json:"result"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
}
