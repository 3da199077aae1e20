package operations

import (
	"time"

	"opsCalc/internal/domain"
)

// CalculateRequest — запрос на вычисление (POST /api/operations).
// Операнды принимаются как []any: тип каждого проверяется отдельно, чтобы отличить 400 от 422.
type CalculateRequest struct {
	Email    string `json:"email" binding:"required,opsemail"`
	Operands []any  `json:"operands" binding:"required"`
	Operator string `json:"operator" binding:"required"`
}

// EmailHeader — заголовок email для чтения и удаления истории.
type EmailHeader struct {
	Email string `header:"email" binding:"required,opsemail"`
}

// CalculateResponse — ответ с результатом.
type CalculateResponse struct {
	Result float64 `json:"result"`
}

// ErrorResponse — тело любой ошибки.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HistoryItem — одна запись в истории (GET /api/operations).
type HistoryItem struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Operands  []float64 `json:"operands"`
	Operator  string    `json:"operator"`
	Result    float64   `json:"result"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
}

func toHistoryItems(list []domain.Operation) []HistoryItem {
	items := make([]HistoryItem, len(list))
	for i, op := range list {
		items[i] = HistoryItem{
			ID:        op.ID,
			Email:     op.Email,
			Operands:  op.Operands,
			Operator:  op.Operator,
			Result:    op.Result,
			IsDeleted: op.IsDeleted,
			CreatedAt: op.CreatedAt,
		}
	}
	return items
}

// ParseOperands проверяет количество и тип операндов. JSON-числа приходят как float64, всё остальное отклоняется.
func ParseOperands(raw []any) ([]float64, error) {
	if len(raw) < domain.MinOperands {
		return nil, domain.ErrTooFewOperands
	}
	out := make([]float64, len(raw))
	for i, v := range raw {
		f, ok := v.(float64)
		if !ok {
			return nil, domain.ErrInvalidOperand
		}
		out[i] = f
	}
	return out, nil
}
