package operations

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	apihttp "opsCalc/internal/api/http"
	"opsCalc/internal/domain"
	"opsCalc/internal/mocks"
	"opsCalc/internal/usecase/history"
)

const testEmail = "a@b.com"

func newRouter(t *testing.T, uc *mocks.MockIHistoryUseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, apihttp.RegisterValidators())

	r := gin.New()
	New(uc, slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterRoutes(r)
	return r
}

func do(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var rdr io.Reader
	if body != "" {
		rdr = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Message
}

// =============================================================================
// POST /api/operations
// =============================================================================

func TestCalculate_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIHistoryUseCase(ctrl)
	uc.EXPECT().
		PerformCalculation(gomock.Any(), testEmail, []float64{10, 32}, "+").
		Return(&domain.Operation{ID: "op-1", Result: 42}, nil)

	r := newRouter(t, uc)
	w := do(r, http.MethodPost, "/api/operations", `{"email":"a@b.com","operands":[10,32],"operator":"+"}`, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp CalculateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 42.0, resp.Result)
}

func TestCalculate_TrailingSlash(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIHistoryUseCase(ctrl)
	uc.EXPECT().PerformCalculation(gomock.Any(), testEmail, []float64{2, 3}, "*").
		Return(&domain.Operation{Result: 6}, nil)

	r := newRouter(t, uc)
	w := do(r, http.MethodPost, "/api/operations/", `{"email":"a@b.com","operands":[2,3],"operator":"*"}`, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCalculate_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{name: "битый JSON", body: `{"email":`, wantStatus: http.StatusBadRequest, wantMsg: "Invalid input"},
		{name: "нет email", body: `{"operands":[1,2],"operator":"+"}`, wantStatus: http.StatusBadRequest, wantMsg: "Invalid input"},
		{name: "нет операндов", body: `{"email":"a@b.com","operator":"+"}`, wantStatus: http.StatusBadRequest, wantMsg: "Invalid input"},
		{name: "операнды не массив", body: `{"email":"a@b.com","operands":5,"operator":"+"}`, wantStatus: http.StatusBadRequest, wantMsg: "Invalid input"},
		{name: "нет оператора", body: `{"email":"a@b.com","operands":[1,2]}`, wantStatus: http.StatusBadRequest, wantMsg: "Invalid input"},
		{name: "нет оператора и кривой email", body: `{"email":"bad","operands":[1,2]}`, wantStatus: http.StatusBadRequest, wantMsg: "Invalid input"},
		{name: "кривой email", body: `{"email":"user@","operands":[1,2],"operator":"+"}`, wantStatus: http.StatusUnprocessableEntity, wantMsg: "Invalid email format"},
		{name: "один операнд", body: `{"email":"a@b.com","operands":[1],"operator":"+"}`, wantStatus: http.StatusUnprocessableEntity, wantMsg: "At least two operands are required"},
		{name: "пустой массив", body: `{"email":"a@b.com","operands":[],"operator":"+"}`, wantStatus: http.StatusUnprocessableEntity, wantMsg: "At least two operands are required"},
		{name: "строка в операндах", body: `{"email":"a@b.com","operands":[1,"2"],"operator":"+"}`, wantStatus: http.StatusUnprocessableEntity, wantMsg: "All operands must be valid numbers"},
		{name: "null в операндах", body: `{"email":"a@b.com","operands":[1,null],"operator":"+"}`, wantStatus: http.StatusUnprocessableEntity, wantMsg: "All operands must be valid numbers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// use case не вызывается
			r := newRouter(t, mocks.NewMockIHistoryUseCase(ctrl))

			w := do(r, http.MethodPost, "/api/operations", tt.body, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, w))
		})
	}
}

func TestCalculate_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "деление на ноль", err: domain.ErrDivisionByZero, wantStatus: http.StatusUnprocessableEntity, wantMsg: "division by zero is not allowed"},
		{name: "неизвестный оператор", err: domain.ErrInvalidOperator, wantStatus: http.StatusUnprocessableEntity, wantMsg: "invalid operator"},
		{name: "переполнение", err: domain.ErrOutOfRange, wantStatus: http.StatusUnprocessableEntity, wantMsg: "result is out of range"},
		{name: "ошибка хранилища", err: errors.New("mongo: connection refused"), wantStatus: http.StatusBadRequest, wantMsg: "unable to process request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIHistoryUseCase(ctrl)
			uc.EXPECT().PerformCalculation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			r := newRouter(t, uc)
			w := do(r, http.MethodPost, "/api/operations", `{"email":"a@b.com","operands":[10,0],"operator":"/"}`, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, w))
		})
	}
}

// Переполнение с настоящим use case: хранилище не вызывается, ответ 422 с телом.
func TestCalculate_OutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIOperationStore(ctrl)
	uc := history.New(store, nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	gin.SetMode(gin.TestMode)
	require.NoError(t, apihttp.RegisterValidators())
	r := gin.New()
	New(uc, slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterRoutes(r)

	w := do(r, http.MethodPost, "/api/operations", `{"email":"a@b.com","operands":[1e308,10],"operator":"*"}`, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "result is out of range", decodeMessage(t, w))
}

// =============================================================================
// GET /api/operations
// =============================================================================

func TestHistory_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIHistoryUseCase(ctrl)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	uc.EXPECT().GetHistory(gomock.Any(), testEmail).Return([]domain.Operation{
		{ID: "2", Email: testEmail, Operands: []float64{10, 32}, Operator: "+", Result: 42, CreatedAt: now},
		{ID: "1", Email: testEmail, Operands: []float64{9, 3}, Operator: "/", Result: 3, CreatedAt: now.Add(-time.Minute)},
	}, nil)

	r := newRouter(t, uc)
	w := do(r, http.MethodGet, "/api/operations", "", map[string]string{"email": testEmail})

	require.Equal(t, http.StatusOK, w.Code)
	var items []HistoryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "2", items[0].ID)
	assert.Equal(t, []float64{10, 32}, items[0].Operands)
	assert.Equal(t, 42.0, items[0].Result)
	assert.False(t, items[0].IsDeleted)
	assert.True(t, items[0].CreatedAt.Equal(now))
}

func TestHistory_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIHistoryUseCase(ctrl)
	uc.EXPECT().GetHistory(gomock.Any(), testEmail).Return([]domain.Operation{}, nil)

	r := newRouter(t, uc)
	w := do(r, http.MethodGet, "/api/operations", "", map[string]string{"email": testEmail})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No history found for the user", decodeMessage(t, w))
}

func TestHistory_EmailHeader(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
		wantMsg    string
	}{
		{name: "нет заголовка", headers: nil, wantStatus: http.StatusBadRequest, wantMsg: "Email is required"},
		{name: "пустой заголовок", headers: map[string]string{"email": ""}, wantStatus: http.StatusBadRequest, wantMsg: "Email is required"},
		{name: "кривой email", headers: map[string]string{"email": "user@"}, wantStatus: http.StatusUnprocessableEntity, wantMsg: "Invalid email format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			r := newRouter(t, mocks.NewMockIHistoryUseCase(ctrl))

			w := do(r, http.MethodGet, "/api/operations", "", tt.headers)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, w))
		})
	}
}

func TestHistory_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIHistoryUseCase(ctrl)
	uc.EXPECT().GetHistory(gomock.Any(), testEmail).Return(nil, errors.New("i/o timeout"))

	r := newRouter(t, uc)
	w := do(r, http.MethodGet, "/api/operations", "", map[string]string{"email": testEmail})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Body.String(), "i/o timeout")
}

// =============================================================================
// DELETE /api/operations/:id и /api/operations/reset
// =============================================================================

func TestClear_NoContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIHistoryUseCase(ctrl)
	uc.EXPECT().ClearHistoryRecord(gomock.Any(), testEmail, "12345").
		Return(&domain.Operation{ID: "12345", IsDeleted: true}, nil)

	r := newRouter(t, uc)
	w := do(r, http.MethodDelete, "/api/operations/12345", "", map[string]string{"email": testEmail})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestClear_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIHistoryUseCase(ctrl)
	uc.EXPECT().ClearHistoryRecord(gomock.Any(), testEmail, "missing").
		Return(nil, domain.ErrNotFound)

	r := newRouter(t, uc)
	w := do(r, http.MethodDelete, "/api/operations/missing", "", map[string]string{"email": testEmail})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No history found to delete", decodeMessage(t, w))
}

func TestClear_EmailHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newRouter(t, mocks.NewMockIHistoryUseCase(ctrl))

	w := do(r, http.MethodDelete, "/api/operations/12345", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email required", decodeMessage(t, w))

	w = do(r, http.MethodDelete, "/api/operations/12345", "", map[string]string{"email": "user@"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Invalid email format", decodeMessage(t, w))
}

func TestClear_IDRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newRouter(t, mocks.NewMockIHistoryUseCase(ctrl))

	for _, path := range []string{"/api/operations/", "/api/operations"} {
		w := do(r, http.MethodDelete, path, "", map[string]string{"email": testEmail})
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, "Id required", decodeMessage(t, w), path)
	}

	// Email проверяется раньше id
	w := do(r, http.MethodDelete, "/api/operations/", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email required", decodeMessage(t, w))
}

func TestReset_NoContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIHistoryUseCase(ctrl)
	// /reset не должен попасть в маршрут /:id
	uc.EXPECT().ResetHistory(gomock.Any(), testEmail).Return(int64(2), nil)

	r := newRouter(t, uc)
	w := do(r, http.MethodDelete, "/api/operations/reset", "", map[string]string{"email": testEmail})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestReset_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIHistoryUseCase(ctrl)
	uc.EXPECT().ResetHistory(gomock.Any(), testEmail).Return(int64(0), domain.ErrNotFound)

	r := newRouter(t, uc)
	w := do(r, http.MethodDelete, "/api/operations/reset", "", map[string]string{"email": testEmail})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No history found to delete", decodeMessage(t, w))
}

func TestReset_EmailHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newRouter(t, mocks.NewMockIHistoryUseCase(ctrl))

	w := do(r, http.MethodDelete, "/api/operations/reset", "", map[string]string{"email": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email required", decodeMessage(t, w))

	w = do(r, http.MethodDelete, "/api/operations/reset", "", map[string]string{"email": "username@domain@domain.com"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestParseOperands(t *testing.T) {
	got, err := ParseOperands([]any{1.5, -2.0, 0.0})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2, 0}, got)

	_, err = ParseOperands([]any{1.0})
	assert.ErrorIs(t, err, domain.ErrTooFewOperands)

	_, err = ParseOperands([]any{1.0, true})
	assert.ErrorIs(t, err, domain.ErrInvalidOperand)

	_, err = ParseOperands([]any{1.0, []any{2.0}})
	assert.ErrorIs(t, err, domain.ErrInvalidOperand)
}
