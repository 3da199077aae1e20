package operations

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"opsCalc/internal/domain"
	"opsCalc/internal/pkg/email"
	"opsCalc/internal/ports"
)

const (
	msgInvalidInput    = "Invalid input"
	msgInvalidEmail    = "Invalid email format"
	msgEmailIsRequired = "Email is required"
	msgEmailRequired   = "Email required"
	msgIDRequired      = "Id required"
	msgNoHistory       = "No history found for the user"
	msgNothingToDelete = "No history found to delete"
	msgStoreFailure    = "unable to process request"
)

// Controller — маршруты истории операций: расчёт, история, удаление записи, сброс истории.
type Controller struct {
	uc  ports.IHistoryUseCase
	log *slog.Logger
}

// New создаёт контроллер операций.
func New(uc ports.IHistoryUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/operations")

	api.POST("", c.calculate)
	api.POST("/", c.calculate)
	api.GET("", c.history)
	api.GET("/", c.history)
	api.DELETE("/reset", c.reset)
	api.DELETE("/:id", c.clear)
	// Без id: отвечаем 400 "Id required", а не 404 роутера.
	api.DELETE("", c.clear)
	api.DELETE("/", c.clear)
}

// @Summary Выполнить вычисление
// @Description Сворачивает операнды оператором (+, -, *, /) слева направо и сохраняет операцию в историю пользователя.
// @Tags operations
// @Accept json
// @Produce json
// @Param request body CalculateRequest true "email, операнды и оператор"
// @Success 201 {object} CalculateResponse "Результат вычисления"
// @Failure 400 {object} ErrorResponse "Невалидный запрос"
// @Failure 422 {object} ErrorResponse "Невалидный email, операнды или оператор, деление на ноль, переполнение"
// @Router /api/operations [post]
func (c *Controller) calculate(ctx *gin.Context) {
	var req CalculateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("calculate bind failed", "error", err)
		status, msg := bindingStatus(err, msgInvalidInput)
		ctx.JSON(status, ErrorResponse{Message: msg})
		return
	}

	operands, err := ParseOperands(req.Operands)
	if err != nil {
		c.log.Warn("calculate operands rejected", "error", err)
		c.writeError(ctx, err, "")
		return
	}

	op, err := c.uc.PerformCalculation(ctx.Request.Context(), req.Email, operands, req.Operator)
	if err != nil {
		c.writeError(ctx, err, "")
		return
	}
	ctx.JSON(http.StatusCreated, CalculateResponse{Result: op.Result})
}

// @Summary Получить историю операций
// @Description Возвращает неудалённые операции пользователя, новые сначала
// @Tags operations
// @Produce json
// @Param email header string true "Email пользователя"
// @Success 200 {array} HistoryItem "Список операций"
// @Failure 400 {object} ErrorResponse "Нет email"
// @Failure 404 {object} ErrorResponse "История пуста"
// @Failure 422 {object} ErrorResponse "Невалидный email"
// @Router /api/operations [get]
func (c *Controller) history(ctx *gin.Context) {
	addr, ok := c.bindEmail(ctx, msgEmailIsRequired)
	if !ok {
		return
	}

	list, err := c.uc.GetHistory(ctx.Request.Context(), addr)
	if err != nil {
		c.writeError(ctx, err, msgNoHistory)
		return
	}
	if len(list) == 0 {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: msgNoHistory})
		return
	}
	ctx.JSON(http.StatusOK, toHistoryItems(list))
}

// @Summary Удалить запись истории
// @Description Мягко удаляет одну операцию пользователя
// @Tags operations
// @Param email header string true "Email пользователя"
// @Param id path string true "ID операции"
// @Success 204 "Удалено"
// @Failure 400 {object} ErrorResponse "Нет email или id"
// @Failure 404 {object} ErrorResponse "Запись не найдена"
// @Failure 422 {object} ErrorResponse "Невалидный email"
// @Router /api/operations/{id} [delete]
func (c *Controller) clear(ctx *gin.Context) {
	addr, ok := c.bindEmail(ctx, msgEmailRequired)
	if !ok {
		return
	}
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: msgIDRequired})
		return
	}

	if _, err := c.uc.ClearHistoryRecord(ctx.Request.Context(), addr, id); err != nil {
		c.writeError(ctx, err, msgNothingToDelete)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// @Summary Сбросить историю
// @Description Мягко удаляет все операции пользователя
// @Tags operations
// @Param email header string true "Email пользователя"
// @Success 204 "История сброшена"
// @Failure 400 {object} ErrorResponse "Нет email"
// @Failure 404 {object} ErrorResponse "Нечего удалять"
// @Failure 422 {object} ErrorResponse "Невалидный email"
// @Router /api/operations/reset [delete]
func (c *Controller) reset(ctx *gin.Context) {
	addr, ok := c.bindEmail(ctx, msgEmailRequired)
	if !ok {
		return
	}

	if _, err := c.uc.ResetHistory(ctx.Request.Context(), addr); err != nil {
		c.writeError(ctx, err, msgNothingToDelete)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// bindEmail читает заголовок email. При ошибке сам пишет ответ и возвращает ok == false.
func (c *Controller) bindEmail(ctx *gin.Context, missingMsg string) (string, bool) {
	var h EmailHeader
	if err := ctx.ShouldBindHeader(&h); err != nil {
		status, msg := bindingStatus(err, missingMsg)
		c.log.Warn("email header rejected", "status", status)
		ctx.JSON(status, ErrorResponse{Message: msg})
		return "", false
	}
	return h.Email, true
}

// bindingStatus переводит ошибку binding в статус: отсутствующее поле или кривой JSON — 400, невалидный email — 422.
func bindingStatus(err error, missingMsg string) (int, string) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return http.StatusBadRequest, missingMsg
	}
	invalidEmail := false
	for _, fe := range verrs {
		switch fe.Tag() {
		case email.Tag:
			invalidEmail = true
		default:
			return http.StatusBadRequest, missingMsg
		}
	}
	if invalidEmail {
		return http.StatusUnprocessableEntity, msgInvalidEmail
	}
	return http.StatusBadRequest, missingMsg
}

// writeError переводит ошибку use case в HTTP-ответ. Ошибки хранилища наружу не раскрываются.
func (c *Controller) writeError(ctx *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.log.Warn("request rejected", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: msgInvalidInput})
	case errors.Is(err, domain.ErrInvalidEmail):
		ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{Message: msgInvalidEmail})
	case errors.Is(err, domain.ErrTooFewOperands):
		ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{Message: "At least two operands are required"})
	case errors.Is(err, domain.ErrInvalidOperand):
		ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{Message: "All operands must be valid numbers"})
	case errors.Is(err, domain.ErrInvalidOperator), errors.Is(err, domain.ErrDivisionByZero), errors.Is(err, domain.ErrOutOfRange):
		c.log.Warn("calculation rejected", "error", err)
		ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: notFoundMsg})
	default:
		c.log.Error("store failure", "path", ctx.FullPath(), "error", err)
		_ = ctx.Error(err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: msgStoreFailure})
	}
}
