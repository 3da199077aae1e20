// Package email проверяет формат адреса электронной почты.
package email

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Tag — имя тега валидации для структур запросов (binding:"opsemail").
const Tag = "opsemail"

// Части адреса:
// локальная часть — атомы из букв, цифр и _%+- через одиночные точки (без точки в начале и конце);
// домен — минимум две метки через точку, метка не начинается и не заканчивается дефисом.
const (
	localPart   = `[A-Za-z0-9_%+\-]+(?:\.[A-Za-z0-9_%+\-]+)*`
	domainLabel = `[A-Za-z0-9](?:[A-Za-z0-9\-]*[A-Za-z0-9])?`
)

var pattern = regexp.MustCompile(`^` + localPart + `@` + domainLabel + `(?:\.` + domainLabel + `)+$`)

// Valid сообщает, похожа ли строка на один адрес электронной почты. DNS не проверяется.
func Valid(s string) bool {
	return pattern.MatchString(s)
}

// Register регистрирует тег Tag в валидаторе (например, в движке binding gin).
func Register(v *validator.Validate) error {
	return v.RegisterValidation(Tag, func(fl validator.FieldLevel) bool {
		return Valid(fl.Field().String())
	})
}
