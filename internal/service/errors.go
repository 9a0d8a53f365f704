package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrInvalidRadius - невалидный поисковый запрос: радиус должен быть положительным
	ErrInvalidRadius = errors.New("search radius must be positive")

	// ErrIncompleteReview - отзыв без одной из трех обязательных оценок
	ErrIncompleteReview = errors.New("review must rate all three axes")

	// ErrMissingUser - отзыв без явного идентификатора пользователя
	ErrMissingUser = errors.New("review must carry an explicit user id")

	// ErrRestroomNotFound - туалет с таким id не существует
	ErrRestroomNotFound = errors.New("restroom not found")
)

// PartialWriteError - отзыв записан, но кешированный агрегат не обновлен.
// Отличим от полного отказа: вызывающий может повторить только шаг агрегации,
// сам отзыв уже durable.
type PartialWriteError struct {
	RestroomID uuid.UUID
	Err        error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("review recorded but rating cache not updated for restroom %s: %v", e.RestroomID, e.Err)
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}
