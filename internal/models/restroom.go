package models

import (
	"time"

	"github.com/google/uuid"
)

// Restroom - неизменяемый снимок общественного туалета.
// Координаты в градусах WGS-84.
type Restroom struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	IsPaid    bool      `json:"is_paid"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingSummary - кешируемый агрегат оценок по трем осям, каждая в [0,5].
// Всегда выводим из полного набора отзывов: среднее арифметическое по оси,
// 0 если отзывов нет.
type RatingSummary struct {
	Cleanliness   float64 `json:"cleanliness"`
	Accessibility float64 `json:"accessibility"`
	Quality       float64 `json:"quality"`
}

// Mean возвращает среднее трех осей (ключ сортировки "rating")
func (s RatingSummary) Mean() float64 {
	return (s.Cleanliness + s.Accessibility + s.Quality) / 3
}

// Review - append-only отзыв пользователя. Все три оценки обязательны (1..5).
type Review struct {
	ID            uuid.UUID `json:"id"`
	RestroomID    uuid.UUID `json:"restroom_id"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	Cleanliness   int       `json:"cleanliness"`
	Accessibility int       `json:"accessibility"`
	Quality       int       `json:"quality"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// RankedResult - элемент выдачи поиска: туалет с вычисленной дистанцией и агрегатом
type RankedResult struct {
	Restroom      Restroom      `json:"restroom"`
	DistanceMiles float64       `json:"distance_miles"`
	Ratings       RatingSummary `json:"ratings"`
}
