package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateRestroomRequest DTO для создания туалета.
// Координаты - указатели: required проверяет наличие поля,
// а нулевая широта/долгота (экватор, нулевой меридиан) остается валидной.
// @Description DTO для создания туалета
type CreateRestroomRequest struct {
	Name      string   `json:"name" validate:"required,min=2,max=255"`
	Address   string   `json:"address" validate:"required,min=2,max=512"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	IsPaid    bool     `json:"is_paid"`
}

// SearchRequest DTO для поиска ближайших туалетов
// @Description DTO для поиска ближайших туалетов
type SearchRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	// Радиус из фиксированного набора настроек; 0 означает дефолт из конфига
	RadiusMiles float64 `json:"radius_miles" validate:"omitempty,oneof=1 2 3 5 10 20 50"`
	Sort        string  `json:"sort" validate:"omitempty,oneof=distance rating cleanliness accessibility quality"`
}

// SubmitReviewRequest DTO для отправки отзыва.
// Пользователь передается явно, не из амбиентной сессии.
type SubmitReviewRequest struct {
	UserID        string `json:"user_id" validate:"required"`
	UserName      string `json:"user_name" validate:"required"`
	Cleanliness   int    `json:"cleanliness" validate:"required,min=1,max=5"`
	Accessibility int    `json:"accessibility" validate:"required,min=1,max=5"`
	Quality       int    `json:"quality" validate:"required,min=1,max=5"`
	Comment       string `json:"comment,omitempty"`
}

// RestroomResponse DTO для ответа с информацией о туалете
// @Description DTO для ответа с информацией о туалете
type RestroomResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	IsPaid    bool      `json:"is_paid"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingSummaryResponse DTO агрегата оценок
type RatingSummaryResponse struct {
	Cleanliness   float64 `json:"cleanliness"`
	Accessibility float64 `json:"accessibility"`
	Quality       float64 `json:"quality"`
}

// RankedResultResponse DTO одного элемента поисковой выдачи
type RankedResultResponse struct {
	RestroomResponse
	DistanceMiles float64               `json:"distance_miles"`
	Ratings       RatingSummaryResponse `json:"ratings"`
}

// ReviewResponse DTO отзыва
type ReviewResponse struct {
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

// RestroomDetailsResponse DTO туалета с агрегатом и отзывами
type RestroomDetailsResponse struct {
	Restroom RestroomResponse      `json:"restroom"`
	Ratings  RatingSummaryResponse `json:"ratings"`
	Reviews  []ReviewResponse      `json:"reviews"`
}

// SubmitReviewResponse DTO ответа на отзыв: свежепересчитанный агрегат
type SubmitReviewResponse struct {
	Ratings RatingSummaryResponse `json:"ratings"`
}
