package rating

import (
	"fmt"

	"github.com/shenikar/restroom_finder/internal/models"
)

const (
	MinScore = 1
	MaxScore = 5
)

// Summarize считает агрегат по полному набору отзывов: среднее арифметическое
// по каждой оси независимо, 0 при отсутствии отзывов. Чистая функция -
// write path сервиса всегда пересчитывает агрегат через нее по всем отзывам,
// а не инкрементально (см. service.SubmitReview).
func Summarize(reviews []models.Review) models.RatingSummary {
	if len(reviews) == 0 {
		return models.RatingSummary{}
	}

	var sumCleanliness, sumAccessibility, sumQuality float64
	for _, r := range reviews {
		sumCleanliness += float64(r.Cleanliness)
		sumAccessibility += float64(r.Accessibility)
		sumQuality += float64(r.Quality)
	}

	n := float64(len(reviews))
	return models.RatingSummary{
		Cleanliness:   sumCleanliness / n,
		Accessibility: sumAccessibility / n,
		Quality:       sumQuality / n,
	}
}

// ValidateScores проверяет, что все три оценки отзыва заданы и лежат в 1..5.
// Частичные отзывы запрещены: нулевая ось означает незаполненную оценку.
func ValidateScores(r models.Review) error {
	if err := validateAxis("cleanliness", r.Cleanliness); err != nil {
		return err
	}
	if err := validateAxis("accessibility", r.Accessibility); err != nil {
		return err
	}
	return validateAxis("quality", r.Quality)
}

func validateAxis(name string, score int) error {
	if score < MinScore || score > MaxScore {
		return fmt.Errorf("%s score must be between %d and %d, got %d", name, MinScore, MaxScore, score)
	}
	return nil
}
