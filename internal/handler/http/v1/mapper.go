package v1

import (
	"github.com/shenikar/restroom_finder/internal/models"
	"github.com/shenikar/restroom_finder/internal/service"
)

// DTOToRestroomModel преобразует DTO создания в доменную модель
func DTOToRestroomModel(dto CreateRestroomRequest) *models.Restroom {
	return &models.Restroom{
		Name:      dto.Name,
		Address:   dto.Address,
		Latitude:  *dto.Latitude,
		Longitude: *dto.Longitude,
		IsPaid:    dto.IsPaid,
	}
}

// DTOToReviewModel преобразует DTO отзыва в доменную модель
func DTOToReviewModel(dto SubmitReviewRequest) *models.Review {
	return &models.Review{
		UserID:        dto.UserID,
		UserName:      dto.UserName,
		Cleanliness:   dto.Cleanliness,
		Accessibility: dto.Accessibility,
		Quality:       dto.Quality,
		Comment:       dto.Comment,
	}
}

// ModelToRestroomResponse преобразует доменную модель в DTO для ответа
func ModelToRestroomResponse(model models.Restroom) RestroomResponse {
	return RestroomResponse{
		ID:        model.ID,
		Name:      model.Name,
		Address:   model.Address,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		IsPaid:    model.IsPaid,
		CreatedAt: model.CreatedAt,
	}
}

// SummaryToResponse преобразует агрегат в DTO
func SummaryToResponse(summary models.RatingSummary) RatingSummaryResponse {
	return RatingSummaryResponse{
		Cleanliness:   summary.Cleanliness,
		Accessibility: summary.Accessibility,
		Quality:       summary.Quality,
	}
}

// ResultsToResponses преобразует ранжированную выдачу в слайс DTO,
// сохраняя порядок сортировки
func ResultsToResponses(results []models.RankedResult) []RankedResultResponse {
	responses := make([]RankedResultResponse, len(results))
	for i, result := range results {
		responses[i] = RankedResultResponse{
			RestroomResponse: ModelToRestroomResponse(result.Restroom),
			DistanceMiles:    result.DistanceMiles,
			Ratings:          SummaryToResponse(result.Ratings),
		}
	}
	return responses
}

// ModelToReviewResponse преобразует отзыв в DTO
func ModelToReviewResponse(model models.Review) ReviewResponse {
	return ReviewResponse{
		ID:            model.ID,
		RestroomID:    model.RestroomID,
		UserID:        model.UserID,
		UserName:      model.UserName,
		Cleanliness:   model.Cleanliness,
		Accessibility: model.Accessibility,
		Quality:       model.Quality,
		Comment:       model.Comment,
		CreatedAt:     model.CreatedAt,
	}
}

// ModelsToReviewResponses преобразует слайс отзывов в слайс DTO
func ModelsToReviewResponses(reviews []models.Review) []ReviewResponse {
	responses := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = ModelToReviewResponse(review)
	}
	return responses
}

// DetailsToResponse преобразует детали туалета в DTO
func DetailsToResponse(details *service.RestroomDetails) RestroomDetailsResponse {
	return RestroomDetailsResponse{
		Restroom: ModelToRestroomResponse(details.Restroom),
		Ratings:  SummaryToResponse(details.Ratings),
		Reviews:  ModelsToReviewResponses(details.Reviews),
	}
}
