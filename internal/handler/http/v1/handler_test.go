package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/restroom_finder/internal/config"
	"github.com/shenikar/restroom_finder/internal/models"
	"github.com/shenikar/restroom_finder/internal/service"
	"github.com/shenikar/restroom_finder/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockRestroomService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockRestroomService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:            []string{"test-api-key"},
		DefaultRadiusMiles: 5,
		DefaultSort:        "distance",
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func float64Ptr(v float64) *float64 {
	return &v
}

func TestCreateRestroom_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	restroomID := uuid.New()
	reqBody := CreateRestroomRequest{
		Name:      "Central Park Restroom",
		Address:   "100 Main St, Sunnyvale",
		Latitude:  float64Ptr(37.3687),
		Longitude: float64Ptr(-122.0364),
		IsPaid:    false,
	}
	expectedRestroom := &models.Restroom{
		ID:        restroomID,
		Name:      reqBody.Name,
		Address:   reqBody.Address,
		Latitude:  *reqBody.Latitude,
		Longitude: *reqBody.Longitude,
		IsPaid:    reqBody.IsPaid,
		CreatedAt: time.Now(),
	}

	mockService.EXPECT().
		CreateRestroom(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Restroom) error {
			*r = *expectedRestroom // Обновляем переданную модель
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/restrooms", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp RestroomResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, restroomID, resp.ID)
	assert.Equal(t, reqBody.Name, resp.Name)
}

func TestCreateRestroom_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateRestroom(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/restrooms", bytes.NewBufferString(`{"name": "test"`), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateRestroom_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateRestroomRequest{ // Отсутствует Name
		Address:   "100 Main St, Sunnyvale",
		Latitude:  float64Ptr(37.3687),
		Longitude: float64Ptr(-122.0364),
	}

	mockService.EXPECT().CreateRestroom(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/restrooms", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Name' failed on the 'required' tag")
}

func TestCreateRestroom_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateRestroomRequest{
		Name:      "Central Park Restroom",
		Address:   "100 Main St, Sunnyvale",
		Latitude:  float64Ptr(37.3687),
		Longitude: float64Ptr(-122.0364),
	}
	serviceError := errors.New("failed to insert restroom")

	mockService.EXPECT().
		CreateRestroom(gomock.Any(), gomock.Any()).
		Return(serviceError).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/restrooms", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestSearchNearby_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := SearchRequest{
		Latitude:    float64Ptr(37.3687),
		Longitude:   float64Ptr(-122.0364),
		RadiusMiles: 3,
		Sort:        "rating",
	}
	results := []models.RankedResult{
		{
			Restroom:      models.Restroom{ID: uuid.New(), Name: "Nearest"},
			DistanceMiles: 0.4,
			Ratings:       models.RatingSummary{Cleanliness: 4, Accessibility: 4, Quality: 4},
		},
		{
			Restroom:      models.Restroom{ID: uuid.New(), Name: "Farther"},
			DistanceMiles: 2.1,
			Ratings:       models.RatingSummary{Cleanliness: 3, Accessibility: 3, Quality: 3},
		},
	}

	mockService.EXPECT().
		SearchNearby(gomock.Any(), models.SearchQuery{
			Latitude:    *reqBody.Latitude,
			Longitude:   *reqBody.Longitude,
			RadiusMiles: reqBody.RadiusMiles,
			Sort:        models.SortByRating,
		}).
		Return(results, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/restrooms/search", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []RankedResultResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Nearest", resp[0].Name)
	assert.InDelta(t, 0.4, resp[0].DistanceMiles, 1e-9)
}

func TestSearchNearby_DefaultsApplied(t *testing.T) {
	// Радиус и сортировка не переданы - хендлер подставляет дефолты из конфига
	_, mockService, router := newTestHandler(t)
	reqBody := SearchRequest{
		Latitude:  float64Ptr(37.3687),
		Longitude: float64Ptr(-122.0364),
	}

	mockService.EXPECT().
		SearchNearby(gomock.Any(), models.SearchQuery{
			Latitude:    *reqBody.Latitude,
			Longitude:   *reqBody.Longitude,
			RadiusMiles: 5,
			Sort:        models.SortByDistance,
		}).
		Return([]models.RankedResult{}, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/restrooms/search", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []RankedResultResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Empty(t, resp)
}

func TestSearchNearby_ZeroCoordinatesAccepted(t *testing.T) {
	// Нулевая широта (экватор) - валидная координата, а не отсутствующее поле
	_, mockService, router := newTestHandler(t)
	reqBody := SearchRequest{
		Latitude:  float64Ptr(0),
		Longitude: float64Ptr(179),
	}

	mockService.EXPECT().
		SearchNearby(gomock.Any(), models.SearchQuery{
			Latitude:    0,
			Longitude:   179,
			RadiusMiles: 5,
			Sort:        models.SortByDistance,
		}).
		Return([]models.RankedResult{}, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/restrooms/search", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearchNearby_MissingCoordinates(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SearchNearby(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/restrooms/search", bytes.NewBufferString(`{"radius_miles": 5}`), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Latitude' failed on the 'required' tag")
}

func TestSearchNearby_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := SearchRequest{ // Радиус вне допустимого набора
		Latitude:    float64Ptr(37.3687),
		Longitude:   float64Ptr(-122.0364),
		RadiusMiles: 7,
	}

	mockService.EXPECT().SearchNearby(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/restrooms/search", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'RadiusMiles' failed on the 'oneof' tag")
}

func TestSearchNearby_InvalidRadius(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := SearchRequest{
		Latitude:    float64Ptr(37.3687),
		Longitude:   float64Ptr(-122.0364),
		RadiusMiles: 3,
	}

	mockService.EXPECT().
		SearchNearby(gomock.Any(), gomock.Any()).
		Return(nil, service.ErrInvalidRadius).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/restrooms/search", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "search radius must be positive")
}

func TestSearchNearby_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := SearchRequest{
		Latitude:  float64Ptr(37.3687),
		Longitude: float64Ptr(-122.0364),
	}
	serviceError := errors.New("database error")

	mockService.EXPECT().
		SearchNearby(gomock.Any(), gomock.Any()).
		Return(nil, serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/restrooms/search", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetRestroom_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	restroomID := uuid.New()
	details := &service.RestroomDetails{
		Restroom: models.Restroom{
			ID:        restroomID,
			Name:      "Retrieved Restroom",
			Address:   "100 Main St",
			Latitude:  37.3687,
			Longitude: -122.0364,
		},
		Ratings: models.RatingSummary{Cleanliness: 4, Accessibility: 4, Quality: 4},
		Reviews: []models.Review{
			{ID: uuid.New(), RestroomID: restroomID, UserID: "user1", Cleanliness: 4, Accessibility: 4, Quality: 4},
		},
	}

	mockService.EXPECT().GetRestroomDetails(gomock.Any(), restroomID).Return(details, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/restrooms/%s", restroomID.String()), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp RestroomDetailsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, restroomID, resp.Restroom.ID)
	assert.Equal(t, details.Restroom.Name, resp.Restroom.Name)
	assert.Len(t, resp.Reviews, 1)
}

func TestGetRestroom_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetRestroomDetails(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/restrooms/invalid-uuid", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid restroom ID")
}

func TestGetRestroom_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	restroomID := uuid.New()

	mockService.EXPECT().
		GetRestroomDetails(gomock.Any(), restroomID).
		Return(nil, fmt.Errorf("get restroom: %w", service.ErrRestroomNotFound)).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/restrooms/%s", restroomID.String()), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "restroom not found")
}

func TestGetRestroom_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	restroomID := uuid.New()
	serviceError := errors.New("database error")

	mockService.EXPECT().GetRestroomDetails(gomock.Any(), restroomID).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/restrooms/%s", restroomID.String()), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestListReviews_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	restroomID := uuid.New()
	reviews := []models.Review{
		{ID: uuid.New(), RestroomID: restroomID, UserID: "user2", UserName: "Bob", Cleanliness: 5, Accessibility: 5, Quality: 5},
		{ID: uuid.New(), RestroomID: restroomID, UserID: "user1", UserName: "Alice", Cleanliness: 3, Accessibility: 3, Quality: 3},
	}

	mockService.EXPECT().ListReviews(gomock.Any(), restroomID).Return(reviews, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/restrooms/%s/reviews", restroomID.String()), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ReviewResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Bob", resp[0].UserName)
}

func TestListReviews_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	restroomID := uuid.New()
	serviceError := errors.New("failed to fetch reviews")

	mockService.EXPECT().ListReviews(gomock.Any(), restroomID).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/restrooms/%s/reviews", restroomID.String()), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestSubmitReview_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	restroomID := uuid.New()
	reqBody := SubmitReviewRequest{
		UserID:        "user123",
		UserName:      "Alice",
		Cleanliness:   5,
		Accessibility: 5,
		Quality:       5,
		Comment:       "Spotless",
	}
	summary := models.RatingSummary{Cleanliness: 4, Accessibility: 4, Quality: 4}

	mockService.EXPECT().
		SubmitReview(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, review *models.Review) (models.RatingSummary, error) {
			assert.Equal(t, restroomID, review.RestroomID)
			assert.Equal(t, reqBody.UserID, review.UserID)
			return summary, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/restrooms/%s/reviews", restroomID.String()), bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp SubmitReviewResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, resp.Ratings.Cleanliness, 1e-9)
	assert.InDelta(t, 4.0, resp.Ratings.Quality, 1e-9)
}

func TestSubmitReview_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	restroomID := uuid.New()
	reqBody := SubmitReviewRequest{ // Отсутствует оценка Quality
		UserID:        "user123",
		UserName:      "Alice",
		Cleanliness:   5,
		Accessibility: 5,
	}

	mockService.EXPECT().SubmitReview(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/restrooms/%s/reviews", restroomID.String()), bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Quality' failed on the 'required' tag")
}

func TestSubmitReview_IncompleteReview(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	restroomID := uuid.New()
	reqBody := SubmitReviewRequest{
		UserID:        "user123",
		UserName:      "Alice",
		Cleanliness:   5,
		Accessibility: 5,
		Quality:       5,
	}

	mockService.EXPECT().
		SubmitReview(gomock.Any(), gomock.Any()).
		Return(models.RatingSummary{}, fmt.Errorf("%w: quality score 6 out of range", service.ErrIncompleteReview)).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/restrooms/%s/reviews", restroomID.String()), bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "review must rate all three axes")
}

func TestSubmitReview_PartialWrite(t *testing.T) {
	// Отзыв записан, но кеш агрегата не обновлен - отличимый ответ 500
	_, mockService, router := newTestHandler(t)
	restroomID := uuid.New()
	reqBody := SubmitReviewRequest{
		UserID:        "user123",
		UserName:      "Alice",
		Cleanliness:   5,
		Accessibility: 5,
		Quality:       5,
	}
	partialErr := &service.PartialWriteError{
		RestroomID: restroomID,
		Err:        errors.New("upsert failed"),
	}

	mockService.EXPECT().
		SubmitReview(gomock.Any(), gomock.Any()).
		Return(models.RatingSummary{}, partialErr).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/restrooms/%s/reviews", restroomID.String()), bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "rating cache not updated")
}

func TestSubmitReview_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	restroomID := uuid.New()
	reqBody := SubmitReviewRequest{
		UserID:        "user123",
		UserName:      "Alice",
		Cleanliness:   5,
		Accessibility: 5,
		Quality:       5,
	}
	serviceError := errors.New("failed to insert review")

	mockService.EXPECT().
		SubmitReview(gomock.Any(), gomock.Any()).
		Return(models.RatingSummary{}, serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/restrooms/%s/reviews", restroomID.String()), bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_BearerHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAPIKeyAuthMiddleware_NoKeysConfigured(t *testing.T) {
	// Без настроенных ключей middleware пропускает все запросы
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
