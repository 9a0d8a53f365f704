package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/restroom_finder/internal/config"
	"github.com/shenikar/restroom_finder/internal/models"
	"github.com/shenikar/restroom_finder/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	restroomService service.RestroomService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(restroomService service.RestroomService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		restroomService: restroomService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Create a new restroom
// @Description Create a new restroom record. Requires API key.
// @Tags Restrooms
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param restroom body CreateRestroomRequest true "Restroom creation request"
// @Success 201 {object} RestroomResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /restrooms [post]
func (h *Handler) createRestroom(c *gin.Context) {
	var input CreateRestroomRequest
	log := h.logger.WithField("method", "createRestroom")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToRestroomModel(input)
	if err := h.restroomService.CreateRestroom(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create restroom in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToRestroomResponse(*model))
}

// @Summary Search nearby restrooms
// @Description Find restrooms within a radius of a point, ranked by the selected sort key. Requires API key.
// @Tags Search
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param query body SearchRequest true "Search request"
// @Success 200 {array} RankedResultResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /restrooms/search [post]
func (h *Handler) searchNearby(c *gin.Context) {
	var input SearchRequest
	log := h.logger.WithField("method", "searchNearby")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Непереданные параметры добиваются дефолтами настроек
	query := models.SearchQuery{
		Latitude:    *input.Latitude,
		Longitude:   *input.Longitude,
		RadiusMiles: input.RadiusMiles,
	}
	if query.RadiusMiles == 0 {
		query.RadiusMiles = h.cfg.DefaultRadiusMiles
	}
	if input.Sort == "" {
		query.Sort = models.ParseSortKey(h.cfg.DefaultSort)
	} else {
		query.Sort = models.ParseSortKey(input.Sort)
	}

	results, err := h.restroomService.SearchNearby(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRadius) {
			log.WithError(err).Warn("Rejected invalid search query")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to search nearby restrooms in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ResultsToResponses(results))
}

// @Summary Get restroom by ID
// @Description Get a restroom with its rating summary and reviews. Requires API key.
// @Tags Restrooms
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Restroom ID"
// @Success 200 {object} RestroomDetailsResponse
// @Failure 400 {object} map[string]string "Invalid restroom ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Restroom not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /restrooms/{id} [get]
func (h *Handler) getRestroom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restroom ID"})
		return
	}
	log := h.logger.WithField("method", "getRestroom").WithField("id", id)

	details, err := h.restroomService.GetRestroomDetails(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRestroomNotFound) {
			log.WithError(err).Warn("Restroom not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "restroom not found"})
			return
		}
		log.WithError(err).Error("Failed to get restroom from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, DetailsToResponse(details))
}

// @Summary List reviews of a restroom
// @Description List all reviews of a restroom, newest first. Requires API key.
// @Tags Reviews
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Restroom ID"
// @Success 200 {array} ReviewResponse
// @Failure 400 {object} map[string]string "Invalid restroom ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /restrooms/{id}/reviews [get]
func (h *Handler) listReviews(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restroom ID"})
		return
	}
	log := h.logger.WithField("method", "listReviews").WithField("id", id)

	reviews, err := h.restroomService.ListReviews(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to list reviews from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToReviewResponses(reviews))
}

// @Summary Submit a review
// @Description Submit a review with all three axis scores and recompute the rating summary. Requires API key.
// @Tags Reviews
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Restroom ID"
// @Param review body SubmitReviewRequest true "Review submission request"
// @Success 201 {object} SubmitReviewResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error or partial write"
// @Router /restrooms/{id}/reviews [post]
func (h *Handler) submitReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restroom ID"})
		return
	}
	log := h.logger.WithField("method", "submitReview").WithField("id", id)

	var input SubmitReviewRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToReviewModel(input)
	model.RestroomID = id

	summary, err := h.restroomService.SubmitReview(c.Request.Context(), model)
	if err != nil {
		var partial *service.PartialWriteError
		switch {
		case errors.Is(err, service.ErrIncompleteReview), errors.Is(err, service.ErrMissingUser):
			log.WithError(err).Warn("Rejected invalid review")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &partial):
			// Отзыв записан, кеш не догнал: отличимый ответ, чтобы клиент
			// не перепосылал сам отзыв
			log.WithError(err).Error("Review recorded but rating cache not updated")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "rating cache not updated"})
		default:
			log.WithError(err).Error("Failed to submit review in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, SubmitReviewResponse{Ratings: SummaryToResponse(summary)})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
