package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shenikar/restroom_finder/internal/config"
	"github.com/shenikar/restroom_finder/internal/geo"
	"github.com/shenikar/restroom_finder/internal/models"
	"github.com/shenikar/restroom_finder/internal/rating"
	"github.com/shenikar/restroom_finder/internal/refresh"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// RestroomRepository определяет контракт персистентного коллаборатора
type RestroomRepository interface {
	FetchCandidates(ctx context.Context, box *geo.Box) ([]models.Restroom, error)
	GetRestroom(ctx context.Context, id uuid.UUID) (*models.Restroom, error)
	InsertRestroom(ctx context.Context, restroom *models.Restroom) error
	FetchReviews(ctx context.Context, restroomID uuid.UUID) ([]models.Review, error)
	InsertReview(ctx context.Context, review *models.Review) error
	FetchCachedSummary(ctx context.Context, restroomID uuid.UUID) (*models.RatingSummary, error)
	UpsertCachedSummary(ctx context.Context, restroomID uuid.UUID, summary models.RatingSummary) error
}

// RestroomDetails - запись туалета вместе с агрегатом и отзывами
type RestroomDetails struct {
	Restroom models.Restroom      `json:"restroom"`
	Ratings  models.RatingSummary `json:"ratings"`
	Reviews  []models.Review      `json:"reviews"`
}

// RestroomService определяет контракт бизнес-логики поиска и отзывов
type RestroomService interface {
	SearchNearby(ctx context.Context, query models.SearchQuery) ([]models.RankedResult, error)
	CreateRestroom(ctx context.Context, restroom *models.Restroom) error
	GetRestroomDetails(ctx context.Context, id uuid.UUID) (*RestroomDetails, error)
	ListReviews(ctx context.Context, restroomID uuid.UUID) ([]models.Review, error)
	SubmitReview(ctx context.Context, review *models.Review) (models.RatingSummary, error)
}

type restroomService struct {
	repo      RestroomRepository
	logger    *logrus.Logger
	cfg       *config.Config
	refresher refresh.Publisher
}

func NewRestroomService(repo RestroomRepository, logger *logrus.Logger, cfg *config.Config, refresher refresh.Publisher) RestroomService {
	return &restroomService{
		repo:      repo,
		logger:    logger,
		cfg:       cfg,
		refresher: refresher,
	}
}

// SearchNearby выполняет поисковый конвейер: кандидаты из хранилища ->
// точный фильтр по радиусу -> обогащение агрегатами -> стабильная сортировка.
func (s *restroomService) SearchNearby(ctx context.Context, query models.SearchQuery) ([]models.RankedResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "restroom",
		"method":       "SearchNearby",
		"radius_miles": query.RadiusMiles,
		"sort":         query.Sort.String(),
	})
	log.Info("Searching for nearby restrooms")

	if query.RadiusMiles <= 0 {
		log.Warn("Rejected search with non-positive radius")
		return nil, ErrInvalidRadius
	}

	origin := geo.Point{Latitude: query.Latitude, Longitude: query.Longitude}

	// Прямоугольный пре-фильтр режет выборку на стороне БД, итоговое решение
	// по радиусу всегда за точной формулой гаверсинусов ниже
	box := geo.BoundingBox(origin, query.RadiusMiles)
	candidates, err := s.repo.FetchCandidates(ctx, &box)
	if err != nil {
		log.WithError(err).Error("Failed to fetch candidate restrooms")
		return nil, fmt.Errorf("service: could not fetch candidates: %w", err)
	}

	matches := geo.FilterByRadius(origin, candidates, query.RadiusMiles)

	results, err := s.attachSummaries(ctx, matches)
	if err != nil {
		log.WithError(err).Error("Failed to attach rating summaries")
		return nil, fmt.Errorf("service: could not attach rating summaries: %w", err)
	}

	sortKey := query.Sort
	sort.SliceStable(results, func(i, j int) bool {
		return sortKey.Less(results[i], results[j])
	})

	log.WithField("count", len(results)).Info("Search completed")
	return results, nil
}

// attachSummaries подтягивает кешированные агрегаты для всех найденных записей.
// Чтения независимы, поэтому выполняются параллельно; любая ошибка валит весь
// поиск - частичная выдача никогда не возвращается как успех.
func (s *restroomService) attachSummaries(ctx context.Context, matches []geo.Match) ([]models.RankedResult, error) {
	results := make([]models.RankedResult, len(matches))

	g, gctx := errgroup.WithContext(ctx)
	for i, m := range matches {
		g.Go(func() error {
			summary, err := s.repo.FetchCachedSummary(gctx, m.Restroom.ID)
			if err != nil {
				return err
			}
			result := models.RankedResult{
				Restroom:      m.Restroom,
				DistanceMiles: m.DistanceMiles,
			}
			// Отсутствие кешированной строки означает нулевой агрегат (нет отзывов)
			if summary != nil {
				result.Ratings = *summary
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// CreateRestroom создает запись туалета
func (s *restroomService) CreateRestroom(ctx context.Context, restroom *models.Restroom) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "restroom",
		"method":  "CreateRestroom",
		"name":    restroom.Name,
	})
	log.Info("Attempting to create a new restroom")

	if err := s.repo.InsertRestroom(ctx, restroom); err != nil {
		log.WithError(err).Error("Failed to create restroom in repository")
		return fmt.Errorf("service: could not create restroom: %w", err)
	}

	log.WithField("restroom_id", restroom.ID).Info("Restroom created successfully")
	return nil
}

// GetRestroomDetails возвращает туалет с агрегатом и отзывами (новые первыми).
// Агрегат на этом пути чтения пересчитывается из полного набора отзывов,
// а не берется из кеша.
func (s *restroomService) GetRestroomDetails(ctx context.Context, id uuid.UUID) (*RestroomDetails, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "restroom",
		"method":      "GetRestroomDetails",
		"restroom_id": id,
	})
	log.Info("Fetching restroom details")

	restroom, err := s.repo.GetRestroom(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get restroom from repository")
		return nil, fmt.Errorf("service: could not get restroom: %w", err)
	}

	reviews, err := s.repo.FetchReviews(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to fetch reviews from repository")
		return nil, fmt.Errorf("service: could not fetch reviews: %w", err)
	}

	return &RestroomDetails{
		Restroom: *restroom,
		Ratings:  rating.Summarize(reviews),
		Reviews:  reviews,
	}, nil
}

// ListReviews возвращает отзывы туалета, новые первыми
func (s *restroomService) ListReviews(ctx context.Context, restroomID uuid.UUID) ([]models.Review, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "restroom",
		"method":      "ListReviews",
		"restroom_id": restroomID,
	})
	log.Info("Listing reviews")

	reviews, err := s.repo.FetchReviews(ctx, restroomID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch reviews from repository")
		return nil, fmt.Errorf("service: could not fetch reviews: %w", err)
	}

	log.WithField("count", len(reviews)).Info("Reviews listed successfully")
	return reviews, nil
}

// SubmitReview записывает отзыв и пересчитывает кешированный агрегат.
// Пересчет всегда полный, по всем отзывам туалета: инкрементальное обновление
// бегущего среднего требует чтения старого кеша и теряет записи под гонкой
// конкурентных авторов, полный пересчет идемпотентен. Вставка отзыва durable
// до попытки обновить кеш; если обновление кеша падает, возвращается
// PartialWriteError, а пересчет ставится в очередь воркера.
func (s *restroomService) SubmitReview(ctx context.Context, review *models.Review) (models.RatingSummary, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "restroom",
		"method":      "SubmitReview",
		"restroom_id": review.RestroomID,
		"user_id":     review.UserID,
	})
	log.Info("Submitting review")

	// Валидация до любой записи: при отказе ничего не персистится
	if review.UserID == "" {
		log.Warn("Rejected review without user id")
		return models.RatingSummary{}, ErrMissingUser
	}
	if err := rating.ValidateScores(*review); err != nil {
		log.WithError(err).Warn("Rejected incomplete review")
		return models.RatingSummary{}, fmt.Errorf("%w: %v", ErrIncompleteReview, err)
	}

	if err := s.repo.InsertReview(ctx, review); err != nil {
		log.WithError(err).Error("Failed to insert review")
		return models.RatingSummary{}, fmt.Errorf("service: could not record review: %w", err)
	}

	reviews, err := s.repo.FetchReviews(ctx, review.RestroomID)
	if err != nil {
		// Отзыв уже записан, устарел только кеш - это частичный отказ
		log.WithError(err).Error("Review recorded but recompute read failed")
		s.enqueueRefresh(ctx, review.RestroomID, log)
		return models.RatingSummary{}, &PartialWriteError{RestroomID: review.RestroomID, Err: err}
	}

	summary := rating.Summarize(reviews)

	if err := s.repo.UpsertCachedSummary(ctx, review.RestroomID, summary); err != nil {
		log.WithError(err).Error("Review recorded but summary upsert failed")
		s.enqueueRefresh(ctx, review.RestroomID, log)
		return models.RatingSummary{}, &PartialWriteError{RestroomID: review.RestroomID, Err: err}
	}

	log.WithFields(logrus.Fields{
		"cleanliness":   summary.Cleanliness,
		"accessibility": summary.Accessibility,
		"quality":       summary.Quality,
	}).Info("Review submitted and summary updated")
	return summary, nil
}

// enqueueRefresh ставит пересчет агрегата в очередь воркера, best effort
func (s *restroomService) enqueueRefresh(ctx context.Context, restroomID uuid.UUID, log *logrus.Entry) {
	if err := s.refresher.Enqueue(ctx, restroomID); err != nil {
		log.WithError(err).Error("Failed to enqueue summary refresh")
	}
}
