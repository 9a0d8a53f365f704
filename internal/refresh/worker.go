package refresh

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/restroom_finder/internal/config"
	"github.com/shenikar/restroom_finder/internal/models"
	"github.com/shenikar/restroom_finder/internal/rating"
	"github.com/sirupsen/logrus"
)

// SummaryRecomputer - минимальная поверхность хранилища, нужная воркеру:
// перечитать все отзывы и перезаписать кешированный агрегат
type SummaryRecomputer interface {
	FetchReviews(ctx context.Context, restroomID uuid.UUID) ([]models.Review, error)
	UpsertCachedSummary(ctx context.Context, restroomID uuid.UUID, summary models.RatingSummary) error
}

// Worker разбирает очередь пересчета агрегатов. Сюда попадают туалеты,
// у которых вставка отзыва прошла, а обновление кеша - нет: воркер повторяет
// только шаг агрегации, сам отзыв уже durable.
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	recomputer  SummaryRecomputer
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config, recomputer SummaryRecomputer) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		recomputer:  recomputer,
	}
}

// Start запускает горутину для обработки очереди пересчета
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting summary refresh worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping summary refresh worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка (очереди)
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, refreshQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop refresh job from Redis")
					// Ждем перед повторной попыткой, не переживая отмену контекста
					select {
					case <-ctx.Done():
					case <-time.After(w.cfg.RefreshBaseDelay):
					}
					continue
				}

				// result[0] - ключ, result[1] - значение
				restroomID, err := uuid.Parse(result[1])
				if err != nil {
					w.logger.WithError(err).Error("Failed to parse restroom id from refresh queue")
					continue
				}

				w.processRefresh(ctx, restroomID)
			}
		}
	}()
}

// processRefresh пересчитывает агрегат с повторами и экспоненциальной задержкой.
// Пересчет идемпотентен, лишний прогон безопасен.
func (w *Worker) processRefresh(ctx context.Context, restroomID uuid.UUID) {
	log := w.logger.WithField("restroom_id", restroomID)
	log.Debug("Processing summary refresh job...")

	maxRetries := w.cfg.RefreshMaxRetries
	baseDelay := w.cfg.RefreshBaseDelay

	for i := 0; i < maxRetries; i++ {
		reviews, err := w.recomputer.FetchReviews(ctx, restroomID)
		if err != nil {
			log.WithError(err).Warnf("Failed to fetch reviews for refresh. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			if !w.sleepBackoff(ctx, baseDelay) {
				log.Info("Context canceled, abandoning summary refresh.")
				return
			}
			baseDelay *= 2 // Экспоненциальная задержка
			continue
		}

		summary := rating.Summarize(reviews)

		if err := w.recomputer.UpsertCachedSummary(ctx, restroomID, summary); err != nil {
			log.WithError(err).Warnf("Failed to upsert refreshed summary. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			if !w.sleepBackoff(ctx, baseDelay) {
				log.Info("Context canceled, abandoning summary refresh.")
				return
			}
			baseDelay *= 2 // Экспоненциальная задержка
			continue
		}

		log.Info("Summary refreshed successfully.")
		return
	}

	log.Errorf("Failed to refresh summary after %d retries.", maxRetries)
}

// sleepBackoff ждет заданную паузу либо отмену контекста.
// false означает, что контекст отменен и повторять больше не нужно.
func (w *Worker) sleepBackoff(ctx context.Context, delay time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(delay):
		return true
	}
}
