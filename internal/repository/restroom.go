package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/restroom_finder/internal/geo"
	"github.com/shenikar/restroom_finder/internal/models"
	"github.com/shenikar/restroom_finder/internal/service"
	"github.com/sirupsen/logrus"
)

// Срок жизни Redis-копии агрегата; строка в Postgres - источник правды кеша
const defaultSummaryTTL = 5 * time.Minute

type RestroomRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	logger      *logrus.Logger

	// Потолок на один вызов к хранилищу
	timeout time.Duration

	summaryTTL time.Duration
}

func NewRestroomRepository(db *pgxpool.Pool, redisClient *redis.Client, logger *logrus.Logger, timeout, summaryTTL time.Duration) *RestroomRepository {
	if summaryTTL <= 0 {
		summaryTTL = defaultSummaryTTL
	}
	return &RestroomRepository{
		db:          db,
		redisClient: redisClient,
		logger:      logger,
		timeout:     timeout,
		summaryTTL:  summaryTTL,
	}
}

// withTimeout навешивает потолок времени на один вызов к хранилищу
func (r *RestroomRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

// FetchCandidates возвращает кандидатов для поискового конвейера.
// box - необязательный прямоугольный пре-фильтр на стороне БД; он грубее
// истинного радиуса, итоговое решение принимает geo.FilterByRadius.
func (r *RestroomRepository) FetchCandidates(ctx context.Context, box *geo.Box) ([]models.Restroom, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, address, latitude, longitude, is_paid, created_at
		FROM restrooms
	`
	args := []any{}
	if box != nil {
		query += `
		WHERE latitude BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4
		`
		args = append(args, box.MinLat, box.MaxLat, box.MinLon, box.MaxLon)
	}
	query += ` ORDER BY created_at;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate restrooms: %w", err)
	}
	defer rows.Close()

	restrooms := make([]models.Restroom, 0)
	for rows.Next() {
		var restroom models.Restroom
		err := rows.Scan(
			&restroom.ID,
			&restroom.Name,
			&restroom.Address,
			&restroom.Latitude,
			&restroom.Longitude,
			&restroom.IsPaid,
			&restroom.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan restroom row: %w", err)
		}
		restrooms = append(restrooms, restroom)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error candidates iteration: %w", err)
	}
	return restrooms, nil
}

// GetRestroom возвращает туалет по его UUID
func (r *RestroomRepository) GetRestroom(ctx context.Context, id uuid.UUID) (*models.Restroom, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	restroom := &models.Restroom{}
	query := `
		SELECT id, name, address, latitude, longitude, is_paid, created_at
		FROM restrooms
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&restroom.ID,
		&restroom.Name,
		&restroom.Address,
		&restroom.Latitude,
		&restroom.Longitude,
		&restroom.IsPaid,
		&restroom.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("restroom with id %s: %w", id, service.ErrRestroomNotFound)
		}
		return nil, fmt.Errorf("failed to get restroom by id: %w", err)
	}
	return restroom, nil
}

// InsertRestroom создает запись туалета, БД присваивает id и created_at
func (r *RestroomRepository) InsertRestroom(ctx context.Context, restroom *models.Restroom) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO restrooms (name, address, latitude, longitude, is_paid)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		restroom.Name,
		restroom.Address,
		restroom.Latitude,
		restroom.Longitude,
		restroom.IsPaid,
	).Scan(&restroom.ID, &restroom.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert restroom: %w", err)
	}
	return nil
}

// FetchReviews возвращает все отзывы туалета, новые первыми
func (r *RestroomRepository) FetchReviews(ctx context.Context, restroomID uuid.UUID) ([]models.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, restroom_id, user_id, user_name, cleanliness, accessibility, quality, comment, created_at
		FROM reviews
		WHERE restroom_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, restroomID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0)
	for rows.Next() {
		var review models.Review
		err := rows.Scan(
			&review.ID,
			&review.RestroomID,
			&review.UserID,
			&review.UserName,
			&review.Cleanliness,
			&review.Accessibility,
			&review.Quality,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reviews iteration: %w", err)
	}
	return reviews, nil
}

// InsertReview добавляет append-only отзыв, БД присваивает id и created_at
func (r *RestroomRepository) InsertReview(ctx context.Context, review *models.Review) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO reviews (restroom_id, user_id, user_name, cleanliness, accessibility, quality, comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		review.RestroomID,
		review.UserID,
		review.UserName,
		review.Cleanliness,
		review.Accessibility,
		review.Quality,
		review.Comment,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

// FetchCachedSummary возвращает кешированный агрегат: сперва Redis,
// при промахе - строка ratings в Postgres. nil без ошибки означает,
// что кешированной строки нет (ни одного отзыва).
func (r *RestroomRepository) FetchCachedSummary(ctx context.Context, restroomID uuid.UUID) (*models.RatingSummary, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if summary := r.summaryFromRedis(ctx, restroomID); summary != nil {
		return summary, nil
	}

	summary := &models.RatingSummary{}
	query := `
		SELECT cleanliness, accessibility, quality
		FROM ratings
		WHERE restroom_id = $1;
	`
	err := r.db.QueryRow(ctx, query, restroomID).Scan(
		&summary.Cleanliness,
		&summary.Accessibility,
		&summary.Quality,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch cached summary: %w", err)
	}

	r.setSummaryRedis(ctx, restroomID, summary)
	return summary, nil
}

// UpsertCachedSummary перезаписывает кешированную строку агрегата (last-writer-wins)
// и сбрасывает Redis-копию
func (r *RestroomRepository) UpsertCachedSummary(ctx context.Context, restroomID uuid.UUID, summary models.RatingSummary) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO ratings (restroom_id, cleanliness, accessibility, quality)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (restroom_id) DO UPDATE SET
			cleanliness = EXCLUDED.cleanliness,
			accessibility = EXCLUDED.accessibility,
			quality = EXCLUDED.quality,
			updated_at = NOW();
	`
	_, err := r.db.Exec(ctx, query,
		restroomID,
		summary.Cleanliness,
		summary.Accessibility,
		summary.Quality,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert cached summary: %w", err)
	}

	if err := r.redisClient.Del(ctx, summaryKey(restroomID)).Err(); err != nil {
		// Строка в Postgres уже обновлена, протухшая Redis-копия сама умрет по TTL
		r.logger.WithError(err).WithField("restroom_id", restroomID).Warn("Failed to invalidate summary cache in Redis")
	}
	return nil
}

// summaryFromRedis пытается получить агрегат из Redis. Битое значение
// логируется отдельно и трактуется как промах кеша.
func (r *RestroomRepository) summaryFromRedis(ctx context.Context, restroomID uuid.UUID) *models.RatingSummary {
	val, err := r.redisClient.Get(ctx, summaryKey(restroomID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.WithError(err).WithField("restroom_id", restroomID).Warn("Failed to get summary from Redis")
		}
		return nil
	}

	summary := &models.RatingSummary{}
	if err := json.Unmarshal(val, summary); err != nil {
		r.logger.WithError(err).WithField("restroom_id", restroomID).Error("Malformed summary in Redis cache, treating as miss")
		return nil
	}
	return summary
}

// setSummaryRedis сохраняет агрегат в Redis, best effort
func (r *RestroomRepository) setSummaryRedis(ctx context.Context, restroomID uuid.UUID, summary *models.RatingSummary) {
	val, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := r.redisClient.Set(ctx, summaryKey(restroomID), val, r.summaryTTL).Err(); err != nil {
		r.logger.WithError(err).WithField("restroom_id", restroomID).Warn("Failed to set summary in Redis")
	}
}

func summaryKey(restroomID uuid.UUID) string {
	return fmt.Sprintf("summary:%s", restroomID.String())
}
