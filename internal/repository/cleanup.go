package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/restroom_finder/internal/models"
)

// Балковая поверхность для офлайн-джобы дедупликации (cmd/cleanup).
// Живой путь поиска и отзывов ее не использует.

// ListAllRestrooms возвращает все записи без фильтра, старые первыми
func (r *RestroomRepository) ListAllRestrooms(ctx context.Context) ([]models.Restroom, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, address, latitude, longitude, is_paid, created_at
		FROM restrooms
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list restrooms: %w", err)
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
		return nil, fmt.Errorf("error restrooms iteration: %w", err)
	}
	return restrooms, nil
}

// DeleteRestroomCascade удаляет дубликат вместе с его отзывами и строкой агрегата.
// Одна транзакция: либо дубликат исчезает целиком, либо не трогается вовсе.
func (r *RestroomRepository) DeleteRestroomCascade(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin cascade delete: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM reviews WHERE restroom_id = $1;`, id); err != nil {
		return fmt.Errorf("failed to delete reviews of restroom %s: %w", id, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM ratings WHERE restroom_id = $1;`, id); err != nil {
		return fmt.Errorf("failed to delete ratings of restroom %s: %w", id, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM restrooms WHERE id = $1;`, id); err != nil {
		return fmt.Errorf("failed to delete restroom %s: %w", id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit cascade delete: %w", err)
	}

	if err := r.redisClient.Del(ctx, summaryKey(id)).Err(); err != nil {
		r.logger.WithError(err).WithField("restroom_id", id).Warn("Failed to invalidate summary cache in Redis")
	}
	return nil
}
