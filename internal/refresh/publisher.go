package refresh

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	refreshQueueKey = "summary_refresh_queue"
)

// Publisher - интерфейс постановки пересчета агрегата в очередь
type Publisher interface {
	Enqueue(ctx context.Context, restroomID uuid.UUID) error
}

// RedisPublisher - реализация Publisher, использующая очередь в Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Enqueue кладет id туалета в очередь пересчета
func (p *RedisPublisher) Enqueue(ctx context.Context, restroomID uuid.UUID) error {
	// Используем LPUSH для добавления задания в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, refreshQueueKey, restroomID.String()).Err(); err != nil {
		return fmt.Errorf("failed to enqueue summary refresh to Redis: %w", err)
	}
	return nil
}
