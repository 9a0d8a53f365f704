package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/restroom_finder/internal/config"
	"github.com/shenikar/restroom_finder/internal/models"
	"github.com/shenikar/restroom_finder/internal/repository"
	"github.com/shenikar/restroom_finder/pkg/logger"
	"github.com/shenikar/restroom_finder/pkg/postgres"
	redisclient "github.com/shenikar/restroom_finder/pkg/redis"
	"github.com/sirupsen/logrus"
)

// Офлайн-джоба дедупликации: записи с одинаковыми именем и адресом
// схлопываются до самой старой, дубликаты удаляются каскадно
// вместе с отзывами и агрегатами.

// dedupKey нормализует имя и адрес для сравнения на дубликат
func dedupKey(r models.Restroom) string {
	return fmt.Sprintf("%s|%s",
		strings.ToLower(strings.TrimSpace(r.Name)),
		strings.ToLower(strings.TrimSpace(r.Address)),
	)
}

// findDuplicates возвращает id всех записей, кроме самой старой в каждой группе.
// Вход уже отсортирован по created_at, поэтому первая запись группы - оригинал.
func findDuplicates(restrooms []models.Restroom) []models.Restroom {
	seen := make(map[string]struct{}, len(restrooms))
	var duplicates []models.Restroom
	for _, restroom := range restrooms {
		key := dedupKey(restroom)
		if _, ok := seen[key]; ok {
			duplicates = append(duplicates, restroom)
			continue
		}
		seen[key] = struct{}{}
	}
	return duplicates
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	ctx := context.Background()

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	repo := repository.NewRestroomRepository(dbpool, redisClient, log, cfg.PersistenceTimeout, cfg.SummaryCacheTTL)

	restrooms, err := repo.ListAllRestrooms(ctx)
	if err != nil {
		log.Fatalf("Failed to list restrooms: %v", err)
	}
	log.Infof("Loaded %d restrooms", len(restrooms))

	duplicates := findDuplicates(restrooms)
	if len(duplicates) == 0 {
		log.Info("No duplicates found, nothing to do")
		return
	}
	log.Infof("Found %d duplicate restrooms", len(duplicates))

	deleted := 0
	for _, duplicate := range duplicates {
		dupLog := log.WithFields(logrus.Fields{
			"restroom_id": duplicate.ID,
			"name":        duplicate.Name,
			"address":     duplicate.Address,
		})
		if err := repo.DeleteRestroomCascade(ctx, duplicate.ID); err != nil {
			dupLog.WithError(err).Error("Failed to delete duplicate restroom")
			continue
		}
		dupLog.Info("Deleted duplicate restroom")
		deleted++
	}

	log.Infof("Cleanup finished: %d of %d duplicates deleted", deleted, len(duplicates))
}
