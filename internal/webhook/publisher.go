package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	incidentQueueKey = "incident_events"

	// Виды событий жизненного цикла инцидента
	EventIncidentReported = "incident.reported"
	EventIncidentExpired  = "incident.expired"
)

// IncidentEvent - структура для данных вебхука о событии инцидента
type IncidentEvent struct {
	EventID          uuid.UUID `json:"event_id"`
	Kind             string    `json:"kind"`
	IncidentID       int64     `json:"incident_id"`
	TypeID           int64     `json:"type_id"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	AffectedJourneys int       `json:"affected_journeys"`
	Timestamp        time.Time `json:"timestamp"`
}

// EventPublisher - интерфейс для публикации событий инцидентов
type EventPublisher interface {
	Publish(ctx context.Context, event IncidentEvent) error
}

// RedisEventPublisher - реализация EventPublisher, использующая Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish публикует событие инцидента в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event IncidentEvent) error {
	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal incident event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, incidentQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish incident event to Redis: %w", err)
	}
	return nil
}
