package push

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	pushQueueKey = "push_notifications"
)

// Message - полезная нагрузка push-уведомления для шлюза доставки
type Message struct {
	UserIDs  []string          `json:"user_ids"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Severity string            `json:"severity,omitempty"`
	Data     map[string]string `json:"data,omitempty"`
	QueuedAt time.Time         `json:"queued_at"`
}

// Publisher - интерфейс для постановки push-уведомлений в очередь доставки
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
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

// Publish ставит уведомление в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, msg Message) error {
	if msg.QueuedAt.IsZero() {
		msg.QueuedAt = time.Now()
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal push message: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, pushQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish push message to Redis: %w", err)
	}
	return nil
}
