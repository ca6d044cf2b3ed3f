package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// EventType - вид изменения, пришедшего по живому каналу
type EventType string

const (
	EventInsert EventType = "insert"
	EventUpdate EventType = "update"
)

// ChangeEvent - событие изменения строки наблюдаемой таблицы.
// UserID - пользователь-источник события.
type ChangeEvent struct {
	Table   string          `json:"table"`
	Type    EventType       `json:"type"`
	UserID  string          `json:"user_id"`
	Payload json.RawMessage `json:"payload"`
}

// Channel - открытая подписка на события изменений. Events закрывается
// при закрытии канала; Close идемпотентен.
type Channel interface {
	Events() <-chan ChangeEvent
	Close() error
}

// Transport определяет контракт транспорта живых подписок
type Transport interface {
	Subscribe(ctx context.Context, table string, userIDs []string) (Channel, error)
}

// RedisTransport - транспорт живых подписок поверх Redis pub/sub.
// Одно имя канала на пару (таблица, пользователь).
type RedisTransport struct {
	redisClient *redis.Client
	logger      *logrus.Logger
}

func NewRedisTransport(client *redis.Client, logger *logrus.Logger) *RedisTransport {
	return &RedisTransport{
		redisClient: client,
		logger:      logger,
	}
}

func channelName(table, userID string) string {
	return fmt.Sprintf("changes:%s:%s", table, userID)
}

// PublishChange публикует событие изменения в канал таблицы и пользователя.
// Используется стороной, производящей изменения (бэкенд-коллаборатор).
func (t *RedisTransport) PublishChange(ctx context.Context, ev ChangeEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}
	if err := t.redisClient.Publish(ctx, channelName(ev.Table, ev.UserID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}
	return nil
}

// Subscribe открывает подписку на изменения таблицы для набора пользователей
func (t *RedisTransport) Subscribe(ctx context.Context, table string, userIDs []string) (Channel, error) {
	names := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		names = append(names, channelName(table, id))
	}

	pubsub := t.redisClient.Subscribe(ctx, names...)
	// Дожидаемся подтверждения подписки, чтобы не терять ранние события
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to change channels: %w", err)
	}

	ch := &redisChannel{
		pubsub: pubsub,
		events: make(chan ChangeEvent, 16),
	}
	go ch.pump(t.logger)
	return ch, nil
}

type redisChannel struct {
	pubsub    *redis.PubSub
	events    chan ChangeEvent
	closeOnce sync.Once
}

func (c *redisChannel) pump(logger *logrus.Logger) {
	defer close(c.events)
	for msg := range c.pubsub.Channel() {
		var ev ChangeEvent
		if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
			logger.WithError(err).WithField("channel", msg.Channel).Warn("Failed to unmarshal change event, skipping")
			continue
		}
		c.events <- ev
	}
}

func (c *redisChannel) Events() <-chan ChangeEvent {
	return c.events
}

// Close закрывает подписку. Повторные вызовы - no-op.
func (c *redisChannel) Close() error {
	var err error
	c.closeOnce.Do(func() {
		err = c.pubsub.Close()
	})
	return err
}
