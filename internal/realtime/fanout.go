package realtime

import (
	"context"
	"fmt"

	"github.com/pchukwuemeka424/famGuard-sub003/internal/push"
)

// ConnectionSource возвращает идентификаторы доверенных контактов пользователя
type ConnectionSource interface {
	GetConnectedUserIDs(ctx context.Context, userID string) ([]string, error)
}

// PushFanout - ConnectionNotifier поверх очереди push-уведомлений:
// одно сообщение на весь набор контактов локального пользователя
type PushFanout struct {
	connections ConnectionSource
	publisher   push.Publisher
	localUserID string
}

func NewPushFanout(connections ConnectionSource, publisher push.Publisher, localUserID string) *PushFanout {
	return &PushFanout{
		connections: connections,
		publisher:   publisher,
		localUserID: localUserID,
	}
}

// NotifyConnections рассылает уведомление всем контактам локального пользователя
func (f *PushFanout) NotifyConnections(ctx context.Context, title, body string) error {
	ids, err := f.connections.GetConnectedUserIDs(ctx, f.localUserID)
	if err != nil {
		return fmt.Errorf("failed to resolve connection set for fan-out: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	msg := push.Message{
		UserIDs: ids,
		Title:   title,
		Body:    body,
	}
	if err := f.publisher.Publish(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish fan-out notification: %w", err)
	}
	return nil
}
