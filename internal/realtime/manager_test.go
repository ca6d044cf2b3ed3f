package realtime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pchukwuemeka424/famGuard-sub003/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChannel - in-memory реализация Channel для тестов
type fakeChannel struct {
	userIDs []string
	events  chan ChangeEvent

	mu     sync.Mutex
	closed bool
}

func (c *fakeChannel) Events() <-chan ChangeEvent {
	return c.events
}

func (c *fakeChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.events)
	}
	return nil
}

func (c *fakeChannel) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// fakeTransport - in-memory реализация Transport, запоминает все открытые каналы
type fakeTransport struct {
	mu           sync.Mutex
	channels     []*fakeChannel
	subscribeErr error
}

func (t *fakeTransport) Subscribe(_ context.Context, _ string, userIDs []string) (Channel, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.subscribeErr != nil {
		return nil, t.subscribeErr
	}
	ch := &fakeChannel{
		userIDs: append([]string(nil), userIDs...),
		events:  make(chan ChangeEvent, 16),
	}
	t.channels = append(t.channels, ch)
	return ch, nil
}

func (t *fakeTransport) opened() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.channels)
}

func (t *fakeTransport) channelAt(i int) *fakeChannel {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.channels[i]
}

// fakeNotifier записывает разосланные уведомления
type fakeNotifier struct {
	mu     sync.Mutex
	titles []string
}

func (n *fakeNotifier) NotifyConnections(_ context.Context, title, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.titles = append(n.titles, title)
	return nil
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.titles)
}

// safeBuffer - потокобезопасный приемник логов для проверок в тестах
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestManager(t *testing.T) (*Manager, *fakeTransport, *fakeNotifier, *safeBuffer) {
	t.Helper()
	transport := &fakeTransport{}
	notifier := &fakeNotifier{}
	logBuf := &safeBuffer{}

	logger := logrus.New()
	logger.SetOutput(logBuf)

	manager := NewManager(transport, CheckInMapper{}, notifier, logger, "local-user")
	return manager, transport, notifier, logBuf
}

func checkInEvent(userID, checkInID, status string) ChangeEvent {
	payload, _ := json.Marshal(models.CheckIn{
		ID:     checkInID,
		UserID: userID,
		Status: status,
	})
	return ChangeEvent{
		Table:   "check_ins",
		Type:    EventUpdate,
		UserID:  userID,
		Payload: payload,
	}
}

func TestRebuild_SwapsChannelOnSetChange(t *testing.T) {
	// Подготовка
	manager, transport, _, logBuf := newTestManager(t)
	ctx := context.Background()

	// Действие: набор контактов меняется {A,B} -> {A,B,C}
	require.NoError(t, manager.Rebuild(ctx, []string{"a", "b"}))
	require.NoError(t, manager.Rebuild(ctx, []string{"a", "b", "c"}))

	// Проверки: ровно два открытия, первый канал закрыт намеренно и без
	// ошибок в логе, второй покрывает новый набор
	require.Equal(t, 2, transport.opened())
	assert.True(t, transport.channelAt(0).isClosed())
	assert.False(t, transport.channelAt(1).isClosed())
	assert.ElementsMatch(t, []string{"a", "b", "c"}, transport.channelAt(1).userIDs)
	assert.NotContains(t, logBuf.String(), "dropped unexpectedly")
}

func TestRebuild_EmptySetOpensNothing(t *testing.T) {
	// Подготовка
	manager, transport, _, _ := newTestManager(t)
	ctx := context.Background()
	require.NoError(t, manager.Rebuild(ctx, []string{"a"}))

	// Действие: все контакты удалены
	require.NoError(t, manager.Rebuild(ctx, nil))

	// Проверки: новый канал не открыт, старый снесен
	assert.Equal(t, 1, transport.opened())
	assert.True(t, transport.channelAt(0).isClosed())
}

func TestRebuild_SubscribeError(t *testing.T) {
	// Подготовка
	manager, transport, _, _ := newTestManager(t)
	transport.subscribeErr = fmt.Errorf("transport down")

	// Действие
	err := manager.Rebuild(context.Background(), []string{"a"})

	// Проверки
	require.Error(t, err)
}

func TestDispatch_FiltersSelfEvents(t *testing.T) {
	// Подготовка
	manager, transport, _, _ := newTestManager(t)
	ctx := context.Background()
	require.NoError(t, manager.Rebuild(ctx, []string{"friend"}))
	ch := transport.channelAt(0)

	// Действие: событие о самом пользователе и событие контакта
	ch.events <- checkInEvent("local-user", "c0", models.CheckInStatusSafe)
	ch.events <- checkInEvent("friend", "c1", models.CheckInStatusSafe)

	// Проверки: в состоянии только запись контакта
	require.Eventually(t, func() bool {
		snap := manager.Snapshot()
		_, ok := snap["friend"]
		return ok
	}, 2*time.Second, 10*time.Millisecond)
	_, hasSelf := manager.Snapshot()["local-user"]
	assert.False(t, hasSelf)
}

func TestDispatch_EscalationFiresOncePerTransition(t *testing.T) {
	// Подготовка
	manager, transport, notifier, _ := newTestManager(t)
	ctx := context.Background()
	refreshed := make(chan struct{}, 4)
	manager.SetOnRefresh(func(context.Context) { refreshed <- struct{}{} })
	require.NoError(t, manager.Rebuild(ctx, []string{"friend"}))
	ch := transport.channelAt(0)

	// Действие: повторное сырое событие того же перехода не дублирует эффект
	ch.events <- checkInEvent("friend", "c1", models.CheckInStatusEmergency)
	ch.events <- checkInEvent("friend", "c1", models.CheckInStatusEmergency)

	// Проверки
	require.Eventually(t, func() bool { return notifier.count() == 1 }, 2*time.Second, 10*time.Millisecond)
	<-refreshed

	// Действие: возврат в обычное состояние взводит эскалацию заново
	ch.events <- checkInEvent("friend", "c1", models.CheckInStatusSafe)
	ch.events <- checkInEvent("friend", "c1", models.CheckInStatusEmergency)

	// Проверки: вторая эскалация после повторного перехода
	require.Eventually(t, func() bool { return notifier.count() == 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestDispatch_UnexpectedDropIsLogged(t *testing.T) {
	// Подготовка
	manager, transport, _, logBuf := newTestManager(t)
	require.NoError(t, manager.Rebuild(context.Background(), []string{"friend"}))

	// Действие: транспорт обрывает канал без участия менеджера
	require.NoError(t, transport.channelAt(0).Close())

	// Проверки
	require.Eventually(t, func() bool {
		return bytes.Contains([]byte(logBuf.String()), []byte("dropped unexpectedly"))
	}, 2*time.Second, 10*time.Millisecond)
}

func TestClose_IdempotentAndSilent(t *testing.T) {
	// Подготовка
	manager, transport, _, logBuf := newTestManager(t)
	require.NoError(t, manager.Rebuild(context.Background(), []string{"friend"}))

	// Действие
	require.NoError(t, manager.Close())
	require.NoError(t, manager.Close())

	// Проверки: канал снесен, намеренное закрытие не считается обрывом
	require.Eventually(t, func() bool {
		return transport.channelAt(0).isClosed()
	}, 2*time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.NotContains(t, logBuf.String(), "dropped unexpectedly")

	// Rebuild после Close - no-op
	require.NoError(t, manager.Rebuild(context.Background(), []string{"a"}))
	assert.Equal(t, 1, transport.opened())
}
