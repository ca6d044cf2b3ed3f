package realtime

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Escalation - производный эффект смены состояния: принудительное обновление
// и/или веерное уведомление контактов. Key идентифицирует переход: повторные
// сырые события с тем же ключом эффект не дублируют.
type Escalation struct {
	Key     string
	Title   string
	Body    string
	Refresh bool
}

// EventMapper преобразует событие изменения в типизированную доменную запись
// и, при необходимости, в эскалацию
type EventMapper interface {
	Table() string
	Map(ev ChangeEvent) (record any, esc *Escalation, err error)
}

// ConnectionNotifier рассылает уведомление контактам локального пользователя
type ConnectionNotifier interface {
	NotifyConnections(ctx context.Context, title, body string) error
}

// Manager поддерживает ровно одну живую подписку на наблюдаемую таблицу,
// охватывающую динамический набор доверенных контактов. Пересобирает канал
// при каждом изменении набора; снос и пересборка безопасны.
type Manager struct {
	transport Transport
	mapper    EventMapper
	notifier  ConnectionNotifier
	onRefresh func(ctx context.Context)
	logger    *logrus.Logger

	localUserID string

	mu               sync.Mutex
	channel          Channel
	target           []string // последний запрошенный набор: last-write-wins
	rebuilding       bool
	intentionalClose bool
	closed           bool

	state          map[string]any
	lastEscalation map[string]string
}

func NewManager(transport Transport, mapper EventMapper, notifier ConnectionNotifier, logger *logrus.Logger, localUserID string) *Manager {
	return &Manager{
		transport:      transport,
		mapper:         mapper,
		notifier:       notifier,
		logger:         logger,
		localUserID:    localUserID,
		state:          make(map[string]any),
		lastEscalation: make(map[string]string),
	}
}

// SetOnRefresh задает хук принудительного обновления, вызываемый при эскалации
func (m *Manager) SetOnRefresh(fn func(ctx context.Context)) {
	m.onRefresh = fn
}

// Rebuild сносит текущий канал (если есть) и открывает новый, охватывающий
// переданный набор контактов. Если пересборка уже идет, целевой набор просто
// заменяется: применится самый свежий, без очереди переходов.
func (m *Manager) Rebuild(ctx context.Context, connIDs []string) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.target = append([]string(nil), connIDs...)
	if m.rebuilding {
		m.mu.Unlock()
		return nil
	}
	m.rebuilding = true
	m.mu.Unlock()

	return m.rebuildLoop(ctx)
}

func (m *Manager) rebuildLoop(ctx context.Context) error {
	log := m.logger.WithFields(logrus.Fields{
		"component": "realtime",
		"table":     m.mapper.Table(),
	})

	var firstErr error
	for {
		m.mu.Lock()
		target := append([]string(nil), m.target...)
		m.teardownLocked(log)
		m.mu.Unlock()

		// Пустой набор - подписываться не на что
		var ch Channel
		if len(target) > 0 {
			var err error
			ch, err = m.transport.Subscribe(ctx, m.mapper.Table(), target)
			if err != nil {
				log.WithError(err).Error("Failed to open change subscription")
				if firstErr == nil {
					firstErr = err
				}
			}
		}

		m.mu.Lock()
		if m.closed {
			m.mu.Unlock()
			if ch != nil {
				_ = ch.Close()
			}
			return firstErr
		}
		if ch != nil {
			m.channel = ch
			go m.dispatch(ctx, ch)
		}
		if sameSet(m.target, target) {
			m.rebuilding = false
			m.mu.Unlock()
			if ch != nil {
				log.WithField("connections", len(target)).Info("Change subscription rebuilt")
			}
			return firstErr
		}
		// Набор изменился во время подписки: повторяем с самым свежим
		m.mu.Unlock()
	}
}

// teardownLocked закрывает текущий канал под установленным флагом
// intentionalClose, чтобы транспортные ошибки сноса не считались сбоями
func (m *Manager) teardownLocked(log *logrus.Entry) {
	if m.channel == nil {
		return
	}
	m.intentionalClose = true
	if err := m.channel.Close(); err != nil {
		log.WithError(err).Debug("Transport error during intentional teardown, suppressed")
	}
	m.intentionalClose = false
	m.channel = nil
}

// dispatch читает события канала до его закрытия
func (m *Manager) dispatch(ctx context.Context, ch Channel) {
	log := m.logger.WithFields(logrus.Fields{
		"component": "realtime",
		"table":     m.mapper.Table(),
	})

	for ev := range ch.Events() {
		m.handleEvent(ctx, log, ev)
	}

	// Канал закрылся. Если он все еще текущий, это неожиданный обрыв -
	// логируем для хоста; политика переподключения вне этого модуля.
	m.mu.Lock()
	dropped := m.channel == ch && !m.closed
	if dropped {
		m.channel = nil
	}
	m.mu.Unlock()
	if dropped {
		log.Error("Change subscription dropped unexpectedly")
	}
}

// handleEvent фильтрует собственные события, мапит остальные в доменные
// записи и применяет производные эффекты
func (m *Manager) handleEvent(ctx context.Context, log *logrus.Entry, ev ChangeEvent) {
	// Явный предикат: события о самом пользователе уже отражены локальной
	// записью и через канал не ресинхронизируются
	if m.isSelfEvent(ev) {
		return
	}

	record, esc, err := m.mapper.Map(ev)
	if err != nil {
		log.WithError(err).WithField("source_user", ev.UserID).Warn("Failed to map change event, skipping")
		return
	}

	m.mu.Lock()
	m.state[ev.UserID] = record
	fire := false
	if esc == nil {
		// Состояние вернулось к обычному: следующая эскалация снова сработает
		delete(m.lastEscalation, ev.UserID)
	} else if m.lastEscalation[ev.UserID] != esc.Key {
		m.lastEscalation[ev.UserID] = esc.Key
		fire = true
	}
	m.mu.Unlock()

	if !fire {
		return
	}

	log.WithFields(logrus.Fields{
		"source_user": ev.UserID,
		"escalation":  esc.Key,
	}).Info("Escalating state transition")

	if esc.Refresh && m.onRefresh != nil {
		m.onRefresh(ctx)
	}
	if m.notifier != nil {
		if err := m.notifier.NotifyConnections(ctx, esc.Title, esc.Body); err != nil {
			log.WithError(err).Error("Failed to fan out escalation notification")
		}
	}
}

func (m *Manager) isSelfEvent(ev ChangeEvent) bool {
	return ev.UserID == m.localUserID
}

// Snapshot возвращает копию текущего состояния по пользователям-источникам
func (m *Manager) Snapshot() map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]any, len(m.state))
	for k, v := range m.state {
		out[k] = v
	}
	return out
}

// Close закрывает подписку. Повторные вызовы - no-op, не ошибка.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true
	m.teardownLocked(m.logger.WithFields(logrus.Fields{
		"component": "realtime",
		"table":     m.mapper.Table(),
	}))
	return nil
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, id := range a {
		seen[id]++
	}
	for _, id := range b {
		seen[id]--
		if seen[id] < 0 {
			return false
		}
	}
	return true
}
