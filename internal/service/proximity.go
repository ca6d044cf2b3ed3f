package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pchukwuemeka424/famGuard-sub003/internal/config"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/models"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/push"
	"github.com/sirupsen/logrus"
)

// Границы уровней срочности по дистанции до инцидента, км
const (
	dangerMaxKm  = 3.0
	warningMaxKm = 6.0
)

// ProximityRepository определяет контракт для работы с бд проксимити-движка
type ProximityRepository interface {
	FindMatches(ctx context.Context, minKm, maxKm float64, maxAge time.Duration) ([]models.ProximityMatch, error)
	HasPushedSince(ctx context.Context, userID string, since time.Time) (bool, error)
	InsertNotificationRecords(ctx context.Context, records []models.ProximityNotificationRecord) error
	InsertInAppNotification(ctx context.Context, n *models.Notification) error
}

// ProximityEngine - движок проксимити-оповещений: периодически джойнит живые
// позиции с недавними инцидентами, дедуплицирует и рассылает уведомления
type ProximityEngine struct {
	repo      ProximityRepository
	publisher push.Publisher
	logger    *logrus.Logger
	cfg       *config.Config

	// Защита от повторного входа: свип, пришедший во время работающего,
	// отбрасывается, не ставится в очередь
	checking atomic.Bool

	stopOnce sync.Once
	stopCh   chan struct{}

	now func() time.Time
}

func NewProximityEngine(repo ProximityRepository, publisher push.Publisher, logger *logrus.Logger, cfg *config.Config) *ProximityEngine {
	return &ProximityEngine{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		stopCh:    make(chan struct{}),
		now:       time.Now,
	}
}

// Start запускает периодический свип. Останавливается по Stop или отмене контекста.
func (e *ProximityEngine) Start(ctx context.Context) {
	e.logger.WithField("interval", e.cfg.ProximitySweepInterval.String()).Info("Starting proximity alert engine...")
	go func() {
		ticker := time.NewTicker(e.cfg.ProximitySweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				e.logger.Info("Stopping proximity alert engine.")
				return
			case <-e.stopCh:
				e.logger.Info("Stopping proximity alert engine.")
				return
			case <-ticker.C:
				e.runSweep(ctx)
			}
		}
	}()
}

// Stop останавливает периодический свип. Повторные вызовы безопасны.
func (e *ProximityEngine) Stop() {
	e.stopOnce.Do(func() {
		close(e.stopCh)
	})
}

// CheckNow запускает внеочередной свип (например, сразу после сообщения о
// новом инциденте). Если свип уже идет, вызов отбрасывается.
func (e *ProximityEngine) CheckNow(ctx context.Context) {
	e.runSweep(ctx)
}

func (e *ProximityEngine) runSweep(ctx context.Context) {
	log := e.logger.WithFields(logrus.Fields{
		"service": "proximity",
		"method":  "runSweep",
	})

	if !e.checking.CompareAndSwap(false, true) {
		log.Debug("Sweep already in flight, dropping trigger")
		return
	}
	defer e.checking.Store(false)

	matches, err := e.repo.FindMatches(ctx, e.cfg.ProximityMinKm, e.cfg.ProximityMaxKm, e.cfg.IncidentMaxAge)
	if err != nil {
		log.WithError(err).Error("Failed to query proximity matches")
		return
	}
	if len(matches) == 0 {
		log.Debug("No proximity matches this cycle")
		return
	}

	// Группировка по пользователю: один пользователь может оказаться рядом
	// с несколькими инцидентами в одном цикле
	byUser := make(map[string][]models.ProximityMatch)
	for _, m := range matches {
		byUser[m.UserID] = append(byUser[m.UserID], m)
	}

	// Ветки пользователей независимы: сбой одной не прерывает остальные
	var wg sync.WaitGroup
	var succeeded, failed atomic.Int64
	for userID, userMatches := range byUser {
		wg.Add(1)
		go func(userID string, userMatches []models.ProximityMatch) {
			defer wg.Done()
			if err := e.notifyUser(ctx, userID, userMatches); err != nil {
				failed.Add(1)
				log.WithError(err).WithField("user_id", userID).Error("Failed to process proximity matches for user")
				return
			}
			succeeded.Add(1)
		}(userID, userMatches)
	}
	wg.Wait()

	log.WithFields(logrus.Fields{
		"matches":   len(matches),
		"users":     len(byUser),
		"succeeded": succeeded.Load(),
		"failed":    failed.Load(),
	}).Info("Proximity sweep completed")
}

// notifyUser обрабатывает все совпадения одного пользователя за цикл:
// не более одного push в окно дедупликации, in-app запись и записи
// дедупликации пишутся в любом случае
func (e *ProximityEngine) notifyUser(ctx context.Context, userID string, userMatches []models.ProximityMatch) error {
	now := e.now()

	// Ближайший инцидент - основной, при равной дистанции берем более свежий
	sort.SliceStable(userMatches, func(i, j int) bool {
		if userMatches[i].DistanceKm != userMatches[j].DistanceKm {
			return userMatches[i].DistanceKm < userMatches[j].DistanceKm
		}
		return userMatches[i].IncidentCreatedAt.After(userMatches[j].IncidentCreatedAt)
	})
	primary := userMatches[0]
	severity := ClassifySeverity(primary.DistanceKm)
	title, body := composeAlert(primary, len(userMatches))

	alreadyPushed, err := e.repo.HasPushedSince(ctx, userID, now.Add(-e.cfg.PushDedupWindow))
	if err != nil {
		return fmt.Errorf("failed to check dedup window: %w", err)
	}

	pushed := false
	if alreadyPushed {
		e.logger.WithFields(logrus.Fields{
			"service": "proximity",
			"user_id": userID,
		}).Info("User already pushed within dedup window, suppressing push")
	} else {
		msg := push.Message{
			UserIDs:  []string{userID},
			Title:    title,
			Body:     body,
			Severity: string(severity),
			Data: map[string]string{
				"incident_id": primary.IncidentID.String(),
				"category":    primary.IncidentCategory,
				"distance_km": strconv.FormatFloat(primary.DistanceKm, 'f', 2, 64),
			},
			QueuedAt: now,
		}
		if err := e.publisher.Publish(ctx, msg); err != nil {
			// Записи дедупликации не пишем: следующий свип повторит отправку
			return fmt.Errorf("failed to publish push notification: %w", err)
		}
		pushed = true
	}

	// In-app уведомление пишется и при подавленном push, для видимости в ленте
	inApp := &models.Notification{
		UserID: userID,
		Title:  title,
		Body:   body,
		Type:   "proximity_alert",
		Data: map[string]string{
			"incident_id": primary.IncidentID.String(),
			"severity":    string(severity),
		},
	}
	var firstErr error
	if err := e.repo.InsertInAppNotification(ctx, inApp); err != nil {
		firstErr = fmt.Errorf("failed to insert in-app notification: %w", err)
	}

	records := make([]models.ProximityNotificationRecord, 0, len(userMatches))
	for _, m := range userMatches {
		records = append(records, models.ProximityNotificationRecord{
			UserID:     userID,
			IncidentID: m.IncidentID,
			DistanceKm: m.DistanceKm,
			Pushed:     pushed,
			NotifiedAt: now,
		})
	}
	if err := e.repo.InsertNotificationRecords(ctx, records); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failed to insert dedup records: %w", err)
	}
	return firstErr
}

// ClassifySeverity возвращает уровень срочности по дистанции до инцидента
func ClassifySeverity(distanceKm float64) models.Severity {
	switch {
	case distanceKm <= dangerMaxKm:
		return models.SeverityDanger
	case distanceKm <= warningMaxKm:
		return models.SeverityWarning
	default:
		return models.SeverityAlert
	}
}

// composeAlert собирает заголовок и текст оповещения по основному инциденту
// и числу дополнительных совпадений
func composeAlert(primary models.ProximityMatch, total int) (string, string) {
	title := fmt.Sprintf("Safety alert: %s nearby", primary.IncidentTitle)
	body := fmt.Sprintf("%s reported %.1f km from your location.", primary.IncidentTitle, primary.DistanceKm)
	if extra := total - 1; extra > 0 {
		suffix := "incident"
		if extra > 1 {
			suffix = "incidents"
		}
		body = fmt.Sprintf("%s %d more %s reported in your area.", body, extra, suffix)
	}
	return title, body
}
