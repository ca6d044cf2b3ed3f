package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/config"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/models"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/push"
	push_mocks "github.com/pchukwuemeka424/famGuard-sub003/internal/push/mocks"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestProximityEngine — вспомогательная функция для создания движка с моками
// и фиксированными часами.
func newTestProximityEngine(t *testing.T) (*ProximityEngine, *mocks.MockProximityRepository, *push_mocks.MockPublisher, time.Time) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockProximityRepository(ctrl)
	publisherMock := push_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		ProximitySweepInterval: 15 * time.Minute,
		ProximityMinKm:         0,
		ProximityMaxKm:         10,
		IncidentMaxAge:         24 * time.Hour,
		PushDedupWindow:        24 * time.Hour,
	}

	engine := NewProximityEngine(repoMock, publisherMock, logger, cfg)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	engine.now = func() time.Time { return now }
	return engine, repoMock, publisherMock, now
}

func proximityMatch(userID string, distanceKm float64, createdAt time.Time) models.ProximityMatch {
	return models.ProximityMatch{
		UserID:            userID,
		IncidentID:        uuid.New(),
		IncidentTitle:     "Robbery",
		IncidentCategory:  "crime",
		DistanceKm:        distanceKm,
		IncidentCreatedAt: createdAt,
	}
}

func TestCheckNow_SingleMatchPushes(t *testing.T) {
	// Подготовка
	engine, repoMock, publisherMock, now := newTestProximityEngine(t)
	ctx := context.Background()
	match := proximityMatch("user-1", 2.5, now.Add(-time.Hour))

	// Ожидания
	repoMock.EXPECT().
		FindMatches(ctx, 0.0, 10.0, 24*time.Hour).
		Return([]models.ProximityMatch{match}, nil).
		Times(1)
	repoMock.EXPECT().
		HasPushedSince(ctx, "user-1", now.Add(-24*time.Hour)).
		Return(false, nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg push.Message) error {
			assert.Equal(t, []string{"user-1"}, msg.UserIDs)
			assert.Equal(t, "Safety alert: Robbery nearby", msg.Title)
			assert.Equal(t, string(models.SeverityDanger), msg.Severity)
			assert.Equal(t, match.IncidentID.String(), msg.Data["incident_id"])
			return nil
		}).
		Times(1)
	repoMock.EXPECT().
		InsertInAppNotification(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			assert.Equal(t, "user-1", n.UserID)
			assert.Equal(t, "proximity_alert", n.Type)
			return nil
		}).
		Times(1)
	repoMock.EXPECT().
		InsertNotificationRecords(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, records []models.ProximityNotificationRecord) error {
			require.Len(t, records, 1)
			assert.True(t, records[0].Pushed)
			assert.Equal(t, now, records[0].NotifiedAt)
			return nil
		}).
		Times(1)

	// Действие
	engine.CheckNow(ctx)
}

func TestCheckNow_MultipleMatchesSinglePushReflectsClosest(t *testing.T) {
	// Подготовка
	engine, repoMock, publisherMock, now := newTestProximityEngine(t)
	ctx := context.Background()
	far := proximityMatch("user-1", 5.2, now.Add(-30*time.Minute))
	near := proximityMatch("user-1", 2.1, now.Add(-2*time.Hour))

	// Ожидания: один push на пользователя за цикл, уровень срочности и текст
	// берутся от ближайшего инцидента
	repoMock.EXPECT().
		FindMatches(ctx, 0.0, 10.0, 24*time.Hour).
		Return([]models.ProximityMatch{far, near}, nil).
		Times(1)
	repoMock.EXPECT().
		HasPushedSince(ctx, "user-1", now.Add(-24*time.Hour)).
		Return(false, nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg push.Message) error {
			assert.Equal(t, string(models.SeverityDanger), msg.Severity)
			assert.Equal(t, near.IncidentID.String(), msg.Data["incident_id"])
			assert.Contains(t, msg.Body, "1 more incident")
			return nil
		}).
		Times(1)
	repoMock.EXPECT().InsertInAppNotification(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().
		InsertNotificationRecords(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, records []models.ProximityNotificationRecord) error {
			require.Len(t, records, 2)
			for _, rec := range records {
				assert.True(t, rec.Pushed)
			}
			return nil
		}).
		Times(1)

	// Действие
	engine.CheckNow(ctx)
}

func TestCheckNow_DedupWindowSuppressesPush(t *testing.T) {
	// Подготовка
	engine, repoMock, _, now := newTestProximityEngine(t)
	ctx := context.Background()
	match := proximityMatch("user-1", 4.0, now.Add(-time.Hour))

	// Ожидания: push подавлен, in-app запись и записи дедупликации пишутся,
	// но с pushed=false — подавленный путь не продлевает окно
	repoMock.EXPECT().
		FindMatches(ctx, 0.0, 10.0, 24*time.Hour).
		Return([]models.ProximityMatch{match}, nil).
		Times(1)
	repoMock.EXPECT().
		HasPushedSince(ctx, "user-1", now.Add(-24*time.Hour)).
		Return(true, nil).
		Times(1)
	repoMock.EXPECT().InsertInAppNotification(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().
		InsertNotificationRecords(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, records []models.ProximityNotificationRecord) error {
			require.Len(t, records, 1)
			assert.False(t, records[0].Pushed)
			return nil
		}).
		Times(1)
	// Publish не должен вызываться: ожидание для паблишера не задается

	// Действие
	engine.CheckNow(ctx)
}

func TestCheckNow_PublishFailureSkipsRecords(t *testing.T) {
	// Подготовка
	engine, repoMock, publisherMock, now := newTestProximityEngine(t)
	ctx := context.Background()
	match := proximityMatch("user-1", 1.0, now.Add(-time.Hour))

	// Ожидания: при сбое публикации записи не пишутся — следующий свип
	// повторит отправку
	repoMock.EXPECT().
		FindMatches(ctx, 0.0, 10.0, 24*time.Hour).
		Return([]models.ProximityMatch{match}, nil).
		Times(1)
	repoMock.EXPECT().
		HasPushedSince(ctx, "user-1", now.Add(-24*time.Hour)).
		Return(false, nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(fmt.Errorf("redis unavailable")).
		Times(1)

	// Действие
	engine.CheckNow(ctx)
}

func TestCheckNow_NoMatches(t *testing.T) {
	// Подготовка
	engine, repoMock, _, _ := newTestProximityEngine(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		FindMatches(ctx, 0.0, 10.0, 24*time.Hour).
		Return(nil, nil).
		Times(1)

	// Действие
	engine.CheckNow(ctx)
}

func TestCheckNow_DroppedWhileSweepInFlight(t *testing.T) {
	// Подготовка: имитируем уже идущий свип
	engine, _, _, _ := newTestProximityEngine(t)
	engine.checking.Store(true)

	// Действие: ни одно ожидание не задано — любой вызов мока был бы ошибкой
	engine.CheckNow(context.Background())
}

func TestCheckNow_UserFailureDoesNotBlockOthers(t *testing.T) {
	// Подготовка
	engine, repoMock, publisherMock, now := newTestProximityEngine(t)
	ctx := context.Background()
	broken := proximityMatch("user-broken", 2.0, now.Add(-time.Hour))
	healthy := proximityMatch("user-healthy", 7.5, now.Add(-time.Hour))

	// Ожидания: сбой ветки одного пользователя не мешает другому
	repoMock.EXPECT().
		FindMatches(ctx, 0.0, 10.0, 24*time.Hour).
		Return([]models.ProximityMatch{broken, healthy}, nil).
		Times(1)
	repoMock.EXPECT().
		HasPushedSince(ctx, "user-broken", gomock.Any()).
		Return(false, fmt.Errorf("query failed")).
		Times(1)
	repoMock.EXPECT().
		HasPushedSince(ctx, "user-healthy", gomock.Any()).
		Return(false, nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg push.Message) error {
			assert.Equal(t, []string{"user-healthy"}, msg.UserIDs)
			assert.Equal(t, string(models.SeverityAlert), msg.Severity)
			return nil
		}).
		Times(1)
	repoMock.EXPECT().InsertInAppNotification(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InsertNotificationRecords(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	engine.CheckNow(ctx)
}

func TestClassifySeverity(t *testing.T) {
	testCases := []struct {
		name       string
		distanceKm float64
		expected   models.Severity
	}{
		{name: "вплотную", distanceKm: 0.1, expected: models.SeverityDanger},
		{name: "ровно на границе DANGER", distanceKm: 3.0, expected: models.SeverityDanger},
		{name: "чуть за границей DANGER", distanceKm: 3.0001, expected: models.SeverityWarning},
		{name: "ровно на границе WARNING", distanceKm: 6.0, expected: models.SeverityWarning},
		{name: "чуть за границей WARNING", distanceKm: 6.0001, expected: models.SeverityAlert},
		{name: "дальний край радиуса", distanceKm: 9.9, expected: models.SeverityAlert},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassifySeverity(tc.distanceKm))
		})
	}
}

func TestStop_Idempotent(t *testing.T) {
	// Подготовка
	engine, _, _, _ := newTestProximityEngine(t)
	engine.Start(context.Background())

	// Действие: повторный Stop не должен паниковать
	engine.Stop()
	engine.Stop()
}
