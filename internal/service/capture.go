package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/pchukwuemeka424/famGuard-sub003/internal/config"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/geo"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrInvalidFix возвращается для фиксов с неправдоподобными координатами
var ErrInvalidFix = errors.New("implausible coordinates in location fix")

// CaptureScheduler определяет контракт планировщика захвата для HTTP-слоя
type CaptureScheduler interface {
	HandleFix(ctx context.Context, fix models.LocationFix) error
	SetSharing(ctx context.Context, enabled bool) error
}

// DeviceStore определяет контракт локального хранилища устройства
type DeviceStore interface {
	ReadTrackingConfig(ctx context.Context) (*models.TrackingConfig, error)
	LastInsert(ctx context.Context, userID string) (time.Time, error)
	SetLastInsert(ctx context.Context, userID string, ts time.Time) error
	SetSharingEnabled(ctx context.Context, enabled bool) error
}

// Geocoder определяет контракт обратного геокодирования
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}

// LocationRepository определяет контракт для работы с бд местоположений
type LocationRepository interface {
	InsertHistory(ctx context.Context, rec *models.LocationHistoryRecord) error
	UpdateConnectionPositions(ctx context.Context, userID string, pos models.LivePosition) error
	UpdateGroupPosition(ctx context.Context, groupID, userID string, pos models.LivePosition) error
	ClearLivePositions(ctx context.Context, groupID, userID string) error
}

// CaptureService - планировщик захвата местоположения. Обрабатывает фиксы,
// приходящие от платформенного провайдера геолокации: валидация, геокодирование,
// ограниченная по частоте вставка истории и пропагация живой позиции.
type CaptureService struct {
	store    DeviceStore
	geocoder Geocoder
	repo     LocationRepository
	logger   *logrus.Logger
	cfg      *config.Config

	// Защита от повторного входа: параллельно прилетевший фикс отбрасывается
	inFlight atomic.Bool

	now func() time.Time
}

func NewCaptureService(store DeviceStore, geocoder Geocoder, repo LocationRepository, logger *logrus.Logger, cfg *config.Config) *CaptureService {
	return &CaptureService{
		store:    store,
		geocoder: geocoder,
		repo:     repo,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
	}
}

// HandleFix обрабатывает один фикс местоположения. Ошибки записи в бэкенд
// логируются и не возвращаются: следующий фикс - естественная повторная
// попытка. Возвращает ErrInvalidFix для неправдоподобных координат.
func (s *CaptureService) HandleFix(ctx context.Context, fix models.LocationFix) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "capture",
		"method":  "HandleFix",
	})

	if !s.inFlight.CompareAndSwap(false, true) {
		log.Debug("Capture cycle already in flight, dropping fix")
		return nil
	}
	defer s.inFlight.Store(false)

	// Шаг 1: валидация координат
	if !geo.ValidCoordinate(fix.Latitude, fix.Longitude) {
		log.WithFields(logrus.Fields{
			"latitude":  fix.Latitude,
			"longitude": fix.Longitude,
		}).Warn("Rejecting fix with implausible coordinates")
		return ErrInvalidFix
	}

	// Шаг 2: обратное геокодирование, ошибки некритичны
	if fix.Address == "" {
		address, err := s.geocoder.ReverseGeocode(ctx, fix.Latitude, fix.Longitude)
		if err != nil {
			log.WithError(err).Warn("Reverse geocoding failed, continuing with coordinates only")
		} else {
			fix.Address = address
		}
	}

	// Шаг 3: чтение конфигурации трекинга
	trackCfg, err := s.store.ReadTrackingConfig(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to read tracking config")
		return nil
	}
	if trackCfg.UserID == "" || trackCfg.GroupID == "" {
		// Ожидаемое состояние до первого логина
		log.Debug("Tracking not configured yet, skipping fix")
		return nil
	}

	// Единый снимок момента и флага шаринга на весь цикл
	now := s.now()
	sharing := trackCfg.SharingEnabled
	log = log.WithField("user_id", trackCfg.UserID)

	// Шаг 4: вставка истории с ограничением частоты. Изолирована от
	// пропагации живой позиции: сбой одного не мешает другому.
	s.appendHistory(ctx, log, trackCfg, fix, now)

	// Шаги 5-6: живая позиция обновляется на каждом фиксе, но только при
	// включенном шаринге
	if sharing {
		s.propagateLivePosition(ctx, log, trackCfg, fix, now)
	} else {
		log.Debug("Sharing disabled, skipping live position propagation")
	}

	return nil
}

// appendHistory вставляет запись истории, если интервал с прошлой вставки
// прошел. Сама вставка безусловна: этот путь никогда не обновляет строки.
func (s *CaptureService) appendHistory(ctx context.Context, log *logrus.Entry, trackCfg *models.TrackingConfig, fix models.LocationFix, now time.Time) {
	lastInsert, err := s.store.LastInsert(ctx, trackCfg.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to read last insert timestamp, skipping history insert")
		return
	}

	interval := s.effectiveInterval(trackCfg)
	if elapsed := now.Sub(lastInsert); elapsed < interval {
		log.WithFields(logrus.Fields{
			"elapsed":  elapsed.String(),
			"interval": interval.String(),
		}).Debug("History insert rate-limited")
		return
	}

	rec := &models.LocationHistoryRecord{
		UserID:    trackCfg.UserID,
		Latitude:  fix.Latitude,
		Longitude: fix.Longitude,
		Accuracy:  fix.Accuracy,
		Address:   fix.Address,
	}
	if err := s.repo.InsertHistory(ctx, rec); err != nil {
		log.WithError(err).Error("Failed to insert location history")
		return
	}

	if err := s.store.SetLastInsert(ctx, trackCfg.UserID, now); err != nil {
		log.WithError(err).Error("Failed to persist last insert timestamp")
		return
	}
	log.WithField("history_id", rec.ID).Info("Location history record inserted")
}

// propagateLivePosition перезаписывает живую позицию на связях и в группе.
// Каждая запись в своей границе сбоя.
func (s *CaptureService) propagateLivePosition(ctx context.Context, log *logrus.Entry, trackCfg *models.TrackingConfig, fix models.LocationFix, now time.Time) {
	pos := models.LivePosition{
		Latitude:  fix.Latitude,
		Longitude: fix.Longitude,
		Address:   fix.Address,
		UpdatedAt: now,
	}

	if err := s.repo.UpdateConnectionPositions(ctx, trackCfg.UserID, pos); err != nil {
		log.WithError(err).Error("Failed to update live position on connections")
	}

	if err := s.repo.UpdateGroupPosition(ctx, trackCfg.GroupID, trackCfg.UserID, pos); err != nil {
		log.WithError(err).Error("Failed to update live position on group membership")
	}
}

// SetSharing переключает шаринг. При отключении живая позиция обнуляется,
// чтобы контакты не видели устаревшие координаты.
func (s *CaptureService) SetSharing(ctx context.Context, enabled bool) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "capture",
		"method":  "SetSharing",
		"enabled": enabled,
	})

	if err := s.store.SetSharingEnabled(ctx, enabled); err != nil {
		log.WithError(err).Error("Failed to persist sharing flag")
		return err
	}

	if !enabled {
		trackCfg, err := s.store.ReadTrackingConfig(ctx)
		if err != nil {
			log.WithError(err).Error("Failed to read tracking config for live position clear")
			return nil
		}
		if trackCfg.UserID == "" {
			return nil
		}
		if err := s.repo.ClearLivePositions(ctx, trackCfg.GroupID, trackCfg.UserID); err != nil {
			log.WithError(err).Error("Failed to clear live positions")
		}
	}

	log.Info("Sharing flag updated")
	return nil
}

// effectiveInterval возвращает действующий интервал вставки истории:
// пользовательская частота, если задана, иначе интервал по умолчанию
func (s *CaptureService) effectiveInterval(trackCfg *models.TrackingConfig) time.Duration {
	if trackCfg.UpdateFrequencyMinutes > 0 {
		return time.Duration(trackCfg.UpdateFrequencyMinutes) * time.Minute
	}
	return s.cfg.HistoryFallbackInterval
}
