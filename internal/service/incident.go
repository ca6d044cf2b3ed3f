package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/config"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/geo"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/models"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListRecent(ctx context.Context, maxAge time.Duration, limit int) ([]*models.Incident, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
}

// ProximityChecker запускает внеочередной проксимити-свип
type ProximityChecker interface {
	CheckNow(ctx context.Context)
}

// IncidentService определяет контракт бизнес-логики сообщений об инцидентах
type IncidentService interface {
	ReportIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListRecentIncidents(ctx context.Context, limit int) ([]*models.Incident, error)
}

type incidentService struct {
	repo    IncidentRepository
	checker ProximityChecker
	logger  *logrus.Logger
	cfg     *config.Config
}

func NewIncidentService(repo IncidentRepository, checker ProximityChecker, logger *logrus.Logger, cfg *config.Config) IncidentService {
	return &incidentService{
		repo:    repo,
		checker: checker,
		logger:  logger,
		cfg:     cfg,
	}
}

// ReportIncident сохраняет новое сообщение об инциденте и сразу запускает
// внеочередной проксимити-свип
func (s *incidentService) ReportIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "ReportIncident",
		"category": incident.Category,
	})
	log.Info("Attempting to report a new incident")

	if !geo.ValidCoordinate(incident.Latitude, incident.Longitude) {
		log.Warn("Rejecting incident with implausible coordinates")
		return fmt.Errorf("service: implausible incident coordinates")
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache reported incident")
	}

	log.WithField("incident_id", incident.ID).Info("Incident reported successfully")

	// Свип не должен зависеть от времени жизни HTTP-запроса
	go s.checker.CheckNow(context.WithoutCancel(ctx))
	return nil
}

// GetIncident получает инцидент по ID, сперва пробуя кэш
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident cache")
	}
	if cached != nil {
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incident, nil
}

// ListRecentIncidents возвращает инциденты в пределах горизонта свежести
func (s *incidentService) ListRecentIncidents(ctx context.Context, limit int) ([]*models.Incident, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListRecentIncidents",
		"limit":   limit,
	})

	incidents, err := s.repo.ListRecent(ctx, s.cfg.IncidentMaxAge, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list recent incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Recent incidents listed")
	return incidents, nil
}
