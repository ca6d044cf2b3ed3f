package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/pchukwuemeka424/famGuard-sub003/internal/config"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/geocoder"
	v1 "github.com/pchukwuemeka424/famGuard-sub003/internal/handler/http/v1"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/localstore"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/push"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/realtime"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/repository"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/service"
	"github.com/pchukwuemeka424/famGuard-sub003/pkg/logger"
	"github.com/pchukwuemeka424/famGuard-sub003/pkg/postgres"
	redisclient "github.com/pchukwuemeka424/famGuard-sub003/pkg/redis"
	"github.com/sirupsen/logrus"
)

func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// startIncidentJanitor запускает периодическую чистку устаревших инцидентов
func startIncidentJanitor(ctx context.Context, repo *repository.IncidentRepository, cfg *config.Config, log *logrus.Logger) {
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				purged, err := repo.PurgeExpired(ctx, cfg.IncidentMaxAge)
				if err != nil {
					log.WithError(err).Error("Failed to purge expired incidents")
					continue
				}
				if purged > 0 {
					log.WithField("purged", purged).Info("Expired incidents purged")
				}
			}
		}
	}()
}

// startRealtimeSync поднимает живые подписки на чек-ины и предупреждения о
// маршрутах и периодически пересобирает их под актуальный набор контактов
func startRealtimeSync(
	ctx context.Context,
	store *localstore.Store,
	connRepo *repository.ConnectionRepository,
	transport *realtime.RedisTransport,
	publisher push.Publisher,
	cfg *config.Config,
	log *logrus.Logger,
) []*realtime.Manager {
	trackCfg, err := store.ReadTrackingConfig(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to read tracking config, realtime sync disabled")
		return nil
	}
	if trackCfg.UserID == "" {
		log.Info("No signed-in user, realtime sync disabled")
		return nil
	}

	fanout := realtime.NewPushFanout(connRepo, publisher, trackCfg.UserID)
	managers := []*realtime.Manager{
		realtime.NewManager(transport, realtime.CheckInMapper{}, fanout, log, trackCfg.UserID),
		realtime.NewManager(transport, realtime.AdvisoryMapper{RiskThreshold: cfg.RiskThreshold}, fanout, log, trackCfg.UserID),
	}

	rebuild := func(ctx context.Context) {
		ids, err := connRepo.GetConnectedUserIDs(ctx, trackCfg.UserID)
		if err != nil {
			log.WithError(err).Error("Failed to resolve connection set for realtime sync")
			return
		}
		for _, m := range managers {
			if err := m.Rebuild(ctx, ids); err != nil {
				log.WithError(err).Error("Failed to rebuild realtime subscription")
			}
		}
	}
	for _, m := range managers {
		m.SetOnRefresh(rebuild)
	}

	rebuild(ctx)

	// Изменения графа связей подхватываются периодической пересборкой
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rebuild(ctx)
			}
		}
	}()

	return managers
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Локальное хранилище устройства
	deviceStore, err := localstore.Open(cfg.LocalStorePath)
	if err != nil {
		log.Fatalf("Failed to open local device store: %v", err)
	}
	defer deviceStore.Close()

	// Очередь доставки push-уведомлений
	pushPublisher := push.NewRedisPublisher(redisClient)
	pushWorker := push.NewWorker(redisClient, log, cfg)
	pushWorker.Start(ctx)

	// Инициализация репозиториев
	locationRepo := repository.NewLocationRepository(dbpool)
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient)
	proximityRepo := repository.NewProximityRepository(dbpool)
	connectionRepo := repository.NewConnectionRepository(dbpool)

	// Планировщик захвата местоположения
	geocodeClient := geocoder.New(cfg.GeocoderURL, cfg.GeocoderTimeout)
	captureService := service.NewCaptureService(deviceStore, geocodeClient, locationRepo, log, cfg)

	// Проксимити-движок
	proximityEngine := service.NewProximityEngine(proximityRepo, pushPublisher, log, cfg)
	proximityEngine.Start(ctx)
	defer proximityEngine.Stop()

	startIncidentJanitor(ctx, incidentRepo, cfg, log)

	// Сервис инцидентов
	incidentService := service.NewIncidentService(incidentRepo, proximityEngine, log, cfg)

	// Живые подписки на сигналы доверенных контактов
	transport := realtime.NewRedisTransport(redisClient, log)
	syncManagers := startRealtimeSync(ctx, deviceStore, connectionRepo, transport, pushPublisher, cfg, log)
	defer func() {
		for _, m := range syncManagers {
			_ = m.Close()
		}
	}()

	// Инициализация хэндлеров
	handler := v1.NewHandler(captureService, incidentService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	if len(cfg.APIKeys) > 0 {
		api.Use(v1.APIKeyAuthMiddleware(cfg, log))
	}
	handler.RegisterRoutes(api)

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
