package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/models"
)

type ProximityRepository struct {
	db *pgxpool.Pool
}

func NewProximityRepository(db *pgxpool.Pool) *ProximityRepository {
	return &ProximityRepository{
		db: db,
	}
}

// FindMatches выполняет геопространственный джойн живых позиций с недавними
// инцидентами на стороне сервера. Окно дистанции двустороннее [minKm, maxKm].
func (r *ProximityRepository) FindMatches(ctx context.Context, minKm, maxKm float64, maxAge time.Duration) ([]models.ProximityMatch, error) {
	cutoff := time.Now().Add(-maxAge)
	query := `
		SELECT
			gm.user_id,
			ST_Y(gm.live_location::geometry) as user_latitude,
			ST_X(gm.live_location::geometry) as user_longitude,
			i.id,
			ST_Y(i.location::geometry) as incident_latitude,
			ST_X(i.location::geometry) as incident_longitude,
			i.title,
			i.category,
			ST_Distance(gm.live_location, i.location) / 1000.0 as distance_km,
			i.created_at
		FROM group_members gm
		JOIN incidents i
			ON ST_DWithin(gm.live_location, i.location, $2 * 1000.0)
			AND ST_Distance(gm.live_location, i.location) >= $1 * 1000.0
		WHERE
			gm.live_location IS NOT NULL
			AND i.created_at >= $3
		ORDER BY gm.user_id, distance_km ASC, i.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, minKm, maxKm, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to find proximity matches: %w", err)
	}
	defer rows.Close()

	matches := make([]models.ProximityMatch, 0)
	for rows.Next() {
		var m models.ProximityMatch
		err := rows.Scan(
			&m.UserID,
			&m.UserLatitude,
			&m.UserLongitude,
			&m.IncidentID,
			&m.IncidentLatitude,
			&m.IncidentLongitude,
			&m.IncidentTitle,
			&m.IncidentCategory,
			&m.DistanceKm,
			&m.IncidentCreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan proximity match row: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error match iteration: %w", err)
	}
	return matches, nil
}

// HasPushedSince сообщает, получал ли пользователь push-уведомление после
// указанного момента. Строки подавленных отправок (pushed = false) окно
// дедупликации не продлевают.
func (r *ProximityRepository) HasPushedSince(ctx context.Context, userID string, since time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM proximity_notifications
			WHERE user_id = $1 AND pushed AND notified_at >= $2
		);
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, since).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check push dedup window: %w", err)
	}
	return exists, nil
}

// InsertNotificationRecords вставляет записи дедупликации одним батчем.
// Конфликты по уникальному ключу (user_id, incident_id) - безвредные no-op.
func (r *ProximityRepository) InsertNotificationRecords(ctx context.Context, records []models.ProximityNotificationRecord) error {
	if len(records) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO proximity_notifications (user_id, incident_id, distance_km, pushed, notified_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, incident_id) DO NOTHING;
	`
	for _, rec := range records {
		notifiedAt := rec.NotifiedAt
		if notifiedAt.IsZero() {
			notifiedAt = time.Now()
		}
		batch.Queue(query, rec.UserID, rec.IncidentID, rec.DistanceKm, rec.Pushed, notifiedAt)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range records {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert proximity notification record: %w", err)
		}
	}
	return nil
}

// InsertInAppNotification добавляет внутреннее уведомление в ленту пользователя
func (r *ProximityRepository) InsertInAppNotification(ctx context.Context, n *models.Notification) error {
	data, err := json.Marshal(n.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal notification data: %w", err)
	}

	query := `
		INSERT INTO notifications (user_id, title, body, type, data)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
	`
	err = r.db.QueryRow(ctx, query, n.UserID, n.Title, n.Body, n.Type, data).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert in-app notification: %w", err)
	}
	return nil
}
