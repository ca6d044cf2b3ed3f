package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/models"
)

type LocationRepository struct {
	db *pgxpool.Pool
}

func NewLocationRepository(db *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{
		db: db,
	}
}

// InsertHistory добавляет запись в историю местоположений.
// Всегда вставка, никогда не обновление.
func (r *LocationRepository) InsertHistory(ctx context.Context, rec *models.LocationHistoryRecord) error {
	query := `
		INSERT INTO location_history (user_id, location, accuracy, address)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		rec.UserID,
		rec.Longitude,
		rec.Latitude,
		rec.Accuracy,
		rec.Address,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert location history: %w", err)
	}
	return nil
}

// UpdateConnectionPositions перезаписывает живую позицию на всех записях
// связей, указывающих на пользователя
func (r *LocationRepository) UpdateConnectionPositions(ctx context.Context, userID string, pos models.LivePosition) error {
	query := `
		UPDATE connections SET
			live_location = ST_SetSRID(ST_MakePoint($1, $2), 4326),
			live_address = $3,
			live_updated_at = $4
		WHERE peer_id = $5;
	`
	_, err := r.db.Exec(ctx, query,
		pos.Longitude,
		pos.Latitude,
		pos.Address,
		pos.UpdatedAt,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update connection positions: %w", err)
	}
	return nil
}

// UpdateGroupPosition перезаписывает живую позицию на записи членства в группе
func (r *LocationRepository) UpdateGroupPosition(ctx context.Context, groupID, userID string, pos models.LivePosition) error {
	query := `
		UPDATE group_members SET
			live_location = ST_SetSRID(ST_MakePoint($1, $2), 4326),
			live_address = $3,
			live_updated_at = $4
		WHERE group_id = $5 AND user_id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		pos.Longitude,
		pos.Latitude,
		pos.Address,
		pos.UpdatedAt,
		groupID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update group position: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("group membership %s/%s not found for live position update", groupID, userID)
	}
	return nil
}

// ClearLivePositions обнуляет живую позицию пользователя на связях и в группе.
// Вызывается при отключении шаринга и при выходе из аккаунта.
func (r *LocationRepository) ClearLivePositions(ctx context.Context, groupID, userID string) error {
	connQuery := `
		UPDATE connections SET
			live_location = NULL,
			live_address = NULL,
			live_updated_at = NULL
		WHERE peer_id = $1;
	`
	if _, err := r.db.Exec(ctx, connQuery, userID); err != nil {
		return fmt.Errorf("failed to clear connection positions: %w", err)
	}

	groupQuery := `
		UPDATE group_members SET
			live_location = NULL,
			live_address = NULL,
			live_updated_at = NULL
		WHERE group_id = $1 AND user_id = $2;
	`
	if _, err := r.db.Exec(ctx, groupQuery, groupID, userID); err != nil {
		return fmt.Errorf("failed to clear group position: %w", err)
	}
	return nil
}
