package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ConnectionRepository struct {
	db *pgxpool.Pool
}

func NewConnectionRepository(db *pgxpool.Pool) *ConnectionRepository {
	return &ConnectionRepository{
		db: db,
	}
}

// GetConnectedUserIDs возвращает идентификаторы доверенных контактов пользователя
func (r *ConnectionRepository) GetConnectedUserIDs(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT peer_id FROM connections
		WHERE user_id = $1
		ORDER BY peer_id;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get connected user ids: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan connection row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error connection iteration: %w", err)
	}
	return ids, nil
}
