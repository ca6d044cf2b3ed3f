package localstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/pchukwuemeka424/famGuard-sub003/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS tracking_config (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	user_id TEXT NOT NULL DEFAULT '',
	group_id TEXT NOT NULL DEFAULT '',
	sharing_enabled INTEGER NOT NULL DEFAULT 0,
	update_frequency_minutes INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS last_insert (
	user_id TEXT PRIMARY KEY,
	inserted_at INTEGER NOT NULL
);
`

// Store - локальное durable-хранилище устройства: конфигурация трекинга и
// отметки времени последней вставки истории. Единственное состояние,
// разделяемое между колбэком захвата и настройками пользователя.
type Store struct {
	db *sql.DB
}

// Open открывает (или создает) локальное хранилище по указанному пути.
// Пустой путь или ":memory:" дает in-memory базу.
func Open(path string) (*Store, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init local store schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close закрывает соединение с базой
func (s *Store) Close() error {
	return s.db.Close()
}

// ReadTrackingConfig возвращает конфигурацию трекинга. Отсутствующая строка -
// ожидаемое состояние до первого логина, возвращается пустая конфигурация.
func (s *Store) ReadTrackingConfig(ctx context.Context) (*models.TrackingConfig, error) {
	cfg := &models.TrackingConfig{}
	var sharing int
	err := s.db.QueryRowContext(ctx, `
		SELECT user_id, group_id, sharing_enabled, update_frequency_minutes
		FROM tracking_config WHERE id = 1
	`).Scan(&cfg.UserID, &cfg.GroupID, &sharing, &cfg.UpdateFrequencyMinutes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read tracking config: %w", err)
	}
	cfg.SharingEnabled = sharing != 0
	return cfg, nil
}

// WriteTrackingConfig перезаписывает конфигурацию трекинга целиком
func (s *Store) WriteTrackingConfig(ctx context.Context, cfg *models.TrackingConfig) error {
	sharing := 0
	if cfg.SharingEnabled {
		sharing = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tracking_config (id, user_id, group_id, sharing_enabled, update_frequency_minutes)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_id = excluded.user_id,
			group_id = excluded.group_id,
			sharing_enabled = excluded.sharing_enabled,
			update_frequency_minutes = excluded.update_frequency_minutes
	`, cfg.UserID, cfg.GroupID, sharing, cfg.UpdateFrequencyMinutes)
	if err != nil {
		return fmt.Errorf("failed to write tracking config: %w", err)
	}
	return nil
}

// SetSharingEnabled переключает только флаг шаринга, не трогая остальное
func (s *Store) SetSharingEnabled(ctx context.Context, enabled bool) error {
	sharing := 0
	if enabled {
		sharing = 1
	}
	_, err := s.db.ExecContext(ctx, `
		UPDATE tracking_config SET sharing_enabled = ? WHERE id = 1
	`, sharing)
	if err != nil {
		return fmt.Errorf("failed to set sharing flag: %w", err)
	}
	return nil
}

// LastInsert возвращает время последней вставки истории для пользователя.
// Нулевое время означает, что вставок еще не было.
func (s *Store) LastInsert(ctx context.Context, userID string) (time.Time, error) {
	var unixMillis int64
	err := s.db.QueryRowContext(ctx, `
		SELECT inserted_at FROM last_insert WHERE user_id = ?
	`, userID).Scan(&unixMillis)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("failed to read last insert timestamp: %w", err)
	}
	return time.UnixMilli(unixMillis), nil
}

// SetLastInsert сохраняет время последней вставки истории для пользователя
func (s *Store) SetLastInsert(ctx context.Context, userID string, ts time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO last_insert (user_id, inserted_at) VALUES (?, ?)
		ON CONFLICT (user_id) DO UPDATE SET inserted_at = excluded.inserted_at
	`, userID, ts.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to set last insert timestamp: %w", err)
	}
	return nil
}
