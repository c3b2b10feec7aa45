package userrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/astriva/astroday/internal/domain/chart"
)

// PostgresRepository implements chart.Repository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create inserts a user row with the natal chart as JSON.
func (r *PostgresRepository) Create(ctx context.Context, user chart.User) error {
	natal, err := json.Marshal(user.Natal)
	if err != nil {
		return fmt.Errorf("encode natal chart: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO users (id, created_at, birth_utc, birth_tz, lat, lon, natal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, user.ID, user.CreatedAt, user.Natal.Birth.UTC, user.Natal.Birth.Timezone,
		user.Natal.Birth.Lat, user.Natal.Birth.Lon, natal)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user row. A missing row is reported via the bool, not an
// error.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (chart.User, bool, error) {
	var (
		user      chart.User
		createdAt time.Time
		natal     []byte
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, created_at, natal
		FROM users
		WHERE id = $1
	`, id).Scan(&user.ID, &createdAt, &natal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return chart.User{}, false, nil
		}
		return chart.User{}, false, err
	}
	user.CreatedAt = createdAt
	if err := json.Unmarshal(natal, &user.Natal); err != nil {
		return chart.User{}, false, fmt.Errorf("decode natal chart: %w", err)
	}
	return user, true, nil
}

var _ chart.Repository = (*PostgresRepository)(nil)
