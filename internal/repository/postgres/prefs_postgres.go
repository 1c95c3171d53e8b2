package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SharedPrefsRepo - общие настройки (suite, key) -> value, доступные любому процессу с доступом к БД
type SharedPrefsRepo struct {
	db    *pgxpool.Pool
	suite string
}

// NewSharedPrefsRepository - Создаёт репозиторий общих настроек для suite.
func NewSharedPrefsRepository(db *pgxpool.Pool, suite string) *SharedPrefsRepo {
	return &SharedPrefsRepo{db: db, suite: suite}
}

// EnsureSchema - создаёт таблицу, если её нет
func (r *SharedPrefsRepo) EnsureSchema(ctx context.Context) error {
	const query = `
		CREATE TABLE IF NOT EXISTS shared_prefs (
			suite      TEXT NOT NULL,
			key        TEXT NOT NULL,
			value      DOUBLE PRECISION NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (suite, key)
		)`
	_, err := r.db.Exec(ctx, query)
	return err
}

// SetFloat - записывает значение (последняя запись побеждает)
func (r *SharedPrefsRepo) SetFloat(ctx context.Context, key string, value float64) error {
	const query = `
		INSERT INTO shared_prefs (suite, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (suite, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.Exec(ctx, query, r.suite, key, value)
	return err
}

// Float - читает значение, ok == false если ключа нет
func (r *SharedPrefsRepo) Float(ctx context.Context, key string) (float64, bool, error) {
	const query = `SELECT value FROM shared_prefs WHERE suite = $1 AND key = $2`
	var v float64
	err := r.db.QueryRow(ctx, query, r.suite, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
