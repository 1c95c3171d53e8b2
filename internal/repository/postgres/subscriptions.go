package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SubscriptionRepo - подписки чатов на отчёт по портфелю
type SubscriptionRepo struct {
	db *pgxpool.Pool
}

func NewSubscriptionRepository(db *pgxpool.Pool) *SubscriptionRepo {
	return &SubscriptionRepo{db: db}
}

// EnsureSchema - создаёт таблицу, если её нет
func (r *SubscriptionRepo) EnsureSchema(ctx context.Context) error {
	const query = `
		CREATE TABLE IF NOT EXISTS portfolio_subscriptions (
			chat_id          BIGINT PRIMARY KEY,
			interval_minutes INTEGER NOT NULL CHECK (interval_minutes > 0),
			enabled          BOOLEAN NOT NULL DEFAULT TRUE,
			last_sent_at     TIMESTAMPTZ
		)`
	_, err := r.db.Exec(ctx, query)
	return err
}

// MarkEnabled включает/обновляет подписку для заданного chatID с указанным интервалом (в минутах).
// last_sent_at сбрасывается: первый отчёт уйдёт на ближайшем тике.
func (r *SubscriptionRepo) MarkEnabled(ctx context.Context, chatID int64, intervalMinutes int) error {
	const query = `
		INSERT INTO portfolio_subscriptions (chat_id, interval_minutes, enabled, last_sent_at)
		VALUES ($1, $2, TRUE, NULL)
		ON CONFLICT (chat_id)
		DO UPDATE SET interval_minutes = EXCLUDED.interval_minutes,
		              enabled = TRUE,
		              last_sent_at = NULL`
	_, err := r.db.Exec(ctx, query, chatID, intervalMinutes)
	return err
}

// MarkDisabled выключает подписку для chatID.
func (r *SubscriptionRepo) MarkDisabled(ctx context.Context, chatID int64) error {
	const query = `UPDATE portfolio_subscriptions SET enabled = FALSE WHERE chat_id = $1`
	_, err := r.db.Exec(ctx, query, chatID)
	return err
}

// FindDue возвращает chat_id, для которых наступило время отправки на момент now.
func (r *SubscriptionRepo) FindDue(ctx context.Context, now time.Time) ([]int64, error) {
	const query = `
		SELECT chat_id
		FROM portfolio_subscriptions
		WHERE enabled = TRUE
		  AND (
			last_sent_at IS NULL
			OR EXTRACT(EPOCH FROM ($1::timestamptz - last_sent_at)) / 60 >= interval_minutes
		)
		ORDER BY chat_id`
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	return result, rows.Err()
}

// MarkSent отмечает факт отправки для chatID.
func (r *SubscriptionRepo) MarkSent(ctx context.Context, chatID int64, at time.Time) error {
	const query = `UPDATE portfolio_subscriptions SET last_sent_at = $2 WHERE chat_id = $1`
	_, err := r.db.Exec(ctx, query, chatID, at)
	return err
}
