package postgres

import (
	"context"
	"fmt"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HoldingRepo - хранение позиций портфеля в таблице holdings
type HoldingRepo struct {
	db *pgxpool.Pool
}

// NewHoldingRepository - Создаёт репозиторий позиций на основе пула соединений.
func NewHoldingRepository(db *pgxpool.Pool) *HoldingRepo {
	return &HoldingRepo{db: db}
}

// EnsureSchema - создаёт таблицу, если её нет
func (r *HoldingRepo) EnsureSchema(ctx context.Context) error {
	const query = `
		CREATE TABLE IF NOT EXISTS holdings (
			id          UUID PRIMARY KEY,
			position    INTEGER NOT NULL,
			coin_id     TEXT NOT NULL UNIQUE,
			coin_name   TEXT NOT NULL,
			coin_symbol TEXT NOT NULL,
			amount      DOUBLE PRECISION NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL
		)`
	_, err := r.db.Exec(ctx, query)
	return err
}

// Load - все позиции в порядке добавления
func (r *HoldingRepo) Load(ctx context.Context) ([]domain.Holding, error) {
	const query = `
		SELECT id, coin_id, coin_name, coin_symbol, amount, created_at
		FROM holdings
		ORDER BY position
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Holding
	for rows.Next() {
		var (
			h  domain.Holding
			id string
		)
		if err := rows.Scan(&id, &h.CoinID, &h.CoinName, &h.CoinSymbol, &h.Amount, &h.CreatedAt); err != nil {
			return nil, err
		}
		if h.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("holding %s: bad id: %w", h.CoinID, err)
		}
		out = append(out, h)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

// Save - заменяет содержимое таблицы снимком позиций в одной транзакции
func (r *HoldingRepo) Save(ctx context.Context, items []domain.Holding) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM holdings`); err != nil {
		return err
	}

	const query = `
		INSERT INTO holdings (id, position, coin_id, coin_name, coin_symbol, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for i, h := range items {
		if _, err := tx.Exec(ctx, query, h.ID.String(), i, h.CoinID, h.CoinName, h.CoinSymbol, h.Amount, h.CreatedAt); err != nil {
			return fmt.Errorf("insert holding %s: %w", h.CoinID, err)
		}
	}
	return tx.Commit(ctx)
}
