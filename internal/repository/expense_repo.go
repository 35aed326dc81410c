package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"chelas-api/internal/domain"
)

// ExpenseRepository persiste los gastos de bebida registrados durante el evento.
type ExpenseRepository interface {
	Create(ctx context.Context, expense domain.DrinkExpense) error
	ListByUserSince(ctx context.Context, userID string, since time.Time) ([]domain.DrinkExpense, error)
	Delete(ctx context.Context, id, userID string) error
}

// PgExpenseRepository implementa ExpenseRepository usando pgxpool.
type PgExpenseRepository struct {
	pool *pgxpool.Pool
}

func NewPgExpenseRepository(pool *pgxpool.Pool) *PgExpenseRepository {
	return &PgExpenseRepository{pool: pool}
}

func (r *PgExpenseRepository) Create(ctx context.Context, expense domain.DrinkExpense) error {
	const query = `
		INSERT INTO drink_expenses (id, user_id, description, price, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		expense.ID,
		expense.UserID,
		expense.Description,
		expense.Price,
		expense.CreatedAt,
	)
	return err
}

func (r *PgExpenseRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]domain.DrinkExpense, error) {
	const query = `
		SELECT id, user_id, description, price, created_at
		FROM drink_expenses
		WHERE user_id = $1 AND created_at >= $2
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.DrinkExpense
	for rows.Next() {
		var e domain.DrinkExpense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Price, &e.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (r *PgExpenseRepository) Delete(ctx context.Context, id, userID string) error {
	const query = `
		DELETE FROM drink_expenses
		WHERE id = $1 AND user_id = $2
	`
	_, err := r.pool.Exec(ctx, query, id, userID)
	return err
}
