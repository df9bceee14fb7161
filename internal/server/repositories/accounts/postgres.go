package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jwtauth/internal/common"
	"github.com/dmitrijs2005/jwtauth/internal/dbx"
	"github.com/dmitrijs2005/jwtauth/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) ([]models.Account, error) {
	query :=
		`SELECT email, password FROM account
		 WHERE email = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Account, 0, 1)
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.Email, &a.Password); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// CreateAccount checks for an existing row first so the common case never
// hits the constraint. The unique index on email is what guarantees a single
// row when two sign-ups race.
func (r *PostgresRepository) CreateAccount(ctx context.Context, account *models.Account) error {
	existing, err := r.FindByEmail(ctx, account.Email)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return common.ErrEmailAlreadyExists
	}

	query :=
		`INSERT INTO account (email, password)
		 VALUES ($1, $2)
		 `

	if _, err := r.db.ExecContext(ctx, query, account.Email, account.Password); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return common.ErrEmailAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
