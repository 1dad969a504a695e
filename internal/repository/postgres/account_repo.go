package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobportal-backend/internal/domain"
)

type accountRepo struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *pgxpool.Pool) domain.AccountRepository {
	return &accountRepo{db: db}
}

// Create inserts the account and its profile inside one transaction, so an
// account can never exist without a profile.
func (r *accountRepo) Create(ctx context.Context, acc *domain.Account) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	acc.CreatedAt = now
	acc.UpdatedAt = now

	query := `
		INSERT INTO accounts (username, email, password_hash, role, company_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err = tx.QueryRow(ctx, query,
		acc.Username,
		acc.Email,
		acc.PasswordHash,
		acc.Role,
		acc.CompanyName,
		acc.CreatedAt,
		acc.UpdatedAt,
	).Scan(&acc.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}

	_, err = tx.Exec(ctx, `INSERT INTO profiles (account_id) VALUES ($1)`, acc.ID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *accountRepo) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `
		SELECT id, username, email, password_hash, role, company_name, created_at, updated_at
		FROM accounts
		WHERE id = $1`

	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *accountRepo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `
		SELECT id, username, email, password_hash, role, company_name, created_at, updated_at
		FROM accounts
		WHERE username = $1`

	return r.scanOne(r.db.QueryRow(ctx, query, username))
}

func (r *accountRepo) scanOne(row pgx.Row) (*domain.Account, error) {
	var acc domain.Account
	err := row.Scan(
		&acc.ID, &acc.Username, &acc.Email, &acc.PasswordHash,
		&acc.Role, &acc.CompanyName, &acc.CreatedAt, &acc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &acc, nil
}

// Search matches username or email with a case-insensitive substring,
// excluding the requester, capped at limit.
func (r *accountRepo) Search(ctx context.Context, query string, excludeID int64, limit int) ([]domain.UserSummary, error) {
	sqlQuery := `
		SELECT a.id, a.username, a.email, a.role, a.company_name,
		       p.profile_picture, p.description
		FROM accounts a
		LEFT JOIN profiles p ON p.account_id = a.id
		WHERE (a.username ILIKE $1 OR a.email ILIKE $1) AND a.id <> $2
		ORDER BY a.username ASC
		LIMIT $3`

	pattern := "%" + query + "%"
	rows, err := r.db.Query(ctx, sqlQuery, pattern, excludeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.UserSummary{}
	for rows.Next() {
		var u domain.UserSummary
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &u.Role, &u.CompanyName,
			&u.ProfilePicture, &u.Description,
		); err != nil {
			return nil, err
		}
		results = append(results, u)
	}
	return results, rows.Err()
}
