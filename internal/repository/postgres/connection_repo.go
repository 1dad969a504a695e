package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobportal-backend/internal/domain"
)

type connectionRepo struct {
	db *pgxpool.Pool
}

// NewConnectionRepository creates a new connection repository
func NewConnectionRepository(db *pgxpool.Pool) domain.ConnectionRepository {
	return &connectionRepo{db: db}
}

// Create inserts the directed edge. ON CONFLICT DO NOTHING makes a repeated
// call (or the loser of a concurrent race) fall through to returning the
// existing edge instead of erroring.
func (r *connectionRepo) Create(ctx context.Context, fromID, toID int64) (*domain.Connection, bool, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO connections (from_user, to_user, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (from_user, to_user) DO NOTHING
		RETURNING id`,
		fromID, toID, time.Now(),
	).Scan(&id)

	created := true
	if errors.Is(err, pgx.ErrNoRows) {
		// Edge already exists in this direction
		created = false
		err = r.db.QueryRow(ctx,
			`SELECT id FROM connections WHERE from_user = $1 AND to_user = $2`,
			fromID, toID,
		).Scan(&id)
	}
	if err != nil {
		return nil, false, err
	}

	conn, err := r.getByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return conn, created, nil
}

const connectionSelect = `
	SELECT
		c.id, c.from_user, c.to_user, c.created_at,
		f.username, f.email, fp.profile_picture, fp.description,
		t.username, t.email, tp.profile_picture, tp.description
	FROM connections c
	JOIN accounts f ON f.id = c.from_user
	JOIN accounts t ON t.id = c.to_user
	LEFT JOIN profiles fp ON fp.account_id = c.from_user
	LEFT JOIN profiles tp ON tp.account_id = c.to_user`

func scanConnection(row pgx.Row) (*domain.Connection, error) {
	var c domain.Connection
	var from, to domain.UserSummary
	err := row.Scan(
		&c.ID, &c.FromUserID, &c.ToUserID, &c.CreatedAt,
		&from.Username, &from.Email, &from.ProfilePicture, &from.Description,
		&to.Username, &to.Email, &to.ProfilePicture, &to.Description,
	)
	if err != nil {
		return nil, err
	}
	from.ID = c.FromUserID
	to.ID = c.ToUserID
	c.FromUser = &from
	c.ToUser = &to
	return &c, nil
}

func (r *connectionRepo) getByID(ctx context.Context, id int64) (*domain.Connection, error) {
	return scanConnection(r.db.QueryRow(ctx, connectionSelect+` WHERE c.id = $1`, id))
}

func (r *connectionRepo) ListFrom(ctx context.Context, fromID int64) ([]domain.Connection, error) {
	rows, err := r.db.Query(ctx, connectionSelect+` WHERE c.from_user = $1 ORDER BY c.created_at DESC`, fromID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	connections := []domain.Connection{}
	for rows.Next() {
		conn, err := scanConnection(rows)
		if err != nil {
			return nil, err
		}
		connections = append(connections, *conn)
	}
	return connections, rows.Err()
}

// Delete removes the edge in that direction only; the reverse edge, if any,
// is untouched.
func (r *connectionRepo) Delete(ctx context.Context, fromID, toID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM connections WHERE from_user = $1 AND to_user = $2`,
		fromID, toID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
