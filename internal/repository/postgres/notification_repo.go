package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"jobportal-backend/internal/domain"
)

type notificationRepo struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *pgxpool.Pool) domain.NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (recipient_id, actor_id, verb, job_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, false, $5)
		RETURNING id`

	n.CreatedAt = time.Now()
	return r.db.QueryRow(ctx, query,
		n.RecipientID, n.ActorID, n.Verb, n.JobID, n.CreatedAt,
	).Scan(&n.ID)
}

// ListByRecipient returns the recipient's feed newest-first, capped at limit.
func (r *notificationRepo) ListByRecipient(ctx context.Context, recipientID int64, limit int) ([]domain.Notification, error) {
	query := `
		SELECT
			n.id, n.recipient_id, n.actor_id, n.verb, n.job_id, n.is_read, n.created_at,
			a.username, a.email,
			j.role, j.company_name
		FROM notifications n
		LEFT JOIN accounts a ON a.id = n.actor_id
		LEFT JOIN jobs j ON j.id = n.job_id
		WHERE n.recipient_id = $1
		ORDER BY n.created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, recipientID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []domain.Notification{}
	for rows.Next() {
		var n domain.Notification
		var actorUsername, actorEmail *string
		var jobRole, jobCompany *string
		if err := rows.Scan(
			&n.ID, &n.RecipientID, &n.ActorID, &n.Verb, &n.JobID, &n.IsRead, &n.CreatedAt,
			&actorUsername, &actorEmail,
			&jobRole, &jobCompany,
		); err != nil {
			return nil, err
		}
		if n.ActorID != nil && actorUsername != nil {
			n.Actor = &domain.UserSummary{ID: *n.ActorID, Username: *actorUsername, Email: *actorEmail}
		}
		if n.JobID != nil && jobRole != nil {
			n.Job = &domain.JobRef{ID: *n.JobID, Role: *jobRole, CompanyName: *jobCompany}
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkRead flips one entry, scoped to the recipient so ids cannot be probed
// across accounts.
func (r *notificationRepo) MarkRead(ctx context.Context, recipientID, id int64) error {
	result, err := r.db.Exec(ctx,
		`UPDATE notifications SET is_read = true WHERE id = $1 AND recipient_id = $2`,
		id, recipientID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkAllRead succeeds unconditionally, even with zero matching rows.
func (r *notificationRepo) MarkAllRead(ctx context.Context, recipientID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE notifications SET is_read = true WHERE recipient_id = $1 AND is_read = false`,
		recipientID,
	)
	return err
}
