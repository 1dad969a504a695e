package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"jobportal-backend/internal/domain"
)

type messageRepo struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *pgxpool.Pool) domain.MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, msg *domain.Message) error {
	query := `
		WITH ins AS (
			INSERT INTO messages (sender_id, recipient_id, content, created_at, is_read)
			VALUES ($1, $2, $3, $4, false)
			RETURNING id, created_at, is_read
		)
		SELECT ins.id, ins.created_at, ins.is_read,
		       s.username, s.email, t.username, t.email
		FROM ins, accounts s, accounts t
		WHERE s.id = $1 AND t.id = $2`

	var sender, recipient domain.UserSummary
	err := r.db.QueryRow(ctx, query, msg.SenderID, msg.RecipientID, msg.Content, time.Now()).Scan(
		&msg.ID, &msg.CreatedAt, &msg.IsRead,
		&sender.Username, &sender.Email,
		&recipient.Username, &recipient.Email,
	)
	if err != nil {
		return err
	}
	sender.ID = msg.SenderID
	recipient.ID = msg.RecipientID
	msg.Sender = &sender
	msg.Recipient = &recipient
	return nil
}

// Conversation returns all messages between the two accounts in either
// direction, oldest-first (chronological reading order).
func (r *messageRepo) Conversation(ctx context.Context, a, b int64) ([]domain.Message, error) {
	query := `
		SELECT
			m.id, m.sender_id, m.recipient_id, m.content, m.created_at, m.is_read,
			s.username, s.email, t.username, t.email
		FROM messages m
		JOIN accounts s ON s.id = m.sender_id
		JOIN accounts t ON t.id = m.recipient_id
		WHERE (m.sender_id = $1 AND m.recipient_id = $2)
		   OR (m.sender_id = $2 AND m.recipient_id = $1)
		ORDER BY m.created_at ASC`

	rows, err := r.db.Query(ctx, query, a, b)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		var m domain.Message
		var sender, recipient domain.UserSummary
		if err := rows.Scan(
			&m.ID, &m.SenderID, &m.RecipientID, &m.Content, &m.CreatedAt, &m.IsRead,
			&sender.Username, &sender.Email,
			&recipient.Username, &recipient.Email,
		); err != nil {
			return nil, err
		}
		sender.ID = m.SenderID
		recipient.ID = m.RecipientID
		m.Sender = &sender
		m.Recipient = &recipient
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// Partners returns the distinct accounts that have either sent to or
// received from the given account.
func (r *messageRepo) Partners(ctx context.Context, accountID int64) ([]domain.UserSummary, error) {
	query := `
		SELECT DISTINCT a.id, a.username, a.email
		FROM accounts a
		JOIN messages m
		  ON (m.sender_id = a.id AND m.recipient_id = $1)
		  OR (m.recipient_id = a.id AND m.sender_id = $1)
		ORDER BY a.username ASC`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partners := []domain.UserSummary{}
	for rows.Next() {
		var u domain.UserSummary
		if err := rows.Scan(&u.ID, &u.Username, &u.Email); err != nil {
			return nil, err
		}
		partners = append(partners, u)
	}
	return partners, rows.Err()
}
