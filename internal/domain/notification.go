package domain

import (
	"context"
	"time"
)

// NotificationFeedLimit caps how many entries a feed listing returns.
const NotificationFeedLimit = 100

// Notification is an append-only feed entry. Entries are created only as
// side effects of job-board and social-graph actions, never user-authored.
type Notification struct {
	ID          int64     `json:"id"`
	RecipientID int64     `json:"-"`
	ActorID     *int64    `json:"-"`
	Verb        string    `json:"verb"`
	JobID       *int64    `json:"-"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`

	Actor *UserSummary `json:"actor"`
	Job   *JobRef      `json:"job"`
}

type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	// ListByRecipient returns the recipient's entries newest-first, capped
	// at limit.
	ListByRecipient(ctx context.Context, recipientID int64, limit int) ([]Notification, error)
	// MarkRead flips one entry; ErrNotFound when the id does not belong to
	// the recipient.
	MarkRead(ctx context.Context, recipientID, id int64) error
	// MarkAllRead flips every unread entry; succeeds with zero rows.
	MarkAllRead(ctx context.Context, recipientID int64) error
}

type NotificationUsecase interface {
	List(ctx context.Context, recipientID int64) ([]Notification, error)
	MarkRead(ctx context.Context, recipientID, id int64) error
	MarkAllRead(ctx context.Context, recipientID int64) error
}
