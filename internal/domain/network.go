package domain

import (
	"context"
	"time"
)

// Connection is a directed edge. The reverse direction is a distinct edge;
// the system never auto-symmetrizes.
type Connection struct {
	ID         int64     `json:"id"`
	FromUserID int64     `json:"-"`
	ToUserID   int64     `json:"-"`
	CreatedAt  time.Time `json:"created_at"`

	FromUser *UserSummary `json:"from_user,omitempty"`
	ToUser   *UserSummary `json:"to_user,omitempty"`
}

type Message struct {
	ID          int64     `json:"id"`
	SenderID    int64     `json:"-"`
	RecipientID int64     `json:"-"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	IsRead      bool      `json:"is_read"`

	Sender    *UserSummary `json:"sender,omitempty"`
	Recipient *UserSummary `json:"recipient,omitempty"`
}

type ConnectionRepository interface {
	// Create inserts the edge, or returns the existing one when the pair is
	// already connected in this direction. The bool reports whether a new
	// row was created.
	Create(ctx context.Context, fromID, toID int64) (*Connection, bool, error)
	ListFrom(ctx context.Context, fromID int64) ([]Connection, error)
	// Delete removes the edge in that direction only; ErrNotFound if absent.
	Delete(ctx context.Context, fromID, toID int64) error
}

type MessageRepository interface {
	Create(ctx context.Context, msg *Message) error
	// Conversation returns messages in either direction between the two
	// accounts, ordered by creation time ascending.
	Conversation(ctx context.Context, a, b int64) ([]Message, error)
	// Partners returns the distinct accounts that have sent to or received
	// from the given account.
	Partners(ctx context.Context, accountID int64) ([]UserSummary, error)
}

type NetworkUsecase interface {
	// Connect is idempotent: repeating a call with the same pair returns
	// the existing edge. The bool reports whether the edge was created.
	Connect(ctx context.Context, fromID, toID int64) (*Connection, bool, error)
	Disconnect(ctx context.Context, fromID, toID int64) error
	ListConnections(ctx context.Context, fromID int64) ([]Connection, error)
	SendMessage(ctx context.Context, fromID, toID int64, content string) (*Message, error)
	Conversation(ctx context.Context, selfID, otherID int64) ([]Message, error)
	ConversationPartners(ctx context.Context, selfID int64) ([]UserSummary, error)
}
