package usecase

import (
	"context"
	"errors"

	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/apperror"
)

type networkUsecase struct {
	connectionRepo domain.ConnectionRepository
	messageRepo    domain.MessageRepository
	accountRepo    domain.AccountRepository
}

// NewNetworkUsecase creates a usecase for connections and messaging
func NewNetworkUsecase(
	connectionRepo domain.ConnectionRepository,
	messageRepo domain.MessageRepository,
	accountRepo domain.AccountRepository,
) domain.NetworkUsecase {
	return &networkUsecase{
		connectionRepo: connectionRepo,
		messageRepo:    messageRepo,
		accountRepo:    accountRepo,
	}
}

// Connect creates the directed edge from -> to. Repeating the call returns
// the existing edge; the reverse direction is a separate edge.
func (uc *networkUsecase) Connect(ctx context.Context, fromID, toID int64) (*domain.Connection, bool, error) {
	if toID == 0 {
		return nil, false, apperror.BadRequest("to_user_id is required")
	}
	if toID == fromID {
		return nil, false, apperror.BadRequest("Cannot connect to yourself")
	}
	if _, err := uc.accountRepo.GetByID(ctx, toID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, apperror.NotFound("User not found")
		}
		return nil, false, apperror.Internal(err)
	}

	conn, created, err := uc.connectionRepo.Create(ctx, fromID, toID)
	if err != nil {
		return nil, false, apperror.Internal(err)
	}
	return conn, created, nil
}

func (uc *networkUsecase) Disconnect(ctx context.Context, fromID, toID int64) error {
	if toID == 0 {
		return apperror.BadRequest("to_user_id is required")
	}
	if err := uc.connectionRepo.Delete(ctx, fromID, toID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Connection not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (uc *networkUsecase) ListConnections(ctx context.Context, fromID int64) ([]domain.Connection, error) {
	connections, err := uc.connectionRepo.ListFrom(ctx, fromID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return connections, nil
}

func (uc *networkUsecase) SendMessage(ctx context.Context, fromID, toID int64, content string) (*domain.Message, error) {
	if toID == 0 || content == "" {
		return nil, apperror.BadRequest("to_user_id and content are required")
	}
	if _, err := uc.accountRepo.GetByID(ctx, toID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	msg := &domain.Message{SenderID: fromID, RecipientID: toID, Content: content}
	if err := uc.messageRepo.Create(ctx, msg); err != nil {
		return nil, apperror.Internal(err)
	}
	return msg, nil
}

func (uc *networkUsecase) Conversation(ctx context.Context, selfID, otherID int64) ([]domain.Message, error) {
	if _, err := uc.accountRepo.GetByID(ctx, otherID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	messages, err := uc.messageRepo.Conversation(ctx, selfID, otherID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return messages, nil
}

func (uc *networkUsecase) ConversationPartners(ctx context.Context, selfID int64) ([]domain.UserSummary, error) {
	partners, err := uc.messageRepo.Partners(ctx, selfID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return partners, nil
}
