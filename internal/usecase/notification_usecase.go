package usecase

import (
	"context"
	"errors"

	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/apperror"
)

type notificationUsecase struct {
	notificationRepo domain.NotificationRepository
}

// NewNotificationUsecase creates a new notification usecase
func NewNotificationUsecase(notificationRepo domain.NotificationRepository) domain.NotificationUsecase {
	return &notificationUsecase{notificationRepo: notificationRepo}
}

func (uc *notificationUsecase) List(ctx context.Context, recipientID int64) ([]domain.Notification, error) {
	notifications, err := uc.notificationRepo.ListByRecipient(ctx, recipientID, domain.NotificationFeedLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return notifications, nil
}

func (uc *notificationUsecase) MarkRead(ctx context.Context, recipientID, id int64) error {
	if err := uc.notificationRepo.MarkRead(ctx, recipientID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Notification not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (uc *notificationUsecase) MarkAllRead(ctx context.Context, recipientID int64) error {
	if err := uc.notificationRepo.MarkAllRead(ctx, recipientID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
