package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"jobportal-backend/internal/domain"
	"jobportal-backend/internal/usecase"
)

func networkFixtures(t *testing.T) (*MockConnectionRepo, *MockMessageRepo, *MockAccountRepo, domain.NetworkUsecase) {
	t.Helper()
	connectionRepo := new(MockConnectionRepo)
	messageRepo := new(MockMessageRepo)
	accountRepo := new(MockAccountRepo)
	uc := usecase.NewNetworkUsecase(connectionRepo, messageRepo, accountRepo)
	return connectionRepo, messageRepo, accountRepo, uc
}

func TestConnect(t *testing.T) {
	t.Run("Should reject self-connection", func(t *testing.T) {
		connectionRepo, _, _, uc := networkFixtures(t)

		_, _, err := uc.Connect(context.Background(), 1, 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot connect to yourself")
		connectionRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should 404 for an unknown target", func(t *testing.T) {
		_, _, accountRepo, uc := networkFixtures(t)
		accountRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		_, _, err := uc.Connect(context.Background(), 1, 99)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not found")
	})

	t.Run("Repeat connect returns the existing edge", func(t *testing.T) {
		connectionRepo, _, accountRepo, uc := networkFixtures(t)
		accountRepo.On("GetByID", mock.Anything, int64(2)).Return(&domain.Account{ID: 2}, nil)
		edge := &domain.Connection{ID: 7, FromUserID: 1, ToUserID: 2}
		connectionRepo.On("Create", mock.Anything, int64(1), int64(2)).Return(edge, true, nil).Once()
		connectionRepo.On("Create", mock.Anything, int64(1), int64(2)).Return(edge, false, nil)

		first, created, err := uc.Connect(context.Background(), 1, 2)
		assert.NoError(t, err)
		assert.True(t, created)

		second, created, err := uc.Connect(context.Background(), 1, 2)
		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
	})
}

func TestDisconnect(t *testing.T) {
	t.Run("Should 404 when the edge is absent", func(t *testing.T) {
		connectionRepo, _, _, uc := networkFixtures(t)
		connectionRepo.On("Delete", mock.Anything, int64(1), int64(2)).Return(domain.ErrNotFound)

		err := uc.Disconnect(context.Background(), 1, 2)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Connection not found")
	})

	t.Run("Deletes only the caller's direction", func(t *testing.T) {
		connectionRepo, _, _, uc := networkFixtures(t)
		connectionRepo.On("Delete", mock.Anything, int64(1), int64(2)).Return(nil)

		assert.NoError(t, uc.Disconnect(context.Background(), 1, 2))
		connectionRepo.AssertCalled(t, "Delete", mock.Anything, int64(1), int64(2))
	})
}

func TestSendMessage(t *testing.T) {
	t.Run("Should reject empty content", func(t *testing.T) {
		_, messageRepo, _, uc := networkFixtures(t)

		_, err := uc.SendMessage(context.Background(), 1, 2, "")
		assert.Error(t, err)
		messageRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should 404 for an unknown recipient", func(t *testing.T) {
		_, _, accountRepo, uc := networkFixtures(t)
		accountRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.SendMessage(context.Background(), 1, 99, "hello")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not found")
	})

	t.Run("Stores sender, recipient and content", func(t *testing.T) {
		_, messageRepo, accountRepo, uc := networkFixtures(t)
		accountRepo.On("GetByID", mock.Anything, int64(2)).Return(&domain.Account{ID: 2}, nil)
		messageRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *domain.Message) bool {
			return m.SenderID == 1 && m.RecipientID == 2 && m.Content == "hello"
		})).Return(nil)

		msg, err := uc.SendMessage(context.Background(), 1, 2, "hello")
		assert.NoError(t, err)
		assert.Equal(t, "hello", msg.Content)
		messageRepo.AssertExpectations(t)
	})
}

func TestConversation(t *testing.T) {
	t.Run("Returns both directions oldest-first", func(t *testing.T) {
		_, messageRepo, accountRepo, uc := networkFixtures(t)
		accountRepo.On("GetByID", mock.Anything, int64(2)).Return(&domain.Account{ID: 2}, nil)
		base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
		messageRepo.On("Conversation", mock.Anything, int64(1), int64(2)).Return([]domain.Message{
			{ID: 1, SenderID: 1, RecipientID: 2, CreatedAt: base},
			{ID: 2, SenderID: 2, RecipientID: 1, CreatedAt: base.Add(time.Minute)},
		}, nil)

		messages, err := uc.Conversation(context.Background(), 1, 2)
		assert.NoError(t, err)
		assert.Len(t, messages, 2)
		assert.True(t, messages[0].CreatedAt.Before(messages[1].CreatedAt))
	})

	t.Run("Partners come from the message repo", func(t *testing.T) {
		_, messageRepo, _, uc := networkFixtures(t)
		messageRepo.On("Partners", mock.Anything, int64(1)).
			Return([]domain.UserSummary{{ID: 2, Username: "bob"}}, nil)

		partners, err := uc.ConversationPartners(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, partners, 1)
	})
}

func TestNotifications(t *testing.T) {
	t.Run("List caps at the feed limit", func(t *testing.T) {
		notificationRepo := new(MockNotificationRepo)
		notificationRepo.On("ListByRecipient", mock.Anything, int64(1), domain.NotificationFeedLimit).
			Return([]domain.Notification{{ID: 1, Verb: "alice applied for your job 'Backend Engineer'"}}, nil)
		uc := usecase.NewNotificationUsecase(notificationRepo)

		notifications, err := uc.List(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, notifications, 1)
		notificationRepo.AssertExpectations(t)
	})

	t.Run("MarkRead 404s for entries owned by others", func(t *testing.T) {
		notificationRepo := new(MockNotificationRepo)
		notificationRepo.On("MarkRead", mock.Anything, int64(1), int64(9)).Return(domain.ErrNotFound)
		uc := usecase.NewNotificationUsecase(notificationRepo)

		err := uc.MarkRead(context.Background(), 1, 9)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Notification not found")
	})

	t.Run("MarkAllRead succeeds with nothing unread", func(t *testing.T) {
		notificationRepo := new(MockNotificationRepo)
		notificationRepo.On("MarkAllRead", mock.Anything, int64(1)).Return(nil)
		uc := usecase.NewNotificationUsecase(notificationRepo)

		assert.NoError(t, uc.MarkAllRead(context.Background(), 1))
	})
}
