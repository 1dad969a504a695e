package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/delivery/http/response"
	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/apperror"
)

type NotificationHandler struct {
	notificationUC domain.NotificationUsecase
}

func NewNotificationHandler(protected *gin.RouterGroup, notificationUC domain.NotificationUsecase) {
	handler := &NotificationHandler{notificationUC: notificationUC}

	notifications := protected.Group("/notifications")
	{
		notifications.GET("", handler.List)
		notifications.POST("", handler.MarkRead)
	}
}

type MarkReadRequest struct {
	ID      int64 `json:"id"`
	MarkAll bool  `json:"mark_all"`
}

func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.notificationUC.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notifications", notifications)
}

// MarkRead flips one entry by id, or every unread entry when mark_all is set.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	var req MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	recipientID := currentUserID(c)

	switch {
	case req.MarkAll:
		if err := h.notificationUC.MarkAllRead(c.Request.Context(), recipientID); err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "All notifications marked as read", nil)
	case req.ID != 0:
		if err := h.notificationUC.MarkRead(c.Request.Context(), recipientID, req.ID); err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "Notification marked as read", nil)
	default:
		c.Error(apperror.BadRequest("Provide id or mark_all"))
	}
}
