package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/delivery/http/response"
	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/apperror"
)

type MessageHandler struct {
	networkUC domain.NetworkUsecase
}

func NewMessageHandler(protected *gin.RouterGroup, networkUC domain.NetworkUsecase) {
	handler := &MessageHandler{networkUC: networkUC}

	messages := protected.Group("/messages")
	{
		messages.GET("", handler.Get)
		messages.POST("", handler.Send)
	}
}

type SendMessageRequest struct {
	ToUserID int64  `json:"to_user_id"`
	Content  string `json:"content"`
}

func (h *MessageHandler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	msg, err := h.networkUC.SendMessage(c.Request.Context(), currentUserID(c), req.ToUserID, req.Content)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Message sent", msg)
}

// Get returns a conversation when user_id is given, otherwise the distinct
// set of conversation partners.
func (h *MessageHandler) Get(c *gin.Context) {
	selfID := currentUserID(c)

	rawUserID := c.Query("user_id")
	if rawUserID == "" {
		partners, err := h.networkUC.ConversationPartners(c.Request.Context(), selfID)
		if err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "Conversation partners", partners)
		return
	}

	otherID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid user_id"))
		return
	}

	messages, err := h.networkUC.Conversation(c.Request.Context(), selfID, otherID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Conversation", messages)
}
