package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/delivery/http/response"
	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/apperror"
)

type ConnectionHandler struct {
	networkUC domain.NetworkUsecase
}

func NewConnectionHandler(protected *gin.RouterGroup, networkUC domain.NetworkUsecase) {
	handler := &ConnectionHandler{networkUC: networkUC}

	connections := protected.Group("/connections")
	{
		connections.GET("", handler.List)
		connections.POST("", handler.Connect)
		connections.DELETE("", handler.Disconnect)
	}
}

type ConnectionRequest struct {
	ToUserID int64 `json:"to_user_id"`
}

// Connect is idempotent: a repeated request returns the existing edge with
// 200 instead of 201.
func (h *ConnectionHandler) Connect(c *gin.Context) {
	var req ConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	conn, created, err := h.networkUC.Connect(c.Request.Context(), currentUserID(c), req.ToUserID)
	if err != nil {
		c.Error(err)
		return
	}

	if created {
		response.Success(c, http.StatusCreated, "Connected", conn)
		return
	}
	response.Success(c, http.StatusOK, "Already connected", conn)
}

func (h *ConnectionHandler) List(c *gin.Context) {
	connections, err := h.networkUC.ListConnections(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Connections", connections)
}

func (h *ConnectionHandler) Disconnect(c *gin.Context) {
	var req ConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.networkUC.Disconnect(c.Request.Context(), currentUserID(c), req.ToUserID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Disconnected", nil)
}
