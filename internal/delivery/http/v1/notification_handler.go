package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifUC domain.NotificationUsecase
}

func NewNotificationHandler(protected *gin.RouterGroup, notifUC domain.NotificationUsecase) {
	handler := &NotificationHandler{notifUC: notifUC}

	notifs := protected.Group("/notifications")
	notifs.Use(middleware.RequirePermissions(domain.PermNotificationsRead))
	{
		notifs.GET("", handler.ListMine)
		notifs.GET("/unread-count", handler.UnreadCount)
		notifs.PATCH("/:id/read", handler.MarkRead)
		notifs.PATCH("/read-all", handler.MarkAllRead)
	}
}

// ListMine godoc
// @Summary      My Notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /notifications [get]
func (h *NotificationHandler) ListMine(c *gin.Context) {
	page, pageSize := pageParams(c)
	items, total, err := h.notifUC.ListMine(c.Request.Context(), currentUserID(c), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notifications", response.Paginated{
		Items: items, Total: total, Page: page, PageSize: pageSize,
	})
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.notifUC.UnreadCount(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Unread count", gin.H{"count": count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.notifUC.MarkRead(c.Request.Context(), currentUserID(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notification marked as read", nil)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notifUC.MarkAllRead(c.Request.Context(), currentUserID(c)); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "All notifications marked as read", nil)
}
