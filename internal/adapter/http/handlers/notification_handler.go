package handlers

import (
	"net/http"

	"osms-portal/internal/notification"

	"github.com/gin-gonic/gin"
)

// RecentNotificationLister exposes the dispatcher's bounded in-memory log of
// dispatch outcomes.

type RecentNotificationLister interface {
	Recent() []notification.DispatchResult
}

type NotificationHandler struct {
	dispatcher RecentNotificationLister
}

func NewNotificationHandler(dispatcher RecentNotificationLister) *NotificationHandler {
	return &NotificationHandler{dispatcher: dispatcher}
}

// ListRecent returns the most recent dispatch results, oldest first.
func (h *NotificationHandler) ListRecent(c *gin.Context) {
	c.JSON(http.StatusOK, h.dispatcher.Recent())
}
