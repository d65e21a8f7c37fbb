package handler

import (
	"context"

	"github.com/alpereneser/connectlist-sub003/internal/middleware"
	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/alpereneser/connectlist-sub003/internal/server"
	"github.com/labstack/echo/v4"
)

type notificationService interface {
	Create(ctx context.Context, authUserID string, req *model.CreateNotificationRequest) (*model.CreateNotificationResponse, error)
	List(ctx context.Context, authUserID string, query *model.ListNotificationsQuery) (*model.ListNotificationsResponse, error)
	MarkRead(ctx context.Context, authUserID string, req *model.MarkNotificationReadRequest) error
}

// NotificationHandler serves /api/v1/notifications. Every route runs
// behind RequireAuth, so the caller is the Clerk user in the context.
type NotificationHandler struct {
	Handler
	notifications notificationService
}

func NewNotificationHandler(s *server.Server, notifications notificationService) *NotificationHandler {
	return &NotificationHandler{
		Handler:       NewHandler(s),
		notifications: notifications,
	}
}

func (h *NotificationHandler) Create(c echo.Context, req *model.CreateNotificationRequest) (*model.CreateNotificationResponse, error) {
	return h.notifications.Create(c.Request().Context(), middleware.GetUserID(c), req)
}

func (h *NotificationHandler) List(c echo.Context, query *model.ListNotificationsQuery) (*model.ListNotificationsResponse, error) {
	return h.notifications.List(c.Request().Context(), middleware.GetUserID(c), query)
}

func (h *NotificationHandler) MarkRead(c echo.Context, req *model.MarkNotificationReadRequest) error {
	return h.notifications.MarkRead(c.Request().Context(), middleware.GetUserID(c), req)
}
