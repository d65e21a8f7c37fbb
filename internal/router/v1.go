package router

import (
	"net/http"

	"github.com/alpereneser/connectlist-sub003/internal/handler"
	"github.com/alpereneser/connectlist-sub003/internal/middleware"
	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/labstack/echo/v4"
)

func registerV1Routes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	v1 := r.Group("/api/v1")

	notifications := v1.Group("/notifications", m.Auth.RequireAuth)

	notifications.POST("", handler.Handle(
		h.Notification.Handler, h.Notification.Create, http.StatusCreated, &model.CreateNotificationRequest{},
	))
	notifications.GET("", handler.Handle(
		h.Notification.Handler, h.Notification.List, http.StatusOK, &model.ListNotificationsQuery{},
	))
	notifications.PATCH("/:id/read", handler.HandleNoContent(
		h.Notification.Handler, h.Notification.MarkRead, http.StatusNoContent, &model.MarkNotificationReadRequest{},
	))
}
