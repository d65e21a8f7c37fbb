package handler

import (
	"context"

	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/alpereneser/connectlist-sub003/internal/server"
	"github.com/labstack/echo/v4"
)

type emailService interface {
	Send(ctx context.Context, provider model.EmailProvider, req *model.SendEmailRequest) (*model.SendEmailResponse, error)
	SendTest(ctx context.Context, req *model.EmailTestRequest) (*model.SendEmailResponse, error)
	Status() *model.EmailTestStatusResponse
}

// EmailHandler serves the email relay functions.
type EmailHandler struct {
	Handler
	email emailService
}

func NewEmailHandler(s *server.Server, email emailService) *EmailHandler {
	return &EmailHandler{
		Handler: NewHandler(s),
		email:   email,
	}
}

func (h *EmailHandler) SendMailtrap(c echo.Context, req *model.SendEmailRequest) (*model.SendEmailResponse, error) {
	return h.email.Send(c.Request().Context(), model.EmailProviderMailtrap, req)
}

func (h *EmailHandler) SendResend(c echo.Context, req *model.SendEmailRequest) (*model.SendEmailResponse, error) {
	return h.email.Send(c.Request().Context(), model.EmailProviderResend, req)
}

func (h *EmailHandler) SendSMTP(c echo.Context, req *model.SendEmailRequest) (*model.SendEmailResponse, error) {
	return h.email.Send(c.Request().Context(), model.EmailProviderSMTP, req)
}

func (h *EmailHandler) TestStatus(c echo.Context, _ *model.EmailTestStatusRequest) (*model.EmailTestStatusResponse, error) {
	return h.email.Status(), nil
}

func (h *EmailHandler) SendTest(c echo.Context, req *model.EmailTestRequest) (*model.SendEmailResponse, error) {
	return h.email.SendTest(c.Request().Context(), req)
}
