package model

import (
	"github.com/alpereneser/connectlist-sub003/internal/validation"
)

// EmailProvider names a transactional email backend.
type EmailProvider string

const (
	EmailProviderMailtrap EmailProvider = "mailtrap"
	EmailProviderResend   EmailProvider = "resend"
	EmailProviderSMTP     EmailProvider = "smtp"
)

// SendEmailRequest is the body accepted by every email relay function.
// Either HTML or Text must be set. From falls back to the configured sender.
type SendEmailRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=998"`
	HTML    string `json:"html" validate:"required_without=Text"`
	Text    string `json:"text" validate:"required_without=HTML"`
	From    string `json:"from"`
}

func (r *SendEmailRequest) Validate() error {
	return validation.Validator().Struct(r)
}

// SendEmailResponse is returned when the provider accepted the message.
type SendEmailResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// EmailTestRequest sends a canned message through one provider.
type EmailTestRequest struct {
	To       string        `json:"to" validate:"required,email"`
	Provider EmailProvider `json:"provider" validate:"omitempty,oneof=mailtrap resend smtp"`
}

func (r *EmailTestRequest) Validate() error {
	return validation.Validator().Struct(r)
}

// EmailTestStatusRequest carries no input. It exists so GET email-test
// runs through the same handler pipeline.
type EmailTestStatusRequest struct{}

func (r *EmailTestStatusRequest) Validate() error {
	return nil
}

// EmailProviderStatus reports whether a provider can be used.
type EmailProviderStatus struct {
	Provider   EmailProvider `json:"provider"`
	Configured bool          `json:"configured"`
}

// EmailTestStatusResponse is the GET email-test report. It never carries secrets.
type EmailTestStatusResponse struct {
	Success     bool                  `json:"success"`
	DefaultFrom string                `json:"default_from"`
	Providers   []EmailProviderStatus `json:"providers"`
	Usage       string                `json:"usage"`
}
