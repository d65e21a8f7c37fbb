package model

import (
	"github.com/alpereneser/connectlist-sub003/internal/validation"
)

// GenerateRequest asks Gemini for a text completion.
type GenerateRequest struct {
	Prompt            string `json:"prompt" validate:"required,max=32000"`
	Model             string `json:"model" validate:"omitempty,max=100"`
	SystemInstruction string `json:"system_instruction" validate:"omitempty,max=8000"`
}

func (r *GenerateRequest) Validate() error {
	return validation.Validator().Struct(r)
}

// GenerateResponse is the Gemini function success payload.
type GenerateResponse struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
	Model   string `json:"model"`
}
