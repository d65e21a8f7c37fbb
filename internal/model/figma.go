package model

import (
	"strings"

	"github.com/alpereneser/connectlist-sub003/internal/validation"
)

// FigmaFileRequest selects a Figma file, optionally narrowed to nodes.
type FigmaFileRequest struct {
	FileKey string `query:"file_key" validate:"required,max=128"`
	NodeIDs string `query:"node_ids"`
}

func (r *FigmaFileRequest) Validate() error {
	if err := validation.Validator().Struct(r); err != nil {
		return err
	}
	if strings.ContainsAny(r.FileKey, "/?#") {
		return validation.CustomValidationErrors{
			{Field: "file_key", Message: "must not contain path or query characters"},
		}
	}
	return nil
}
