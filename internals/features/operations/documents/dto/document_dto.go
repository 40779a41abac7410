package dto

import (
	"strings"

	"github.com/google/uuid"

	model "condominiogt_backend/internals/features/operations/documents/model"
)

type CreateDocumentRequest struct {
	DocumentCondominiumID uuid.UUID `json:"document_condominium_id" validate:"required"`
	DocumentTitle         string    `json:"document_title"          validate:"required,max=160"`
	DocumentCategory      *string   `json:"document_category"       validate:"omitempty,max=80"`
	DocumentDescription   *string   `json:"document_description"`
	DocumentStorageKey    string    `json:"document_storage_key"    validate:"required,max=255"`
	DocumentContentType   string    `json:"document_content_type"   validate:"required,max=100"`
	DocumentSizeBytes     int64     `json:"document_size_bytes"     validate:"gte=0"`
}

func (r *CreateDocumentRequest) ToModel(uploadedBy *uuid.UUID) *model.DocumentModel {
	return &model.DocumentModel{
		DocumentCondominiumID: r.DocumentCondominiumID,
		DocumentTitle:         strings.TrimSpace(r.DocumentTitle),
		DocumentCategory:      r.DocumentCategory,
		DocumentDescription:   r.DocumentDescription,
		DocumentStorageKey:    r.DocumentStorageKey,
		DocumentContentType:   r.DocumentContentType,
		DocumentSizeBytes:     r.DocumentSizeBytes,
		DocumentUploadedBy:    uploadedBy,
	}
}

type UpdateDocumentRequest struct {
	DocumentTitle       *string `json:"document_title"    validate:"omitempty,max=160"`
	DocumentCategory    *string `json:"document_category" validate:"omitempty,max=80"`
	DocumentDescription *string `json:"document_description"`
}

func (r *UpdateDocumentRequest) ApplyTo(m *model.DocumentModel) {
	if r.DocumentTitle != nil {
		m.DocumentTitle = strings.TrimSpace(*r.DocumentTitle)
	}
	if r.DocumentCategory != nil {
		m.DocumentCategory = r.DocumentCategory
	}
	if r.DocumentDescription != nil {
		m.DocumentDescription = r.DocumentDescription
	}
}
