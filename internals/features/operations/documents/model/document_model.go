// file: internals/features/operations/documents/model/document_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentModel stores metadata only. Bytes live in external object
// storage addressed by DocumentStorageKey.
type DocumentModel struct {
	DocumentID uuid.UUID `json:"document_id" gorm:"column:document_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	DocumentCondominiumID uuid.UUID `json:"document_condominium_id" gorm:"column:document_condominium_id;type:uuid;not null;index;constraint:OnDelete:CASCADE"`

	DocumentTitle       string  `json:"document_title"                 gorm:"column:document_title;type:varchar(160);not null"`
	DocumentCategory    *string `json:"document_category,omitempty"    gorm:"column:document_category;type:varchar(80);index"`
	DocumentDescription *string `json:"document_description,omitempty" gorm:"column:document_description;type:text"`

	DocumentStorageKey  string `json:"document_storage_key"  gorm:"column:document_storage_key;type:varchar(255);not null;uniqueIndex"`
	DocumentContentType string `json:"document_content_type" gorm:"column:document_content_type;type:varchar(100);not null"`
	DocumentSizeBytes   int64  `json:"document_size_bytes"   gorm:"column:document_size_bytes;not null;default:0"`

	DocumentUploadedBy *uuid.UUID `json:"document_uploaded_by,omitempty" gorm:"column:document_uploaded_by;type:uuid"`

	DocumentCreatedAt time.Time  `json:"document_created_at"           gorm:"column:document_created_at;type:timestamptz;not null;default:now()"`
	DocumentUpdatedAt time.Time  `json:"document_updated_at"           gorm:"column:document_updated_at;type:timestamptz;not null;default:now()"`
	DocumentDeletedAt *time.Time `json:"document_deleted_at,omitempty" gorm:"column:document_deleted_at;type:timestamptz"`
}

func (DocumentModel) TableName() string { return "documents" }

func (m *DocumentModel) BeforeCreate(tx *gorm.DB) error {
	m.DocumentUpdatedAt = time.Now().UTC()
	return nil
}
func (m *DocumentModel) BeforeUpdate(tx *gorm.DB) error {
	m.DocumentUpdatedAt = time.Now().UTC()
	return nil
}

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("document_deleted_at IS NULL")
}
