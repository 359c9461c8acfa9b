package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AuditLog records one change made from the admin panel.
type AuditLog struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action    string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Entity    string     `gorm:"type:varchar(50);not null;index:idx_audit_logs_entity" json:"entity"`
	EntityID  string     `gorm:"type:text;index:idx_audit_logs_entity" json:"entity_id"`
	Metadata  JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON is a jsonb column holding before/after snapshots.
type JSON map[string]interface{}

func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSON) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*j = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scan jsonb: unsupported type %T", value)
	}
	return json.Unmarshal(raw, (*map[string]interface{})(j))
}

const (
	AuditEntityProduct = "product"
	AuditEntityImage   = "image"
)

const (
	AuditActionProductCreate     = "product.create"
	AuditActionProductUpdate     = "product.update"
	AuditActionProductDelete     = "product.delete"
	AuditActionProductBulkDelete = "product.bulk_delete"
	AuditActionImageUpload       = "image.upload"
)
