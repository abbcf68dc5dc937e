package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// HandbookPassage is the vector-store row: sanitized passage text, JSONB
// provenance metadata, and the passage-side embedding. The actual table name
// is configurable (repositories query via Table()); this default matches the
// handbook deployment.
type HandbookPassage struct {
	Id        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Content   string            `gorm:"type:text;not null"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb"`
	Embedding pgvector.Vector   `gorm:"type:vector(768);not null"`
	CreatedAt time.Time         `gorm:"autoCreateTime"`
}

func (HandbookPassage) TableName() string {
	return "banking_handbook"
}
