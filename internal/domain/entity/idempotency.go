package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdempotencyKey stores the response of a completed mutating request so a
// retried request with the same key replays the stored response instead of
// re-running the operation. Keys are scoped per waiter and endpoint.
type IdempotencyKey struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Key          string    `gorm:"size:255;not null;uniqueIndex:idx_idem_key_waiter_endpoint" json:"key"`
	WaiterID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_idem_key_waiter_endpoint" json:"waiter_id"`
	Endpoint     string    `gorm:"size:255;not null;uniqueIndex:idx_idem_key_waiter_endpoint" json:"endpoint"`
	RequestHash  string    `gorm:"size:64;not null" json:"request_hash"`
	StatusCode   int       `gorm:"not null" json:"status_code"`
	ResponseBody string    `gorm:"type:text" json:"response_body"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `gorm:"index" json:"expires_at"`
}

// IsExpired reports whether the stored response is too old to replay
func (k *IdempotencyKey) IsExpired() bool {
	return time.Now().After(k.ExpiresAt)
}

// BeforeCreate generates a UUID before creating a new idempotency key
func (k *IdempotencyKey) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the IdempotencyKey model
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}
