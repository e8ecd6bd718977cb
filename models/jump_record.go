package models

import "time"

// Jump variants. MAX is a maximum-approach jump, CMJ a counter-movement
// jump from standstill.
const (
	VariantMax = "MAX"
	VariantCMJ = "CMJ"
)

// JumpRecord is one measured jump. Height is computed from the hang-time
// reading at creation and is never taken from client input. Records are
// immutable: they are only created, and removed via the owner cascade.
type JumpRecord struct {
	ID        uint      `gorm:"primaryKey"`
	Height    float64   `gorm:"not null"` // meters
	Timestamp time.Time `gorm:"not null"` // UTC, set at creation
	Variant   string    `gorm:"size:3;not null"`
	Weight    *float64  // body weight at time of jump, kg
	Note      *string   `gorm:"type:text"`
	UserID    uint      `gorm:"not null;index"`
}
