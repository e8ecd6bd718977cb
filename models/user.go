package models

type User struct {
	ID           uint    `gorm:"primaryKey"`
	Username     string  `gorm:"size:20;uniqueIndex;not null"`
	Password     string  `gorm:"size:80;not null"` // bcrypt hash
	TipToeHeight float64 `gorm:"not null"`         // standing reach offset, meters

	JumpRecords []JumpRecord `gorm:"constraint:OnDelete:CASCADE"`
}
