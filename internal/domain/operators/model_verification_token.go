package operators

import "time"

type VerificationToken struct {
	ID         uint     `gorm:"primaryKey"`
	OperatorID uint     `gorm:"uniqueIndex"`
	Operator   Operator `gorm:"constraint:OnDelete:CASCADE"`
	Token      string   `gorm:"uniqueIndex"`
	Type       string   `gorm:"index"`
	ExpiresAt  time.Time
	CreatedAt  time.Time
}
