package operators

import "time"

// Operator is a tour-operator business profile. Contact and branding fields
// are pointers because lower tiers are not allowed to set them at all.
type Operator struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"not null"`
	Email        string  `gorm:"not null;uniqueIndex:idx_operators_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_operators_google_sub"`
	Role         string
	IsVerified   bool

	Description string `gorm:"type:text"`

	Phone     *string `gorm:"column:phone"`
	Website   *string `gorm:"column:website"`
	LogoURL   *string `gorm:"column:logo_url"`
	Facebook  *string `gorm:"column:facebook"`
	Instagram *string `gorm:"column:instagram"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
