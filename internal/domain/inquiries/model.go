package inquiries

import "time"

// Inquiry is a visitor message sent through a listing's inquiry form. Only
// operators whose tier grants the inquiry form can receive these.
type Inquiry struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	OperatorID uint   `gorm:"not null;index" json:"-"`
	ListingID  string `gorm:"type:uuid;not null;index" json:"listing_id"`

	SenderName  string `gorm:"not null" json:"sender_name"`
	SenderEmail string `gorm:"not null" json:"sender_email"`
	Message     string `gorm:"type:text;not null" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}
