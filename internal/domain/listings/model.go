package listings

import "time"

type Listing struct {
	ID         string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OperatorID uint   `gorm:"not null;index" json:"-"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Location    string `json:"location,omitempty"`
	Category    string `gorm:"index" json:"category,omitempty"`

	Published bool `gorm:"not null;default:false" json:"published"`

	Images []ListingImage `gorm:"constraint:OnDelete:CASCADE;" json:"images,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListingImage struct {
	ID        string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ListingID string `gorm:"type:uuid;not null;index:idx_listing_images_listing_sort,priority:1" json:"-"`
	SortIndex int    `gorm:"not null;default:0;index:idx_listing_images_listing_sort,priority:2" json:"sort_index"`
	URL       string `gorm:"not null" json:"url"`
	AltText   string `json:"alt_text,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
