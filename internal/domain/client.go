package domain

// Client Model (buyer contact card)
type Client struct {
	ID      uint   `gorm:"primaryKey" json:"id"`             // Primary key
	FIO     string `gorm:"size:100;not null" json:"fio"`     // Full name
	Email   string `gorm:"size:100;not null" json:"email"`   // Contact email
	Address string `gorm:"size:255;not null" json:"address"` // Delivery address
	Phone   string `gorm:"size:50;not null" json:"phone"`    // Contact phone
	Note    string `gorm:"size:255" json:"note"`             // Optional free-text note
}
