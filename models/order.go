package models

import (
	"time"

	"gorm.io/gorm"
)

// Order represents a repair/service order for a jewelry piece
type Order struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	OrderNumber       string     `gorm:"uniqueIndex;size:50;not null" json:"order_number"`
	ClientName        string     `gorm:"size:100;not null" json:"client_name"`
	ClientPhone       *string    `gorm:"size:20" json:"client_phone"`
	ClientEmail       *string    `gorm:"size:100" json:"client_email"`
	PieceType         string     `gorm:"size:100;not null" json:"piece_type"`
	Brand             *string    `gorm:"size:50" json:"brand"`
	Model             *string    `gorm:"size:50" json:"model"`
	SerialNumber      *string    `gorm:"size:100" json:"serial_number"`
	Description       *string    `gorm:"type:text" json:"description"` // requested service, free text
	StatusID          uint       `gorm:"not null;index" json:"status_id"`
	Status            Status     `gorm:"foreignKey:StatusID" json:"status"`
	PriorityID        uint       `gorm:"not null;index" json:"priority_id"`
	Priority          Priority   `gorm:"foreignKey:PriorityID" json:"priority"`
	ReceivedDate      time.Time  `gorm:"not null" json:"received_date"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
	PhotoKey          *string    `json:"photo_key,omitempty"`            // storage key of the piece photo
	PhotoURL          *string    `gorm:"-" json:"photo_url,omitempty"`   // computed, presigned or local URL
	ReceivedAgo       string     `gorm:"-" json:"received_ago,omitempty"` // computed, "hace 3 días"
	Notes             []Note     `gorm:"foreignKey:OrderID" json:"notes,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
