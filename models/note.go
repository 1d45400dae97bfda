package models

import (
	"time"

	"gorm.io/gorm"
)

// Note is a bitácora entry attached to an order. Notes are append-only:
// they can be deleted but never edited in place.
type Note struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	OrderID     uint           `gorm:"not null;index" json:"order_id"`
	Order       Order          `gorm:"foreignKey:OrderID" json:"-"` // don't include full order in JSON
	Description string         `gorm:"type:text;not null" json:"description"`
	DisplayDate string         `gorm:"-" json:"display_date,omitempty"` // computed, "02/01/2006 15:04"
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Note model
func (Note) TableName() string {
	return "notes"
}

// FormatDisplayDate fills the computed local-timestamp string shown in
// the bitácora.
func (n *Note) FormatDisplayDate() {
	n.DisplayDate = n.CreatedAt.Format("02/01/2006 15:04")
}
