package models

import "gorm.io/gorm"

// Status is a registry entry for a workshop stage. Orders reference
// statuses by id; display names live here and nowhere else.
type Status struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// TableName specifies the table name for the Status model
func (Status) TableName() string {
	return "statuses"
}

// Priority is a registry entry for order urgency. Weight drives sorting
// (Alta=3, Media=2, Baja=1); names are for display.
type Priority struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"uniqueIndex;not null" json:"name"`
	Weight int    `gorm:"not null" json:"-"`
}

// TableName specifies the table name for the Priority model
func (Priority) TableName() string {
	return "priorities"
}

// DefaultPriorityName is assigned to new orders when the form leaves
// priority unset.
const DefaultPriorityName = "Media"

// SeedMasterData inserts the status and priority registries if the tables
// are empty. The four-stage client-facing status vocabulary is the only
// one the system knows about.
func SeedMasterData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Status{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		statuses := []Status{
			{Name: "En Diagnóstico"},
			{Name: "En espera de aprobación por cliente"},
			{Name: "En servicio"},
			{Name: "Pieza lista para entrega"},
		}
		if err := db.Create(&statuses).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&Priority{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		priorities := []Priority{
			{Name: "Alta", Weight: 3},
			{Name: "Media", Weight: 2},
			{Name: "Baja", Weight: 1},
		}
		if err := db.Create(&priorities).Error; err != nil {
			return err
		}
	}

	return nil
}
