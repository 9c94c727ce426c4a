package models

import "time"

// Studio is a rentable practice or recording room. OpenTime and CloseTime
// are "HH:MM" literals bounding the bookable window.
type Studio struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name" validate:"required,max=100"`
	Slug        string `gorm:"size:100;uniqueIndex;not null" json:"slug" validate:"max=100"`
	Description string `gorm:"size:255" json:"description" validate:"max=255"`
	Address     string `gorm:"size:255" json:"address" validate:"max=255"`

	HourlyRate float64 `gorm:"not null" json:"hourly_rate" validate:"gte=0"`
	Capacity   int     `gorm:"default:1" json:"capacity" validate:"gte=0"`
	IsActive   bool    `gorm:"default:true" json:"is_active"`

	OpenTime          string `gorm:"size:5;default:'09:00'" json:"open_time" validate:"required,hhmm"`
	CloseTime         string `gorm:"size:5;default:'22:00'" json:"close_time" validate:"required,hhmm"`
	StepMinutes       int    `gorm:"default:60" json:"step_minutes" validate:"gte=0,lte=1440"`
	MinAdvanceMinutes int    `gorm:"default:60" json:"min_advance_minutes" validate:"gte=0"`

	PhotoURL string `gorm:"size:255" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
