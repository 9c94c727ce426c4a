package models

import "time"

type StudioBooking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	StudioID uint   `gorm:"index:idx_studio_date" json:"studio_id"`
	Studio   Studio `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"studio"`

	UserID *uint `json:"user_id"`

	CustomerName    string `gorm:"size:100;not null" json:"customer_name"`
	CustomerContact string `gorm:"size:100;not null" json:"customer_contact"`

	Date     string  `gorm:"size:10;index:idx_studio_date;not null" json:"date"`
	TimeSlot string  `gorm:"size:5;not null" json:"time_slot"`
	Duration float64 `gorm:"not null" json:"duration"`

	TotalPrice float64 `json:"total_price"`
	Status     string  `gorm:"size:20;default:'pending'" json:"status"`
	Notes      string  `gorm:"size:255" json:"notes"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
