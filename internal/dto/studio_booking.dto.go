package dto

import "time"

// StudioBookingSlotDTO is the public shape of an existing booking, enough
// for a client to rebuild the availability grid.
type StudioBookingSlotDTO struct {
	Date       string  `json:"date"`
	StudioName string  `json:"studio_name"`
	StudioID   uint    `json:"studio_id"`
	TimeSlot   string  `json:"time_slot"`
	Duration   float64 `json:"duration"`
}

type StudioBookingDTO struct {
	ID           uint       `json:"id"`
	Reference    string     `json:"reference"`
	StudioID     uint       `json:"studio_id"`
	StudioName   string     `json:"studio_name"`
	CustomerName string     `json:"customer_name"`
	Contact      string     `json:"contact"`
	Date         string     `json:"date"`
	TimeSlot     string     `json:"time_slot"`
	Duration     float64    `json:"duration"`
	TotalPrice   float64    `json:"total_price"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	ConfirmedAt  *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
}

type SlotDTO struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

type AvailabilityDTO struct {
	StudioID    uint      `json:"studio_id"`
	StudioName  string    `json:"studio_name"`
	Date        string    `json:"date"`
	Duration    float64   `json:"duration"`
	StepMinutes int       `json:"step_minutes"`
	Known       bool      `json:"known"`
	Slots       []SlotDTO `json:"slots"`
	Free        []string  `json:"free"`
	Start       string    `json:"start,omitempty"`
	Range       []string  `json:"range,omitempty"`
	CanStart    bool      `json:"can_start"`
	TotalPrice  float64   `json:"total_price"`
	HourlyRate  float64   `json:"hourly_rate"`
}
