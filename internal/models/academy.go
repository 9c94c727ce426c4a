package models

import "time"

type Teacher struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Email          string `gorm:"size:100" json:"email" validate:"omitempty,email"`
	Phone          string `gorm:"size:20" json:"phone" validate:"max=20"`
	Specialization string `gorm:"size:100" json:"specialization"`
	Bio            string `gorm:"type:text" json:"bio"`
	Active         bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MusicClass struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Instrument  string  `gorm:"size:50" json:"instrument" validate:"required"`
	Level       string  `gorm:"size:20" json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Description string  `gorm:"type:text" json:"description"`
	TeacherID   *uint   `json:"teacher_id"`
	Fee         float64 `json:"fee" validate:"gte=0"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Batch is a recurring weekly session of a class.
type Batch struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ClassID   uint   `gorm:"index" json:"class_id" validate:"required"`
	TeacherID uint   `gorm:"index" json:"teacher_id" validate:"required"`
	Name      string `gorm:"size:100;not null" json:"name" validate:"required"`
	Weekday   int    `json:"weekday" validate:"gte=0,lte=6"`
	StartTime string `gorm:"size:5" json:"start_time" validate:"required,hhmm"`
	EndTime   string `gorm:"size:5" json:"end_time" validate:"required,hhmm"`
	Capacity  int    `json:"capacity" validate:"gte=1"`
	StartDate string `gorm:"size:10" json:"start_date" validate:"omitempty,datetime=2006-01-02"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	AdmissionPending  = "pending"
	AdmissionApproved = "approved"
	AdmissionRejected = "rejected"
)

type Admission struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	BatchID     uint   `gorm:"index" json:"batch_id" validate:"required"`
	UserID      *uint  `json:"user_id"`
	StudentName string `gorm:"size:100;not null" json:"student_name" validate:"required,max=100"`
	Contact     string `gorm:"size:100;not null" json:"contact" validate:"required,contact"`
	Status      string `gorm:"size:20;default:'pending'" json:"status" validate:"omitempty,oneof=pending approved rejected"`
	Notes       string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Singer struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Name       string  `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Genre      string  `gorm:"size:50" json:"genre"`
	Bio        string  `gorm:"type:text" json:"bio"`
	HourlyRate float64 `json:"hourly_rate" validate:"gte=0"`
	PhotoURL   string  `gorm:"size:255" json:"photo_url"`
	Active     bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
