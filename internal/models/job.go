package models

import "time"

// Job is a posting owned by an employer.
type Job struct {
	JobID       uint      `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"size:120;not null"`
	Description string    `gorm:"size:500;not null"`
	Location    string    `gorm:"size:120;not null"`
	Pay         *int      // nullable; the form may omit it
	PostedAt    time.Time `gorm:"autoCreateTime"`
	EmployerID  string    `gorm:"size:64;index;not null"`

	// Relations
	Applications []Application `gorm:"foreignKey:JobID;references:JobID"`
}

func (Job) TableName() string { return "jobs" }
