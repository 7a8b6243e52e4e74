package models

import "time"

// Application links an applicant to a job. Duplicate (job, user) applications
// are permitted; the view layer hides the button after the first one.
type Application struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	JobID     uint      `gorm:"index;not null"`
	UserName  string    `gorm:"size:64;index;not null"`
	AppliedAt time.Time `gorm:"autoCreateTime"`
}

func (Application) TableName() string { return "applications" }
