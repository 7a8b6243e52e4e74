package models

// Experience is an optional one-to-one extension of a user's profile.
type Experience struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	UserName       string `gorm:"size:64;uniqueIndex;not null"`
	LinkedinURL    string `gorm:"size:200"`
	CoverLetter    string `gorm:"size:1000"`
	PrevExperience string `gorm:"size:1000"`
}

func (Experience) TableName() string { return "experiences" }
