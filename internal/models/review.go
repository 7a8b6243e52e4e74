package models

// Review is free text about an employer; job_title is not linked to a Job row.
// The review body is stored after profanity filtering.
type Review struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	Department     string `gorm:"size:64;index;not null"`
	Locations      string `gorm:"size:120;index;not null"`
	JobTitle       string `gorm:"size:64;index;not null"`
	JobDescription string `gorm:"size:120;not null"`
	HourlyPay      int    `gorm:"not null"`
	Benefits       string `gorm:"size:120;not null"`
	Review         string `gorm:"size:500;not null"`
	Rating         int    `gorm:"not null"`
	Recommendation int    `gorm:"not null"`
	UpvoteCount    int    `gorm:"not null;default:0"`

	// Relations
	Upvotes []Upvote `gorm:"foreignKey:ReviewID;references:ID"`
}

func (Review) TableName() string { return "reviews" }
