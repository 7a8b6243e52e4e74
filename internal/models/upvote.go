package models

// Upvote endorses a review. The composite unique index is the only mechanism
// enforcing at-most-one-upvote-per-user-per-review; concurrent duplicates are
// serialized by the database, not by application locking.
type Upvote struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	ReviewID uint   `gorm:"not null;uniqueIndex:idx_upvote_review_user"`
	UserName string `gorm:"size:64;not null;uniqueIndex:idx_upvote_review_user"`
}

func (Upvote) TableName() string { return "upvotes" }
