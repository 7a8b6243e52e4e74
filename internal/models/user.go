package models

// User roles. The admin is never stored; it is session-granted through the
// hardcoded admin credentials at login.
type UserRole string

const (
	UserRoleApplicant UserRole = "applicant"
	UserRoleEmployer  UserRole = "employer"
	UserRoleAdmin     UserRole = "admin"
)

// User is keyed by username. The password is stored in plaintext; hashing is
// deliberately absent from this system.
type User struct {
	UserName string   `gorm:"primaryKey;size:64"`
	Name     string   `gorm:"size:64;not null"`
	Email    string   `gorm:"size:64;index;not null"`
	Password string   `gorm:"size:64;not null"`
	Type     UserRole `gorm:"type:varchar(20);not null"`

	// Relations
	Experience   *Experience   `gorm:"foreignKey:UserName;references:UserName"`
	Jobs         []Job         `gorm:"foreignKey:EmployerID;references:UserName"`
	Applications []Application `gorm:"foreignKey:UserName;references:UserName"`
}

func (User) TableName() string { return "users" }
