package schema

import (
	"time"
)

// User represents the users table - registered community members
type User struct {
	// ID is the user's UUID
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// Username is the public display name
	Username string `gorm:"column:username;not null;uniqueIndex;type:text"`
	// Email is the login identifier
	Email string `gorm:"column:email;not null;uniqueIndex;type:text"`
	// PasswordHash is the bcrypt hash of the user's password
	PasswordHash string `gorm:"column:password_hash;not null;type:text"`
	// Avatar is an optional profile image URL
	Avatar *string `gorm:"column:avatar;type:text"`
	// TrustScore is the user's reputation (0-5); it seeds the trust score of entries they submit
	TrustScore float64 `gorm:"column:trust_score;not null;default:3.0"`
	// ContributionCount is the number of ladies days and reviews the user has posted
	ContributionCount int `gorm:"column:contribution_count;not null;default:0"`
	// IsVerified indicates whether the account passed identity verification
	IsVerified bool `gorm:"column:is_verified;not null;default:false"`
	// CreatedAt is the registration timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last profile change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
