package schema

import (
	"time"

	"github.com/ladies-sauna/ls-api/internal/domain"
)

// Review represents the reviews table - one review per (user, sauna)
type Review struct {
	// ID is the review's UUID
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// SaunaID is the reviewed venue
	SaunaID string `gorm:"column:sauna_id;not null;index;type:varchar(36)"`
	// UserID is the review author
	UserID string `gorm:"column:user_id;not null;index;type:varchar(36)"`
	// Rating is the 1-5 star rating
	Rating int `gorm:"column:rating;not null"`
	// Title is the review headline
	Title string `gorm:"column:title;not null;type:text"`
	// Content is the review body
	Content string `gorm:"column:content;not null;type:text"`
	// VisitDate is when the author visited the venue
	VisitDate time.Time `gorm:"column:visit_date;not null;type:timestamptz"`
	// Visibility controls who can see the review (PUBLIC, FRIENDS, PRIVATE)
	Visibility domain.Visibility `gorm:"column:visibility;not null;default:'PUBLIC';type:text"`
	// LikeCount is the number of likes the review received
	LikeCount int `gorm:"column:like_count;not null;default:0"`
	// CreatedAt is the submission timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last edit
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	User  *User  `gorm:"foreignKey:UserID"`
	Sauna *Sauna `gorm:"foreignKey:SaunaID"`
}

// TableName specifies the table name for the Review model
func (Review) TableName() string {
	return "reviews"
}
