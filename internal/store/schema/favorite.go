package schema

import (
	"time"
)

// Favorite represents the favorites table - a user's bookmarked saunas
type Favorite struct {
	// ID is the favorite's UUID
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// UserID is the bookmarking user
	UserID string `gorm:"column:user_id;not null;uniqueIndex:idx_favorites_user_sauna,priority:1;type:varchar(36)"`
	// SaunaID is the bookmarked venue
	SaunaID string `gorm:"column:sauna_id;not null;uniqueIndex:idx_favorites_user_sauna,priority:2;type:varchar(36)"`
	// CreatedAt is when the bookmark was added
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Sauna *Sauna `gorm:"foreignKey:SaunaID"`
}

// TableName specifies the table name for the Favorite model
func (Favorite) TableName() string {
	return "favorites"
}
