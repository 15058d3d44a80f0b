package schema

import (
	"time"

	"github.com/ladies-sauna/ls-api/internal/domain"
)

// Vote represents the votes table - one live vote per (user, ladies day).
// A repeat vote with a different type flips VoteType in place; votes are
// never deleted.
type Vote struct {
	// ID is the vote's UUID
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// UserID is the voting user
	UserID string `gorm:"column:user_id;not null;uniqueIndex:idx_votes_user_ladies_day,priority:1;type:varchar(36)"`
	// LadiesDayID is the entry being voted on
	LadiesDayID string `gorm:"column:ladies_day_id;not null;uniqueIndex:idx_votes_user_ladies_day,priority:2;index;type:varchar(36)"`
	// VoteType is SUPPORT or OPPOSE
	VoteType domain.VoteType `gorm:"column:vote_type;not null;type:text"`
	// CreatedAt is the timestamp of the first vote by this user on this entry
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Vote model
func (Vote) TableName() string {
	return "votes"
}
