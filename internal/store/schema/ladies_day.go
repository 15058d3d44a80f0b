package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/ladies-sauna/ls-api/internal/domain"
)

// LadiesDay represents the ladies_days table - a recurring or one-time
// women's-only time window at a sauna.
//
// Exactly one of DayOfWeek and SpecificDate is set: DayOfWeek for weekly
// recurrence (0=Sunday .. 6=Saturday), SpecificDate for a single calendar
// date. SupportCount, OppositionCount and TrustScore are derived from the
// votes table and are only written by the vote recomputation; clients can
// never set them directly. Entries are not deleted in normal operation.
type LadiesDay struct {
	// ID is the entry's UUID
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// SaunaID is the venue this entry belongs to
	SaunaID string `gorm:"column:sauna_id;not null;index;type:varchar(36)"`
	// DayOfWeek is the weekly recurrence day (0=Sunday), nil for one-time entries
	DayOfWeek *int `gorm:"column:day_of_week;index"`
	// SpecificDate is the calendar date of a one-time entry, nil for weekly entries
	SpecificDate *datatypes.Date `gorm:"column:specific_date;index;type:date"`
	// StartTime is the local "HH:MM" start of the window, nil for all day
	StartTime *string `gorm:"column:start_time;type:text"`
	// EndTime is the local "HH:MM" end of the window, nil for all day
	EndTime *string `gorm:"column:end_time;type:text"`
	// IsOfficial is true only when the entry came through a verified channel
	IsOfficial bool `gorm:"column:is_official;not null;default:false"`
	// SourceType tags the provenance (OFFICIAL, USER), independent of IsOfficial
	SourceType domain.SourceType `gorm:"column:source_type;not null;type:text"`
	// SourceUserID is the submitting user, nil for official entries with no attributable submitter
	SourceUserID *string `gorm:"column:source_user_id;index;type:varchar(36)"`
	// TrustScore is the community confidence in this entry (0-5), seeded from the submitter's score
	TrustScore float64 `gorm:"column:trust_score;not null;default:0"`
	// SupportCount is the current number of SUPPORT votes
	SupportCount int `gorm:"column:support_count;not null;default:0"`
	// OppositionCount is the current number of OPPOSE votes
	OppositionCount int `gorm:"column:opposition_count;not null;default:0"`
	// CreatedAt is the submission timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last recomputation
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Sauna      *Sauna `gorm:"foreignKey:SaunaID"`
	SourceUser *User  `gorm:"foreignKey:SourceUserID"`
	Votes      []Vote `gorm:"foreignKey:LadiesDayID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the LadiesDay model
func (LadiesDay) TableName() string {
	return "ladies_days"
}
