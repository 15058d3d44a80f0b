package schema

import (
	"github.com/ladies-sauna/ls-api/internal/domain"
)

// Facility represents the facilities table - amenities attached to a sauna
type Facility struct {
	// ID is the facility's UUID
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// SaunaID is the owning sauna
	SaunaID string `gorm:"column:sauna_id;not null;index;type:varchar(36)"`
	// Name is the facility name, e.g. "フィンランドサウナ"
	Name string `gorm:"column:name;not null;type:text"`
	// Category classifies the facility (SAUNA, BATH, AMENITY, OTHER)
	Category domain.FacilityCategory `gorm:"column:category;not null;type:text"`
	// Temperature is the facility temperature in °C where applicable
	Temperature *float64 `gorm:"column:temperature"`
	// Description is optional free-form facility information
	Description *string `gorm:"column:description;type:text"`
	// IsWomenOnly indicates a permanently women-only facility
	IsWomenOnly bool `gorm:"column:is_women_only;not null;default:false"`
}

// TableName specifies the table name for the Facility model
func (Facility) TableName() string {
	return "facilities"
}
