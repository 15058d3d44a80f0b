package schema

import (
	"time"
)

// Sauna represents the saunas table - the venues of the directory
type Sauna struct {
	// ID is the sauna's UUID
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// Name is the venue name
	Name string `gorm:"column:name;not null;type:text"`
	// Address is the street address
	Address string `gorm:"column:address;not null;type:text"`
	// Latitude is the WGS84 latitude of the venue
	Latitude float64 `gorm:"column:latitude;not null"`
	// Longitude is the WGS84 longitude of the venue
	Longitude float64 `gorm:"column:longitude;not null"`
	// Phone is an optional contact number
	Phone *string `gorm:"column:phone;type:text"`
	// Website is an optional venue URL
	Website *string `gorm:"column:website;type:text"`
	// Description is optional free-form venue information
	Description *string `gorm:"column:description;type:text"`
	// PriceRange is a display string such as "1000-2000円"
	PriceRange string `gorm:"column:price_range;not null;type:text"`
	// Rating is the average star rating over public reviews, derived from the reviews table
	Rating float64 `gorm:"column:rating;not null;default:0"`
	// ReviewCount is the number of public reviews, derived from the reviews table
	ReviewCount int `gorm:"column:review_count;not null;default:0"`
	// CreatedAt is the timestamp when the venue was added
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Facilities []Facility  `gorm:"foreignKey:SaunaID;constraint:OnDelete:CASCADE"`
	LadiesDays []LadiesDay `gorm:"foreignKey:SaunaID;constraint:OnDelete:CASCADE"`
	Reviews    []Review    `gorm:"foreignKey:SaunaID;constraint:OnDelete:CASCADE"`
	Favorites  []Favorite  `gorm:"foreignKey:SaunaID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Sauna model
func (Sauna) TableName() string {
	return "saunas"
}
