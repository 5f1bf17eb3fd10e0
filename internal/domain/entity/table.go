package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Area is a named floor zone (terrace, main room) holding tables
type Area struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Position  int            `gorm:"default:0" json:"position"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Tables []Table `gorm:"foreignKey:AreaID" json:"tables,omitempty"`
}

// BeforeCreate generates a UUID before creating a new area
func (a *Area) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Area model
func (Area) TableName() string {
	return "areas"
}

// Table is a physical table on the floor plan. Number is the stable id
// waiters use and orders reference; the geometry fields drive the layout
// editor on the client.
type Table struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Number    int            `gorm:"uniqueIndex;not null" json:"number"`
	AreaID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"area_id"`
	Seats     int            `gorm:"default:4" json:"seats"`
	X         float64        `gorm:"default:0" json:"x"`
	Y         float64        `gorm:"default:0" json:"y"`
	Width     float64        `gorm:"default:1" json:"width"`
	Height    float64        `gorm:"default:1" json:"height"`
	Shape     string         `gorm:"size:20;default:'square'" json:"shape"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new table
func (t *Table) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Table model
func (Table) TableName() string {
	return "tables"
}
