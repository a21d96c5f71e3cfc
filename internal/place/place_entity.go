package place

import "time"

type Place struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	Points []Point `gorm:"foreignKey:PlaceID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Place) TableName() string {
	return "places"
}

type Point struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	PlaceID   uint      `gorm:"column:place_id;not null;index"`
	CordX     float64   `gorm:"column:cordx;not null"`
	CordY     float64   `gorm:"column:cordy;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Point) TableName() string {
	return "points"
}
