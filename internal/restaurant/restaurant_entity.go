package restaurant

import "time"

type Location struct {
	ID        int    `gorm:"primaryKey"`
	Name      string `gorm:"size:255"`
	Address   string
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Location) TableName() string {
	return "restaurant_locations"
}

type LocationResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}
