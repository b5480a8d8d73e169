package models

import "time"

// Hotel is the tenant registry row. Guests, rooms and staff reference
// hotels by name, which is what the dashboards and the public pages send.
type Hotel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name    string `gorm:"size:150;uniqueIndex" json:"name"`
	Domain  string `gorm:"size:255" json:"domain"`
	Address string `gorm:"type:text" json:"address"`
}
