package models

import "time"

// Staff roles. Each maps to a fixed capability set, see CapabilitiesForRole.
const (
	RoleAdmin        = "admin"
	RoleReceptionist = "receptionist"
	RoleKitchen      = "kitchen"
	RoleHousekeeping = "housekeeping"
)

type Staff struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	HotelName string `gorm:"size:150;index" json:"hotelName"`
	FullName  string `gorm:"size:150" json:"fullName"`
	Username  string `gorm:"size:150;uniqueIndex" json:"username"`
	Password  string `gorm:"size:255" json:"-"`
	Role      string `gorm:"size:30" json:"role"`
}

// Capabilities is the permission record consulted once per protected
// operation instead of re-deriving role checks in every handler.
type Capabilities struct {
	ManageRooms bool `json:"manageRooms"`
	AddGuests   bool `json:"addGuests"`
	EditGuests  bool `json:"editGuests"`
}

// CapabilitiesForRole maps a staff role to its capability set. Unknown
// roles get no capabilities.
func CapabilitiesForRole(role string) Capabilities {
	switch role {
	case RoleAdmin:
		return Capabilities{ManageRooms: true, AddGuests: true, EditGuests: true}
	case RoleReceptionist:
		return Capabilities{AddGuests: true, EditGuests: true}
	default:
		return Capabilities{}
	}
}

// Has reports a single named capability. Names match the JSON field names.
func (c Capabilities) Has(name string) bool {
	switch name {
	case "manageRooms":
		return c.ManageRooms
	case "addGuests":
		return c.AddGuests
	case "editGuests":
		return c.EditGuests
	default:
		return false
	}
}
