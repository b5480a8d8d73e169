package models

import "testing"

func TestCapabilitiesForRole(t *testing.T) {
	cases := []struct {
		role string
		want Capabilities
	}{
		{RoleAdmin, Capabilities{ManageRooms: true, AddGuests: true, EditGuests: true}},
		{RoleReceptionist, Capabilities{AddGuests: true, EditGuests: true}},
		{RoleKitchen, Capabilities{}},
		{RoleHousekeeping, Capabilities{}},
		{"intern", Capabilities{}},
		{"", Capabilities{}},
	}
	for _, c := range cases {
		if got := CapabilitiesForRole(c.role); got != c.want {
			t.Errorf("CapabilitiesForRole(%q) = %+v, want %+v", c.role, got, c.want)
		}
	}
}

func TestCapabilitiesHas(t *testing.T) {
	caps := CapabilitiesForRole(RoleReceptionist)

	if caps.Has("manageRooms") {
		t.Error("receptionist should not manage rooms")
	}
	if !caps.Has("addGuests") {
		t.Error("receptionist should add guests")
	}
	if !caps.Has("editGuests") {
		t.Error("receptionist should edit guests")
	}
	if caps.Has("deleteHotel") {
		t.Error("unknown capability name must report false")
	}
}
