package models

import "testing"

func TestActiveFlagSentinel(t *testing.T) {
	// absent and anything but "0" mean active
	if !(Category{}).IsActive() {
		t.Error("absent flag must mean active")
	}
	if !(Category{Activo: "1"}).IsActive() {
		t.Error(`"1" must mean active`)
	}
	if (Category{Activo: "0"}).IsActive() {
		t.Error(`"0" is the inactive sentinel`)
	}
	if (Color{Activo: "0"}).IsActive() {
		t.Error("sentinel applies to every catalog type")
	}
}
