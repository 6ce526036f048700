package domain

import "testing"

func TestCoordsToListIsLngFirst(t *testing.T) {
	c := Coordinates{Lat: 10.7767, Lng: 106.7030}

	got := c.CoordsToList()
	if len(got) != 2 || got[0] != 106.7030 || got[1] != 10.7767 {
		t.Errorf("CoordsToList() = %v, want [lng lat]", got)
	}
}
