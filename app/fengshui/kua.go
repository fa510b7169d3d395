package fengshui

type Gender string

const (
	Male   Gender = "M"
	Female Gender = "F"
)

// KuaNumber calculates the personal Kua number from the birth year digit sum.
// The formula differs by gender.
func KuaNumber(year int, gender Gender) int {
	sum := 0
	for y := year; y > 0; y /= 10 {
		sum += y % 10
	}
	sum %= 9

	if gender == Male {
		if sum == 0 {
			return 1
		}
		return 10 - sum
	}
	if sum == 0 {
		return 8
	}
	return sum + 5
}

var eastGroup = map[int]bool{1: true, 3: true, 4: true, 9: true}

// Directions returns the lucky and challenging compass directions for a Kua
// number, based on the East/West group split.
func Directions(kua int) (lucky, challenging []string) {
	east := []string{"N", "S", "E", "SE"}
	west := []string{"W", "NW", "SW", "NE"}
	if eastGroup[kua] {
		return east, west
	}
	return west, east
}
