package fengshui

import (
	"regexp"
	"strconv"
	"time"
)

type Element string

const (
	Wood        Element = "Wood"
	Fire        Element = "Fire"
	Earth       Element = "Earth"
	Metal       Element = "Metal"
	Water       Element = "Water"
	Unspecified Element = "Unspecified"
)

// The heavenly stem cycle starts at year 4 (1984 is a Wood year) and each
// element covers two consecutive years.
var stemCycle = [5]Element{Wood, Fire, Earth, Metal, Water}

// ResolveElement maps a birth year to its Feng Shui element. Total over all
// integers, including years before the epoch.
func ResolveElement(year int) Element {
	index := (((year-4)%10 + 10) % 10) / 2
	return stemCycle[index]
}

// ElementForBirthYear resolves the element for an optional birth year.
// A zero year means the sender did not provide one.
func ElementForBirthYear(year int) Element {
	if year == 0 {
		return Unspecified
	}
	return ResolveElement(year)
}

var yearPattern = regexp.MustCompile(`(19|20)\d{2}`)

// ParseBirthYear extracts the first plausible birth year from free text,
// typically a photo caption like "here is my room, born 1987".
// Returns 0 when the text contains no year between 1900 and the current year.
func ParseBirthYear(text string) int {
	for _, match := range yearPattern.FindAllString(text, -1) {
		year, err := strconv.Atoi(match)
		if err != nil {
			continue
		}
		if year >= 1900 && year <= time.Now().Year() {
			return year
		}
	}
	return 0
}
