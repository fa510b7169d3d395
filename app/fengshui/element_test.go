package fengshui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveElement(t *testing.T) {
	cases := []struct {
		year int
		want Element
	}{
		{1984, Wood},
		{1985, Wood},
		{1986, Fire},
		{1987, Fire},
		{1988, Earth},
		{1989, Earth},
		{1990, Metal},
		{1991, Metal},
		{1992, Water},
		{1993, Water},
		{1994, Wood},
		{2004, Wood},
		{1904, Wood},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ResolveElement(c.year), "year %d", c.year)
	}
}

func TestResolveElementTotal(t *testing.T) {
	valid := map[Element]bool{Wood: true, Fire: true, Earth: true, Metal: true, Water: true}
	for year := -100; year <= 2200; year++ {
		el := ResolveElement(year)
		assert.True(t, valid[el], "year %d resolved to %q", year, el)
		assert.Equal(t, el, ResolveElement(year), "year %d not idempotent", year)
	}
}

func TestElementForBirthYear(t *testing.T) {
	assert.Equal(t, Unspecified, ElementForBirthYear(0))
	assert.Equal(t, Fire, ElementForBirthYear(1987))
}

func TestParseBirthYear(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"1987", 1987},
		{"born in 1990, thanks!", 1990},
		{"my room, I was born 1975", 1975},
		{"", 0},
		{"no year here", 0},
		{"185", 0},
		{"3000", 0},
		{"2099 but also 1987", 1987},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseBirthYear(c.text), "text %q", c.text)
	}
}

func TestKuaNumber(t *testing.T) {
	// 1990: 1+9+9+0 = 19, 19 % 9 = 1
	assert.Equal(t, 9, KuaNumber(1990, Male))
	assert.Equal(t, 6, KuaNumber(1990, Female))
	// 1980: 1+9+8+0 = 18, 18 % 9 = 0
	assert.Equal(t, 1, KuaNumber(1980, Male))
	assert.Equal(t, 8, KuaNumber(1980, Female))
}

func TestDirections(t *testing.T) {
	lucky, challenging := Directions(1)
	assert.Equal(t, []string{"N", "S", "E", "SE"}, lucky)
	assert.Equal(t, []string{"W", "NW", "SW", "NE"}, challenging)

	lucky, challenging = Directions(2)
	assert.Equal(t, []string{"W", "NW", "SW", "NE"}, lucky)
	assert.Equal(t, []string{"N", "S", "E", "SE"}, challenging)
}
