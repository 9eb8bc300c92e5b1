package xstrings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edbuddy/edbuddy/internal/xstrings"
)

func TestContainsFold(t *testing.T) {
	cases := []struct {
		s      string
		substr string
		want   bool
	}{
		{"Sol", "sol", true},
		{"Sagittarius A*", "RIUS", true},
		{"Ärger", "äRG", true},
		{"Colonia", "sol", false},
		{"anything", "", true},
		{"", "x", false},
	}
	for _, tc := range cases {
		t.Run(tc.s+"/"+tc.substr, func(t *testing.T) {
			got := xstrings.ContainsFold(tc.s, tc.substr)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSplitWords(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"FSDJump", "FSD Jump"},
		{"Docked", "Docked"},
		{"SupercruiseEntry", "Supercruise Entry"},
		{"USSDrop", "USS Drop"},
		{"Fileheader", "Fileheader"},
		{"Screenshot2", "Screenshot2"},
		{"", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := xstrings.SplitWords(tc.in)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestJoinsOrEmpty(t *testing.T) {
	t.Run("should return joined elements when they exist", func(t *testing.T) {
		got := xstrings.JoinsOrEmpty([]string{"a", "b"}, ",", "?")
		assert.Equal(t, "a,b", got)
	})
	t.Run("should return fallback when elements do not exist", func(t *testing.T) {
		got := xstrings.JoinsOrEmpty([]string{}, ",", "?")
		assert.Equal(t, "?", got)
	})
}
