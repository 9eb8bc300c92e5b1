// Package app is the root package of all domain related packages.
//
// All entity types are defined in this package.
package app

import (
	"errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Default formats
const (
	DateTimeFormat = "2006.01.02 15:04"
	FloatFormat    = "#,###.##"
)

var ErrNotFound = errors.New("object not found")

// Titler converts a string into a title for english language.
var Titler = cases.Title(language.English)

// Position is a position in 3D space.
type Position struct {
	X float64
	Y float64
	Z float64
}
