// Package catalog holds the fixed office floor plan: 20 named desks split
// into four blocks of five, with display coordinates used by the UI.
package catalog

import "github.com/deskwise/deskgo/internal/domain"

// Seats returns the seat catalog in display (label) order. The catalog is
// seeded by label, so IDs are assigned by the store, not listed here.
func Seats() []domain.Seat {
	return []domain.Seat{
		{Label: "A1", X: 115, Y: 80},
		{Label: "A2", X: 185, Y: 80},
		{Label: "A3", X: 255, Y: 80},
		{Label: "A4", X: 325, Y: 80},
		{Label: "A5", X: 395, Y: 80},
		{Label: "B1", X: 535, Y: 80},
		{Label: "B2", X: 605, Y: 80},
		{Label: "B3", X: 675, Y: 80},
		{Label: "B4", X: 745, Y: 80},
		{Label: "B5", X: 815, Y: 80},
		{Label: "C1", X: 115, Y: 250},
		{Label: "C2", X: 185, Y: 250},
		{Label: "C3", X: 255, Y: 250},
		{Label: "C4", X: 325, Y: 250},
		{Label: "C5", X: 395, Y: 250},
		{Label: "D1", X: 535, Y: 250},
		{Label: "D2", X: 605, Y: 250},
		{Label: "D3", X: 675, Y: 250},
		{Label: "D4", X: 745, Y: 250},
		{Label: "D5", X: 815, Y: 250},
	}
}
