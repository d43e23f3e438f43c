package model

import "fmt"

// View names one of the read-side projections of the reservation collection.
type View string

const (
	ViewCheckin  View = "check-in"
	ViewCheckout View = "check-out"
	ViewReport   View = "report"
)

func ParseView(value string) (View, error) {
	switch View(value) {
	case ViewCheckin, ViewCheckout, ViewReport:
		return View(value), nil
	default:
		return "", fmt.Errorf("unknown view %q", value)
	}
}
