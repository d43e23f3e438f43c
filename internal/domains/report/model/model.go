package model

import (
	reservationModel "frontdesk/internal/domains/reservation/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
	"time"
)

const (
	Title = "GUEST CHECK-OUT REPORT"

	notAvailable = "N/A"
)

type Letterhead struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// Preparer is the signed-in staff member printed in the "Prepared by" block.
type Preparer struct {
	Name string
	RCNo string
}

type Filter struct {
	From        string
	To          string
	FlightHotel string
}

type Row struct {
	GuestName    string
	FlightHotel  string
	ETA          string
	Direction    string
	CheckinTime  string
	CheckoutTime string
}

type Section struct {
	Customer string
	Rows     []Row
}

type Report struct {
	Title       string
	Letterhead  Letterhead
	ReportDate  string
	RangeText   string
	FlightHotel string
	Filter      Filter
	Sections    []Section
	Total       int
	Preparer    Preparer
}

// New groups reservations per customer, keeping the order they arrive in.
func New(letterhead Letterhead, preparer Preparer, filter Filter, generatedAt time.Time, reservations []reservationModel.Reservation) Report {
	groups := reservationModel.GroupByCustomer(reservations)
	sections := make([]Section, 0, len(groups))

	for _, group := range groups {
		section := Section{
			Customer: orNotAvailable(group.Customer),
			Rows:     make([]Row, 0, len(group.Reservations)),
		}

		for _, r := range group.Reservations {
			section.Rows = append(section.Rows, Row{
				GuestName:    r.GuestName,
				FlightHotel:  r.FlightHotel,
				ETA:          orNotAvailable(r.ETA),
				Direction:    orNotAvailable(r.Direction),
				CheckinTime:  orNotAvailable(deref(r.CheckinTime)),
				CheckoutTime: orNotAvailable(deref(r.CheckoutTime)),
			})
		}

		sections = append(sections, section)
	}

	return Report{
		Title:       Title,
		Letterhead:  letterhead,
		ReportDate:  timezone.Format(generatedAt, constant.DisplayLongDate),
		RangeText:   RangeText(filter.From, filter.To),
		FlightHotel: filter.FlightHotel,
		Filter:      filter,
		Sections:    sections,
		Total:       len(reservations),
		Preparer:    preparer,
	}
}

// RangeText describes the optional bounds of the report.
func RangeText(from, to string) string {
	switch {
	case from != "" && to != "":
		return "From " + displayDay(from) + " to " + displayDay(to)
	case from != "":
		return "From " + displayDay(from)
	case to != "":
		return "Up to " + displayDay(to)
	default:
		return ""
	}
}

func displayDay(day string) string {
	t, err := timezone.Parse(constant.DayFormat, day)
	if err != nil {
		return day
	}

	return t.Format(constant.DisplayDate)
}

func deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}

func orNotAvailable(value string) string {
	if value == "" {
		return notAvailable
	}

	return value
}
