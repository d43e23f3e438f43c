package model

import (
	"frontdesk/shared/constant"
	"frontdesk/shared/model"
	"time"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID              = "id"
	FieldCustomer        = "customer"
	FieldGuestName       = "guest_name"
	FieldFlightHotel     = "flight_hotel"
	FieldReservationDate = "reservation_date"
	FieldStatus          = "status"

	FieldCheckinDate     = "checkin_date"
	FieldCheckinTime     = "checkin_time"
	FieldCheckinDateTime = "checkin_date_time"
	FieldCheckinBy       = "checkin_by"

	FieldCheckoutDate     = "checkout_date"
	FieldCheckoutTime     = "checkout_time"
	FieldCheckoutDateTime = "checkout_date_time"
	FieldCheckoutBy       = "checkout_by"

	// ArgExpectedStatus names the precondition placeholder so it never collides with the status being set.
	ArgExpectedStatus = "expected_status"
)

type Status string

const (
	StatusReserved   Status = "reserved"
	StatusCheckedIn  Status = "checked-in"
	StatusCheckedOut Status = "checked-out"
)

// Rank orders the lifecycle states; it only ever increases for a reservation.
func (s Status) Rank() int {
	switch s {
	case StatusReserved:
		return 0
	case StatusCheckedIn:
		return 1
	case StatusCheckedOut:
		return 2
	default:
		return -1
	}
}

// Next returns the status a transition from s leads to.
func (s Status) Next() (Status, bool) {
	switch s {
	case StatusReserved:
		return StatusCheckedIn, true
	case StatusCheckedIn:
		return StatusCheckedOut, true
	default:
		return "", false
	}
}

type Direction string

const (
	DirectionArrival   Direction = "arrival"
	DirectionDeparture Direction = "departure"
)

type Reservation struct {
	ID              string `db:"id"`
	Customer        string `db:"customer"`
	GuestName       string `db:"guest_name"`
	Nationality     string `db:"nationality"`
	Direction       string `db:"direction"`
	ETA             string `db:"eta"`
	FlightHotel     string `db:"flight_hotel"`
	ReservationDate string `db:"reservation_date"`
	Status          Status `db:"status"`

	CheckinDate     *string    `db:"checkin_date"`
	CheckinTime     *string    `db:"checkin_time"`
	CheckinDateTime *time.Time `db:"checkin_date_time"`
	CheckinBy       *string    `db:"checkin_by"`

	CheckoutDate     *string    `db:"checkout_date"`
	CheckoutTime     *string    `db:"checkout_time"`
	CheckoutDateTime *time.Time `db:"checkout_date_time"`
	CheckoutBy       *string    `db:"checkout_by"`

	model.Metadata
}

// Stamp is the actor and instant recorded by a lifecycle transition.
type Stamp struct {
	Date     string
	Time     string
	DateTime time.Time
	By       string
}

func (r Reservation) HasCheckinStamp() bool {
	return r.CheckinDate != nil && r.CheckinTime != nil && r.CheckinDateTime != nil && r.CheckinBy != nil
}

func (r Reservation) HasCheckoutStamp() bool {
	return r.CheckoutDate != nil && r.CheckoutTime != nil && r.CheckoutDateTime != nil && r.CheckoutBy != nil
}

// Consistent reports whether the stamps present match the status.
func (r Reservation) Consistent() bool {
	switch r.Status {
	case StatusReserved:
		return !r.HasCheckinStamp() && !r.HasCheckoutStamp()
	case StatusCheckedIn:
		return r.HasCheckinStamp() && !r.HasCheckoutStamp()
	case StatusCheckedOut:
		return r.HasCheckinStamp() && r.HasCheckoutStamp()
	default:
		return false
	}
}

// Apply returns a copy of r moved to status with the stamp for that transition.
func (r Reservation) Apply(status Status, stamp Stamp) Reservation {
	r.Status = status
	r.ModifiedAt = stamp.DateTime
	r.ModifiedBy = stamp.By

	switch status {
	case StatusCheckedIn:
		r.CheckinDate, r.CheckinTime, r.CheckinDateTime, r.CheckinBy = &stamp.Date, &stamp.Time, &stamp.DateTime, &stamp.By
	case StatusCheckedOut:
		r.CheckoutDate, r.CheckoutTime, r.CheckoutDateTime, r.CheckoutBy = &stamp.Date, &stamp.Time, &stamp.DateTime, &stamp.By
	}

	return r
}

// Fields returns the columns written by the transition into status.
func (s Stamp) Fields(status Status) map[string]any {
	fields := map[string]any{
		FieldStatus:              status,
		constant.FieldModifiedAt: s.DateTime,
		constant.FieldModifiedBy: s.By,
	}

	switch status {
	case StatusCheckedIn:
		fields[FieldCheckinDate] = s.Date
		fields[FieldCheckinTime] = s.Time
		fields[FieldCheckinDateTime] = s.DateTime
		fields[FieldCheckinBy] = s.By
	case StatusCheckedOut:
		fields[FieldCheckoutDate] = s.Date
		fields[FieldCheckoutTime] = s.Time
		fields[FieldCheckoutDateTime] = s.DateTime
		fields[FieldCheckoutBy] = s.By
	}

	return fields
}
