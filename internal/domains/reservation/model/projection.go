package model

import (
	"slices"
	"strings"
)

type CustomerGroup struct {
	Customer     string
	Reservations []Reservation
}

// GroupByCustomer groups reservations by customer. Groups keep the order in which
// each customer is first seen and reservations keep their relative order.
func GroupByCustomer(reservations []Reservation) []CustomerGroup {
	groups := []CustomerGroup{}
	index := map[string]int{}

	for _, reservation := range reservations {
		pos, ok := index[reservation.Customer]
		if !ok {
			pos = len(groups)
			index[reservation.Customer] = pos
			groups = append(groups, CustomerGroup{Customer: reservation.Customer})
		}

		groups[pos].Reservations = append(groups[pos].Reservations, reservation)
	}

	return groups
}

// DistinctFlightHotel returns the sorted set of non-blank flight/hotel values.
func DistinctFlightHotel(reservations []Reservation) []string {
	return distinct(reservations, func(r Reservation) string { return r.FlightHotel })
}

// DistinctCustomers returns the sorted set of non-blank customers.
func DistinctCustomers(reservations []Reservation) []string {
	return distinct(reservations, func(r Reservation) string { return r.Customer })
}

func distinct(reservations []Reservation, value func(Reservation) string) []string {
	seen := map[string]struct{}{}
	values := []string{}

	for _, reservation := range reservations {
		v := value(reservation)
		if strings.TrimSpace(v) == "" {
			continue
		}

		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		values = append(values, v)
	}

	slices.Sort(values)

	return values
}

// SortByGuestName orders reservations by guest name, then by id, in place.
func SortByGuestName(reservations []Reservation) {
	slices.SortStableFunc(reservations, func(a, b Reservation) int {
		if c := strings.Compare(strings.ToLower(a.GuestName), strings.ToLower(b.GuestName)); c != 0 {
			return c
		}

		return strings.Compare(a.ID, b.ID)
	})
}
