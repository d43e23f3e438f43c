package model_test

import (
	"frontdesk/internal/domains/reservation/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGroupByCustomer(t *testing.T) {
	reservations := []model.Reservation{
		{ID: "1", Customer: "Acme"},
		{ID: "2", Customer: "Zenith"},
		{ID: "3", Customer: "Acme"},
		{ID: "4", Customer: ""},
	}

	groups := model.GroupByCustomer(reservations)

	assert.Len(t, groups, 3)
	assert.Equal(t, "Acme", groups[0].Customer)
	assert.Equal(t, []model.Reservation{reservations[0], reservations[2]}, groups[0].Reservations)
	assert.Equal(t, "Zenith", groups[1].Customer)
	assert.Equal(t, "", groups[2].Customer)

	total := 0
	for _, group := range groups {
		total += len(group.Reservations)
	}

	assert.Equal(t, len(reservations), total)
	assert.Empty(t, model.GroupByCustomer(nil))
}

func TestDistinctFlightHotel(t *testing.T) {
	reservations := []model.Reservation{
		{FlightHotel: "QR123"},
		{FlightHotel: "EK001"},
		{FlightHotel: " "},
		{FlightHotel: "QR123"},
	}

	assert.Equal(t, []string{"EK001", "QR123"}, model.DistinctFlightHotel(reservations))
	assert.Equal(t, []string{}, model.DistinctFlightHotel(nil))
}

func TestSortByGuestName(t *testing.T) {
	reservations := []model.Reservation{
		{ID: "b", GuestName: "zoe"},
		{ID: "a", GuestName: "Adam"},
		{ID: "c", GuestName: "adam"},
	}

	model.SortByGuestName(reservations)

	assert.Equal(t, "a", reservations[0].ID)
	assert.Equal(t, "c", reservations[1].ID)
	assert.Equal(t, "b", reservations[2].ID)
}

func TestStatusTransitions(t *testing.T) {
	next, ok := model.StatusReserved.Next()
	assert.True(t, ok)
	assert.Equal(t, model.StatusCheckedIn, next)

	next, ok = model.StatusCheckedIn.Next()
	assert.True(t, ok)
	assert.Equal(t, model.StatusCheckedOut, next)

	_, ok = model.StatusCheckedOut.Next()
	assert.False(t, ok)

	assert.Less(t, model.StatusReserved.Rank(), model.StatusCheckedIn.Rank())
	assert.Less(t, model.StatusCheckedIn.Rank(), model.StatusCheckedOut.Rank())
	assert.Equal(t, -1, model.Status("cancelled").Rank())
}

func TestApplyKeepsStampsConsistent(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	r := model.Reservation{ID: "1", Status: model.StatusReserved}

	assert.True(t, r.Consistent())

	in := r.Apply(model.StatusCheckedIn, model.Stamp{Date: "2024-05-01", Time: "09:00 AM", DateTime: now, By: "staff1"})
	assert.True(t, in.Consistent())
	assert.False(t, r.HasCheckinStamp(), "apply returns a copy")

	out := in.Apply(model.StatusCheckedOut, model.Stamp{Date: "2024-05-02", Time: "10:00 AM", DateTime: now.Add(25 * time.Hour), By: "staff2"})
	assert.True(t, out.Consistent())
	assert.Equal(t, "staff1", *out.CheckinBy)
	assert.Equal(t, "staff2", *out.CheckoutBy)

	broken := r
	broken.Status = model.StatusCheckedOut
	assert.False(t, broken.Consistent())
}

func TestStampFields(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	fields := model.Stamp{Date: "2024-05-01", Time: "09:00 AM", DateTime: now, By: "staff1"}.Fields(model.StatusCheckedIn)

	assert.Equal(t, model.StatusCheckedIn, fields[model.FieldStatus])
	assert.Equal(t, "2024-05-01", fields[model.FieldCheckinDate])
	assert.Equal(t, "staff1", fields[model.FieldCheckinBy])
	assert.NotContains(t, fields, model.FieldCheckoutBy)
}
