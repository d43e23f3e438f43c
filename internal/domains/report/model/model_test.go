package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"frontdesk/internal/domains/report/model"
	reservationModel "frontdesk/internal/domains/reservation/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
)

func TestRangeText(t *testing.T) {
	assert.Equal(t, "From 01 May 2024 to 02 May 2024", model.RangeText("2024-05-01", "2024-05-02"))
	assert.Equal(t, "From 01 May 2024", model.RangeText("2024-05-01", ""))
	assert.Equal(t, "Up to 02 May 2024", model.RangeText("", "2024-05-02"))
	assert.Equal(t, "", model.RangeText("", ""))
	assert.Equal(t, "From someday", model.RangeText("someday", ""))
}

func TestNew(t *testing.T) {
	at := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	checkin := "09:15 AM"

	report := model.New(
		model.Letterhead{Name: "Harbour View Hotel"},
		model.Preparer{Name: "John Smith", RCNo: "EMP001"},
		model.Filter{FlightHotel: "UL 225"},
		at,
		[]reservationModel.Reservation{
			{GuestName: "Alice", Customer: "", FlightHotel: "UL 225", CheckinTime: &checkin},
		},
	)

	assert.Equal(t, model.Title, report.Title)
	assert.Equal(t, timezone.Format(at, constant.DisplayLongDate), report.ReportDate)
	assert.Equal(t, "UL 225", report.FlightHotel)
	assert.Empty(t, report.RangeText)
	assert.Equal(t, 1, report.Total)
	assert.Equal(t, "N/A", report.Sections[0].Customer)
	assert.Equal(t, "09:15 AM", report.Sections[0].Rows[0].CheckinTime)
	assert.Equal(t, "N/A", report.Sections[0].Rows[0].CheckoutTime)
	assert.Equal(t, "N/A", report.Sections[0].Rows[0].ETA)
}

func TestNew_EmptyDataset(t *testing.T) {
	report := model.New(model.Letterhead{}, model.Preparer{}, model.Filter{}, time.Now(), nil)

	assert.Empty(t, report.Sections)
	assert.NotNil(t, report.Sections)
	assert.Zero(t, report.Total)
}
