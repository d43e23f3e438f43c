package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	dutyDto "frontdesk/internal/domains/duty/model/dto"
	reportDto "frontdesk/internal/domains/report/model/dto"
	reservationDto "frontdesk/internal/domains/reservation/model/dto"
	userDto "frontdesk/internal/domains/user/model/dto"
)

const notAvailable = "-"

// Output renders API answers as aligned tables or as JSON.
type Output struct {
	Format string
	Writer io.Writer
}

func (o *Output) JSON(value any) error {
	encoder := json.NewEncoder(o.Writer)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	return nil
}

func (o *Output) table(header string, rows [][]string) error {
	w := tabwriter.NewWriter(o.Writer, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, header)

	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func (o *Output) Message(format string, args ...any) {
	if o.Format == FormatJSON {
		_ = o.JSON(map[string]string{"message": fmt.Sprintf(format, args...)})

		return
	}

	fmt.Fprintf(o.Writer, format+"\n", args...)
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return notAvailable
	}

	return value
}

func deref(value *string) string {
	if value == nil {
		return notAvailable
	}

	return orDash(*value)
}

func (o *Output) Reservations(reservations []reservationDto.ReservationResponse) error {
	if o.Format == FormatJSON {
		return o.JSON(reservations)
	}

	if len(reservations) == 0 {
		o.Message("No reservations.")

		return nil
	}

	rows := make([][]string, 0, len(reservations))
	for _, r := range reservations {
		rows = append(rows, []string{
			r.ID, r.Status, orDash(r.GuestName), orDash(r.Customer), orDash(r.FlightHotel),
			r.ReservationDate, deref(r.CheckinDateTime), deref(r.CheckoutDateTime),
		})
	}

	return o.table("ID\tSTATUS\tGUEST\tCUSTOMER\tFLIGHT/HOTEL\tDATE\tCHECK-IN\tCHECK-OUT", rows)
}

func (o *Output) Reservation(r reservationDto.ReservationResponse) error {
	if o.Format == FormatJSON {
		return o.JSON(r)
	}

	rows := [][]string{
		{"ID", r.ID},
		{"Status", r.Status},
		{"Guest", orDash(r.GuestName)},
		{"Customer", orDash(r.Customer)},
		{"Nationality", orDash(r.Nationality)},
		{"Direction", orDash(r.Direction)},
		{"ETA", orDash(r.ETA)},
		{"Flight/Hotel", orDash(r.FlightHotel)},
		{"Reservation date", r.ReservationDate},
		{"Checked in", deref(r.CheckinDateTime) + " by " + deref(r.CheckinBy)},
		{"Checked out", deref(r.CheckoutDateTime) + " by " + deref(r.CheckoutBy)},
	}

	return o.table("FIELD\tVALUE", rows)
}

func (o *Output) Users(users userDto.UsersResponse) error {
	if o.Format == FormatJSON {
		return o.JSON(users)
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.Username, u.Name, u.Level, orDash(u.RCNo)})
	}

	return o.table("USERNAME\tNAME\tLEVEL\tRC NO", rows)
}

func (o *Output) DutyRequests(requests dutyDto.DutyRequestsResponse) error {
	if o.Format == FormatJSON {
		return o.JSON(requests)
	}

	if len(requests) == 0 {
		o.Message("No pending duty requests.")

		return nil
	}

	rows := make([][]string, 0, len(requests))
	for _, r := range requests {
		rows = append(rows, []string{r.ID, r.Date, r.FromName, r.FromTime, r.ToTime, r.Status})
	}

	return o.table("ID\tDATE\tFROM\tTHEIR SHIFT\tYOUR SHIFT\tSTATUS", rows)
}

func (o *Output) Report(report reportDto.ReportResponse) error {
	if o.Format == FormatJSON {
		return o.JSON(report)
	}

	fmt.Fprintln(o.Writer, report.Title)
	fmt.Fprintln(o.Writer, report.Company)
	fmt.Fprintf(o.Writer, "Report date: %s\n", report.ReportDate)

	if report.RangeText != "" {
		fmt.Fprintln(o.Writer, report.RangeText)
	}

	for _, section := range report.Sections {
		fmt.Fprintf(o.Writer, "\n%s\n", section.Customer)

		rows := make([][]string, 0, len(section.Reservations))
		for _, row := range section.Reservations {
			rows = append(rows, []string{row.GuestName, row.FlightHotel, row.ETA, row.Direction, row.CheckinTime, row.CheckoutTime})
		}

		if err := o.table("GUEST\tFLIGHT/HOTEL\tETA\tDIRECTION\tCHECK-IN\tCHECK-OUT", rows); err != nil {
			return err
		}
	}

	fmt.Fprintf(o.Writer, "\nTotal: %d\nPrepared by: %s (%s)\n", report.Total, orDash(report.PreparedBy), orDash(report.PreparerRC))

	return nil
}
