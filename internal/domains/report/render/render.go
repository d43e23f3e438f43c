package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"frontdesk/internal/domains/report/model"
	"html/template"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName    = "Checkout Report"
	defaultSheet = "Sheet1"
)

//go:embed checkout.html.tmpl
var checkoutHTML string

var checkoutTemplate = template.Must(template.New("checkout").Parse(checkoutHTML))

var tableHeader = []any{"Name", "Flight/Hotel", "ETA", "Direction", "Check-In Time", "Check-Out Time", "Remarks"}

// HTML writes the printable report.
func HTML(w io.Writer, report model.Report) error {
	if err := checkoutTemplate.Execute(w, report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	return nil
}

// XLSX renders the report as a single-sheet workbook.
func XLSX(report model.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	w := &sheetWriter{file: f, bold: bold}

	w.row(true, report.Title)
	w.row(false, report.Letterhead.Name)

	for _, line := range []string{report.Letterhead.Address, report.Letterhead.Phone, report.Letterhead.Email} {
		if line != "" {
			w.row(false, line)
		}
	}

	w.row(false, "Report Date: "+report.ReportDate)

	if report.RangeText != "" {
		w.row(false, report.RangeText)
	}

	if report.FlightHotel != "" {
		w.row(false, "Flight/Hotel: "+report.FlightHotel)
	}

	w.skip()

	for _, section := range report.Sections {
		w.row(true, "Customer: "+section.Customer)
		w.row(true, tableHeader...)

		for _, r := range section.Rows {
			w.row(false, r.GuestName, r.FlightHotel, r.ETA, r.Direction, r.CheckinTime, r.CheckoutTime, "")
		}

		w.skip()
	}

	w.row(true, "Prepared by:")
	w.row(false, "Name: "+report.Preparer.Name)
	w.row(false, "RC No: "+report.Preparer.RCNo)
	w.skip()
	w.row(true, "Checked by:")
	w.row(false, "Name:")
	w.row(false, "RC No:")

	if w.err != nil {
		return nil, w.err
	}

	if err = f.SetColWidth(sheetName, "A", "G", 20); err != nil {
		return nil, fmt.Errorf("failed to size columns: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return bytes.Clone(buf.Bytes()), nil
}

type sheetWriter struct {
	file *excelize.File
	bold int
	line int
	err  error
}

func (w *sheetWriter) row(bold bool, values ...any) {
	if w.err != nil {
		return
	}

	w.line++

	cell, err := excelize.CoordinatesToCellName(1, w.line)
	if err != nil {
		w.err = err

		return
	}

	if err = w.file.SetSheetRow(sheetName, cell, &values); err != nil {
		w.err = fmt.Errorf("failed to write row %d: %w", w.line, err)

		return
	}

	if bold {
		last, _ := excelize.CoordinatesToCellName(len(values), w.line)
		w.err = w.file.SetCellStyle(sheetName, cell, last, w.bold)
	}
}

func (w *sheetWriter) skip() {
	w.line++
}
