package dto

import "frontdesk/internal/domains/report/model"

type ReportRequest struct {
	From        string `json:"from"         validate:"omitempty,day"`
	To          string `json:"to"           validate:"omitempty,day"`
	FlightHotel string `json:"flight_hotel"`
}

func (r ReportRequest) ToFilter() model.Filter {
	return model.Filter{
		From:        r.From,
		To:          r.To,
		FlightHotel: r.FlightHotel,
	}
}

type RowResponse struct {
	GuestName    string `json:"guest_name"`
	FlightHotel  string `json:"flight_hotel"`
	ETA          string `json:"eta"`
	Direction    string `json:"direction"`
	CheckinTime  string `json:"checkin_time"`
	CheckoutTime string `json:"checkout_time"`
}

type SectionResponse struct {
	Customer     string        `json:"customer"`
	Reservations []RowResponse `json:"reservations"`
}

type ReportResponse struct {
	Title       string            `json:"title"`
	Company     string            `json:"company"`
	ReportDate  string            `json:"report_date"`
	RangeText   string            `json:"range_text,omitempty"`
	FlightHotel string            `json:"flight_hotel,omitempty"`
	Sections    []SectionResponse `json:"sections"`
	Total       int               `json:"total"`
	PreparedBy  string            `json:"prepared_by"`
	PreparerRC  string            `json:"preparer_rc_no"`
}

func (r *ReportResponse) FromModel(m model.Report) {
	r.Title = m.Title
	r.Company = m.Letterhead.Name
	r.ReportDate = m.ReportDate
	r.RangeText = m.RangeText
	r.FlightHotel = m.FlightHotel
	r.Total = m.Total
	r.PreparedBy = m.Preparer.Name
	r.PreparerRC = m.Preparer.RCNo
	r.Sections = make([]SectionResponse, 0, len(m.Sections))

	for _, section := range m.Sections {
		res := SectionResponse{
			Customer:     section.Customer,
			Reservations: make([]RowResponse, 0, len(section.Rows)),
		}

		for _, row := range section.Rows {
			res.Reservations = append(res.Reservations, RowResponse(row))
		}

		r.Sections = append(r.Sections, res)
	}
}

type ExportResponse struct {
	FileName string `json:"file_name"`
	URL      string `json:"url"`
	Total    int    `json:"total"`
}
