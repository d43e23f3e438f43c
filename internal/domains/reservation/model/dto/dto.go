package dto

import (
	"frontdesk/internal/domains/reservation/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	Customer        string `json:"customer"         validate:"omitempty,max=255"`
	GuestName       string `json:"guest_name"       validate:"required,notblank,max=255"`
	Nationality     string `json:"nationality"      validate:"omitempty,max=100"`
	Direction       string `json:"direction"        validate:"omitempty,oneof=arrival departure"`
	ETA             string `json:"eta"              validate:"omitempty,max=20"`
	FlightHotel     string `json:"flight_hotel"     validate:"required,notblank,max=100"`
	ReservationDate string `json:"reservation_date" validate:"required,day"`
}

func (c *CreateReservationRequest) ToModel(actor string, now time.Time) model.Reservation {
	return model.Reservation{
		ID:              uuid.NewString(),
		Customer:        strings.TrimSpace(c.Customer),
		GuestName:       strings.TrimSpace(c.GuestName),
		Nationality:     strings.TrimSpace(c.Nationality),
		Direction:       c.Direction,
		ETA:             strings.TrimSpace(c.ETA),
		FlightHotel:     strings.TrimSpace(c.FlightHotel),
		ReservationDate: c.ReservationDate,
		Status:          model.StatusReserved,
		Metadata:        gModel.NewMetadata(actor, now),
	}
}

type ReservationResponse struct {
	ID               string  `json:"id"`
	Customer         string  `json:"customer"`
	GuestName        string  `json:"guest_name"`
	Nationality      string  `json:"nationality"`
	Direction        string  `json:"direction"`
	ETA              string  `json:"eta"`
	FlightHotel      string  `json:"flight_hotel"`
	ReservationDate  string  `json:"reservation_date"`
	Status           string  `json:"status"`
	CheckinDate      *string `json:"checkin_date,omitempty"`
	CheckinTime      *string `json:"checkin_time,omitempty"`
	CheckinDateTime  *string `json:"checkin_date_time,omitempty"`
	CheckinBy        *string `json:"checkin_by,omitempty"`
	CheckoutDate     *string `json:"checkout_date,omitempty"`
	CheckoutTime     *string `json:"checkout_time,omitempty"`
	CheckoutDateTime *string `json:"checkout_date_time,omitempty"`
	CheckoutBy       *string `json:"checkout_by,omitempty"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.Customer = model.Customer
	r.GuestName = model.GuestName
	r.Nationality = model.Nationality
	r.Direction = model.Direction
	r.ETA = model.ETA
	r.FlightHotel = model.FlightHotel
	r.ReservationDate = model.ReservationDate
	r.Status = string(model.Status)
	r.CheckinDate = model.CheckinDate
	r.CheckinTime = model.CheckinTime
	r.CheckinDateTime = formatInstant(model.CheckinDateTime)
	r.CheckinBy = model.CheckinBy
	r.CheckoutDate = model.CheckoutDate
	r.CheckoutTime = model.CheckoutTime
	r.CheckoutDateTime = formatInstant(model.CheckoutDateTime)
	r.CheckoutBy = model.CheckoutBy
	r.Metadata.FromModel(model.Metadata)
}

func formatInstant(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, constant.DateFormat)

	return &formatted
}

type ReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

func (r *ReservationsResponse) FromModels(models []model.Reservation) {
	r.Total = len(models)
	r.Reservations = make([]ReservationResponse, len(models))

	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

type AutocompleteResponse struct {
	Customers    []string `json:"customers"`
	FlightHotels []string `json:"flight_hotels"`
}
