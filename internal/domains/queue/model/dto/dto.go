package dto

import (
	"frontdesk/internal/domains/reservation/model"
	reservationDto "frontdesk/internal/domains/reservation/model/dto"
)

type QueueResponse struct {
	Reservations []reservationDto.ReservationResponse `json:"reservations"`
	Total        int                                  `json:"total"`
}

func (r *QueueResponse) FromModels(models []model.Reservation) {
	r.Total = len(models)
	r.Reservations = make([]reservationDto.ReservationResponse, len(models))

	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

type OptionsResponse struct {
	View         string   `json:"view"`
	FlightHotels []string `json:"flight_hotels"`
}
