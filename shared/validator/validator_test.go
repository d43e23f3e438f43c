package validator_test

import (
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reservationRequest struct {
	GuestName       string `json:"guest_name"       validate:"required,notblank,max=20"`
	Direction       string `json:"direction"        validate:"omitempty,oneof=arrival departure"`
	ReservationDate string `json:"reservation_date" validate:"required,day"`
	Party           int    `json:"party"            validate:"gte=0,lte=12"`
	Endpoint        string `json:"endpoint"         validate:"omitempty,url"`
}

func validRequest() reservationRequest {
	return reservationRequest{
		GuestName:       "Budi Santoso",
		Direction:       "arrival",
		ReservationDate: "2024-05-01",
		Party:           2,
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name            string
		mutate          func(r *reservationRequest)
		expectedMessage string
	}{
		{name: "valid", mutate: func(*reservationRequest) {}},
		{
			name:            "missing guest",
			mutate:          func(r *reservationRequest) { r.GuestName = "" },
			expectedMessage: "guest_name is required",
		},
		{
			name:            "blank guest",
			mutate:          func(r *reservationRequest) { r.GuestName = "   " },
			expectedMessage: "guest_name must not be blank",
		},
		{
			name:            "guest too long",
			mutate:          func(r *reservationRequest) { r.GuestName = strings.Repeat("x", 21) },
			expectedMessage: "guest_name must be less than or equal to 20",
		},
		{
			name:            "unknown direction",
			mutate:          func(r *reservationRequest) { r.Direction = "sideways" },
			expectedMessage: "direction must be one of arrival departure",
		},
		{
			name:            "reservation date with time",
			mutate:          func(r *reservationRequest) { r.ReservationDate = "2024-05-01T10:00:00Z" },
			expectedMessage: "reservation_date must be a date formatted as YYYY-MM-DD",
		},
		{
			name:            "party too large",
			mutate:          func(r *reservationRequest) { r.Party = 13 },
			expectedMessage: "party must be less than or equal to 12",
		},
		{
			name:            "bad endpoint",
			mutate:          func(r *reservationRequest) { r.Endpoint = "not a url" },
			expectedMessage: "endpoint must be a valid URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.expectedMessage == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, tt.expectedMessage, err.Error())
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("decodes and validates", func(t *testing.T) {
		req := reservationRequest{}
		body := `{"guest_name":"Sari","reservation_date":"2024-05-01"}`

		require.NoError(t, validator.Validate(strings.NewReader(body), &req))
		assert.Equal(t, "Sari", req.GuestName)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := reservationRequest{}

		err := validator.Validate(strings.NewReader(`{"guest_name":`), &req)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "failed to decode request body")
	})

	t.Run("decoded but invalid", func(t *testing.T) {
		req := reservationRequest{}

		err := validator.Validate(strings.NewReader(`{"guest_name":"Sari"}`), &req)

		assert.EqualError(t, err, "reservation_date is required")
	})
}

func TestCustomTags(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid day", field: "2024-03-15", tag: "day"},
		{name: "day with time", field: "2024-03-15T10:00:00Z", tag: "day", expectError: true},
		{name: "impossible day", field: "2024-02-30", tag: "day", expectError: true},
		{name: "valid clock", field: "02:30 PM", tag: "clock"},
		{name: "24h clock", field: "14:30", tag: "clock", expectError: true},
		{name: "not blank", field: "GA-404", tag: "notblank"},
		{name: "blank", field: "   ", tag: "notblank", expectError: true},
		{name: "optional day omitted", field: "", tag: "omitempty,day"},
		{name: "day on a number", field: 20240315, tag: "day", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}
