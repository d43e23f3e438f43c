package dto

import (
	"frontdesk/internal/domains/duty/model"
	userModel "frontdesk/internal/domains/user/model"
	gModel "frontdesk/shared/model"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateDutyRequest struct {
	ToUser   string `json:"to_user"   validate:"required,notblank"`
	FromTime string `json:"from_time" validate:"required,notblank,max=50"`
	ToTime   string `json:"to_time"   validate:"required,notblank,max=50"`
	Date     string `json:"date"      validate:"required,day"`
}

func (r *CreateDutyRequest) ToModel(from, to userModel.User, now time.Time) model.DutyRequest {
	return model.DutyRequest{
		ID:       uuid.NewString(),
		FromUser: from.Username,
		FromName: from.Name,
		FromRC:   from.RCNo,
		FromTime: strings.TrimSpace(r.FromTime),
		ToUser:   to.Username,
		ToName:   to.Name,
		ToRC:     to.RCNo,
		ToTime:   strings.TrimSpace(r.ToTime),
		DutyDate: r.Date,
		Status:   model.StatusPending,
		Metadata: gModel.NewMetadata(from.Username, now),
	}
}

type DutyRequestResponse struct {
	ID          string     `json:"id"`
	FromUser    string     `json:"from_user"`
	FromName    string     `json:"from_name"`
	FromRC      string     `json:"from_rc"`
	FromTime    string     `json:"from_time"`
	ToUser      string     `json:"to_user"`
	ToName      string     `json:"to_name"`
	ToRC        string     `json:"to_rc"`
	ToTime      string     `json:"to_time"`
	Date        string     `json:"date"`
	Status      string     `json:"status"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (r *DutyRequestResponse) FromModel(m model.DutyRequest) {
	r.ID = m.ID
	r.FromUser = m.FromUser
	r.FromName = m.FromName
	r.FromRC = m.FromRC
	r.FromTime = m.FromTime
	r.ToUser = m.ToUser
	r.ToName = m.ToName
	r.ToRC = m.ToRC
	r.ToTime = m.ToTime
	r.Date = m.DutyDate
	r.Status = string(m.Status)
	r.RespondedAt = m.RespondedAt
	r.CreatedAt = m.CreatedAt
}

type DutyRequestsResponse []DutyRequestResponse

func (r *DutyRequestsResponse) FromModels(models []model.DutyRequest) {
	*r = make(DutyRequestsResponse, 0, len(models))

	for _, m := range models {
		var res DutyRequestResponse
		res.FromModel(m)
		*r = append(*r, res)
	}
}
