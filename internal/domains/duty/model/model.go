package model

import (
	"frontdesk/shared/constant"
	"frontdesk/shared/model"
	"time"
)

const (
	TableName  = "duty_requests"
	EntityName = "duty request"

	FieldID          = "id"
	FieldFromUser    = "from_user"
	FieldToUser      = "to_user"
	FieldStatus      = "status"
	FieldRespondedAt = "responded_at"

	ArgExpectedStatus = "expected_status"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Response resolves the outcome of a pending request.
func Response(accept bool) Status {
	if accept {
		return StatusAccepted
	}

	return StatusRejected
}

// DutyRequest asks ToUser to swap FromTime for ToTime on DutyDate.
type DutyRequest struct {
	ID          string     `db:"id"`
	FromUser    string     `db:"from_user"`
	FromName    string     `db:"from_name"`
	FromRC      string     `db:"from_rc"`
	FromTime    string     `db:"from_time"`
	ToUser      string     `db:"to_user"`
	ToName      string     `db:"to_name"`
	ToRC        string     `db:"to_rc"`
	ToTime      string     `db:"to_time"`
	DutyDate    string     `db:"duty_date"`
	Status      Status     `db:"status"`
	RespondedAt *time.Time `db:"responded_at"`
	model.Metadata
}

// Respond returns a copy of d resolved to status by actor at now.
func (d DutyRequest) Respond(status Status, actor string, now time.Time) DutyRequest {
	d.Status = status
	d.RespondedAt = &now
	d.ModifiedAt = now
	d.ModifiedBy = actor

	return d
}

// ResponseFields returns the columns written when a request is answered.
func ResponseFields(status Status, actor string, now time.Time) map[string]any {
	return map[string]any{
		FieldStatus:              status,
		FieldRespondedAt:         now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: actor,
	}
}
