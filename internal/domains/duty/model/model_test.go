package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"frontdesk/internal/domains/duty/model"
	"frontdesk/shared/constant"
)

func TestResponse(t *testing.T) {
	assert.Equal(t, model.StatusAccepted, model.Response(true))
	assert.Equal(t, model.StatusRejected, model.Response(false))
}

func TestRespond(t *testing.T) {
	at := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	request := model.DutyRequest{ID: "1", Status: model.StatusPending}

	answered := request.Respond(model.StatusAccepted, "sarah", at)

	assert.Equal(t, model.StatusPending, request.Status)
	assert.Nil(t, request.RespondedAt)
	assert.Equal(t, model.StatusAccepted, answered.Status)
	assert.Equal(t, at, *answered.RespondedAt)
	assert.Equal(t, "sarah", answered.ModifiedBy)

	fields := model.ResponseFields(model.StatusRejected, "sarah", at)
	assert.Equal(t, model.StatusRejected, fields[model.FieldStatus])
	assert.Equal(t, at, fields[model.FieldRespondedAt])
	assert.Equal(t, "sarah", fields[constant.FieldModifiedBy])
}
