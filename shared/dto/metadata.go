package dto

import (
	"frontdesk/shared/constant"
	"frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

// Metadata is the audit block embedded in record responses.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedAt string `json:"modified_at"`
	ModifiedBy string `json:"modified_by"`
}

// FromModel renders the audit instants in the application timezone.
func (m *Metadata) FromModel(meta model.Metadata) {
	m.CreatedAt = timezone.Format(meta.CreatedAt, constant.DateFormat)
	m.CreatedBy = meta.CreatedBy
	m.ModifiedAt = timezone.Format(meta.ModifiedAt, constant.DateFormat)
	m.ModifiedBy = meta.ModifiedBy
}
