package dto

import "frontdesk/internal/domains/user/model"

type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Level    string `json:"level"`
	RCNo     string `json:"rc_no"`
	Email    string `json:"email,omitempty"`
}

func (u *UserResponse) FromModel(m model.User) {
	u.Username = m.Username
	u.Name = m.Name
	u.Level = m.Level
	u.RCNo = m.RCNo
	u.Email = m.Email
}

type UsersResponse []UserResponse

func (u *UsersResponse) FromModels(models []model.User) {
	*u = make(UsersResponse, 0, len(models))

	for _, m := range models {
		var res UserResponse
		res.FromModel(m)
		*u = append(*u, res)
	}
}
