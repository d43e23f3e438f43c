package model

const (
	EntityName = "user"
)

// User is a roster member. The roster is read-only at runtime.
type User struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"`
	Name         string `yaml:"name"`
	Level        string `yaml:"level"`
	RCNo         string `yaml:"rc_no"`
	Email        string `yaml:"email,omitempty"`
}

type Roster struct {
	Users []User `yaml:"users"`
}
