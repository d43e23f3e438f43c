package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	userDto "frontdesk/internal/domains/user/model/dto"
)

const (
	sessionDir  = ".frontdesk"
	sessionFile = "session.yaml"
)

// ErrNoSession means nobody is signed in on this machine.
var ErrNoSession = errors.New("not logged in, run `frontdesk login` first")

// Session is the signed-in user as kept on disk. Holding a parseable
// session is enough to skip the login prompt.
type Session struct {
	Server       string               `yaml:"server"`
	AccessToken  string               `yaml:"access_token"`
	RefreshToken string               `yaml:"refresh_token"`
	User         userDto.UserResponse `yaml:"user"`
}

// DefaultSessionPath is ~/.frontdesk/session.yaml.
func DefaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(sessionDir, sessionFile)
	}

	return filepath.Join(home, sessionDir, sessionFile)
}

type SessionStore struct {
	Path string
}

func (s SessionStore) Load() (Session, error) {
	var session Session

	raw, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return session, ErrNoSession
		}

		return session, fmt.Errorf("failed to read session: %w", err)
	}

	if err := yaml.Unmarshal(raw, &session); err != nil {
		return Session{}, fmt.Errorf("%w: session file is corrupt: %w", ErrNoSession, err)
	}

	if session.AccessToken == "" || session.User.Username == "" {
		return Session{}, ErrNoSession
	}

	return session, nil
}

func (s SessionStore) Save(session Session) error {
	raw, err := yaml.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	if err := os.WriteFile(s.Path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	return nil
}

func (s SessionStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session: %w", err)
	}

	return nil
}
