package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/user/model"
	"frontdesk/shared/constant"
	gRepo "frontdesk/shared/repository"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

//go:embed roster.yaml
var defaultRoster []byte

var (
	ErrEmptyRoster       = errors.New("roster has no users")
	ErrDuplicateUsername = errors.New("duplicate username in roster")
	ErrIncompleteUser    = errors.New("roster user requires username and password_hash")
)

type User interface {
	Find(ctx context.Context, username string) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type rosterImpl struct {
	users []model.User
	index map[string]int
	otel  otel.Otel
}

// New loads the roster from cfg.Auth.RosterFile, or the embedded development roster when unset.
func New(cfg *config.Config, otel otel.Otel) (User, error) {
	raw := defaultRoster

	if path := strings.TrimSpace(cfg.Auth.RosterFile); path != "" {
		var err error

		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read roster %s: %w", path, err)
		}
	}

	return Load(raw, otel)
}

// Load parses a YAML roster.
func Load(raw []byte, otel otel.Otel) (User, error) {
	var roster model.Roster
	if err := yaml.Unmarshal(raw, &roster); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}

	if len(roster.Users) == 0 {
		return nil, ErrEmptyRoster
	}

	fold := cases.Fold()
	index := make(map[string]int, len(roster.Users))

	for i, user := range roster.Users {
		user.Username = strings.TrimSpace(user.Username)
		if user.Username == "" || user.PasswordHash == "" {
			return nil, fmt.Errorf("%w (entry %d)", ErrIncompleteUser, i+1)
		}

		if user.Level == "" {
			user.Level = constant.RoleStaff
		}

		key := fold.String(user.Username)
		if _, ok := index[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateUsername, user.Username)
		}

		index[key] = i
		roster.Users[i] = user
	}

	return &rosterImpl{
		users: roster.Users,
		index: index,
		otel:  otel,
	}, nil
}

// Find matches username case-insensitively. Unknown users yield gRepo.ErrNotFound.
func (r *rosterImpl) Find(ctx context.Context, username string) (res model.User, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.Find")
	defer scope.End()
	defer scope.TraceIfError(err)

	i, ok := r.index[cases.Fold().String(strings.TrimSpace(username))]
	if !ok {
		return res, gRepo.ErrNotFound
	}

	return r.users[i], nil
}

// List returns the roster ordered by username.
func (r *rosterImpl) List(ctx context.Context) ([]model.User, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.List")
	defer scope.End()

	res := make([]model.User, len(r.users))
	copy(res, r.users)

	sort.Slice(res, func(i, j int) bool {
		return res[i].Username < res[j].Username
	})

	return res, nil
}
