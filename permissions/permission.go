package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission lists the Levels allowed on one route pattern. An empty list
// means any signed-in user.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Allows reports whether level may call the route.
func (p Permission) Allows(level string) bool {
	return p.Skip || len(p.Permissions) == 0 || slices.Contains(p.Permissions, level)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions looks a chi route pattern up; methods compare case-insensitively.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && strings.EqualFold(rp.Method, method)
	})

	if idx == -1 {
		return Permission{Path: path, Method: method}
	}

	return r.Endpoints[idx]
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	public := 0

	for _, endpoint := range permissions.Endpoints {
		if endpoint.Skip {
			public++
		}
	}

	log.Info().
		Int("endpoints", len(permissions.Endpoints)).
		Int("public", public).
		Msg("Loaded route permissions")

	return &permissions
}
