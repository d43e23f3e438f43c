package permissions_test

import (
	"frontdesk/permissions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	login := data.FindPermissions("/v1/auth/login", http.MethodPost)
	assert.True(t, login.Skip)

	deletion := data.FindPermissions("/v1/reservations/{id}", http.MethodDelete)
	assert.False(t, deletion.Skip)
	assert.ElementsMatch(t, []string{"admin", "supervisor"}, deletion.Permissions)

	unknown := data.FindPermissions("/v1/reservations/{id}", http.MethodGet)
	assert.Empty(t, unknown.Permissions)
	assert.False(t, unknown.Skip)
}

func TestPermissionAllows(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	export := data.FindPermissions("/v1/reports/checkout/export", "post")
	assert.True(t, export.Allows("supervisor"))
	assert.True(t, export.Allows("admin"))
	assert.False(t, export.Allows("staff"))
	assert.False(t, export.Allows(""))

	queue := data.FindPermissions("/v1/queues/check-in", http.MethodGet)
	assert.True(t, queue.Allows("staff"))
}
