package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	role, err := ParseRole("Waiter")
	require.NoError(t, err)
	assert.Equal(t, RoleWaiter, role)

	role, err = ParseRole("Admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	_, err = ParseRole("Manager")
	assert.Error(t, err)

	// Case matters on the wire.
	_, err = ParseRole("customer")
	assert.Error(t, err)
}

func TestRoleJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(RoleWaiter)
	require.NoError(t, err)
	assert.Equal(t, `"Waiter"`, string(data))

	var r Role
	require.NoError(t, json.Unmarshal([]byte(`"Admin"`), &r))
	assert.Equal(t, RoleAdmin, r)

	assert.Error(t, json.Unmarshal([]byte(`"Intruder"`), &r))
	assert.Error(t, json.Unmarshal([]byte(`3`), &r))
}
