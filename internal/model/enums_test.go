package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"CENTER_ADMIN", "SYSTEM_ADMIN"} {
		r, err := ParseRole(raw)
		require.NoError(t, err)
		assert.True(t, r.Valid())
		assert.Equal(t, raw, string(r))
	}

	for _, raw := range []string{"", "admin", "center_admin", "SUPERUSER"} {
		_, err := ParseRole(raw)
		assert.Error(t, err, raw)
	}
}

func TestParseGender(t *testing.T) {
	for _, raw := range []string{"MALE", "FEMALE", "BOTH"} {
		g, err := ParseGender(raw)
		require.NoError(t, err)
		assert.True(t, g.Valid())
	}

	_, err := ParseGender("male")
	assert.Error(t, err)
	assert.False(t, Gender("ANY").Valid())
}

func TestParseZone(t *testing.T) {
	for _, raw := range []string{"NORTH", "SOUTH", "EAST", "WEST", "CENTER"} {
		z, err := ParseZone(raw)
		require.NoError(t, err)
		assert.True(t, z.Valid())
	}

	_, err := ParseZone("NORTHEAST")
	assert.Error(t, err)
	assert.False(t, Zone("").Valid())
}
