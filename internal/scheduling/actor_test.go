package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleCapabilities(t *testing.T) {
	assert.True(t, RoleSindico.Can(CapOverrideReservations))
	assert.True(t, RoleSubsindico.Can(CapOverrideReservations))
	assert.False(t, RoleZelador.Can(CapOverrideReservations))
	assert.False(t, RoleMorador.Can(CapOverrideReservations))

	assert.True(t, RoleZelador.Can(CapCompleteDuties))
	assert.False(t, RoleZelador.Can(CapManageDuties))
	assert.True(t, RoleMorador.Can(CapBookReservations))
	assert.False(t, RoleMorador.Can(CapViewBoard))
	assert.True(t, RolePrestador.Can(CapManageCleaning))
	assert.False(t, RolePrestador.Can(CapBookReservations))
	assert.True(t, RoleZelador.Can(CapManageSauna))
	assert.False(t, RoleMorador.Can(CapManageSauna))
	assert.False(t, RolePrestador.Can(CapManageSauna))

	assert.False(t, Role("janitor").IsValid())
	assert.False(t, Role("janitor").Can(CapViewBoard))
	assert.True(t, RoleOwner.IsValid())
}

func TestActorDisplayName(t *testing.T) {
	assert.Equal(t, "Ana", Actor{ID: "u-1", Name: "Ana"}.DisplayName())
	assert.Equal(t, "u-1", Actor{ID: "u-1"}.DisplayName())
}
