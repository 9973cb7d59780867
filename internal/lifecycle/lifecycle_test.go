package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gashorafarm/farmconnect/internal/access"
)

var roles = []access.Role{access.RoleGuest, access.RoleUser, access.RoleFarmer, access.RoleAdmin}

func TestTransition_Table(t *testing.T) {
	allowed := map[edge][]access.Role{
		{Pending, Confirmed}:  {access.RoleAdmin},
		{Confirmed, Packed}:   {access.RoleFarmer, access.RoleAdmin},
		{Packed, OnTheWay}:    {access.RoleFarmer, access.RoleAdmin},
		{OnTheWay, Delivered}: {access.RoleFarmer, access.RoleAdmin},
		{Pending, Declined}:   {access.RoleAdmin},
		{Confirmed, Declined}: {access.RoleFarmer, access.RoleAdmin},
	}

	for _, from := range All {
		for _, to := range All {
			for _, role := range roles {
				err := Transition(from, to, role)
				want := false
				for _, r := range allowed[edge{from, to}] {
					if r == role {
						want = true
					}
				}
				if want {
					assert.NoError(t, err, "%s -> %s as %s", from, to, role)
				} else {
					assert.ErrorIs(t, err, ErrIllegalTransition, "%s -> %s as %s", from, to, role)
				}
			}
		}
	}
}

func TestTransition_TerminalStates(t *testing.T) {
	for _, terminal := range []Status{Delivered, Declined} {
		assert.True(t, terminal.Terminal())
		for _, role := range roles {
			assert.Empty(t, Next(terminal, role))
		}
	}
}

func TestTransition_ScenarioC(t *testing.T) {
	require.NoError(t, Transition(Pending, Confirmed, access.RoleAdmin))
	require.NoError(t, Transition(Confirmed, Packed, access.RoleFarmer))
	assert.ErrorIs(t, Transition(Pending, Packed, access.RoleFarmer), ErrIllegalTransition)
	assert.ErrorIs(t, Transition(Pending, Confirmed, access.RoleFarmer), ErrIllegalTransition)
}

func TestNext(t *testing.T) {
	assert.Equal(t, []Status{Confirmed, Declined}, Next(Pending, access.RoleAdmin))
	assert.Empty(t, Next(Pending, access.RoleFarmer))
	assert.Equal(t, []Status{Packed, Declined}, Next(Confirmed, access.RoleFarmer))
	assert.Empty(t, Next(Packed, access.RoleUser))
}

func TestParseAndRevenue(t *testing.T) {
	st, err := Parse("On the way")
	require.NoError(t, err)
	assert.Equal(t, OnTheWay, st)

	_, err = Parse("Shipped")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	for _, s := range All {
		assert.Equal(t, s == Delivered, RevenueEligible(s), s)
	}
}
