package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jpmercado/infratrack/internal/workflow"
)

// grants is the full authorization contract: every (role, from, to) triple
// expected to be allowed. Anything outside this set must be denied.
var grants = []struct {
	role     workflow.Role
	from, to workflow.Status
}{
	{workflow.RoleDevelopmentCouncil, workflow.StatusPendingReview, workflow.StatusPrioritized},
	{workflow.RoleDevelopmentCouncil, workflow.StatusPendingReview, workflow.StatusCancelled},
	{workflow.RoleBudgetOfficer, workflow.StatusPrioritized, workflow.StatusFunded},
	{workflow.RoleBACSecretariat, workflow.StatusFunded, workflow.StatusOpenForBidding},
	{workflow.RoleBACSecretariat, workflow.StatusOpenForBidding, workflow.StatusInProgress},
	{workflow.RoleTechnicalInspector, workflow.StatusInProgress, workflow.StatusCompleted},
}

func allowedByTable(role workflow.Role, from, to workflow.Status) bool {
	if role == workflow.RoleSystemAdministrator {
		for _, g := range grants {
			if g.from == from && g.to == to {
				return true
			}
		}

		// Hold/cancel escape hatch from any non-terminal status.
		if from.Terminal() || from == to {
			return false
		}

		return to == workflow.StatusOnHold || to == workflow.StatusCancelled
	}

	for _, g := range grants {
		if g.role == role && g.from == from && g.to == to {
			return true
		}
	}

	return false
}

// Every (role, from, to) combination over the full enums must agree with the
// contract table: listed triples allowed, everything else denied.
func TestAllowed_Exhaustive(t *testing.T) {
	for _, role := range workflow.Roles {
		for _, from := range workflow.Statuses {
			for _, to := range workflow.Statuses {
				want := allowedByTable(role, from, to)
				got := workflow.Allowed(role, from, to)
				assert.Equalf(t, want, got, "role=%s from=%s to=%s", role, from, to)
			}
		}
	}
}

func TestAllowed_AdministratorSuperRole(t *testing.T) {
	for _, g := range grants {
		assert.Truef(t, workflow.Allowed(workflow.RoleSystemAdministrator, g.from, g.to),
			"administrator should hold every edge, missing %s->%s", g.from, g.to)
	}
}

func TestAllowed_NoExitFromTerminal(t *testing.T) {
	for _, from := range []workflow.Status{workflow.StatusCompleted, workflow.StatusCancelled} {
		for _, to := range workflow.Statuses {
			for _, role := range workflow.Roles {
				assert.Falsef(t, workflow.Allowed(role, from, to),
					"terminal status %s must have no exit (%s by %s)", from, to, role)
			}
		}
	}
}

func TestDefined(t *testing.T) {
	assert.True(t, workflow.Defined(workflow.StatusPendingReview, workflow.StatusPrioritized))
	assert.True(t, workflow.Defined(workflow.StatusInProgress, workflow.StatusOnHold))
	assert.True(t, workflow.Defined(workflow.StatusOnHold, workflow.StatusCancelled))
	assert.False(t, workflow.Defined(workflow.StatusCompleted, workflow.StatusFunded))
	assert.False(t, workflow.Defined(workflow.StatusPendingReview, workflow.StatusFunded))
	assert.False(t, workflow.Defined(workflow.StatusOnHold, workflow.StatusOnHold))
}

func TestValid(t *testing.T) {
	assert.True(t, workflow.StatusFunded.Valid())
	assert.False(t, workflow.Status("archived").Valid())
	assert.True(t, workflow.RoleMayor.Valid())
	assert.False(t, workflow.Role("superuser").Valid())
}
