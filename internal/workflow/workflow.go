// Package workflow holds the closed role and status sets and the
// authorization table gating every project status transition. Handlers and
// services consult this table instead of comparing role strings inline.
package workflow

// Role identifies an actor category. The set is closed; role claims arrive
// from the identity provider and are trusted as authoritative.
type Role string

const (
	RoleSystemAdministrator Role = "system_administrator"
	RoleDevelopmentCouncil  Role = "development_council"
	RoleBudgetOfficer       Role = "budget_officer"
	RoleBACSecretariat      Role = "bac_secretariat"
	RoleTechnicalInspector  Role = "technical_inspector"
	RolePlanner             Role = "planner"
	RoleBarangayOfficial    Role = "barangay_official"
	RoleMayor               Role = "mayor"
	RoleContractor          Role = "contractor"
)

// Roles lists every defined role.
var Roles = []Role{
	RoleSystemAdministrator,
	RoleDevelopmentCouncil,
	RoleBudgetOfficer,
	RoleBACSecretariat,
	RoleTechnicalInspector,
	RolePlanner,
	RoleBarangayOfficial,
	RoleMayor,
	RoleContractor,
}

func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}

	return false
}

// Status represents the lifecycle stage of a project.
type Status string

const (
	StatusPendingReview  Status = "pending_review"
	StatusPrioritized    Status = "prioritized"
	StatusFunded         Status = "funded"
	StatusOpenForBidding Status = "open_for_bidding"
	StatusInProgress     Status = "in_progress"
	StatusCompleted      Status = "completed"
	StatusOnHold         Status = "on_hold"
	StatusCancelled      Status = "cancelled"
)

// Statuses lists every defined status.
var Statuses = []Status{
	StatusPendingReview,
	StatusPrioritized,
	StatusFunded,
	StatusOpenForBidding,
	StatusInProgress,
	StatusCompleted,
	StatusOnHold,
	StatusCancelled,
}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}

	return false
}

// Terminal reports whether no further transition may leave the status.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Edge is a directed (from, to) status pair.
type Edge struct {
	From Status
	To   Status
}

// edges maps each permitted transition to the roles allowed to perform it.
// The system administrator is implicitly allowed on every edge and may
// additionally move any non-terminal project to on_hold or cancelled; see
// Allowed. Keeping the table in one place is what makes the authorization
// contract testable.
var edges = map[Edge][]Role{
	{StatusPendingReview, StatusPrioritized}: {RoleDevelopmentCouncil},
	{StatusPendingReview, StatusCancelled}:   {RoleDevelopmentCouncil},
	{StatusPrioritized, StatusFunded}:        {RoleBudgetOfficer},
	{StatusFunded, StatusOpenForBidding}:     {RoleBACSecretariat},
	{StatusOpenForBidding, StatusInProgress}: {RoleBACSecretariat},
	{StatusInProgress, StatusCompleted}:      {RoleTechnicalInspector},
}

// Defined reports whether any role at all may perform the transition.
func Defined(from, to Status) bool {
	if _, ok := edges[Edge{From: from, To: to}]; ok {
		return true
	}

	// Administrator hold/cancel edges exist for every non-terminal status.
	return adminSideEdge(from, to)
}

// Allowed reports whether the role may perform the (from, to) transition.
func Allowed(role Role, from, to Status) bool {
	if role == RoleSystemAdministrator {
		return Defined(from, to)
	}

	for _, r := range edges[Edge{From: from, To: to}] {
		if r == role {
			return true
		}
	}

	return false
}

func adminSideEdge(from, to Status) bool {
	if from.Terminal() || from == to {
		return false
	}

	return to == StatusOnHold || to == StatusCancelled
}
