package domain

// WorkflowTransition is one row of the static transition table: a permitted
// move to a target status, the roles allowed to make it, and whether the
// actor must supply a comment.
type WorkflowTransition struct {
	To              RecordStatus `json:"to"`
	Label           string       `json:"label"`
	Icon            string       `json:"icon"`
	RequiresComment bool         `json:"requiresComment,omitempty"`
	AllowedRoles    []Role       `json:"allowedRoles"`
}

// RoleAllowed reports whether the role may take this transition.
func (t WorkflowTransition) RoleAllowed(role Role) bool {
	for _, r := range t.AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}

// TransitionTable is the authoritative status -> permitted transitions map.
// archived has no entry: it is terminal.
var TransitionTable = map[RecordStatus][]WorkflowTransition{
	StatusDraft: {
		{
			To:           StatusSubmitted,
			Label:        "Submit",
			Icon:         "send",
			AllowedRoles: []Role{RoleFieldWorker, RoleSupervisor, RoleSafetyOfficer, RoleAdmin},
		},
	},
	StatusSubmitted: {
		{
			To:           StatusUnderReview,
			Label:        "Start Review",
			Icon:         "eye",
			AllowedRoles: []Role{RoleSupervisor, RoleSafetyOfficer, RoleAdmin},
		},
		{
			To:              StatusDraft,
			Label:           "Return to Draft",
			Icon:            "undo",
			RequiresComment: true,
			AllowedRoles:    []Role{RoleSupervisor, RoleSafetyOfficer, RoleAdmin},
		},
	},
	StatusUnderReview: {
		{
			To:           StatusApproved,
			Label:        "Approve",
			Icon:         "check",
			AllowedRoles: []Role{RoleSafetyOfficer, RoleAdmin},
		},
		{
			To:              StatusSubmitted,
			Label:           "Request Changes",
			Icon:            "edit",
			RequiresComment: true,
			AllowedRoles:    []Role{RoleSafetyOfficer, RoleAdmin},
		},
	},
	StatusApproved: {
		{
			To:           StatusClosed,
			Label:        "Close",
			Icon:         "lock",
			AllowedRoles: []Role{RoleSafetyOfficer, RoleAdmin},
		},
	},
	StatusClosed: {
		{
			To:           StatusArchived,
			Label:        "Archive",
			Icon:         "archive",
			AllowedRoles: []Role{RoleAdmin},
		},
	},
}
