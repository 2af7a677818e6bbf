package domain

import "strings"

// Role is a simulated user role used to gate workflow transitions and
// module visibility. Role simulation previews permissions without real
// authentication.
type Role string

const (
	RoleFieldWorker   Role = "field_worker"
	RoleSupervisor    Role = "supervisor"
	RoleSafetyOfficer Role = "safety_officer"
	RoleAdmin         Role = "admin"
	RoleContractor    Role = "contractor"
)

// AllRoles lists every simulation role.
var AllRoles = []Role{
	RoleFieldWorker,
	RoleSupervisor,
	RoleSafetyOfficer,
	RoleAdmin,
	RoleContractor,
}

// IsValid reports whether r is a known simulation role.
func (r Role) IsValid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// Action is a closed enumeration of the permission-gated operations.
type Action string

const (
	ActionView    Action = "view"
	ActionCreate  Action = "create"
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
	ActionApprove Action = "approve"
	ActionExport  Action = "export"
)

// Scope is the tagged variant backing a permission allow-list: either
// everything (optionally minus an exception list), or an explicit set of
// names. Names are matched case-insensitively.
type Scope struct {
	All    bool     `json:"all"`
	Except []string `json:"except,omitempty"` // Only meaningful when All is true
	Names  []string `json:"names,omitempty"`  // Only meaningful when All is false
}

// ScopeAll grants every name.
func ScopeAll() Scope { return Scope{All: true} }

// ScopeAllExcept grants every name except the listed ones.
func ScopeAllExcept(except ...string) Scope { return Scope{All: true, Except: except} }

// ScopeOf grants exactly the listed names.
func ScopeOf(names ...string) Scope { return Scope{Names: names} }

// ScopeNone grants nothing.
func ScopeNone() Scope { return Scope{} }

// Allows reports whether the scope grants the given name.
func (s Scope) Allows(name string) bool {
	if s.All {
		for _, ex := range s.Except {
			if strings.EqualFold(ex, name) {
				return false
			}
		}
		return true
	}
	for _, n := range s.Names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the scope grants no name at all. Used by the
// coarse-grained delete check, which tests list non-emptiness rather than
// membership of a specific record type.
func (s Scope) IsEmpty() bool {
	return !s.All && len(s.Names) == 0
}

// RolePermissions holds the per-action allow-lists for one role.
type RolePermissions struct {
	Role    Role             `json:"role"`
	Label   string           `json:"label"` // Display name, e.g. "Safety Officer"
	Actions map[Action]Scope `json:"actions"`
}

// Scope returns the allow-list for the given action, or an empty scope when
// the action is absent from the table.
func (p RolePermissions) Scope(action Action) Scope {
	return p.Actions[action]
}

// PermissionTable is the static role -> permissions matrix. admin and
// safety_officer additionally carry a hard-coded universal override in the
// evaluator for view/create/approve, regardless of table contents.
var PermissionTable = map[Role]RolePermissions{
	RoleAdmin: {
		Role:  RoleAdmin,
		Label: "Administrator",
		Actions: map[Action]Scope{
			ActionView:    ScopeAll(),
			ActionCreate:  ScopeAll(),
			ActionEdit:    ScopeAll(),
			ActionDelete:  ScopeAll(),
			ActionApprove: ScopeAll(),
			ActionExport:  ScopeAll(),
		},
	},
	RoleSafetyOfficer: {
		Role:  RoleSafetyOfficer,
		Label: "Safety Officer",
		Actions: map[Action]Scope{
			ActionView:    ScopeAllExcept("admin"),
			ActionCreate:  ScopeAll(),
			ActionEdit:    ScopeAll(),
			ActionDelete:  ScopeOf("incident", "observation"),
			ActionApprove: ScopeAll(),
			ActionExport:  ScopeAll(),
		},
	},
	RoleSupervisor: {
		Role:  RoleSupervisor,
		Label: "Supervisor",
		Actions: map[Action]Scope{
			ActionView:    ScopeAllExcept("admin"),
			ActionCreate:  ScopeOf("incident", "inspection", "jsa", "permit", "observation", "site_diary"),
			ActionEdit:    ScopeOf("incident", "inspection", "jsa", "permit", "observation", "site_diary"),
			ActionDelete:  ScopeNone(),
			ActionApprove: ScopeOf("jsa", "permit"),
			ActionExport:  ScopeOf("incidents", "inspections"),
		},
	},
	RoleFieldWorker: {
		Role:  RoleFieldWorker,
		Label: "Field Worker",
		Actions: map[Action]Scope{
			ActionView:    ScopeOf("dashboard", "incidents", "inspections", "jsas", "permits", "observations", "trainings"),
			ActionCreate:  ScopeOf("incident", "observation"),
			ActionEdit:    ScopeOf("incident", "observation"),
			ActionDelete:  ScopeNone(),
			ActionApprove: ScopeNone(),
			ActionExport:  ScopeNone(),
		},
	},
	RoleContractor: {
		Role:  RoleContractor,
		Label: "Contractor",
		Actions: map[Action]Scope{
			ActionView:    ScopeOf("dashboard", "permits", "jsas", "trainings"),
			ActionCreate:  ScopeOf("observation"),
			ActionEdit:    ScopeNone(),
			ActionDelete:  ScopeNone(),
			ActionApprove: ScopeNone(),
			ActionExport:  ScopeNone(),
		},
	},
}
