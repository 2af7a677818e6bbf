package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/services"
)

func TestCanViewModule(t *testing.T) {
	svc := services.NewPermissionService()

	tests := []struct {
		name   string
		role   domain.Role
		module string
		want   bool
	}{
		{"admin sees everything", domain.RoleAdmin, "incidents", true},
		{"admin sees admin module", domain.RoleAdmin, "admin", true},
		{"safety officer sees everything", domain.RoleSafetyOfficer, "incidents", true},
		{"safety officer override beats table carve-out", domain.RoleSafetyOfficer, "admin", true},
		{"supervisor sees regular modules", domain.RoleSupervisor, "incidents", true},
		{"supervisor blocked from admin module", domain.RoleSupervisor, "admin", false},
		{"field worker sees listed module", domain.RoleFieldWorker, "incidents", true},
		{"field worker listed module case-insensitive", domain.RoleFieldWorker, "Incidents", true},
		{"field worker blocked from capas", domain.RoleFieldWorker, "capas", false},
		{"contractor sees permits", domain.RoleContractor, "permits", true},
		{"contractor blocked from incidents", domain.RoleContractor, "incidents", false},
		{"unknown role sees nothing", domain.Role("intern"), "dashboard", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.CanViewModule(tt.role, tt.module))
		})
	}
}

func TestCanViewModule_UniversalOverrideIgnoresTable(t *testing.T) {
	// An explicitly empty table row must not dim the hard-coded override.
	table := map[domain.Role]domain.RolePermissions{
		domain.RoleAdmin:         {Role: domain.RoleAdmin, Actions: map[domain.Action]domain.Scope{}},
		domain.RoleSafetyOfficer: {Role: domain.RoleSafetyOfficer, Actions: map[domain.Action]domain.Scope{}},
	}
	svc := services.NewPermissionServiceWithTable(table)

	assert.True(t, svc.CanViewModule(domain.RoleAdmin, "anything"))
	assert.True(t, svc.CanViewModule(domain.RoleSafetyOfficer, "anything"))
}

func TestCanCreateRecord(t *testing.T) {
	svc := services.NewPermissionService()

	tests := []struct {
		name       string
		role       domain.Role
		recordType domain.RecordType
		want       bool
	}{
		{"admin creates anything", domain.RoleAdmin, domain.RecordTypeCAPA, true},
		{"safety officer creates anything", domain.RoleSafetyOfficer, domain.RecordTypeTraining, true},
		{"supervisor creates incident", domain.RoleSupervisor, domain.RecordTypeIncident, true},
		{"supervisor blocked from capa", domain.RoleSupervisor, domain.RecordTypeCAPA, false},
		{"field worker creates observation", domain.RoleFieldWorker, domain.RecordTypeObservation, true},
		{"field worker blocked from permit", domain.RoleFieldWorker, domain.RecordTypePermit, false},
		{"contractor creates observation", domain.RoleContractor, domain.RecordTypeObservation, true},
		{"contractor blocked from incident", domain.RoleContractor, domain.RecordTypeIncident, false},
		{"unknown role creates nothing", domain.Role("intern"), domain.RecordTypeObservation, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.CanCreateRecord(tt.role, tt.recordType))
		})
	}
}

func TestCanDeleteRecord(t *testing.T) {
	svc := services.NewPermissionService()

	tests := []struct {
		name string
		role domain.Role
		want bool
	}{
		{"admin always", domain.RoleAdmin, true},
		{"safety officer has non-empty delete list", domain.RoleSafetyOfficer, true},
		{"supervisor has empty delete list", domain.RoleSupervisor, false},
		{"field worker has empty delete list", domain.RoleFieldWorker, false},
		{"contractor has empty delete list", domain.RoleContractor, false},
		{"unknown role", domain.Role("intern"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.CanDeleteRecord(tt.role))
		})
	}
}

func TestCanApprove(t *testing.T) {
	svc := services.NewPermissionService()

	tests := []struct {
		name         string
		role         domain.Role
		workflowType string
		want         bool
	}{
		{"admin approves anything", domain.RoleAdmin, "incident", true},
		{"safety officer approves anything", domain.RoleSafetyOfficer, "capa", true},
		{"supervisor approves jsa", domain.RoleSupervisor, "jsa", true},
		{"supervisor approves permit", domain.RoleSupervisor, "permit", true},
		{"supervisor blocked from incident", domain.RoleSupervisor, "incident", false},
		{"field worker approves nothing", domain.RoleFieldWorker, "jsa", false},
		{"contractor approves nothing", domain.RoleContractor, "permit", false},
		{"unknown role approves nothing", domain.Role("intern"), "jsa", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.CanApprove(tt.role, tt.workflowType))
		})
	}
}

func TestAllows_UnknownRole(t *testing.T) {
	svc := services.NewPermissionService()

	for _, action := range []domain.Action{domain.ActionView, domain.ActionCreate, domain.ActionEdit, domain.ActionDelete, domain.ActionApprove, domain.ActionExport} {
		assert.False(t, svc.Allows(domain.Role("intern"), action, "anything"))
	}
}
