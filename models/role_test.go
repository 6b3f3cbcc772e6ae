package models

import (
	"testing"
)

func TestRoleIsValid(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleProfessional, RoleRegisteredUser, RoleGuest} {
		if !role.IsValid() {
			t.Fatalf("%s reported invalid", role)
		}
	}
	if Role("SUPERUSER").IsValid() {
		t.Fatal("unknown role reported valid")
	}
	if Role("admin").IsValid() {
		t.Fatal("role matching is case sensitive, lowercase must not validate")
	}
}

func TestRoleCanManageSchedules(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleAdmin, true},
		{RoleProfessional, true},
		{RoleRegisteredUser, false},
		{RoleGuest, false},
	}

	for _, tt := range tests {
		if got := tt.role.CanManageSchedules(); got != tt.want {
			t.Fatalf("%s.CanManageSchedules() = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestRoleCanUpdateNotifications(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleAdmin, true},
		{RoleProfessional, true},
		{RoleRegisteredUser, true},
		{RoleGuest, false},
	}

	for _, tt := range tests {
		if got := tt.role.CanUpdateNotifications(); got != tt.want {
			t.Fatalf("%s.CanUpdateNotifications() = %v, want %v", tt.role, got, tt.want)
		}
	}
}
