package policy

import (
	"testing"

	"github.com/medisys/hms-api/internal/core/domain"
)

// patient.delete is admin-only; every other role in the set must be denied.
func TestAuthorize_PatientDelete_Exhaustive(t *testing.T) {
	for _, role := range domain.Roles {
		want := role == domain.RoleAdmin
		if got := Authorize(OpPatientDelete, role); got != want {
			t.Fatalf("Authorize(patient.delete, %s) = %v, want %v", role, got, want)
		}
	}
}

func TestAuthorize_Table(t *testing.T) {
	cases := []struct {
		op      Operation
		role    domain.Role
		allowed bool
	}{
		{OpPatientCreate, domain.RoleReceptionist, true},
		{OpPatientCreate, domain.RoleNurse, true},
		{OpPatientCreate, domain.RoleDoctor, false},
		{OpPatientCreate, domain.RolePatient, false},
		{OpPatientList, domain.RoleDoctor, true},
		{OpPatientList, domain.RolePharmacist, false},
		{OpPatientUpdate, domain.RoleNurse, true},
		{OpPatientUpdate, domain.RoleDoctor, false},
		{OpAppointmentCreate, domain.RoleReceptionist, true},
		{OpAppointmentCreate, domain.RoleNurse, false},
		{OpAppointmentList, domain.RoleNurse, true},
		{OpChatbotQuery, domain.RoleAdmin, true},
		{OpChatbotQuery, domain.RoleDoctor, true},
		{OpChatbotQuery, domain.RoleNurse, false},
		{OpChatbotQuery, domain.RoleReceptionist, false},
	}

	for _, tc := range cases {
		if got := Authorize(tc.op, tc.role); got != tc.allowed {
			t.Fatalf("Authorize(%s, %s) = %v, want %v", tc.op, tc.role, got, tc.allowed)
		}
	}
}

// An unknown role string is simply absent from every allow-list: deny.
func TestAuthorize_UnknownRoleDenied(t *testing.T) {
	if Authorize(OpPatientList, domain.Role("intruder")) {
		t.Fatalf("unknown role must be denied")
	}
}

func TestAuthorize_UnknownOperationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on unknown operation")
		}
	}()
	Authorize(Operation("patient.export"), domain.RoleAdmin)
}

func TestMustKnow(t *testing.T) {
	if got := MustKnow(OpChatbotQuery); got != OpChatbotQuery {
		t.Fatalf("MustKnow returned %s", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on unknown operation")
		}
	}()
	MustKnow(Operation("nope"))
}
