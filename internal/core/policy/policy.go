// Package policy is the single place role semantics are defined. Every
// protected operation has an explicit allow-list of roles; an operation absent
// from the table is denied for every role (fail closed).
package policy

import (
	"fmt"

	"github.com/medisys/hms-api/internal/core/domain"
)

// Operation identifies a protected resource operation.
type Operation string

const (
	OpPatientCreate     Operation = "patient.create"
	OpPatientRead       Operation = "patient.read"
	OpPatientList       Operation = "patient.list"
	OpPatientUpdate     Operation = "patient.update"
	OpPatientDelete     Operation = "patient.delete"
	OpAppointmentCreate Operation = "appointment.create"
	OpAppointmentList   Operation = "appointment.list"
	OpChatbotQuery      Operation = "chatbot.query"
)

var table = map[Operation][]domain.Role{
	OpPatientCreate:     {domain.RoleAdmin, domain.RoleReceptionist, domain.RoleNurse},
	OpPatientRead:       {domain.RoleAdmin, domain.RoleDoctor, domain.RoleReceptionist, domain.RoleNurse},
	OpPatientList:       {domain.RoleAdmin, domain.RoleDoctor, domain.RoleReceptionist, domain.RoleNurse},
	OpPatientUpdate:     {domain.RoleAdmin, domain.RoleReceptionist, domain.RoleNurse},
	OpPatientDelete:     {domain.RoleAdmin},
	OpAppointmentCreate: {domain.RoleAdmin, domain.RoleReceptionist},
	OpAppointmentList:   {domain.RoleAdmin, domain.RoleDoctor, domain.RoleReceptionist, domain.RoleNurse},
	OpChatbotQuery:      {domain.RoleAdmin, domain.RoleDoctor},
}

// Authorize reports whether role may invoke op. An operation missing from the
// table is a programming error, not a request-time condition: routes resolve
// their operation at registration via MustKnow, so this panic fires at startup.
func Authorize(op Operation, role domain.Role) bool {
	allowed, ok := table[op]
	if !ok {
		panic(fmt.Sprintf("policy: unknown operation %q", op))
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// MustKnow panics unless op is present in the policy table. Called when routes
// are registered so a typo crashes the process before it serves traffic.
func MustKnow(op Operation) Operation {
	if _, ok := table[op]; !ok {
		panic(fmt.Sprintf("policy: unknown operation %q", op))
	}
	return op
}
