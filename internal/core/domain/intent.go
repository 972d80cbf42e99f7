package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// IntentKind tags the variants of a parsed chatbot query.
type IntentKind string

const (
	IntentPatientByID            IntentKind = "patient_by_id"
	IntentListPatients           IntentKind = "list_patients"
	IntentAppointmentsForPatient IntentKind = "appointments_for_patient"
	IntentUnknown                IntentKind = "unknown"
)

// QueryIntent is the structured meaning extracted from a free-text query.
// PatientID is set only for the id-bound kinds; Raw carries the original text
// for the unknown variant.
type QueryIntent struct {
	Kind      IntentKind
	PatientID int64
	Raw       string
}

var firstNumber = regexp.MustCompile(`\d+`)

// intentMatchers is evaluated in order; the first predicate that matches wins.
// Id-bound intents are listed before the unqualified list intent so that
// "list patient id 3" resolves to a lookup, not a listing.
var intentMatchers = []struct {
	match func(s string) bool
	build func(s string) QueryIntent
}{
	{
		match: func(s string) bool {
			return strings.Contains(s, "appointment") && strings.Contains(s, "patient") && firstNumber.MatchString(s)
		},
		build: func(s string) QueryIntent {
			return QueryIntent{Kind: IntentAppointmentsForPatient, PatientID: extractID(s)}
		},
	},
	{
		match: func(s string) bool {
			return strings.Contains(s, "patient") &&
				(strings.Contains(s, "id") || strings.Contains(s, "details")) &&
				firstNumber.MatchString(s)
		},
		build: func(s string) QueryIntent {
			return QueryIntent{Kind: IntentPatientByID, PatientID: extractID(s)}
		},
	},
	{
		match: func(s string) bool {
			return (strings.Contains(s, "list") || strings.Contains(s, "all")) && strings.Contains(s, "patient")
		},
		build: func(s string) QueryIntent {
			return QueryIntent{Kind: IntentListPatients}
		},
	},
}

// ParseIntent maps free text to a QueryIntent. It never fails: unmatched input
// yields IntentUnknown carrying the raw text. Matching is case-insensitive and
// the id is taken from the first contiguous digit run in the text.
func ParseIntent(raw string) QueryIntent {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, m := range intentMatchers {
		if m.match(s) {
			return m.build(s)
		}
	}
	return QueryIntent{Kind: IntentUnknown, Raw: raw}
}

func extractID(s string) int64 {
	n, err := strconv.ParseInt(firstNumber.FindString(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
