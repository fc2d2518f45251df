package models

import "strings"

// OutcomeScope selects records by what the strike caused.
type OutcomeScope string

const (
	ScopeAll    OutcomeScope = "all"
	ScopeDamage OutcomeScope = "damage"
	ScopeInjury OutcomeScope = "injury"
	ScopeDeath  OutcomeScope = "death"
)

// OutcomeScopes lists the selector values in display order.
var OutcomeScopes = []OutcomeScope{ScopeAll, ScopeDamage, ScopeInjury, ScopeDeath}

// ParseOutcomeScope maps a selector value to a scope. Anything outside the
// enumeration falls back to ScopeAll.
func ParseOutcomeScope(s string) OutcomeScope {
	switch OutcomeScope(strings.ToLower(strings.TrimSpace(s))) {
	case ScopeDamage:
		return ScopeDamage
	case ScopeInjury:
		return ScopeInjury
	case ScopeDeath:
		return ScopeDeath
	default:
		return ScopeAll
	}
}

func (s OutcomeScope) Label() string {
	switch s {
	case ScopeDamage:
		return "Damage to Aircraft"
	case ScopeInjury:
		return "Injuries Reported"
	case ScopeDeath:
		return "Fatalities Reported"
	default:
		return "All Impacts"
	}
}
