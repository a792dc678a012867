package domain

import "fmt"

// Role represents a staff role in the system
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleMasseur Role = "masseur"
)

// Matches reports whether a resolved role satisfies a required role.
// Comparison is case-sensitive; an unset role never matches.
func (r Role) Matches(required Role) bool {
	return r != "" && r == required
}

// Status represents the lifecycle state of an appointment
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// transitions is the single source of truth for the appointment
// lifecycle: scheduled → in_progress → completed, nothing else.
var transitions = map[Status][]Status{
	StatusScheduled:  {StatusInProgress},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {},
}

// Valid reports whether s is a known appointment status
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether no further transition is possible from s
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// CanTransition reports whether the transition s → to is allowed
func (s Status) CanTransition(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// ParseStatus parses a raw string into a Status
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown appointment status: %q", raw)
	}
	return s, nil
}
