package domain

import "time"

// RoleChange records one admin-status transition: who did it, to whom, and
// the before/after values. Written in the same transaction as the change.
type RoleChange struct {
	ID        string
	ActorID   string
	TargetID  string
	OldValue  bool
	NewValue  bool
	CreatedAt time.Time
}
