package models

import (
	"time"
)

// Achievement is a league-wide unlockable with a fixed predicate
type Achievement struct {
	// ID is the stable identifier the registry keys on
	ID string

	// Title is the display name
	Title string

	// Description explains the unlock condition
	Description string

	// Unlocked flips once and never resets
	Unlocked bool

	// UnlockedDate is the league date the predicate first held
	UnlockedDate time.Time
}
